package ports

// OptionsFormData holds the result of the interactive options form.
type OptionsFormData struct {
	Length    int
	Count     int
	Classes   []string // generator class names
	Confirmed bool
}

// DialogProvider abstracts interactive user dialogs.
// Implementations may use TUI forms, plain line prompts, or test fakes.
type DialogProvider interface {
	// OptionsForm asks the user for generation options, starting from prefill.
	// Returns the final data with Confirmed=true if the user accepted.
	OptionsForm(prefill OptionsFormData) (OptionsFormData, error)
}
