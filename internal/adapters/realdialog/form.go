// Package realdialog provides the interactive options form, either as a
// charmbracelet/huh TUI or as plain line prompts when no terminal is attached.
package realdialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/acolita/curator/internal/generator"
	"github.com/acolita/curator/internal/ports"
)

// Provider implements ports.DialogProvider with a huh form on the terminal.
type Provider struct{}

// New returns a new TUI dialog provider.
func New() *Provider {
	return &Provider{}
}

// OptionsForm shows the options form and blocks until it is submitted.
func (p *Provider) OptionsForm(prefill ports.OptionsFormData) (ports.OptionsFormData, error) {
	result := prefill
	lengthStr := strconv.Itoa(prefill.Length)
	countStr := strconv.Itoa(max(prefill.Count, 1))
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Length").
				Description("Number of characters per password").
				Validate(validateNonNegative).
				Value(&lengthStr),

			huh.NewInput().
				Title("Count").
				Description("How many passwords to generate").
				Validate(validateNonNegative).
				Value(&countStr),

			huh.NewMultiSelect[string]().
				Title("Character classes").
				Options(classOptions(prefill.Classes)...).
				Validate(validateClasses).
				Value(&result.Classes),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate passwords?").
				Affirmative("Generate").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return prefill, err
	}

	// both inputs passed validateNonNegative
	result.Length, _ = strconv.Atoi(strings.TrimSpace(lengthStr))
	result.Count, _ = strconv.Atoi(strings.TrimSpace(countStr))
	result.Confirmed = confirmed

	return result, nil
}

func classOptions(selected []string) []huh.Option[string] {
	isSelected := make(map[generator.Class]bool)
	for _, name := range selected {
		if c, err := generator.ParseClass(name); err == nil {
			isSelected[c] = true
		}
	}

	opts := make([]huh.Option[string], 0, len(generator.AllClasses()))
	for _, c := range generator.AllClasses() {
		label := fmt.Sprintf("%-9s %s", c, c.Charset())
		opts = append(opts, huh.NewOption(label, c.String()).Selected(isSelected[c]))
	}
	return opts
}

func validateNonNegative(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateClasses(classes []string) error {
	if len(classes) == 0 {
		return generator.ErrNoPoolEnabled
	}
	return nil
}

var _ ports.DialogProvider = (*Provider)(nil)
