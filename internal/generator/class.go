package generator

import (
	"fmt"
	"strings"
)

// Class is one of the character categories a Generator can draw from.
type Class int

const (
	Digits Class = iota
	Lowercase
	Uppercase
	Special

	numClasses
)

const (
	digitChars     = "0123456789"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	specialChars   = `!?#$_%&*+,./\:;^~[]`
)

// AllClasses returns every class in canonical order.
func AllClasses() []Class {
	return []Class{Digits, Lowercase, Uppercase, Special}
}

// String returns the canonical lowercase name of the class.
func (c Class) String() string {
	switch c {
	case Digits:
		return "digits"
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Special:
		return "special"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Charset returns the fixed characters belonging to the class.
func (c Class) Charset() string {
	switch c {
	case Digits:
		return digitChars
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Special:
		return specialChars
	default:
		return ""
	}
}

func (c Class) valid() bool {
	return c >= Digits && c < numClasses
}

// ParseClass resolves a class from its name or one of the command-line aliases.
// Matching is case-insensitive.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "digits", "digit", "integer", "i":
		return Digits, nil
	case "lowercase", "lower", "lc", "l":
		return Lowercase, nil
	case "uppercase", "upper", "uc", "u":
		return Uppercase, nil
	case "special", "specialchar", "spec", "s":
		return Special, nil
	default:
		return 0, fmt.Errorf("unknown character class %q", name)
	}
}
