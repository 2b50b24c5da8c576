package realdialog

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/acolita/curator/internal/generator"
)

func TestPromptWithInput(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("16\n"))
	result := prompt(scanner, "Length", "8")
	if result != "16" {
		t.Errorf("prompt() = %q, want %q", result, "16")
	}
}

func TestPromptEmptyReturnsDefault(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("\n"))
	result := prompt(scanner, "Length", "8")
	if result != "8" {
		t.Errorf("prompt() = %q, want %q", result, "8")
	}
}

func TestPromptWhitespaceReturnsDefault(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("   \n"))
	result := prompt(scanner, "Length", "8")
	if result != "8" {
		t.Errorf("prompt() = %q, want %q", result, "8")
	}
}

func TestPromptEOFReturnsDefault(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader(""))
	result := prompt(scanner, "Count", "1")
	if result != "1" {
		t.Errorf("prompt() = %q, want %q", result, "1")
	}
}

func TestParseYesNo(t *testing.T) {
	tests := map[string]bool{
		"y":    true,
		"Y":    true,
		"yes":  true,
		" YES": true,
		"n":    false,
		"no":   false,
		"":     false,
		"yep":  false,
	}
	for in, want := range tests {
		if got := parseYesNo(in); got != want {
			t.Errorf("parseYesNo(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidateNonNegative(t *testing.T) {
	valid := []string{"0", "8", " 32 "}
	for _, s := range valid {
		if err := validateNonNegative(s); err != nil {
			t.Errorf("validateNonNegative(%q) error = %v", s, err)
		}
	}

	invalid := []string{"", "-1", "eight", "1.5"}
	for _, s := range invalid {
		if err := validateNonNegative(s); err == nil {
			t.Errorf("validateNonNegative(%q) expected error", s)
		}
	}
}

func TestValidateClasses(t *testing.T) {
	if err := validateClasses(nil); !errors.Is(err, generator.ErrNoPoolEnabled) {
		t.Errorf("validateClasses(nil) = %v, want ErrNoPoolEnabled", err)
	}
	if err := validateClasses([]string{"digits"}); err != nil {
		t.Errorf("validateClasses(digits) = %v", err)
	}
}

func TestClassOptions(t *testing.T) {
	opts := classOptions([]string{"lc", "special"})

	if len(opts) != 4 {
		t.Fatalf("classOptions() returned %d options, want 4", len(opts))
	}

	wantValues := []string{"digits", "lowercase", "uppercase", "special"}
	for i, opt := range opts {
		if opt.Value != wantValues[i] {
			t.Errorf("opts[%d].Value = %q, want %q", i, opt.Value, wantValues[i])
		}
		if !strings.Contains(opt.Key, wantValues[i]) {
			t.Errorf("opts[%d].Key = %q, want it to name %q", i, opt.Key, wantValues[i])
		}
	}
}
