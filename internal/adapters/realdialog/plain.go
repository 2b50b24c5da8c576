package realdialog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/acolita/curator/internal/generator"
	"github.com/acolita/curator/internal/ports"
)

// PlainProvider asks for the options with one line prompt per field.
// It is used when stdin is not a terminal.
type PlainProvider struct {
	in  io.Reader
	out io.Writer
}

// NewPlain returns a line-prompt provider reading from in and writing to out.
func NewPlain(in io.Reader, out io.Writer) *PlainProvider {
	return &PlainProvider{in: in, out: out}
}

// OptionsForm prompts for length, count, each class and a confirmation.
// Unparseable numbers keep the prefilled value.
func (p *PlainProvider) OptionsForm(prefill ports.OptionsFormData) (ports.OptionsFormData, error) {
	scanner := bufio.NewScanner(p.in)
	result := prefill

	enabled := make(map[generator.Class]bool)
	for _, name := range prefill.Classes {
		if c, err := generator.ParseClass(name); err == nil {
			enabled[c] = true
		}
	}

	fmt.Fprintln(p.out, "=== curator (interactive mode) ===")

	result.Length = promptInt(scanner, p.out, "Password length", prefill.Length)
	result.Count = promptInt(scanner, p.out, "How many passwords", max(prefill.Count, 1))

	result.Classes = nil
	for _, c := range generator.AllClasses() {
		def := "n"
		if enabled[c] {
			def = "y"
		}
		fmt.Fprintf(p.out, "Include %s (%s)? [%s]: ", c, c.Charset(), def)
		if parseYesNo(prompt(scanner, "", def)) {
			result.Classes = append(result.Classes, c.String())
		}
	}

	fmt.Fprint(p.out, "Generate? [y]: ")
	result.Confirmed = parseYesNo(prompt(scanner, "", "y"))

	if err := scanner.Err(); err != nil {
		return prefill, fmt.Errorf("read input: %w", err)
	}
	return result, nil
}

func promptInt(scanner *bufio.Scanner, out io.Writer, label string, def int) int {
	fmt.Fprintf(out, "%s [%d]: ", label, def)
	v, err := strconv.Atoi(prompt(scanner, label, strconv.Itoa(def)))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// prompt reads one line, returning def for blank input or EOF.
func prompt(scanner *bufio.Scanner, label, def string) string {
	if !scanner.Scan() {
		return def
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return def
	}
	return line
}

// parseYesNo returns true for "y" / "yes" (case-insensitive), false otherwise.
func parseYesNo(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "y" || s == "yes"
}

var _ ports.DialogProvider = (*PlainProvider)(nil)
