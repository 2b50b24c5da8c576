// Package output renders generated passwords for the terminal or for other
// programs.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/acolita/curator/internal/config"
)

// Result is what a single curator run produced.
type Result struct {
	Length    int      `json:"length" yaml:"length"`
	Classes   []string `json:"classes" yaml:"classes"`
	Passwords []string `json:"passwords" yaml:"passwords"`
}

// Printer writes results and warnings.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format string

	index *color.Color
	warn  *color.Color
}

// NewPrinter returns a Printer for one of the config.Format* values.
// Colour is only applied to text output and only when useColor is set.
func NewPrinter(out, errOut io.Writer, format string, useColor bool) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		format: format,
		index:  color.New(color.FgCyan, color.Bold),
		warn:   color.New(color.FgYellow),
	}
	if useColor {
		p.index.EnableColor()
		p.warn.EnableColor()
	} else {
		p.index.DisableColor()
		p.warn.DisableColor()
	}
	return p
}

// Print renders r in the configured format.
func (p *Printer) Print(r Result) error {
	switch p.format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return p.printText(r.Passwords)
	}
}

// A single password is printed bare; several are numbered from 1.
func (p *Printer) printText(passwords []string) error {
	if len(passwords) == 1 {
		_, err := fmt.Fprintln(p.out, passwords[0])
		return err
	}
	for i, pwd := range passwords {
		if _, err := fmt.Fprintf(p.out, "%s %s\n", p.index.Sprintf("%d:", i+1), pwd); err != nil {
			return err
		}
	}
	return nil
}

// Warn prints a non-fatal warning on the error stream.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.warn.Fprintln(p.errOut, fmt.Sprintf(format, args...))
}
