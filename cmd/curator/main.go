// curator generates strong random passwords from selectable character classes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/acolita/curator/internal/adapters/realdialog"
	"github.com/acolita/curator/internal/config"
	"github.com/acolita/curator/internal/generator"
	"github.com/acolita/curator/internal/license"
	"github.com/acolita/curator/internal/logging"
	"github.com/acolita/curator/internal/mcp"
	"github.com/acolita/curator/internal/output"
	"github.com/acolita/curator/internal/ports"
)

// Version information - set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const noClassWarning = "No flags were supplied. Please read --help command result."

// Exit statuses.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// app carries the process collaborators so that tests can replace them.
type app struct {
	name   string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	stdinIsTerminal bool
	useColor        bool

	newGenerator func() (*generator.Generator, error)
	dialog       func() ports.DialogProvider
	serve        func() error
}

func main() {
	stdinTTY := isTerminal(os.Stdin)

	a := &app{
		name:            "curator",
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		getenv:          os.Getenv,
		stdinIsTerminal: stdinTTY,
		useColor:        !color.NoColor,
		newGenerator:    generator.New,
		serve: func() error {
			return mcp.NewServer(Version).Run()
		},
	}
	a.dialog = func() ports.DialogProvider {
		if stdinTTY {
			return realdialog.New()
		}
		return realdialog.NewPlain(os.Stdin, os.Stderr)
	}

	os.Exit(a.run(os.Args[1:]))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "show":
			return a.runShow(args[1:])
		case "serve":
			return a.runServe(args[1:])
		}
	}

	opts, err := parseFlags(a.name, args, a.getenv, a.stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n\n", err)
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintf(a.stdout, "%s version %s\n", a.name, Version)
		fmt.Fprintf(a.stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
		return exitOK
	}

	// With no arguments at all a terminal user gets the form; anything else
	// gets the help text.
	if len(args) == 0 {
		if !a.stdinIsTerminal {
			newFlagSet(a.name, a.stderr, &options{cfg: config.DefaultConfig()}).Usage()
			return exitUsage
		}
		opts.interactive = true
	}

	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(a.stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}

	slog.SetDefault(logging.New(a.stderr, cfg.Logging.Level, cfg.Logging.Sanitize))

	if opts.interactive {
		confirmed, err := a.askOptions(cfg)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return exitError
		}
		if !confirmed {
			fmt.Fprintln(a.stderr, "Cancelled.")
			return exitError
		}
	}

	return a.generate(cfg)
}

// askOptions lets the user edit cfg through the dialog provider.
func (a *app) askOptions(cfg *config.Config) (bool, error) {
	result, err := a.dialog().OptionsForm(ports.OptionsFormData{
		Length:  cfg.Length,
		Count:   cfg.Count,
		Classes: cfg.Classes,
	})
	if err != nil {
		return false, fmt.Errorf("interactive form: %w", err)
	}
	if !result.Confirmed {
		return false, nil
	}

	cfg.Length = result.Length
	cfg.Count = result.Count
	cfg.Classes = result.Classes
	return true, cfg.Validate()
}

func (a *app) generate(cfg *config.Config) int {
	printer := output.NewPrinter(a.stdout, a.stderr, cfg.Format, a.useColor)

	classes, err := cfg.ParsedClasses()
	if err != nil {
		fmt.Fprintf(a.stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}
	if len(classes) == 0 {
		printer.Warn(noClassWarning)
	}

	gen, err := a.newGenerator()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}
	for _, c := range classes {
		gen.Enable(c)
	}

	var passwords []string
	if cfg.Count == 1 {
		var pwd string
		pwd, err = gen.Generate(cfg.Length)
		passwords = []string{pwd}
	} else {
		passwords, err = gen.GenerateMany(cfg.Length, cfg.Count)
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}

	slog.Debug("generated passwords",
		slog.Int("length", cfg.Length),
		slog.Int("count", len(passwords)),
		slog.Any("classes", classNames(classes)),
	)

	if err := printer.Print(output.Result{
		Length:    cfg.Length,
		Classes:   classNames(classes),
		Passwords: passwords,
	}); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func (a *app) runShow(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(a.stderr, "Usage: %s show <w|c>\n", a.name)
		return exitUsage
	}

	text, err := license.Part(args[0])
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return exitUsage
	}
	fmt.Fprintln(a.stdout, text)
	return exitOK
}

func (a *app) runServe(args []string) int {
	cfg := config.DefaultConfig()
	cfg.ApplyEnv(a.getenv)

	fs := flag.NewFlagSet(a.name+" serve", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		fmt.Fprintf(a.stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}

	slog.SetDefault(logging.New(a.stderr, cfg.Logging.Level, cfg.Logging.Sanitize))
	slog.Info("starting curator", slog.String("version", Version))

	if err := a.serve(); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		return exitError
	}
	return exitOK
}

func classNames(classes []generator.Class) []string {
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.String())
	}
	return names
}
