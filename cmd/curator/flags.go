package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/acolita/curator/internal/config"
	"github.com/acolita/curator/internal/license"
)

// options are the parsed command-line flags of the generate command.
type options struct {
	cfg         *config.Config
	interactive bool
	showVersion bool
	debug       bool
}

// classFlag is a boolean flag that enables one character class in cfg.
type classFlag struct {
	cfg   *config.Config
	class string
	set   bool
}

func (f *classFlag) String() string { return fmt.Sprint(f.set) }

func (f *classFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.set = v
	if v {
		f.cfg.EnableClass(f.class)
	}
	return nil
}

func (f *classFlag) IsBoolFlag() bool { return true }

// newFlagSet registers every flag on a fresh FlagSet writing usage to w.
// Each option has a short and a long name.
func newFlagSet(name string, w io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	cfg := opts.cfg

	for _, c := range []struct{ short, long, class, help string }{
		{"i", "integer", "digits", "Enables integers generation"},
		{"l", "lcletters", "lowercase", "Enables lower case letters generation"},
		{"u", "ucletters", "uppercase", "Enables upper case letters generation"},
		{"s", "specialchar", "special", "Enables special characters generation"},
	} {
		f := &classFlag{cfg: cfg, class: c.class}
		fs.Var(f, c.short, c.help+" (shorthand)")
		fs.Var(f, c.long, c.help)
	}

	fs.IntVar(&cfg.Length, "n", cfg.Length, "Password length (shorthand)")
	fs.IntVar(&cfg.Length, "number", cfg.Length, "The occurrences number forming the password")
	fs.IntVar(&cfg.Count, "c", cfg.Count, "Number of passwords (shorthand)")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of passwords to generate")

	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, json or yaml")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn or error")
	fs.BoolVar(&opts.debug, "debug", false, "Shorthand for -log-level debug")
	fs.BoolVar(&opts.interactive, "interactive", false, "Choose the options in an interactive form")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() { usage(fs) }
	return fs
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: %s [options]\n", fs.Name())
	fmt.Fprintf(w, "       %s show <w|c>\n", fs.Name())
	fmt.Fprintf(w, "       %s serve\n\n", fs.Name())
	fmt.Fprintf(w, "%s\n", license.Notice)
	fmt.Fprintf(w, "-----------\n\n")
	fmt.Fprintf(w, "Generate some strong passwords.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  show w             Show the warranty disclaimer\n")
	fmt.Fprintf(w, "  show c             Show the redistribution conditions\n")
	fmt.Fprintf(w, "  serve              Serve the generator as MCP tools on stdio\n")
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %-18s Log level (overridden by -log-level)\n", config.EnvLogLevel)
	fmt.Fprintf(w, "  %-18s Output format (overridden by -format)\n", config.EnvFormat)
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s -i -u -l -n 20          # one 20 character password\n", fs.Name())
	fmt.Fprintf(w, "  %s -i -l -u -s -c 10       # ten 8 character passwords\n", fs.Name())
	fmt.Fprintf(w, "  %s -l -s -format json      # JSON output\n", fs.Name())
}

// parseFlags parses args into a config seeded from defaults and the
// environment. Flags win over the environment.
func parseFlags(name string, args []string, getenv func(string) string, w io.Writer) (*options, error) {
	cfg := config.DefaultConfig()
	cfg.ApplyEnv(getenv)

	opts := &options{cfg: cfg}
	fs := newFlagSet(name, w, opts)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	return opts, nil
}
