// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"gammafit/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	ConfigFile string
	OutDir     string // overrides the config's output dir when set

	LogLevel  string
	LogFormat string

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: gamma-ray spectral fitting

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigFile, "config", "", "analysis config YAML [*]")
	fs.StringVar(&opt.OutDir, "outdir", "", "output directory (overrides config) [\"\"]")

	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: debug | info | warn | error (overrides config) [\"\"]")
	fs.StringVar(&opt.LogFormat, "log-format", "", "log format: console | json (overrides config) [\"\"]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.ConfigFile == "" {
		return opt, errors.New("--config is required")
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opt, nil
}
