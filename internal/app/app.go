// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gammafit-core/spectrum"
	"gammafit/internal/cli"
	"gammafit/internal/config"
	"gammafit/internal/logging"
	"gammafit/internal/obsfile"
	"gammafit/internal/version"
	"gammafit/internal/writers"
)

// Run executes the fit pipeline with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, loads the analysis config and observations,
// runs the fit and writes the first result. Exit codes: 0 success,
// 2 usage error, 1 runtime failure, 3 output failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("gammafit")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		_ = outw.Flush()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "gammafit version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.OutDir != "" {
		cfg.Output.Dir = opts.OutDir
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Logging.Format = opts.LogFormat
	}

	log, err := logging.New(stderr, logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if err := parent.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	obs, err := obsfile.LoadAll(cfg.Observations)
	if err != nil {
		log.Error().Err(err).Msg("load observations")
		return 1
	}
	log.Info().Int("observations", len(obs)).Msg("observations loaded")

	model, err := cfg.BuildModel()
	if err != nil {
		log.Error().Err(err).Msg("build model")
		return 2
	}

	fit, err := spectrum.New(model, cfg.FitConfig(), obs...)
	if err != nil {
		log.Error().Err(err).Msg("configure fit")
		return 2
	}

	log.Info().
		Str("model", model.Name()).
		Str("statistic", cfg.Fit.Statistic).
		Str("method", cfg.Fit.Method).
		Msg("fit starting")

	results, err := fit.Run()
	if err != nil {
		log.Error().Err(err).Msg("fit failed")
		return 1
	}

	if err := parent.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	first := &results[0]
	path, err := writers.WriteResult(cfg.Output.Dir, first)
	if err != nil {
		log.Error().Err(err).Msg("write result")
		return 3
	}
	log.Info().
		Str("path", path).
		Float64("statval", first.StatVal).
		Msg("fit result written")

	for _, p := range first.Model.Parameters().FreeNames() {
		v, _ := first.Model.Parameters().Get(p)
		_, _ = fmt.Fprintf(outw, "%s\t%g\n", p, v)
	}
	_, _ = fmt.Fprintf(outw, "statval\t%g\n", first.StatVal)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}
