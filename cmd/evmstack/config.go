package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// config holds the resolved command-line settings.
type config struct {
	Verbosity int
	Trace     bool
	Metrics   bool
	Ops       []string
}

func defaultConfig() config {
	return config{Verbosity: 3}
}

// Validate checks the configuration for out-of-range values.
func (c *config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("verbosity must be 0-5, got %d", c.Verbosity)
	}
	if len(c.Ops) == 0 {
		return errors.New("no operations given")
	}
	return nil
}

// parseFlags parses CLI arguments into a config. It returns the config,
// whether the caller should exit immediately, and the exit code.
func parseFlags(args []string, stdout, stderr io.Writer) (config, bool, int) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("evmstack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every push at debug level")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "log push count and peak depth")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, 0
		}
		return cfg, true, 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "evmstack %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}
	cfg.Ops = fs.Args()
	return cfg, false, 0
}
