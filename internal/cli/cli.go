// Package cli is the shared entry point of the benchmark commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"prime-bench-lab/internal/config"
	"prime-bench-lab/internal/harness"
	"prime-bench-lab/internal/output"
	"prime-bench-lab/internal/sysinfo"
	"prime-bench-lab/internal/utils"
)

// Main parses args, runs the benchmark with the given strategy and returns
// the process exit code.
func Main(ctx context.Context, strategy string, args []string, stdout, stderr io.Writer) int {
	prev := utils.SetOutput(stderr)
	defer utils.SetOutput(prev)

	cfg, err := parse(strategy, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}

	if cfg.Debug {
		host, err := sysinfo.Describe(ctx)
		if err != nil {
			utils.LogMessage(fmt.Sprintf("[sysinfo] %v", err), true, cfg.Debug)
		}
		utils.LogMessage("[sysinfo] "+host.String(), true, cfg.Debug)
		utils.LogMessage(fmt.Sprintf("[config] %+v", cfg), true, cfg.Debug)
	}

	out := output.NewLineWriter(stdout)
	if cfg.Quiet {
		out = output.Discard()
	}

	report, runErr := harness.Run(ctx, cfg, out, stderr)
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "write primes: %v\n", err)
		return 1
	}

	fmt.Fprintln(stderr, harness.Summary(report))
	utils.LogMessage(fmt.Sprintf("[report] strategy=%s primes=%s lines=%s",
		report.Strategy, utils.FormatCount(uint64(report.Primes)), utils.FormatCount(out.Lines())), true, cfg.Debug)

	if runErr != nil {
		fmt.Fprintf(stderr, "benchmark failed: %v\n", runErr)
		return 1
	}
	return 0
}

// parse layers flags over an optional JSON file over the compiled-in
// defaults for strategy.
func parse(strategy string, args []string, stderr io.Writer) (config.Config, error) {
	cfg := config.Default(strategy)

	fs := flag.NewFlagSet("printprimes-"+strategy, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "JSON file with benchmark settings")
	series := fs.Int("series", cfg.Series, "scan the integers in [0, series)")
	workers := fs.Int("workers", cfg.Workers, "number of workers, one contiguous chunk each")
	reference := fs.Bool("reference", cfg.Reference, "use the original primality test (reports 0 and 1 as prime)")
	quiet := fs.Bool("quiet", cfg.Quiet, "do not print primes, only time the scan")
	pin := fs.Bool("pin", cfg.Pin, "pin each worker to its own CPU (linux)")
	debug := fs.Bool("debug", cfg.Debug, "log host information and per-worker results")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath, cfg)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "series":
			cfg.Series = *series
		case "workers":
			cfg.Workers = *workers
		case "reference":
			cfg.Reference = *reference
		case "quiet":
			cfg.Quiet = *quiet
		case "pin":
			cfg.Pin = *pin
		case "debug":
			cfg.Debug = *debug
		}
	})
	// The command decides the strategy, a config file cannot switch it.
	cfg.Strategy = strategy
	return cfg, nil
}
