package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/listbench/internal/bench/sweep"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/injector"
)

type sweepFlags struct {
	plan     string
	samples  int
	seed     uint64
	out      string
	logLevel string
}

func parseSweepFlags(args []string, stderr io.Writer) (sweepFlags, error) {
	var f sweepFlags

	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.plan, "plan", "", "YAML plan file; the built-in three case plan when empty")
	fs.IntVar(&f.samples, "samples", 0, "override the number of samples per measurement")
	fs.Uint64Var(&f.seed, "seed", 0, "base seed; time based when 0")
	fs.StringVar(&f.out, "out", "", "write the full report as YAML to this file")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return f, nil
}

// Sweep runs a whole plan of benchmarks and prints the summary to stdout.
func Sweep(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseSweepFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitConfig
	}

	level, err := log.ParseLevel(f.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitConfig
	}
	logger := injector.InitializeLogger(injector.LoggerConfig{Level: level, Writer: stderr})
	defer func() { _ = logger.Sync() }()

	plan := sweep.DefaultPlan()
	if f.plan != "" {
		if plan, err = sweep.LoadPlan(f.plan); err != nil {
			logger.Error("load plan", log.String("path", f.plan), log.Error(err))
			return ExitConfig
		}
	}
	if f.samples != 0 {
		plan.Samples = f.samples
	}
	if err = plan.Validate(); err != nil {
		logger.Error("invalid plan", log.Error(err))
		return ExitConfig
	}

	report, err := injector.InitializeRunner(logger, injector.SweepSeed(f.seed)).Run(ctx, plan)
	if err != nil {
		logger.Error("sweep failed", log.Error(err))
		return ExitRun
	}

	if err = report.WriteText(stdout); err != nil {
		logger.Error("write summary", log.Error(err))
		return ExitRun
	}

	if f.out != "" {
		if err = writeReport(f.out, report); err != nil {
			logger.Error("write report", log.String("path", f.out), log.Error(err))
			return ExitRun
		}
		logger.Info("report written", log.String("path", f.out), log.String("id", report.ID))
	}

	return ExitOK
}

func writeReport(path string, report *sweep.Report) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return report.WriteYAML(file)
}
