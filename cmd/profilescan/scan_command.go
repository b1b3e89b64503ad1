package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"profilescan/internal/classify"
	"profilescan/internal/config"
	"profilescan/internal/logging"
	"profilescan/internal/mediainfo"
	"profilescan/internal/preflight"
	"profilescan/internal/report"
	"profilescan/internal/scan"
)

type scanOptions struct {
	root      string
	verbose   bool
	jobs      int
	logFormat string
}

// runScan wires the scan pipeline: preflight, signal-aware context, engine,
// report. Preconditions fail before any work is dispatched; an interrupt
// surfaces as scan.ErrInterrupted and is mapped to its exit code in main.
func runScan(cmd *cobra.Command, cfg *config.Config, opts scanOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := cfg.Logging.Level
	if opts.verbose {
		level = "debug"
	}
	format := cfg.Logging.Format
	if opts.logFormat != "" {
		format = opts.logFormat
	}
	logger, err := logging.New(logging.Options{Level: level, Format: format, Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	extractor := mediainfo.New(cfg.MediaInfo.Binary, cfg.Timeout())
	if err := preflight.CheckMediaInfo(ctx, extractor).Err(); err != nil {
		return err
	}

	root, err := config.ExpandPath(opts.root)
	if err != nil {
		return err
	}
	if err := preflight.CheckScanRoot(root).Err(); err != nil {
		return err
	}

	jobs := opts.jobs
	if jobs <= 0 {
		jobs = cfg.Scan.Jobs
	}
	engine, err := scan.NewEngine(scan.Options{
		Extractor:  extractor,
		Classifier: classify.New(cfg.Profiles.Targets),
		Workers:    jobs,
		Extensions: cfg.Scan.Extensions,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	summary, err := engine.Run(ctx, root)
	if err != nil {
		return err
	}

	report.Render(cmd.OutOrStdout(), summary)
	return nil
}
