package main

import (
	"errors"

	"github.com/spf13/cobra"

	"profilescan/internal/config"
	"profilescan/internal/selftest"
)

// Exit codes. 130 is the conventional status for an interrupted foreground
// process (128 + SIGINT).
const (
	exitFailure     = 1
	exitInterrupted = 130
)

func newRootCommand() *cobra.Command {
	var (
		configFlag  string
		verbose     bool
		jobs        int
		runSelfTest bool
		logFormat   string
	)

	cmd := &cobra.Command{
		Use:   "profilescan [flags] <directory>",
		Short: "Scan a media library for problematic video format profiles",
		Long: `profilescan recursively scans a directory for video container files,
extracts the Format profile of the primary video stream via MediaInfo, and
reports files whose profile matches a configured set of problematic values
(high-tier HEVC profiles that old playback hardware cannot decode).`,
		Example: `  profilescan /mnt/media/movies
  profilescan -v -j 8 /mnt/media/tv
  profilescan --test`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runSelfTest {
				if !selftest.Run(cmd.OutOrStdout()) {
					return errors.New("self-test failed")
				}
				return nil
			}
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("missing scan directory")
			}
			if cmd.Flags().Changed("jobs") && jobs < 1 {
				return errors.New("--jobs must be at least 1")
			}

			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			return runScan(cmd, cfg, scanOptions{
				root:      args[0],
				verbose:   verbose,
				jobs:      jobs,
				logFormat: logFormat,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every file considered and its raw profile")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "worker pool size (default: one per CPU core)")
	cmd.Flags().BoolVar(&runSelfTest, "test", false, "run the built-in self-test suite and exit")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "log output format: console or json")

	cmd.AddCommand(newConfigCommand(&configFlag))
	cmd.AddCommand(newDoctorCommand(&configFlag))
	cmd.AddCommand(newSelfTestCommand())

	return cmd
}
