package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"profilescan/internal/config"
	"profilescan/internal/mediainfo"
	"profilescan/internal/preflight"
)

func newDoctorCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [directory]",
		Short: "Check external dependencies and scan preconditions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			root := ""
			if len(args) == 1 {
				root, err = config.ExpandPath(args[0])
				if err != nil {
					return err
				}
			}

			extractor := mediainfo.New(cfg.MediaInfo.Binary, cfg.Timeout())
			results := preflight.RunAll(cmd.Context(), extractor, root)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				status := "OK"
				if !result.Passed {
					status = "FAIL"
					failed++
				}
				rows = append(rows, []string{result.Name, status, result.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if failed > 0 {
				return errors.New("one or more preflight checks failed")
			}
			return nil
		},
	}
}
