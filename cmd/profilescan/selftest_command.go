package main

import (
	"errors"

	"github.com/spf13/cobra"

	"profilescan/internal/selftest"
)

func newSelfTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in self-test suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !selftest.Run(cmd.OutOrStdout()) {
				return errors.New("self-test failed")
			}
			return nil
		},
	}
}
