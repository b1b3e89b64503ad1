package main

import (
	"errors"
	"fmt"
	"os"

	"profilescan/internal/scan"
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, scan.ErrInterrupted) {
		// The single interruption notice lives here; workers and the
		// coordinator never print their own.
		fmt.Println("Scan interrupted, exiting")
		os.Exit(exitInterrupted)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitFailure)
}
