// Package report formats scan results for human consumption. It holds no
// decision logic; matches arrive pre-sorted from the scan engine.
package report

import (
	"fmt"
	"io"

	"profilescan/internal/scan"
)

// Render writes the match blocks and the closing summary. A scan that found
// no candidate files gets a short notice instead of an empty summary.
func Render(w io.Writer, summary scan.Summary) {
	if summary.FilesScanned == 0 {
		fmt.Fprintln(w, "No candidate files found in directory.")
		return
	}

	for _, match := range summary.Matches {
		fmt.Fprintf(w, "MATCH: %s\n", match.Path)
		fmt.Fprintf(w, "    Format profile: %s\n", match.Profile)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scan complete:")
	fmt.Fprintf(w, "  Files scanned: %d\n", summary.FilesScanned)
	fmt.Fprintf(w, "  Matches found: %d\n", len(summary.Matches))

	if len(summary.Matches) == 0 {
		fmt.Fprintln(w, "  No matching files found.")
		fmt.Fprintln(w, "  Tip: Use --verbose to see all profiles found")
	}
}
