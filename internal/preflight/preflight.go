package preflight

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"profilescan/internal/mediainfo"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Err converts a failed Result into an error suitable for the CLI boundary.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return fmt.Errorf("%s: %s", r.Name, r.Detail)
}

// CheckMediaInfo verifies the inspection tool resolves on PATH (or as a
// direct path) and answers a version query.
func CheckMediaInfo(ctx context.Context, extractor mediainfo.Extractor) Result {
	const name = "MediaInfo"

	binary := extractor.Binary()
	if _, err := exec.LookPath(binary); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found (install MediaInfo)", binary)}
	}

	version, err := extractor.Version(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q found but not functional: %v", binary, err)}
	}
	return Result{Name: name, Passed: true, Detail: version}
}

// CheckScanRoot verifies the scan root exists, is a directory, and is
// readable and traversable.
func CheckScanRoot(path string) Result {
	const name = "Scan root"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("stat %s: %v", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("cannot read directory %s: %v", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// RunAll executes every applicable check; root is skipped when empty (the
// doctor command runs without a scan target).
func RunAll(ctx context.Context, extractor mediainfo.Extractor, root string) []Result {
	results := []Result{CheckMediaInfo(ctx, extractor)}
	if root != "" {
		results = append(results, CheckScanRoot(root))
	}
	return results
}
