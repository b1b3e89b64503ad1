package mediainfo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the executable name used when none is configured.
const DefaultBinary = "mediainfo"

// DefaultTimeout bounds a single inspection so a hung process cannot stall
// a scan worker indefinitely.
const DefaultTimeout = 30 * time.Second

// informQuery asks mediainfo for exactly one field: the Format profile of
// the first video stream.
const informQuery = "--Inform=Video;%Format_Profile%"

// Extractor invokes mediainfo against individual files.
type Extractor struct {
	binary  string
	timeout time.Duration
}

// New constructs an Extractor. Empty binary and non-positive timeout fall
// back to the package defaults.
func New(binary string, timeout time.Duration) Extractor {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Extractor{binary: binary, timeout: timeout}
}

// Binary returns the configured executable name.
func (e Extractor) Binary() string {
	return e.binary
}

// Profile extracts the Format profile for path. The boolean reports whether
// a profile was present: it is false when the file has no video stream, the
// tool exits non-zero, the invocation times out, or the process cannot be
// started. None of those conditions is an error at this layer.
func (e Extractor) Profile(ctx context.Context, path string) (string, bool) {
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.binary, informQuery, path)
	// A grandchild holding the output pipe must not extend the bound past
	// the kill.
	cmd.WaitDelay = time.Second
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", false
	}

	profile := strings.TrimSpace(stdout.String())
	if profile == "" {
		return "", false
	}
	return profile, true
}

// Version runs the tool's version query and returns its first output line.
// Unlike Profile, a failure here is surfaced as an error: an unreachable or
// non-functional binary is a fatal precondition for any scan.
func (e Extractor) Version(ctx context.Context) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.binary, "--version")
	cmd.WaitDelay = time.Second
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("mediainfo version check: %w", err)
	}

	line := strings.TrimSpace(string(output))
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	return line, nil
}
