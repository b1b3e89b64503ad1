package preflight

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"profilescan/internal/mediainfo"
	"profilescan/internal/testsupport"
)

func TestCheckMediaInfoPasses(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", `echo "MediaInfo stub v1"`)

	result := CheckMediaInfo(context.Background(), mediainfo.New(stub, 0))
	if !result.Passed {
		t.Fatalf("expected pass, got %#v", result)
	}
	if result.Detail != "MediaInfo stub v1" {
		t.Fatalf("expected version detail, got %q", result.Detail)
	}
	if result.Err() != nil {
		t.Fatalf("passed result produced error: %v", result.Err())
	}
}

func TestCheckMediaInfoMissingBinary(t *testing.T) {
	result := CheckMediaInfo(context.Background(), mediainfo.New("clearly-not-installed-mediainfo", 0))
	if result.Passed {
		t.Fatal("expected failure for missing binary")
	}
	if !strings.Contains(result.Detail, "not found") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
	if result.Err() == nil {
		t.Fatal("failed result must produce an error")
	}
}

func TestCheckMediaInfoBrokenBinary(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", "exit 1")

	result := CheckMediaInfo(context.Background(), mediainfo.New(stub, 0))
	if result.Passed {
		t.Fatal("expected failure for non-functional binary")
	}
	if !strings.Contains(result.Detail, "not functional") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestCheckScanRoot(t *testing.T) {
	dir := t.TempDir()

	if result := CheckScanRoot(dir); !result.Passed {
		t.Fatalf("expected readable directory to pass, got %#v", result)
	}

	if result := CheckScanRoot(filepath.Join(dir, "missing")); result.Passed {
		t.Fatal("expected failure for missing root")
	}

	file := filepath.Join(dir, "movie.mkv")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result := CheckScanRoot(file)
	if result.Passed {
		t.Fatal("expected failure for regular file root")
	}
	if !strings.Contains(result.Detail, "not a directory") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestCheckScanRootUnreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission checks are unreliable here")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	defer os.Chmod(dir, 0o755) //nolint:errcheck

	if result := CheckScanRoot(dir); result.Passed {
		t.Fatal("expected failure for unreadable root")
	}
}

func TestRunAllSkipsRootWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", `echo v1`)

	results := RunAll(context.Background(), mediainfo.New(stub, 0), "")
	if len(results) != 1 {
		t.Fatalf("expected one check without root, got %d", len(results))
	}

	results = RunAll(context.Background(), mediainfo.New(stub, 0), dir)
	if len(results) != 2 {
		t.Fatalf("expected two checks with root, got %d", len(results))
	}
}
