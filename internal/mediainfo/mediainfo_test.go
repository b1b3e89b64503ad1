package mediainfo

import (
	"context"
	"testing"
	"time"

	"profilescan/internal/testsupport"
)

func TestProfileTrimsOutput(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", `echo "Main 10@L5.1@High"`)

	e := New(stub, 0)
	profile, ok := e.Profile(context.Background(), "dummy.mkv")
	if !ok {
		t.Fatal("expected profile to be present")
	}
	if profile != "Main 10@L5.1@High" {
		t.Fatalf("unexpected profile: %q", profile)
	}
}

func TestProfileAbsentOnEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", "exit 0")

	e := New(stub, 0)
	if _, ok := e.Profile(context.Background(), "no-video.mkv"); ok {
		t.Fatal("expected absent profile for empty output")
	}
}

func TestProfileAbsentOnFailure(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", "exit 3")

	e := New(stub, 0)
	if _, ok := e.Profile(context.Background(), "broken.mkv"); ok {
		t.Fatal("expected absent profile for non-zero exit")
	}
}

func TestProfileAbsentOnMissingBinary(t *testing.T) {
	e := New("clearly-not-installed-mediainfo", 0)
	if _, ok := e.Profile(context.Background(), "some.mkv"); ok {
		t.Fatal("expected absent profile when the binary cannot be started")
	}
}

func TestProfileAbsentOnTimeout(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", "sleep 5\necho late")

	e := New(stub, 100*time.Millisecond)
	start := time.Now()
	if _, ok := e.Profile(context.Background(), "hung.mkv"); ok {
		t.Fatal("expected absent profile on timeout")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("timeout was not enforced, took %v", elapsed)
	}
}

func TestVersionReportsFirstLine(t *testing.T) {
	dir := t.TempDir()
	stub := testsupport.StubBinary(t, dir, "mediainfo", `echo "MediaInfo Command line, v23.10"
echo "ignored second line"`)

	e := New(stub, 0)
	version, err := e.Version(context.Background())
	if err != nil {
		t.Fatalf("version check failed: %v", err)
	}
	if version != "MediaInfo Command line, v23.10" {
		t.Fatalf("unexpected version line: %q", version)
	}
}

func TestVersionFailsWhenBinaryMissing(t *testing.T) {
	e := New("clearly-not-installed-mediainfo", 0)
	if _, err := e.Version(context.Background()); err == nil {
		t.Fatal("expected version check to fail for a missing binary")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	e := New("  ", -1)
	if e.Binary() != DefaultBinary {
		t.Fatalf("expected default binary, got %q", e.Binary())
	}
	if e.timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", e.timeout)
	}
}
