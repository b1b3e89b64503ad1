package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"profilescan/internal/testsupport"
)

// stubMediainfo answers --version and maps file names to canned profiles
// the way the real tool would.
const stubMediainfo = `if [ "$1" = "--version" ]; then
  echo "MediaInfo stub v1"
  exit 0
fi
case "$2" in
  *match.mkv) echo "Main 10@L5.1@High" ;;
  *plain.mkv) echo "Main@L4@Main" ;;
esac`

func withStubPath(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	testsupport.StubBinary(t, binDir, "mediainfo", stubMediainfo)
	oldPath := os.Getenv("PATH")
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath)
	return binDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRequiresDirectory(t *testing.T) {
	out, err := execute(t)
	if err == nil {
		t.Fatal("expected error when the directory argument is missing")
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("help was not printed:\n%s", out)
	}
}

func TestRootTestFlagRunsSelfTest(t *testing.T) {
	out, err := execute(t, "--test")
	if err != nil {
		t.Fatalf("self-test run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All 5 checks passed") {
		t.Fatalf("missing self-test summary:\n%s", out)
	}
}

func TestRootRejectsNonPositiveJobs(t *testing.T) {
	withStubPath(t)
	if _, err := execute(t, "-j", "0", t.TempDir()); err == nil {
		t.Fatal("expected error for --jobs 0")
	}
}

func TestScanEndToEnd(t *testing.T) {
	withStubPath(t)

	root := t.TempDir()
	testsupport.MediaTree(t, root, "match.mkv", "sub/plain.mkv", "novideo.mkv")

	out, err := execute(t, "-j", "2", root)
	if err != nil {
		t.Fatalf("scan failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "MATCH: "+filepath.Join(root, "match.mkv")) {
		t.Fatalf("missing match block:\n%s", out)
	}
	if !strings.Contains(out, "Files scanned: 3") || !strings.Contains(out, "Matches found: 1") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestScanVerboseLogsEveryFile(t *testing.T) {
	withStubPath(t)

	root := t.TempDir()
	testsupport.MediaTree(t, root, "plain.mkv", "novideo.mkv")

	out, err := execute(t, "--verbose", root)
	if err != nil {
		t.Fatalf("scan failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Main@L4@Main") {
		t.Fatalf("verbose output missing raw profile:\n%s", out)
	}
	if !strings.Contains(out, "skip") {
		t.Fatalf("verbose output missing skip notice:\n%s", out)
	}
}

func TestScanFailsOnFileRoot(t *testing.T) {
	withStubPath(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "movie.mkv")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := execute(t, file)
	if err == nil {
		t.Fatal("expected failure for a regular-file root")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScanFailsWithoutMediainfo(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := execute(t, t.TempDir())
	if err == nil {
		t.Fatal("expected failure when mediainfo is missing")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoctorReportsChecks(t *testing.T) {
	withStubPath(t)

	root := t.TempDir()
	out, err := execute(t, "doctor", root)
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "MediaInfo") || !strings.Contains(out, "Scan root") {
		t.Fatalf("missing check rows:\n%s", out)
	}
	if !strings.Contains(out, "OK") {
		t.Fatalf("missing OK status:\n%s", out)
	}
}

func TestDoctorFailsWhenToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	out, err := execute(t, "doctor")
	if err == nil {
		t.Fatalf("expected doctor to fail:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") {
		t.Fatalf("missing FAIL status:\n%s", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := execute(t, "config", "init", "--path", path); err == nil {
		t.Fatal("expected error when the file already exists")
	}

	out, err = execute(t, "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "is valid") {
		t.Fatalf("missing validation confirmation:\n%s", out)
	}
}
