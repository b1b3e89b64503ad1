// Package selftest backs the --test flag: a built-in suite that exercises
// the classifier and the scan engine in-process, without touching mediainfo
// or any real media library. It exists so an operator can sanity-check an
// installed binary on a machine with no Go toolchain.
package selftest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"profilescan/internal/classify"
	"profilescan/internal/scan"
)

type check struct {
	name string
	run  func() error
}

// Run executes every check, printing one line per result. It returns true
// only when all checks pass.
func Run(w io.Writer) bool {
	checks := []check{
		{"classifier matches exact target", checkExactMatch},
		{"classifier rejects near misses", checkNearMisses},
		{"classifier skips absent extraction", checkAbsentSkip},
		{"engine gathers matches from a scratch tree", checkEngineScenario},
		{"engine handles an empty directory", checkEngineEmpty},
	}

	fmt.Fprintln(w, "Running built-in self-test...")
	failed := 0
	for _, c := range checks {
		if err := c.run(); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", c.name)
	}

	if failed > 0 {
		fmt.Fprintf(w, "%d of %d checks failed\n", failed, len(checks))
		return false
	}
	fmt.Fprintf(w, "All %d checks passed\n", len(checks))
	return true
}

func checkExactMatch() error {
	c := classify.New([]string{"Main 10@L5.1@High"})
	out := c.Classify("Main 10@L5.1@High", true)
	if out.Kind != classify.Match || out.Profile != "Main 10@L5.1@High" {
		return fmt.Errorf("unexpected outcome %#v", out)
	}
	return nil
}

func checkNearMisses() error {
	c := classify.New([]string{"Main 10@L5.1@High"})
	for _, profile := range []string{"Main 10@L5.1@High ", "main 10@l5.1@high", "Main@L4@Main"} {
		if out := c.Classify(profile, true); out.Kind != classify.NoMatch {
			return fmt.Errorf("%q classified as %v", profile, out.Kind)
		}
	}
	return nil
}

func checkAbsentSkip() error {
	c := classify.New([]string{"Main 10@L5.1@High"})
	if out := c.Classify("", false); out.Kind != classify.Skip {
		return fmt.Errorf("absent extraction classified as %v", out.Kind)
	}
	return nil
}

type stubExtractor map[string]string

func (s stubExtractor) Profile(_ context.Context, path string) (string, bool) {
	profile, ok := s[filepath.Base(path)]
	if !ok || profile == "" {
		return "", false
	}
	return profile, true
}

func checkEngineScenario() error {
	root, err := os.MkdirTemp("", "profilescan-selftest")
	if err != nil {
		return fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(root)

	for _, name := range []string{"a.mkv", "b.mkv", "c.mkv"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("stub"), 0o644); err != nil {
			return fmt.Errorf("scratch file %s: %w", name, err)
		}
	}

	engine, err := scan.NewEngine(scan.Options{
		Extractor: stubExtractor{
			"a.mkv": "Main 10@L5.1@High",
			"b.mkv": "Main@L4@Main",
			// c.mkv: no video track
		},
		Classifier: classify.New([]string{"Main 10@L5.1@High"}),
		Workers:    2,
		Extensions: []string{".mkv"},
	})
	if err != nil {
		return err
	}

	summary, err := engine.Run(context.Background(), root)
	if err != nil {
		return err
	}
	if summary.FilesScanned != 3 {
		return fmt.Errorf("expected 3 files scanned, got %d", summary.FilesScanned)
	}
	if len(summary.Matches) != 1 {
		return fmt.Errorf("expected 1 match, got %d", len(summary.Matches))
	}
	match := summary.Matches[0]
	if filepath.Base(match.Path) != "a.mkv" || match.Profile != "Main 10@L5.1@High" {
		return fmt.Errorf("unexpected match %#v", match)
	}
	return nil
}

func checkEngineEmpty() error {
	root, err := os.MkdirTemp("", "profilescan-selftest")
	if err != nil {
		return fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(root)

	engine, err := scan.NewEngine(scan.Options{
		Extractor:  stubExtractor{},
		Classifier: classify.New([]string{"Main 10@L5.1@High"}),
		Workers:    1,
		Extensions: []string{".mkv"},
	})
	if err != nil {
		return err
	}

	summary, err := engine.Run(context.Background(), root)
	if err != nil {
		return err
	}
	if summary.FilesScanned != 0 || len(summary.Matches) != 0 {
		return errors.New("empty directory produced a non-empty summary")
	}
	return nil
}
