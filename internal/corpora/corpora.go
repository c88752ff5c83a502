// Package corpora runs table-driven tests whose table is a directory
// of files: each input file in the corpus is one test case, and each
// case's expected outputs live next to it as golden files.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cfacet/csyntax/internal/testutil"
)

// Corpus describes one corpus of test inputs.
type Corpus struct {
	// Root is the corpus directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Refresh names an environment variable. When the variable is set,
	// its value is a glob matched against test case names; golden files
	// of matching cases are rewritten from the test's actual outputs
	// instead of compared, and the run fails so a refresh cannot pass
	// in CI.
	Refresh string

	// Extension (without the dot) selects which files under Root are
	// test cases.
	Extension string

	// Outputs lists the golden file extensions of each test output, in
	// the order Test returns them. A case's golden file for output n is
	// its own path with "." + Outputs[n] appended; a missing golden
	// file stands for the empty string, so empty outputs need no file.
	Outputs []string

	// Test runs one case and returns its outputs, one per entry of
	// Outputs.
	Test func(t *testing.T, path, text string) []string
}

func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("corpora: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob %s=%q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing golden files because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, p := range tests {
		name, _ := filepath.Rel(testDir, p)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(p)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", p, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, corpus declares %d", len(results), len(c.Outputs))
			}

			refreshThis, _ := doublestar.Match(refresh, name)
			for i, ext := range c.Outputs {
				golden := fmt.Sprint(p, ".", ext)
				if refreshThis {
					rewrite(t, golden, results[i])
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading golden file %q: %v", golden, err)
					continue
				}
				if diff := testutil.Diff(string(want), results[i]); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", golden, colorize(diff))
				}
			}
		})
	}
}

// rewrite replaces a golden file with the output just produced,
// removing it outright when the output is empty.
func rewrite(t *testing.T, golden, content string) {
	if content == "" {
		if err := os.Remove(golden); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting golden file %q: %v", golden, err)
		}
		return
	}
	if err := os.WriteFile(golden, []byte(content), 0660); err != nil {
		t.Errorf("corpora: error while writing golden file %q: %v", golden, err)
	}
}

// colorize highlights added and removed lines of a unified diff.
func colorize(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		if strings.HasPrefix(s, "+") {
			lines[i] = "\033[1;92m" + s + "\033[0m"
		} else if strings.HasPrefix(s, "-") {
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
