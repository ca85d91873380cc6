// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/FengLee1113/sentry/internal/cli/output"
)

// GroupingInfoJSON is a grouping info payload with a contributing system
// variant and a non-contributing app variant.
const GroupingInfoJSON = `{
  "system": {
    "type": "component",
    "description": "exception stack-trace",
    "hash": "3f1c2b9a8d7e6f5a4b3c2d1e0f9a8b7c",
    "contributes": true,
    "config": {"id": "newstyle:2019-10-29"},
    "component": {
      "id": "system", "contributes": true, "values": [
        {"id": "exception", "contributes": true, "values": [
          {"id": "stacktrace", "name": "stack-trace", "contributes": true, "values": [
            {"id": "frame", "contributes": true, "values": [
              {"id": "module", "contributes": true, "values": ["app.views"]},
              {"id": "function", "contributes": true, "values": ["index"]},
              {"id": "lineno", "contributes": false, "hint": "function name is used instead", "values": [17]},
              {"id": "context-line", "contributes": false, "values": []}
            ]}
          ]},
          {"id": "type", "contributes": true, "values": ["KeyError"]},
          {"id": "value", "contributes": false, "hint": "stacktrace takes precedence", "values": ["'user_id'"]}
        ]}
      ]
    }
  },
  "app": {
    "type": "component",
    "description": "in-app exception stack-trace",
    "contributes": false,
    "hint": "none of the frames are in-app",
    "config": {"id": "newstyle:2019-10-29"},
    "component": {"id": "app", "contributes": false, "hint": "none of the frames are in-app", "values": []}
  }
}`

// RulesYAML is a scrubbing rules file with two rules.
const RulesYAML = `rules:
  - id: "1"
    method: mask
    type: creditcard
    source: $message
  - id: "2"
    method: remove
    type: ip
    source: $user.ip_address
`

// SetupTestProject creates a temporary directory with a grouping info file
// and a rules file. It returns the directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	files := map[string]string{
		"grouping.json": GroupingInfoJSON,
		"rules.yaml":    RulesYAML,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(body), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
