package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestPathCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected []string
	}{
		{
			name:     "quadratic",
			args:     []string{"path", "M0 0 Q2 2 4 0"},
			expected: []string{"path1\tleft=0 right=4 bottom=0 top=1"},
		},
		{
			name: "two paths",
			args: []string{"path", "M1 0 A1 1 0 0 1 0 1", "M0 0 L3 -2"},
			expected: []string{
				"path1\tleft=0 right=1 bottom=0 top=1",
				"path2\tleft=0 right=3 bottom=-2 top=0",
			},
		},
		{
			name:     "translated",
			args:     []string{"path", "--transform", "translate(10 0)", "M0 0 Q2 2 4 0"},
			expected: []string{"path1\tleft=10 right=14 bottom=0 top=1"},
		},
		{
			name:     "first subpath only",
			args:     []string{"path", "--first-subpath", "M0 0 L1 1 Z M5 5 L6 6"},
			expected: []string{"path1\tleft=0 right=1 bottom=0 top=1"},
		},
		{
			name:  "stdin",
			args:  []string{"path"},
			stdin: "M0 0 L1 1\n\nM0 0 L2 2\n",
			expected: []string{
				"path1\tleft=0 right=1 bottom=0 top=1",
				"path2\tleft=0 right=2 bottom=0 top=2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.expected {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPathCommand_Failures(t *testing.T) {
	out, _, err := run(t, "", "path", "M0 0 L1 1", "L1 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 paths failed")
	assert.Contains(t, out, "path1\tleft=0 right=1")
	assert.Contains(t, out, "path2\terror:")

	_, _, err = run(t, "", "path")
	assert.EqualError(t, err, "no path data given")

	_, _, err = run(t, "", "path", "--transform", "spin(3)", "M0 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--transform")

	_, _, err = run(t, "", "path", "--format", "xml", "M0 0")
	assert.EqualError(t, err, `--format: unknown format "xml"`)
}

func TestOutputFormats(t *testing.T) {
	want := record{Name: "path1", Left: 0, Right: 4, Bottom: 0, Top: 1}

	out, _, err := run(t, "", "path", "--format", "json", "M0 0 Q2 2 4 0")
	require.NoError(t, err)
	var fromJSON []record
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, []record{want}, fromJSON)

	out, _, err = run(t, "", "path", "-f", "yaml", "M0 0 Q2 2 4 0")
	require.NoError(t, err)
	var fromYAML []record
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, []record{want}, fromYAML)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
paths:
  - name: hump
    d: M0 0 Q2 2 4 0
  - name: broken
    d: Q1 1 2 2
  - name: quarter
    d: M1 0 A1 1 0 0 1 0 1
    transform: translate(10 0)
`), 0o600))

	out, _, err := run(t, "", "batch", "--workers", "3", "--transform", "translate(0 5)", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 paths failed")
	assert.Contains(t, out, "hump\tleft=0 right=4 bottom=5 top=6")
	assert.Contains(t, out, "broken\terror:")
	assert.Contains(t, out, "quarter\tleft=10 right=11 bottom=5 top=6")

	_, _, err = run(t, "", "batch", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, _, err = run(t, "", "batch")
	assert.Error(t, err)
}

func TestGlyphCommand(t *testing.T) {
	for _, engine := range []string{"sfnt", "gotext"} {
		t.Run(engine, func(t *testing.T) {
			out, _, err := run(t, "", "glyph", "--engine", engine, "--size", "32", "-f", "json", "Hi")
			require.NoError(t, err)
			var recs []record
			require.NoError(t, json.Unmarshal([]byte(out), &recs))
			require.Len(t, recs, 2)
			for _, r := range recs {
				assert.Empty(t, r.Error, r.Name)
				assert.Less(t, r.Left, r.Right, r.Name)
				assert.Less(t, r.Bottom, r.Top, r.Name)
			}
			assert.Equal(t, "H", recs[0].Name)
		})
	}

	out, _, err := run(t, "", "glyph", "--engine", "gotext", "--line", "-f", "json", "Hi")
	require.NoError(t, err)
	var recs []record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "Hi", recs[0].Name)

	_, _, err = run(t, "", "glyph", "--line", "Hi")
	assert.EqualError(t, err, "--line needs --engine gotext")

	_, _, err = run(t, "", "glyph", "--engine", "cairo", "Hi")
	assert.Error(t, err)
}

func TestLogging(t *testing.T) {
	_, errOut, err := run(t, "", "path", "--log-level", "debug", "M0 0 L1 1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "svgpath: parsed path")

	_, errOut, err = run(t, "", "path", "M0 0 L1 1")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, _, err = run(t, "", "path", "--log-level", "loud", "M0 0")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathbounds version")
}
