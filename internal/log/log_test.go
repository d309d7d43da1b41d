package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := New(&buf, Options{Level: "info", Format: "text"})
	require.NoError(t, err)
	defer closeFn()

	l.Debug("hidden")
	l.Info("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=1")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer closeFn()

	l.Debug("computed", slog.Int("paths", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "computed", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 3, rec["paths"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounds.log")
	var console bytes.Buffer
	l, closeFn, err := New(&console, Options{Level: "info", File: path})
	require.NoError(t, err)

	l.With("component", "test").Info("to both")
	require.NoError(t, closeFn())

	assert.Contains(t, console.String(), "to both")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "to both", rec["msg"])
	assert.Equal(t, "test", rec["component"])
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "warn", d.Level)
	assert.Equal(t, "text", d.Format)
	assert.Positive(t, d.MaxSizeMB)
}
