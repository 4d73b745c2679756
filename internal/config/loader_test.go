package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"stroke-compiler/internal/output"
)

func TestParse(t *testing.T) {
	yaml := `
input: download/kanji
output: res/raw/stroke_data.json
workers: 4
collect_all: true
ascii: true
indent: 0
log_level: debug
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "download/kanji", c.Input)
	assert.Equal(t, "res/raw/stroke_data.json", c.Output)
	assert.Equal(t, 4, c.Workers)
	assert.True(t, c.CollectAll)
	assert.True(t, c.EscapeASCII())
	assert.Equal(t, 0, c.IndentWidth())

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("input: in\noutput: out.json\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultWorkers, c.Workers)
	assert.Equal(t, output.DefaultFormat(), c.Format())
	assert.Equal(t, 2, c.IndentWidth())
	assert.True(t, c.EscapeASCII())
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
	assert.False(t, c.CollectAll)
	assert.NoError(t, c.Validate())
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("input: [unterminated"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	indent := -1
	c := &Config{Workers: -2, Indent: &indent, LogLevel: "loud"}

	err := c.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "input directory is required")
	assert.Contains(t, msg, "output file is required")
	assert.Contains(t, msg, "workers must be at least 1")
	assert.Contains(t, msg, "indent must not be negative")
	assert.Contains(t, msg, "log_level")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strokes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: a\noutput: b\nworkers: 2\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseASCIIOff(t *testing.T) {
	c, err := Parse([]byte("input: in\noutput: out.json\nascii: false\n"))
	require.NoError(t, err)

	assert.False(t, c.EscapeASCII())
	assert.Equal(t, output.Format{Indent: 2, ASCII: false}, c.Format())
}
