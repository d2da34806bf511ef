package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "vtc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0o644))

	root := newRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--config", cfgPath, "--style", "plain"}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestParseCommand(t *testing.T) {
	t.Run("timecode", func(t *testing.T) {
		out, err := runCommand(t, "parse", "01:00:00:00", "--rate", "23.98")
		require.NoError(t, err)
		assert.Contains(t, out, "Timecode\t01:00:00:00")
		assert.Contains(t, out, "Frames\t86400")
		assert.Contains(t, out, "Seconds\t18018/5")
		assert.Contains(t, out, "Runtime\t01:00:03.6")
		assert.Contains(t, out, "Feet+Frames\t5400+00")
		assert.Contains(t, out, "Rate\t23.98 NTSC NDF")
	})

	t.Run("runtime input", func(t *testing.T) {
		out, err := runCommand(t, "parse", "01:00:03.6", "--rate", "23.98", "--runtime")
		require.NoError(t, err)
		assert.Contains(t, out, "Timecode\t01:00:00:00")
	})

	t.Run("feet and frames input", func(t *testing.T) {
		out, err := runCommand(t, "parse", "1+08", "--rate", "24")
		require.NoError(t, err)
		assert.Contains(t, out, "Frames\t24")
	})

	t.Run("unparseable input fails", func(t *testing.T) {
		_, err := runCommand(t, "parse", "not-a-timecode")
		assert.Error(t, err)
	})
}

func TestRebaseCommand(t *testing.T) {
	out, err := runCommand(t, "rebase", "01:00:00:00", "--rate", "24", "--to", "48")
	require.NoError(t, err)
	assert.Contains(t, out, "Timecode\t00:30:00:00")
	assert.Contains(t, out, "Frames\t86400")

	_, err = runCommand(t, "rebase", "01:00:00:00", "--to", "fast")
	assert.Error(t, err)
}

func TestCalcCommand(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		out, err := runCommand(t, "calc", "01:00:00:00", "+", "00:30:00:00", "--rate", "24")
		require.NoError(t, err)
		assert.Contains(t, out, "Timecode\t01:30:00:00")
	})

	t.Run("subtract below zero", func(t *testing.T) {
		out, err := runCommand(t, "calc", "00:00:00:00", "-", "00:00:00:01", "--rate", "24")
		require.NoError(t, err)
		assert.Contains(t, out, "Timecode\t-00:00:00:01")
	})

	t.Run("mixed grammars", func(t *testing.T) {
		out, err := runCommand(t, "calc", "5400+00", "+", "1", "--rate", "24")
		require.NoError(t, err)
		assert.Contains(t, out, "Timecode\t01:00:00:01")
	})

	t.Run("bad operator", func(t *testing.T) {
		_, err := runCommand(t, "calc", "01:00:00:00", "*", "2")
		assert.Error(t, err)
	})

	t.Run("bad inherit value", func(t *testing.T) {
		_, err := runCommand(t, "calc", "01:00:00:00", "+", "00:00:00:01", "--inherit", "both")
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vtc")
}
