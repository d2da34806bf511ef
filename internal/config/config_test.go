package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vtc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "24", cfg.Defaults.Rate)
	assert.Equal(t, "closest", cfg.Defaults.Rounding)
	assert.Equal(t, 9, cfg.Defaults.RuntimePrecision)
	assert.Equal(t, "table", cfg.Output.Style)

	assert.True(t, cfg.DefaultRate().Eq(rate.F24))
	assert.Equal(t, rational.RoundClosest, cfg.DefaultRounding())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
defaults:
  rate: "29.97 df"
  rounding: floor
  runtime_precision: 3
output:
  style: plain
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.DefaultRate().Eq(rate.F29_97Df))
	assert.Equal(t, rational.RoundFloor, cfg.DefaultRounding())
	assert.Equal(t, 3, cfg.Defaults.RuntimePrecision)
	assert.Equal(t, "plain", cfg.Output.Style)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "logging:\n  level: loud\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"bad rate", "defaults:\n  rate: \"23.5\"\n"},
		{"bad rounding", "defaults:\n  rounding: nearest\n"},
		{"negative precision", "defaults:\n  runtime_precision: -1\n"},
		{"bad output style", "output:\n  style: fancy\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want rate.Framerate
	}{
		{"24", rate.F24},
		{"24000/1001", mustNewRate(t, 24000, 1001, rate.NTSCNone)},
		{"23.98", rate.F23_98},
		{"23.976", rate.F23_98},
		{"29.97 df", rate.F29_97Df},
		{"29.97df", rate.F29_97Df},
		{"59.94 ndf", rate.F59_94Ndf},
		{"30 df", rate.F29_97Df},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRate(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Eq(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, in := range []string{"", "fast", "24 dnf", "23.5"} {
			_, err := ParseRate(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func mustNewRate(t *testing.T, num, den int64, ntsc rate.NTSC) rate.Framerate {
	t.Helper()
	r, err := rate.New(rational.MustNew(num, den), ntsc)
	require.NoError(t, err)
	return r
}
