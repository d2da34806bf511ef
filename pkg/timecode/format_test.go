package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
)

func TestTimecodeFormat(t *testing.T) {
	tests := []struct {
		name   string
		frames int64
		rate   rate.Framerate
		want   string
	}{
		{"zero", 0, rate.F24, "00:00:00:00"},
		{"one hour", 86400, rate.F24, "01:00:00:00"},
		{"ntsc uses the timebase for fields", 86400, rate.F23_98, "01:00:00:00"},
		{"negative", -86400, rate.F24, "-01:00:00:00"},
		{"drop frame separator", 107892, rate.F29_97Df, "01:00:00;00"},
		{"hours widen past 99", 8640000, rate.F24, "100:00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFrames(tt.frames, tt.rate).Timecode())
		})
	}
}

func TestRuntimeFormat(t *testing.T) {
	tests := []struct {
		name      string
		frames    int64
		rate      rate.Framerate
		precision int
		want      string
	}{
		{"whole rate runtime matches timecode", 86400, rate.F24, 9, "01:00:00"},
		{"ntsc runtime drifts from timecode", 86400, rate.F23_98, 9, "01:00:03.6"},
		{"trailing zeros trimmed", 12, rate.F24, 9, "00:00:00.5"},
		{"precision truncates with rounding", 1, rate.F23_98, 3, "00:00:00.042"},
		{"default precision", 1, rate.F24, 0, "00:00:00.041666667"},
		{"negative runtime", -86400, rate.F24, 9, "-01:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFrames(tt.frames, tt.rate).Runtime(tt.precision))
		})
	}
}

func TestFeetAndFramesFormat(t *testing.T) {
	assert.Equal(t, "0+00", FromFrames(0, rate.F24).FeetAndFrames())
	assert.Equal(t, "1+08", FromFrames(24, rate.F24).FeetAndFrames())
	assert.Equal(t, "5400+00", FromFrames(86400, rate.F23_98).FeetAndFrames())
	assert.Equal(t, "-1+08", FromFrames(-24, rate.F24).FeetAndFrames())
}

func TestPremiereTicks(t *testing.T) {
	stamp := FromFrames(1, rate.F24)
	ticks, err := stamp.PremiereTicks(rational.RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, int64(10_584_000_000), ticks.Int64())

	rebuilt, err := FromPremiereTicks(ticks.Int64(), rate.F24, rational.RoundClosest)
	require.NoError(t, err)
	assert.True(t, rebuilt.Eq(stamp))
}

func TestStampString(t *testing.T) {
	assert.Equal(t, "01:00:00:00 @ [23.98 NTSC NDF]", FromFrames(86400, rate.F23_98).String())
}
