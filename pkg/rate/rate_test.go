package rate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

func TestNew(t *testing.T) {
	t.Run("whole rate", func(t *testing.T) {
		f, err := New(rational.FromInt(24), NTSCNone)
		require.NoError(t, err)
		assert.Equal(t, "24/1", f.Playback().String())
		assert.Equal(t, int64(24), f.Timebase())
		assert.False(t, f.IsNTSC())
	})

	t.Run("canonical NTSC rate", func(t *testing.T) {
		f, err := New(rational.MustNew(24000, 1001), NTSCNonDrop)
		require.NoError(t, err)
		assert.Equal(t, int64(24), f.Timebase())
		assert.True(t, f.IsNTSC())
		assert.Equal(t, NTSCNonDrop, f.NTSC())
	})

	t.Run("rejects non-positive rates", func(t *testing.T) {
		_, err := New(rational.FromInt(0), NTSCNone)
		assert.True(t, vtcerr.IsKind(err, vtcerr.KindNonPositive))

		_, err = New(rational.FromInt(-24), NTSCNone)
		assert.True(t, vtcerr.IsKind(err, vtcerr.KindNonPositive))
	})

	t.Run("rejects invalid NTSC rates", func(t *testing.T) {
		_, err := New(rational.FromInt(24), NTSCNonDrop)
		assert.True(t, vtcerr.IsKind(err, vtcerr.KindInvalidNtscRate))

		_, err = New(rational.MustNew(25000, 1001), NTSCNonDrop)
		assert.True(t, vtcerr.IsKind(err, vtcerr.KindInvalidNtscRate))
	})

	t.Run("drop-frame requires a multiple-of-30 timebase", func(t *testing.T) {
		_, err := New(rational.MustNew(30000, 1001), NTSCDrop)
		require.NoError(t, err)

		_, err = New(rational.MustNew(60000, 1001), NTSCDrop)
		require.NoError(t, err)

		_, err = New(rational.MustNew(24000, 1001), NTSCDrop)
		assert.True(t, vtcerr.IsKind(err, vtcerr.KindBadDropRate))
	})
}

func TestNewSMPTE(t *testing.T) {
	_, err := NewSMPTE(rational.FromInt(24), NTSCNone)
	require.NoError(t, err)

	_, err = NewSMPTE(rational.MustNew(24000, 1001), NTSCNonDrop)
	require.NoError(t, err)

	_, err = NewSMPTE(rational.MustNew(3, 2), NTSCNone)
	assert.True(t, vtcerr.IsKind(err, vtcerr.KindInvalidSmpteValue))
}

func TestCoerce(t *testing.T) {
	t.Run("snaps a timebase to the canonical NTSC rational", func(t *testing.T) {
		f, err := Coerce(rational.FromInt(24), NTSCNonDrop)
		require.NoError(t, err)
		assert.True(t, f.Playback().Eq(rational.MustNew(24000, 1001)))
	})

	t.Run("coercion requires NTSC", func(t *testing.T) {
		_, err := Coerce(rational.FromInt(24), NTSCNone)
		assert.True(t, vtcerr.IsKind(err, vtcerr.KindCoerceRequiresNtsc))
	})
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		ntsc     NTSC
		want     string
		wantKind vtcerr.Kind
	}{
		{name: "23.98 coerces", value: 23.98, ntsc: NTSCNonDrop, want: "24000/1001"},
		{name: "23.976 coerces", value: 23.976, ntsc: NTSCNonDrop, want: "24000/1001"},
		{name: "29.97 drop coerces", value: 29.97, ntsc: NTSCDrop, want: "30000/1001"},
		{name: "59.94 coerces", value: 59.94, ntsc: NTSCNonDrop, want: "60000/1001"},
		{name: "whole timebase coerces", value: 24, ntsc: NTSCNonDrop, want: "24000/1001"},
		{name: "whole float without ntsc", value: 24, ntsc: NTSCNone, want: "24/1"},
		{name: "fractional float without ntsc", value: 23.98, ntsc: NTSCNone, wantKind: vtcerr.KindImpreciseFloat},
		{name: "ambiguous float", value: 23.5, ntsc: NTSCNonDrop, wantKind: vtcerr.KindImpreciseFloat},
		{name: "zero", value: 0, ntsc: NTSCNone, wantKind: vtcerr.KindNonPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromFloat(tt.value, tt.ntsc)
			if tt.wantKind != "" {
				assert.True(t, vtcerr.IsKind(err, tt.wantKind), "got err: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Playback().String())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		ntsc NTSC
		want Framerate
	}{
		{"24", NTSCNone, F24},
		{"24000/1001", NTSCNonDrop, F23_98},
		{"23.98", NTSCNonDrop, F23_98},
		{"30000/1001", NTSCDrop, F29_97Df},
		{"29.97", NTSCDrop, F29_97Df},
		{"30", NTSCDrop, F29_97Df},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := Parse(tt.in, tt.ntsc)
			require.NoError(t, err)
			assert.True(t, f.Eq(tt.want), "got %s want %s", f, tt.want)
		})
	}

	_, err := Parse("not a rate", NTSCNone)
	assert.True(t, vtcerr.IsKind(err, vtcerr.KindUnrecognizedFormat))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[24]", F24.String())
	assert.Equal(t, "[23.98 NTSC NDF]", F23_98.String())
	assert.Equal(t, "[29.97 NTSC DF]", F29_97Df.String())
	assert.Equal(t, "[59.94 NTSC NDF]", F59_94Ndf.String())
}

func TestConsts(t *testing.T) {
	assert.Equal(t, int64(24), F23_98.Timebase())
	assert.Equal(t, int64(30), F29_97Df.Timebase())
	assert.Equal(t, int64(60), F59_94Df.Timebase())
	assert.Equal(t, int64(48), F47_95.Timebase())
	assert.True(t, F29_97Ndf.Playback().Eq(F29_97Df.Playback()))
	assert.False(t, F29_97Ndf.Eq(F29_97Df))
}
