package timecode

import (
	"math"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// Drop-frame timecode skips frame numbers at the top of every minute that is
// not a multiple of ten, so displayed timecode tracks wall-clock time at NTSC
// rates. See Andrew Duncan's classic derivation of the adjustment math.
//
// Both converters are pure functions of the rate and are no-ops for non-drop
// rates.

// dropRate returns the number of frame numbers skipped per dropping minute:
// 2 at timebase 30, 4 at 60, and so on.
func dropRate(timebase int64) int64 {
	return int64(math.Round(float64(timebase) * 0.066666))
}

// dfParseAdjustment converts parsed HH:MM:SS:FF fields to the offset that
// turns the raw field arithmetic into a true frame count. It validates that
// the frame field is not one of the skipped numbers.
func dfParseAdjustment(r rate.Framerate, s Sections) (int64, error) {
	if r.NTSC() != rate.NTSCDrop {
		return 0, nil
	}
	drop := dropRate(r.Timebase())
	if s.Seconds == 0 && s.Minutes%10 != 0 && s.Frames < drop {
		return 0, vtcerr.Newf(
			vtcerr.KindBadDropFrames,
			"frame %d does not exist at minute %d: drop-frame skips frames 0-%d on non-tenth minutes",
			s.Frames, s.Minutes, drop-1,
		)
	}
	totalMinutes := 60*s.Hours + s.Minutes
	return -(drop * (totalMinutes - totalMinutes/10)), nil
}

// dfFormatAdjustment converts an absolute frame count to the display offset
// added back before splitting into HH:MM:SS:FF fields. frameNumber must be
// non-negative; the caller formats the sign separately.
//
// The skip pattern repeats exactly every ten minutes, so the adjustment is
// linear in whole 10-minute blocks and extends past 24 hours without
// wrapping.
func dfFormatAdjustment(r rate.Framerate, frameNumber int64) int64 {
	if r.NTSC() != rate.NTSCDrop {
		return 0
	}
	fps := r.Playback().Float64()
	dropped := int64(math.Round(fps * 0.066666))
	framesPer10Min := int64(math.Round(fps * 600))
	framesPerMin := int64(math.Round(fps))*60 - dropped

	tens := frameNumber / framesPer10Min
	remainder := frameNumber % framesPer10Min

	adjustment := dropped * 9 * tens
	if remainder > dropped {
		adjustment += dropped * ((remainder - dropped) / framesPerMin)
	}
	return adjustment
}

// maxFrames is the frame count of one 24-hour day at the given rate, the
// upper bound for valid drop-frame timecode.
func maxFrames(r rate.Framerate) int64 {
	return int64(math.Round(r.Playback().Float64()*3600)) * 24
}
