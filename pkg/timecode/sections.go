package timecode

import (
	"github.com/opencinemac/vtc-go/pkg/rational"
)

// Sections holds the display fields of an SMPTE timecode. Field values are
// non-negative; the sign is carried separately so "-01:00:00:00" decomposes
// cleanly.
type Sections struct {
	Negative bool
	Hours    int64
	Minutes  int64
	Seconds  int64
	Frames   int64
}

// Sections splits the stamp into SMPTE display fields, applying the
// drop-frame display adjustment when the rate calls for it.
func (f Framestamp) Sections(mode rational.RoundMode) (Sections, error) {
	framesBig, err := f.Frames(mode)
	if err != nil {
		return Sections{}, err
	}
	negative := framesBig.Sign() < 0
	frames := framesBig.Int64()
	if negative {
		frames = -frames
	}
	frames += dfFormatAdjustment(f.rate, frames)

	timebase := f.rate.Timebase()
	framesPerMinute := timebase * 60
	framesPerHour := framesPerMinute * 60

	return Sections{
		Negative: negative,
		Hours:    frames / framesPerHour,
		Minutes:  (frames % framesPerHour) / framesPerMinute,
		Seconds:  (frames % framesPerMinute) / timebase,
		Frames:   frames % timebase,
	}, nil
}
