package timecode

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
)

// DefaultRuntimePrecision is the fractional-second precision used when the
// caller does not request one.
const DefaultRuntimePrecision = 9

// Timecode renders the stamp as SMPTE timecode, with a ';' frame separator
// for drop-frame rates. Frames are rounded to the nearest whole frame.
func (f Framestamp) Timecode() string {
	// RoundClosest cannot fail.
	sec, _ := f.Sections(rational.RoundClosest)
	sign := ""
	if sec.Negative {
		sign = "-"
	}
	frameSep := ":"
	if f.rate.NTSC() == rate.NTSCDrop {
		frameSep = ";"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d%s%02d", sign, sec.Hours, sec.Minutes, sec.Seconds, frameSep, sec.Frames)
}

// FeetAndFrames renders the stamp as 35mm footage, 16 frames per foot, with
// a 2-digit zero-padded frame field.
func (f Framestamp) FeetAndFrames() string {
	frames := f.mustFrames()
	sign := ""
	if frames.Sign() < 0 {
		sign = "-"
		frames = new(big.Int).Neg(frames)
	}
	feet, leftover := new(big.Int).QuoRem(frames, big.NewInt(framesPerFoot), new(big.Int))
	return fmt.Sprintf("%s%s+%02d", sign, feet, leftover.Int64())
}

// Runtime renders the stamp's true wall-clock duration as
// [-]HH:MM:SS[.fraction], rounded to precision fractional digits with
// trailing zeros trimmed. A precision below 1 uses DefaultRuntimePrecision.
//
// At NTSC rates the runtime drifts from the timecode fields: frame 86400 at
// 23.98 NTSC is timecode "01:00:00:00" but runtime "01:00:03.6".
func (f Framestamp) Runtime(precision int) string {
	if precision < 1 {
		precision = DefaultRuntimePrecision
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	scaled, _ := f.seconds.Abs().Mul(rational.FromBigInt(scale)).Round(rational.RoundClosest)

	whole, frac := new(big.Int).QuoRem(scaled, scale, new(big.Int))
	sign := ""
	if f.seconds.Sign() < 0 && scaled.Sign() != 0 {
		sign = "-"
	}

	totalSeconds := whole.Int64()
	fraction := strings.TrimRight(
		fmt.Sprintf("%0*d", precision, frac.Int64()),
		"0",
	)
	if fraction != "" {
		fraction = "." + fraction
	}
	return fmt.Sprintf(
		"%s%02d:%02d:%02d%s",
		sign, totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60, fraction,
	)
}

// PremiereTicks converts the stamp to Adobe Premiere's tick unit using the
// given rounding mode.
func (f Framestamp) PremiereTicks(mode rational.RoundMode) (*big.Int, error) {
	return f.seconds.Mul(rational.FromInt(PremiereTicksPerSecond)).Round(mode)
}
