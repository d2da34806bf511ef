// Package timecode implements absolute timeline positions (framestamps) and
// time ranges bound to a frame rate, with parsing and formatting for SMPTE
// timecode, runtime, feet+frames and editor tick representations.
package timecode

import (
	"fmt"
	"math/big"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// PremiereTicksPerSecond is Adobe Premiere Pro's fixed tick rate.
const PremiereTicksPerSecond int64 = 254_016_000_000

// Framestamp is an exact position on a timeline: real-world seconds as an
// exact rational, plus the frame rate the position was created at. Stamps may
// be negative, and intermediate results of arithmetic may sit between frame
// boundaries; callers pick a rounding mode when converting back to frames.
type Framestamp struct {
	seconds rational.Rational
	rate    rate.Framerate
}

// RatePolicy controls how two-stamp arithmetic treats mismatched rates.
type RatePolicy int

const (
	// RateMustMatch fails mixed-rate operations with MixedRateArithmetic.
	RateMustMatch RatePolicy = iota
	// InheritLeft performs the operation in seconds and keeps the left
	// operand's rate.
	InheritLeft
	// InheritRight performs the operation in seconds and keeps the right
	// operand's rate.
	InheritRight
)

// FromFrames creates a stamp from a whole frame count.
func FromFrames(frames int64, r rate.Framerate) Framestamp {
	return fromFrameCount(big.NewInt(frames), r)
}

func fromFrameCount(frames *big.Int, r rate.Framerate) Framestamp {
	seconds, err := rational.FromBigInt(frames).Div(r.Playback())
	if err != nil {
		// Framerate construction guarantees a positive playback rate.
		panic(err)
	}
	return Framestamp{seconds: seconds, rate: r}
}

// FromSeconds creates a stamp from exact seconds, rounding to the nearest
// whole-frame boundary per mode. RoundOff fails with PartialFrame when the
// seconds do not land exactly on a frame.
func FromSeconds(seconds rational.Rational, r rate.Framerate, mode rational.RoundMode) (Framestamp, error) {
	frames := seconds.Mul(r.Playback())
	rounded, err := frames.Round(mode)
	if err != nil {
		return Framestamp{}, err
	}
	return fromFrameCount(rounded, r), nil
}

// FromPremiereTicks creates a stamp from an Adobe Premiere tick count,
// rounded to a whole frame per mode.
func FromPremiereTicks(ticks int64, r rate.Framerate, mode rational.RoundMode) (Framestamp, error) {
	seconds, err := rational.FromInt(ticks).Div(rational.FromInt(PremiereTicksPerSecond))
	if err != nil {
		panic(err)
	}
	return FromSeconds(seconds, r, mode)
}

// Seconds returns the exact seconds value.
func (f Framestamp) Seconds() rational.Rational {
	return f.seconds
}

// Rate returns the rate the stamp is bound to.
func (f Framestamp) Rate() rate.Framerate {
	return f.rate
}

// Frames converts the stamp back to an integer frame count using the given
// rounding mode.
func (f Framestamp) Frames(mode rational.RoundMode) (*big.Int, error) {
	return f.seconds.Mul(f.rate.Playback()).Round(mode)
}

// mustFrames is Frames(RoundClosest), which cannot fail.
func (f Framestamp) mustFrames() *big.Int {
	frames, err := f.Frames(rational.RoundClosest)
	if err != nil {
		panic(err)
	}
	return frames
}

// Add returns f + other. Rates must match unless policy inherits one side, in
// which case the sum is taken in seconds and adopts the named side's rate.
func (f Framestamp) Add(other Framestamp, policy RatePolicy) (Framestamp, error) {
	return f.arith(other, policy, "add", func(a, b rational.Rational) rational.Rational {
		return a.Add(b)
	})
}

// Sub returns f - other under the same rate policy as Add.
func (f Framestamp) Sub(other Framestamp, policy RatePolicy) (Framestamp, error) {
	return f.arith(other, policy, "sub", func(a, b rational.Rational) rational.Rational {
		return a.Sub(b)
	})
}

func (f Framestamp) arith(
	other Framestamp,
	policy RatePolicy,
	op string,
	fn func(a, b rational.Rational) rational.Rational,
) (Framestamp, error) {
	outRate := f.rate
	if !f.rate.Eq(other.rate) {
		switch policy {
		case InheritLeft:
			outRate = f.rate
		case InheritRight:
			outRate = other.rate
		default:
			return Framestamp{}, vtcerr.Newf(
				vtcerr.KindMixedRateArithmetic,
				"cannot %s stamps with mismatched rates %s and %s", op, f.rate, other.rate,
			).WithDetails(map[string]interface{}{
				"operation": op,
				"left":      f.rate.String(),
				"right":     other.rate.String(),
			})
		}
	}
	return Framestamp{seconds: fn(f.seconds, other.seconds), rate: outRate}, nil
}

// Mul scales the stamp by a rational scalar. The result is exact and may sit
// between frame boundaries.
func (f Framestamp) Mul(scalar rational.Rational) Framestamp {
	return Framestamp{seconds: f.seconds.Mul(scalar), rate: f.rate}
}

// Div divides the stamp by a rational scalar.
func (f Framestamp) Div(scalar rational.Rational) (Framestamp, error) {
	seconds, err := f.seconds.Div(scalar)
	if err != nil {
		return Framestamp{}, err
	}
	return Framestamp{seconds: seconds, rate: f.rate}, nil
}

// DivRem divides the stamp's frame count by a scalar, returning a
// whole-frame quotient stamp (truncated toward zero) and the remainder stamp.
func (f Framestamp) DivRem(divisor rational.Rational) (Framestamp, Framestamp, error) {
	frames := f.seconds.Mul(f.rate.Playback())
	quo, rem, err := frames.DivRem(divisor)
	if err != nil {
		return Framestamp{}, Framestamp{}, err
	}
	return f.withFrameValue(quo), f.withFrameValue(rem), nil
}

// Rem returns the remainder of dividing the stamp's frame count by a scalar,
// with the sign semantics of rational.Rem.
func (f Framestamp) Rem(divisor rational.Rational) (Framestamp, error) {
	frames := f.seconds.Mul(f.rate.Playback())
	rem, err := frames.Rem(divisor)
	if err != nil {
		return Framestamp{}, err
	}
	return f.withFrameValue(rem), nil
}

// withFrameValue builds a stamp whose position is the given (possibly
// fractional) frame value at f's rate.
func (f Framestamp) withFrameValue(frames rational.Rational) Framestamp {
	seconds, err := frames.Div(f.rate.Playback())
	if err != nil {
		panic(err)
	}
	return Framestamp{seconds: seconds, rate: f.rate}
}

// Neg returns the stamp mirrored around zero.
func (f Framestamp) Neg() Framestamp {
	return Framestamp{seconds: f.seconds.Neg(), rate: f.rate}
}

// Abs returns the stamp's distance from zero.
func (f Framestamp) Abs() Framestamp {
	return Framestamp{seconds: f.seconds.Abs(), rate: f.rate}
}

// Cmp orders stamps by their real-world seconds, regardless of rate.
func (f Framestamp) Cmp(other Framestamp) int {
	return f.seconds.Cmp(other.seconds)
}

// Eq reports whether two stamps have the same position and rate.
func (f Framestamp) Eq(other Framestamp) bool {
	return f.rate.Eq(other.rate) && f.seconds.Eq(other.seconds)
}

// Rebase reinterprets the stamp's frame count at a new rate: frame 86400 at
// 24fps becomes frame 86400 at 48fps. Rebasing back to the original rate
// returns the original stamp exactly.
func (f Framestamp) Rebase(newRate rate.Framerate) Framestamp {
	return fromFrameCount(f.mustFrames(), newRate)
}

// SMPTEWrapTOD wraps the stamp into the 24-hour time-of-day window SMPTE
// timecode addresses. Only NTSC and whole-frame rates have a defined 24-hour
// frame count; other rates fail with InvalidSmpteValue.
func (f Framestamp) SMPTEWrapTOD() (Framestamp, error) {
	if !f.rate.IsNTSC() && !f.rate.Playback().IsInt() {
		return Framestamp{}, vtcerr.Newf(
			vtcerr.KindInvalidSmpteValue,
			"cannot wrap at rate %s: time-of-day wrapping requires an NTSC or whole-frame rate", f.rate,
		)
	}
	perDay := big.NewInt(maxFrames(f.rate))
	// big.Int.Mod is Euclidean, so negative stamps land in [0, perDay).
	wrapped := new(big.Int).Mod(f.mustFrames(), perDay)
	return fromFrameCount(wrapped, f.rate), nil
}

// String renders the stamp as SMPTE timecode tagged with its rate.
func (f Framestamp) String() string {
	return fmt.Sprintf("%s @ %s", f.Timecode(), f.rate)
}
