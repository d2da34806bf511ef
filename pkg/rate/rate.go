// Package rate models playback frame rates, including the NTSC drop and
// non-drop families, on top of exact rational arithmetic.
package rate

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// NTSC classifies a rate's NTSC handling.
type NTSC int

const (
	// NTSCNone marks a rate with no NTSC adjustment.
	NTSCNone NTSC = iota
	// NTSCNonDrop marks an NTSC rate displayed with non-drop timecode.
	NTSCNonDrop
	// NTSCDrop marks an NTSC rate displayed with drop-frame timecode.
	NTSCDrop
)

// String implements fmt.Stringer using the canonical tag names.
func (n NTSC) String() string {
	switch n {
	case NTSCNonDrop:
		return "non_drop"
	case NTSCDrop:
		return "drop"
	}
	return "none"
}

// ntscBase is 30000/1001: every mathematically valid NTSC rate is a whole
// multiple of it.
var ntscBase = rational.MustNew(30000, 1001)

// Framerate is a validated, immutable playback rate.
type Framerate struct {
	playback rational.Rational
	ntsc     NTSC
}

// New creates a Framerate from an exact playback rate.
//
// The rate must be positive. NTSC rates must be whole multiples of
// 30000/1001, and drop-frame rates must additionally have a timebase that is
// a multiple of 30 (only the 30, 60, 90... frame families define a drop
// pattern).
func New(playback rational.Rational, ntsc NTSC) (Framerate, error) {
	if playback.Sign() <= 0 {
		return Framerate{}, vtcerr.Newf(vtcerr.KindNonPositive, "playback rate %s must be positive", playback)
	}
	if ntsc != NTSCNone {
		multiple, err := playback.Div(ntscBase)
		if err != nil {
			return Framerate{}, err
		}
		if !multiple.IsInt() {
			return Framerate{}, vtcerr.Newf(
				vtcerr.KindInvalidNtscRate,
				"NTSC rates must be multiples of 30000/1001, got %s", playback,
			)
		}
	}
	if ntsc == NTSCDrop {
		timebase, _ := playback.Round(rational.RoundClosest)
		if new(big.Int).Mod(timebase, big.NewInt(30)).Sign() != 0 {
			return Framerate{}, vtcerr.Newf(
				vtcerr.KindBadDropRate,
				"drop-frame is only defined for timebases that are multiples of 30, got %s", timebase,
			)
		}
	}
	return Framerate{playback: playback, ntsc: ntsc}, nil
}

// NewSMPTE creates a Framerate that must be representable as SMPTE timecode:
// either a whole-frame rate or an NTSC rate.
func NewSMPTE(playback rational.Rational, ntsc NTSC) (Framerate, error) {
	if ntsc == NTSCNone && !playback.IsInt() {
		return Framerate{}, vtcerr.Newf(
			vtcerr.KindInvalidSmpteValue,
			"%s is not a valid SMPTE rate: must be a whole number or NTSC", playback,
		)
	}
	return New(playback, ntsc)
}

// Coerce snaps an arbitrary positive value to the canonical NTSC rational of
// its family: timebase = round(value), playback = timebase * 1000/1001.
// Coercion without an NTSC classification is an error.
func Coerce(value rational.Rational, ntsc NTSC) (Framerate, error) {
	if ntsc == NTSCNone {
		return Framerate{}, vtcerr.New(vtcerr.KindCoerceRequiresNtsc, "NTSC coercion requires a drop or non-drop classification")
	}
	if value.Sign() <= 0 {
		return Framerate{}, vtcerr.Newf(vtcerr.KindNonPositive, "playback rate %s must be positive", value)
	}
	timebase, _ := value.Round(rational.RoundClosest)
	canonical := rational.FromBigInt(timebase).Mul(rational.MustNew(1000, 1001))
	return New(canonical, ntsc)
}

// FromInt creates a Framerate from a whole frame rate. With an NTSC
// classification the value is treated as a timebase and coerced, so
// FromInt(24, NTSCNonDrop) yields 24000/1001.
func FromInt(timebase int64, ntsc NTSC) (Framerate, error) {
	if ntsc == NTSCNone {
		return New(rational.FromInt(timebase), NTSCNone)
	}
	return Coerce(rational.FromInt(timebase), ntsc)
}

// FromFloat creates a Framerate from a float value.
//
// Floats cannot represent NTSC rates exactly, so with an NTSC classification
// the value is coerced to the canonical rational of its family and rejected
// with ImpreciseFloat when it does not unambiguously name one (neither a
// whole timebase nor a 2-decimal match like 23.98 or 29.97). Without NTSC,
// only whole-number floats are accepted.
func FromFloat(value float64, ntsc NTSC) (Framerate, error) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Framerate{}, vtcerr.Newf(vtcerr.KindNonPositive, "playback rate %v must be positive", value)
	}
	if ntsc == NTSCNone {
		if value != math.Trunc(value) {
			return Framerate{}, vtcerr.Newf(
				vtcerr.KindImpreciseFloat,
				"%v is not exact: pass a rational value or request NTSC coercion", value,
			)
		}
		return New(rational.FromInt(int64(value)), NTSCNone)
	}

	timebase := math.Round(value)
	canonical := timebase * 1000 / 1001
	matches := value == timebase ||
		math.Round(value*100) == math.Round(canonical*100) ||
		math.Round(value*1000) == math.Round(canonical*1000)
	if !matches {
		return Framerate{}, vtcerr.Newf(
			vtcerr.KindImpreciseFloat,
			"%v does not map unambiguously to an NTSC rate (nearest is %.3f)", value, canonical,
		)
	}
	return Coerce(rational.FromInt(int64(timebase)), ntsc)
}

// Parse reads a rate from its text forms: "24", "24000/1001", "23.98".
// Decimal forms follow FromFloat's coercion rules.
func Parse(s string, ntsc NTSC) (Framerate, error) {
	value, err := rational.Parse(strings.TrimSpace(s))
	if err != nil {
		return Framerate{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "cannot parse frame rate %q", s)
	}
	switch {
	case strings.Contains(s, "/"):
		return New(value, ntsc)
	case strings.Contains(s, "."):
		return FromFloat(value.Float64(), ntsc)
	case ntsc != NTSCNone:
		return Coerce(value, ntsc)
	default:
		return New(value, ntsc)
	}
}

// Playback returns the exact playback rate in frames per second.
func (f Framerate) Playback() rational.Rational {
	return f.playback
}

// Timebase returns the nearest whole-number nominal rate, e.g. 24 for 23.98
// NTSC. Formatting and drop-frame math run on the timebase.
func (f Framerate) Timebase() int64 {
	tb, _ := f.playback.Round(rational.RoundClosest)
	return tb.Int64()
}

// NTSC returns the rate's NTSC classification.
func (f Framerate) NTSC() NTSC {
	return f.ntsc
}

// IsNTSC reports whether the rate is an NTSC rate.
func (f Framerate) IsNTSC() bool {
	return f.ntsc != NTSCNone
}

// Eq reports whether two rates have the same playback value and NTSC
// classification.
func (f Framerate) Eq(other Framerate) bool {
	return f.ntsc == other.ntsc && f.playback.Eq(other.playback)
}

// String renders rates the way editorial tools label them: "[24]",
// "[23.98 NTSC NDF]", "[29.97 NTSC DF]".
func (f Framerate) String() string {
	if !f.IsNTSC() {
		if f.playback.IsInt() {
			return fmt.Sprintf("[%s]", f.playback.Num())
		}
		return fmt.Sprintf("[%s]", f.playback)
	}
	suffix := "NDF"
	if f.ntsc == NTSCDrop {
		suffix = "DF"
	}
	return fmt.Sprintf("[%.2f NTSC %s]", f.playback.Float64(), suffix)
}
