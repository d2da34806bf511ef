package timecode

import (
	"fmt"

	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// OutType declares how a Range's end boundary is read.
type OutType int

const (
	// OutExclusive means the out stamp is the first frame past the range.
	OutExclusive OutType = iota
	// OutInclusive means the out stamp is the last frame of the range.
	OutInclusive
)

// String implements fmt.Stringer.
func (o OutType) String() string {
	if o == OutInclusive {
		return "inclusive"
	}
	return "exclusive"
}

// Range is an ordered span between two framestamps at the same rate.
// An inclusive range whose in and out are equal is a single-frame range; an
// exclusive range with equal boundaries is empty.
type Range struct {
	in      Framestamp
	out     Framestamp
	outType OutType
}

// NewRange builds a validated Range. The stamps must share a rate and out
// must not precede in.
func NewRange(in, out Framestamp, outType OutType) (Range, error) {
	if !in.Rate().Eq(out.Rate()) {
		return Range{}, vtcerr.Newf(
			vtcerr.KindMixedRateArithmetic,
			"range boundaries have mismatched rates %s and %s", in.Rate(), out.Rate(),
		).WithDetails(map[string]interface{}{
			"operation": "new_range",
			"left":      in.Rate().String(),
			"right":     out.Rate().String(),
		})
	}
	if out.Cmp(in) < 0 {
		return Range{}, vtcerr.Newf(
			vtcerr.KindFlippedRange,
			"out point %s precedes in point %s", out.Timecode(), in.Timecode(),
		)
	}
	return Range{in: in, out: out, outType: outType}, nil
}

// WithDuration builds a Range from a start stamp and a positive duration.
// For an inclusive out, the final frame is start + duration - 1.
func WithDuration(start, duration Framestamp, outType OutType) (Range, error) {
	if duration.Seconds().Sign() <= 0 {
		return Range{}, vtcerr.Newf(
			vtcerr.KindFlippedRange,
			"range duration must be positive, got %s", duration.Seconds(),
		)
	}
	out, err := start.Add(duration, RateMustMatch)
	if err != nil {
		return Range{}, err
	}
	if outType == OutInclusive {
		out = out.addFrames(-1)
	}
	return NewRange(start, out, outType)
}

// In returns the range's start stamp.
func (r Range) In() Framestamp {
	return r.in
}

// Out returns the range's end stamp, read per OutType.
func (r Range) Out() Framestamp {
	return r.out
}

// OutType returns how the end boundary is read.
func (r Range) OutType() OutType {
	return r.outType
}

// outExclusive is the exclusive-equivalent end stamp: inclusive ranges gain
// one frame at their own rate.
func (r Range) outExclusive() Framestamp {
	if r.outType == OutExclusive {
		return r.out
	}
	return r.out.addFrames(1)
}

// WithExclusiveOut returns the same span with an exclusive end boundary.
func (r Range) WithExclusiveOut() Range {
	return Range{in: r.in, out: r.outExclusive(), outType: OutExclusive}
}

// WithInclusiveOut returns the same span with an inclusive end boundary.
func (r Range) WithInclusiveOut() Range {
	if r.outType == OutInclusive {
		return r
	}
	return Range{in: r.in, out: r.out.addFrames(-1), outType: OutInclusive}
}

// Duration returns the stamp-valued length of the range: out_exclusive - in.
func (r Range) Duration() Framestamp {
	// Same rate by construction.
	duration, _ := r.outExclusive().Sub(r.in, RateMustMatch)
	return duration
}

// Contains reports whether the stamp falls inside the range. The in boundary
// is always inclusive; the out boundary follows OutType.
func (r Range) Contains(stamp Framestamp) bool {
	if stamp.Cmp(r.in) < 0 {
		return false
	}
	if r.outType == OutInclusive {
		return stamp.Cmp(r.out) <= 0
	}
	return stamp.Cmp(r.out) < 0
}

// Overlaps reports whether the two ranges share any frames, comparing the
// exclusive-equivalent spans.
func (r Range) Overlaps(other Range) bool {
	return r.in.Cmp(other.outExclusive()) < 0 && other.in.Cmp(r.outExclusive()) < 0
}

// Intersection returns the span shared by both ranges, or NoneResult when
// they do not overlap. The result's rate and out type come from the
// receiver, even when the operands disagree.
func (r Range) Intersection(other Range) (Range, error) {
	if !r.Overlaps(other) {
		return Range{}, vtcerr.New(vtcerr.KindNoneResult, "ranges do not overlap")
	}
	in := r.coerce(maxStamp(r.in, other.in))
	out := r.coerce(minStamp(r.outExclusive(), other.outExclusive()))
	return Range{in: in, out: out, outType: OutExclusive}.withOutType(r.outType), nil
}

// IntersectionOrZero is Intersection, falling back to a zero-length range at
// 00:00:00:00 with the receiver's rate and out type when there is no overlap.
func (r Range) IntersectionOrZero(other Range) Range {
	intersection, err := r.Intersection(other)
	if err == nil {
		return intersection
	}
	zero := FromFrames(0, r.in.Rate())
	return Range{in: zero, out: zero, outType: OutExclusive}.withOutType(r.outType)
}

// Separation returns the gap between two non-overlapping ranges, or
// NoneResult when they overlap. The gap runs from the end of whichever range
// finishes first to the start of the other; rate and out type come from the
// receiver.
func (r Range) Separation(other Range) (Range, error) {
	if r.Overlaps(other) {
		return Range{}, vtcerr.New(vtcerr.KindNoneResult, "ranges overlap, no separation between them")
	}
	in, out := r.outExclusive(), other.in
	if other.outExclusive().Cmp(r.in) <= 0 {
		in, out = other.outExclusive(), r.in
	}
	gap := Range{in: r.coerce(in), out: r.coerce(out), outType: OutExclusive}
	return gap.withOutType(r.outType), nil
}

// IntersectionStrict is Intersection for callers that want mismatches
// surfaced instead of resolved: mixed rates fail with MixedRateArithmetic and
// mixed out types with MixedOutTypeArithmetic.
func (r Range) IntersectionStrict(other Range) (Range, error) {
	if err := r.checkStrict(other, "intersection"); err != nil {
		return Range{}, err
	}
	return r.Intersection(other)
}

// SeparationStrict is Separation with the strict mismatch policy of
// IntersectionStrict.
func (r Range) SeparationStrict(other Range) (Range, error) {
	if err := r.checkStrict(other, "separation"); err != nil {
		return Range{}, err
	}
	return r.Separation(other)
}

func (r Range) checkStrict(other Range, op string) error {
	if !r.in.Rate().Eq(other.in.Rate()) {
		return vtcerr.Newf(
			vtcerr.KindMixedRateArithmetic,
			"cannot take %s of ranges with mismatched rates %s and %s", op, r.in.Rate(), other.in.Rate(),
		).WithDetails(map[string]interface{}{
			"operation": op,
			"left":      r.in.Rate().String(),
			"right":     other.in.Rate().String(),
		})
	}
	if r.outType != other.outType {
		return vtcerr.Newf(
			vtcerr.KindMixedOutTypeArithmetic,
			"cannot take %s of %s and %s ranges", op, r.outType, other.outType,
		).WithDetails(map[string]interface{}{
			"operation": op,
			"left":      r.outType.String(),
			"right":     other.outType.String(),
		})
	}
	return nil
}

// String renders the span in its exclusive-out form.
func (r Range) String() string {
	return fmt.Sprintf("%s - %s @ %s", r.in.Timecode(), r.outExclusive().Timecode(), r.in.Rate())
}

// coerce rebinds a stamp to the receiver's rate without moving its position.
func (r Range) coerce(stamp Framestamp) Framestamp {
	if stamp.Rate().Eq(r.in.Rate()) {
		return stamp
	}
	return Framestamp{seconds: stamp.seconds, rate: r.in.Rate()}
}

func (r Range) withOutType(outType OutType) Range {
	if outType == OutInclusive {
		return r.WithInclusiveOut()
	}
	return r.WithExclusiveOut()
}

// addFrames shifts a stamp by a whole number of frames at its own rate.
func (f Framestamp) addFrames(n int64) Framestamp {
	shift, err := rational.FromInt(n).Div(f.rate.Playback())
	if err != nil {
		panic(err)
	}
	return Framestamp{seconds: f.seconds.Add(shift), rate: f.rate}
}

func maxStamp(a, b Framestamp) Framestamp {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func minStamp(a, b Framestamp) Framestamp {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
