package timecode

import (
	"math/big"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// Parts is the canonical storage decomposition of a Framestamp: the seconds
// fraction in lowest terms plus the rate decomposition.
type Parts struct {
	SecondsNum *big.Int
	SecondsDen *big.Int
	Rate       rate.Parts
}

// Parts decomposes the stamp for persistence. All integers are copies in
// lowest terms.
func (f Framestamp) Parts() Parts {
	return Parts{
		SecondsNum: f.seconds.Num(),
		SecondsDen: f.seconds.Den(),
		Rate:       f.rate.Parts(),
	}
}

// FromParts reconstructs a Framestamp, re-running rate validation and
// rejecting non-canonical seconds fractions.
func FromParts(parts Parts) (Framestamp, error) {
	if parts.SecondsNum == nil || parts.SecondsDen == nil || parts.SecondsDen.Sign() <= 0 {
		return Framestamp{}, vtcerr.New(
			vtcerr.KindInvalidSmpteValue,
			"framestamp parts require a seconds numerator and a positive denominator",
		)
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(parts.SecondsNum), parts.SecondsDen)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return Framestamp{}, vtcerr.Newf(
			vtcerr.KindInvalidSmpteValue,
			"seconds parts %s/%s are not in lowest terms", parts.SecondsNum, parts.SecondsDen,
		)
	}
	stampRate, err := rate.FromParts(parts.Rate)
	if err != nil {
		return Framestamp{}, err
	}
	seconds, err := rational.FromBig(parts.SecondsNum, parts.SecondsDen)
	if err != nil {
		return Framestamp{}, err
	}
	return Framestamp{seconds: seconds, rate: stampRate}, nil
}

// RangeParts is the canonical storage decomposition of a Range: both stamp
// decompositions plus the inclusivity flag.
type RangeParts struct {
	In        Parts
	Out       Parts
	Inclusive bool
}

// Parts decomposes the range for persistence.
func (r Range) Parts() RangeParts {
	return RangeParts{
		In:        r.in.Parts(),
		Out:       r.out.Parts(),
		Inclusive: r.outType == OutInclusive,
	}
}

// RangeFromParts reconstructs a Range, re-running all stamp and range
// validation.
func RangeFromParts(parts RangeParts) (Range, error) {
	in, err := FromParts(parts.In)
	if err != nil {
		return Range{}, err
	}
	out, err := FromParts(parts.Out)
	if err != nil {
		return Range{}, err
	}
	outType := OutExclusive
	if parts.Inclusive {
		outType = OutInclusive
	}
	return NewRange(in, out, outType)
}
