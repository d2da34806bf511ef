package rational

import (
	"fmt"
	"math/big"

	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// RoundMode selects how a fractional value is converted to an integer.
type RoundMode int

const (
	// RoundClosest rounds to the nearest integer. Exact halves round up for
	// non-negative values; negative values mirror through negation, so halves
	// round away from zero on both sides.
	RoundClosest RoundMode = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeil rounds toward positive infinity.
	RoundCeil
	// RoundTrunc rounds toward zero.
	RoundTrunc
	// RoundOff performs no rounding: a non-integer input is an error.
	RoundOff
)

// String implements fmt.Stringer.
func (m RoundMode) String() string {
	switch m {
	case RoundClosest:
		return "closest"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	case RoundTrunc:
		return "trunc"
	case RoundOff:
		return "off"
	}
	return fmt.Sprintf("RoundMode(%d)", int(m))
}

// ParseRoundMode reads a RoundMode from its string form.
func ParseRoundMode(s string) (RoundMode, error) {
	switch s {
	case "closest":
		return RoundClosest, nil
	case "floor":
		return RoundFloor, nil
	case "ceil":
		return RoundCeil, nil
	case "trunc":
		return RoundTrunc, nil
	case "off":
		return RoundOff, nil
	}
	return 0, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "unknown rounding mode %q", s)
}

// Round converts r to an integer using the given mode. RoundOff fails with
// PartialFrame when r is not already a whole number.
func (r Rational) Round(mode RoundMode) (*big.Int, error) {
	switch mode {
	case RoundClosest:
		return r.roundClosest(), nil
	case RoundFloor:
		return r.floor(), nil
	case RoundCeil:
		return r.ceil(), nil
	case RoundTrunc:
		return r.trunc(), nil
	case RoundOff:
		if !r.IsInt() {
			return nil, vtcerr.Newf(vtcerr.KindPartialFrame, "%s is not a whole value and rounding is off", r)
		}
		return r.Num(), nil
	}
	return nil, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "unknown rounding mode %d", int(mode))
}

// roundClosest implements the engine tie rule: negatives recurse through
// negation, non-negative values round down when twice the modulo is below the
// denominator and up otherwise, so a modulo of exactly half rounds up.
func (r Rational) roundClosest() *big.Int {
	if r.Sign() < 0 {
		return new(big.Int).Neg(r.Neg().roundClosest())
	}
	q, m := new(big.Int).QuoRem(r.n(), r.d(), new(big.Int))
	m.Mul(m, bigTwo)
	if m.Cmp(r.d()) < 0 {
		return q
	}
	return q.Add(q, bigOne)
}

func (r Rational) floor() *big.Int {
	// big.Int.Div is Euclidean; with a positive divisor it floors.
	return new(big.Int).Div(r.n(), r.d())
}

func (r Rational) ceil() *big.Int {
	neg := Rational{num: new(big.Int).Neg(r.n()), den: r.d()}
	return new(big.Int).Neg(neg.floor())
}

func (r Rational) trunc() *big.Int {
	return new(big.Int).Quo(r.n(), r.d())
}

// DivRem divides r by divisor, returning a whole-number quotient truncated
// toward zero and a remainder such that r == divisor*quotient + remainder.
// The remainder follows the sign of the dividend.
func (r Rational) DivRem(divisor Rational) (Rational, Rational, error) {
	quo, err := r.Div(divisor)
	if err != nil {
		return Rational{}, Rational{}, err
	}
	q := FromBigInt(quo.trunc())
	rem := r.Sub(divisor.Mul(q))
	return q, rem, nil
}

// Rem returns the remainder of r / divisor: a floor-style modulo, corrected
// so a negative dividend always yields a non-positive remainder.
func (r Rational) Rem(divisor Rational) (Rational, error) {
	quo, err := r.Div(divisor)
	if err != nil {
		return Rational{}, err
	}
	m := r.Sub(divisor.Mul(FromBigInt(quo.floor())))
	if r.Sign() < 0 && m.Sign() > 0 {
		m = m.Sub(divisor.Abs())
	}
	return m, nil
}
