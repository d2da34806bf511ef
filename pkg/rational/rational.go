// Package rational implements the exact fraction arithmetic the timecode
// engine is built on. Values are arbitrary precision, always stored in lowest
// terms with a positive denominator, and immutable: every operation returns a
// new value.
package rational

import (
	"math/big"
	"strings"

	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// Rational is an exact fraction. The zero value is 0/1. The sign lives in the
// numerator; the denominator is always positive and gcd(|num|, den) == 1.
type Rational struct {
	num *big.Int
	den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigTen  = big.NewInt(10)
)

// New creates a Rational from an int64 numerator and denominator.
func New(num, den int64) (Rational, error) {
	return FromBig(big.NewInt(num), big.NewInt(den))
}

// MustNew is New, panicking on a zero denominator. It is a convenience for
// constants and tests, not part of the core contract.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt creates a whole-number Rational.
func FromInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBigInt creates a whole-number Rational from a big.Int. The input is
// copied.
func FromBigInt(n *big.Int) Rational {
	return Rational{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// FromBig creates a Rational from big.Int numerator and denominator. The
// inputs are copied and the result normalized to lowest terms with a positive
// denominator. A zero denominator fails with DivisionByZero.
func FromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, vtcerr.New(vtcerr.KindDivisionByZero, "denominator is zero")
	}
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// normalize takes ownership of num and den. den must be nonzero.
func normalize(num, den *big.Int) Rational {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(bigOne) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational{num: num, den: den}
}

// Parse reads a Rational from its text forms: "num/den", a plain integer, or
// a decimal such as "-1.25".
func Parse(s string) (Rational, error) {
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		num, okN := new(big.Int).SetString(s[:idx], 10)
		den, okD := new(big.Int).SetString(s[idx+1:], 10)
		if !okN || !okD {
			return Rational{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "cannot parse rational %q", s)
		}
		return FromBig(num, den)
	}
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac := s[:idx], s[idx+1:]
		neg := strings.HasPrefix(whole, "-")
		whole = strings.TrimPrefix(whole, "-")
		if whole == "" {
			whole = "0"
		}
		digits, ok := new(big.Int).SetString(whole+frac, 10)
		if !ok || digits.Sign() < 0 {
			return Rational{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "cannot parse decimal %q", s)
		}
		den := new(big.Int).Exp(bigTen, big.NewInt(int64(len(frac))), nil)
		if neg {
			digits.Neg(digits)
		}
		return FromBig(digits, den)
	}
	num, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Rational{}, vtcerr.Newf(vtcerr.KindUnrecognizedFormat, "cannot parse integer %q", s)
	}
	return FromBigInt(num), nil
}

// n and d give nil-safe views of the fields so the zero value behaves as 0/1.
// Callers must not mutate the returned values.
func (r Rational) n() *big.Int {
	if r.num == nil {
		return bigZero
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return bigOne
	}
	return r.den
}

// Num returns a copy of the numerator in lowest terms.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Den returns a copy of the (positive) denominator in lowest terms.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.d())
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	num := new(big.Int).Mul(r.n(), other.d())
	num.Add(num, new(big.Int).Mul(other.n(), r.d()))
	return normalize(num, new(big.Int).Mul(r.d(), other.d()))
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return normalize(
		new(big.Int).Mul(r.n(), other.n()),
		new(big.Int).Mul(r.d(), other.d()),
	)
}

// Div returns r / other, failing with DivisionByZero when other is zero.
func (r Rational) Div(other Rational) (Rational, error) {
	if other.Sign() == 0 {
		return Rational{}, vtcerr.New(vtcerr.KindDivisionByZero, "divisor is zero")
	}
	return normalize(
		new(big.Int).Mul(r.n(), other.d()),
		new(big.Int).Mul(r.d(), other.n()),
	), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.n()), den: new(big.Int).Set(r.d())}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{num: new(big.Int).Abs(r.n()), den: new(big.Int).Set(r.d())}
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	return r.n().Sign()
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsInt reports whether r is a whole number.
func (r Rational) IsInt() bool {
	return r.d().Cmp(bigOne) == 0
}

// Cmp compares r and other, returning -1, 0 or +1. Rationals are totally
// ordered.
func (r Rational) Cmp(other Rational) int {
	left := new(big.Int).Mul(r.n(), other.d())
	right := new(big.Int).Mul(other.n(), r.d())
	return left.Cmp(right)
}

// Eq reports whether r and other represent the same value.
func (r Rational) Eq(other Rational) bool {
	return r.Cmp(other) == 0
}

// Float64 returns the nearest float64 approximation of r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.n(), r.d()).Float64()
	return f
}

// String renders the canonical "num/den" text form.
func (r Rational) String() string {
	return r.n().String() + "/" + r.d().String()
}
