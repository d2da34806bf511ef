package rate

import (
	"math/big"

	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/vtcerr"
)

// Parts is the canonical storage decomposition of a Framerate: a lowest-terms
// playback fraction plus an NTSC tag set of {}, {"non_drop"} or {"drop"}.
type Parts struct {
	Num  *big.Int
	Den  *big.Int
	Tags []string
}

// Parts decomposes the rate for persistence. The returned integers are
// copies in lowest terms.
func (f Framerate) Parts() Parts {
	var tags []string
	if f.ntsc != NTSCNone {
		tags = []string{f.ntsc.String()}
	}
	return Parts{Num: f.playback.Num(), Den: f.playback.Den(), Tags: tags}
}

// FromParts reconstructs a Framerate from a storage decomposition, re-running
// all construction validation. Non-canonical input (not in lowest terms, or a
// non-positive denominator) is rejected rather than silently normalized.
func FromParts(parts Parts) (Framerate, error) {
	if parts.Num == nil || parts.Den == nil || parts.Den.Sign() <= 0 {
		return Framerate{}, vtcerr.New(vtcerr.KindInvalidSmpteValue, "rate parts require a numerator and a positive denominator")
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(parts.Num), parts.Den)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return Framerate{}, vtcerr.Newf(
			vtcerr.KindInvalidSmpteValue,
			"rate parts %s/%s are not in lowest terms", parts.Num, parts.Den,
		)
	}
	ntsc, err := parseTags(parts.Tags)
	if err != nil {
		return Framerate{}, err
	}
	playback, err := rational.FromBig(parts.Num, parts.Den)
	if err != nil {
		return Framerate{}, err
	}
	return New(playback, ntsc)
}

func parseTags(tags []string) (NTSC, error) {
	switch {
	case len(tags) == 0:
		return NTSCNone, nil
	case len(tags) == 1 && tags[0] == "non_drop":
		return NTSCNonDrop, nil
	case len(tags) == 1 && tags[0] == "drop":
		return NTSCDrop, nil
	}
	return NTSCNone, vtcerr.Newf(vtcerr.KindInvalidSmpteValue, "unknown NTSC tag set %v", tags)
}
