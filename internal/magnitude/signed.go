package magnitude

import (
	"math/big"

	apperrors "github.com/agbru/magsub/internal/errors"
)

// Signed is the result of SubSign: a sign and a normalized magnitude.
// Sign is NoSign exactly when Mag is empty.
type Signed struct {
	Sign Sign
	Mag  Magnitude
}

// Int boxes s into a new big.Int. The magnitude is copied, so the result
// does not alias s.Mag.
func (s Signed) Int() *big.Int {
	z := new(big.Int).SetBits(FromSlice(s.Mag))
	if s.Sign == Negative {
		z.Neg(z)
	}
	return z
}

// Text formats s in the given base, with a leading '-' when negative.
func (s Signed) Text(base int) string {
	return s.Int().Text(base)
}

// String formats s in base 10.
func (s Signed) String() string { return s.Text(10) }

// FromBigInt returns a copy of the magnitude of x, ignoring its sign.
func FromBigInt(x *big.Int) Magnitude {
	return Normalize(FromSlice(x.Bits()))
}

// Parse reads an unsigned integer in the given base (0 selects the base from
// the prefix as big.Int.SetString does). Signs are rejected.
func Parse(s string, base int) (Magnitude, error) {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return nil, apperrors.ParseError{Input: s, Radix: base}
	}
	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, apperrors.ParseError{Input: s, Radix: base}
	}
	return FromBigInt(x), nil
}
