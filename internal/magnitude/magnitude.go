package magnitude

import (
	"math/big"
	"math/bits"
)

// Digit is a single machine word of a magnitude.
type Digit = big.Word

// DigitBits is the width of a Digit in bits.
const DigitBits = bits.UintSize

// InlineDigits is the largest magnitude FromSlice places in a fixed-size
// backing array.
const InlineDigits = 8

// Magnitude is an unsigned integer stored least-significant digit first.
// An empty or all-zero Magnitude is the value zero.
type Magnitude []Digit

// Sign tags the result of a signed subtraction.
type Sign int8

const (
	Negative Sign = -1
	NoSign   Sign = 0
	Positive Sign = 1
)

// String returns "-", "0" or "+".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return "0"
	}
}

// zero is the canonical zero. It is never written to.
var zero = Magnitude{}

// Zero returns the canonical zero magnitude without allocating.
func Zero() Magnitude { return zero }

// FromSlice returns a freshly allocated copy of src.
// Short inputs are backed by an InlineDigits array so a later in-place
// extension of a few digits does not need to reallocate.
func FromSlice(src []Digit) Magnitude {
	var z Magnitude
	if len(src) <= InlineDigits {
		buf := new([InlineDigits]Digit)
		z = buf[:len(src)]
	} else {
		z = make(Magnitude, len(src))
	}
	copy(z, src)
	return z
}

// IsZero reports whether x represents zero.
func IsZero(x []Digit) bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// Normalize returns x sliced to drop its most-significant zero digits.
// The result shares x's backing array.
func Normalize(x []Digit) Magnitude {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return Magnitude(x[0:i])
}

// Cmp compares a and b as unsigned integers and returns -1, 0 or +1.
// Operands of different lengths are compared as if zero-padded.
func Cmp(a, b []Digit) int {
	a, b = Normalize(a), Normalize(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
