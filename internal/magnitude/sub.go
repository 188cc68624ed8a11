package magnitude

import (
	"math/bits"

	apperrors "github.com/agbru/magsub/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Digit Kernels
// ─────────────────────────────────────────────────────────────────────────────

// Sbb returns the low digit of a - b - *borrow and leaves the borrow-out
// (0 or 1) in *borrow, ready for the next more-significant position.
// *borrow must be 0 or 1 on entry.
func Sbb(a, b Digit, borrow *Digit) Digit {
	d, bo := bits.Sub(uint(a), uint(b), uint(*borrow))
	*borrow = Digit(bo)
	return Digit(d)
}

// SubScalar computes a -= b in place for a single digit b and reports
// whether the borrow ran past the most-significant digit of a.
// Only the digits the borrow actually reaches are touched.
func SubScalar(a Magnitude, b Digit) bool {
	bw := b
	for i := range a {
		d, overflow := bits.Sub(uint(a[i]), uint(bw), 0)
		a[i] = Digit(d)
		bw = Digit(overflow)
		if overflow == 0 {
			break
		}
	}
	return bw != 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Forward Subtraction
// ─────────────────────────────────────────────────────────────────────────────

// TrySub computes a -= b in place and reports whether the mathematical
// result is negative. On underflow a holds the result modulo 2^(DigitBits*len(a)).
func TrySub(a, b Magnitude) bool {
	if len(b) == 1 {
		return SubScalar(a, b[0])
	}
	if IsZero(a) {
		return !IsZero(b)
	}

	n := min(len(a), len(b))
	aLo, aHi := a[:n], a[n:]
	bHi := b[n:]

	var borrow Digit
	for i := range aLo {
		aLo[i] = Sbb(aLo[i], b[i], &borrow)
	}

	if borrow != 0 {
		for i := range aHi {
			aHi[i] = Sbb(aHi[i], 0, &borrow)
			if borrow == 0 {
				break
			}
		}
	}

	// Digits of b beyond len(a) have nothing to be subtracted from.
	return borrow != 0 || !IsZero(bHi)
}

// Sub computes a -= b in place. It panics with *apperrors.UnderflowError
// if b > a.
func Sub(a, b Magnitude) {
	if TrySub(a, b) {
		panic(&apperrors.UnderflowError{Op: "sub", A: a, B: b})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reverse Subtraction
// ─────────────────────────────────────────────────────────────────────────────

// TrySubRev computes b = a - b in place over operands of equal length and
// reports the final borrow.
func TrySubRev(a, b Magnitude) bool {
	if len(a) != len(b) {
		panic("magnitude: TrySubRev operands must have equal length")
	}
	var borrow Digit
	for i := range b {
		b[i] = Sbb(a[i], b[i], &borrow)
	}
	return borrow != 0
}

// SubRev computes b = a - b in place, for call sites whose mutable buffer is
// the right-hand operand. b must be at least as long as a. It panics with
// *apperrors.UnderflowError if a is longer than b or if a < b.
func SubRev(a, b Magnitude) {
	if len(a) > len(b) {
		panic(&apperrors.UnderflowError{Op: "subrev", A: a, B: b, Reason: "a is longer than b"})
	}

	n := len(a)
	bLo, bHi := b[:n], b[n:]
	if TrySubRev(a, bLo) || !IsZero(bHi) {
		panic(&apperrors.UnderflowError{Op: "subrev", A: a, B: b})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Signed Subtraction
// ─────────────────────────────────────────────────────────────────────────────

// SubSign computes a - b for two magnitudes of any length and returns the
// sign and normalized magnitude of the result. Neither operand is modified.
// Equal operands yield NoSign and the shared zero without allocating.
func SubSign(a, b []Digit) Signed {
	a, b = Normalize(a), Normalize(b)

	switch Cmp(a, b) {
	case 1:
		z := FromSlice(a)
		Sub(z, b)
		return Signed{Sign: Positive, Mag: Normalize(z)}
	case -1:
		z := FromSlice(b)
		Sub(z, a)
		return Signed{Sign: Negative, Mag: Normalize(z)}
	default:
		return Signed{Sign: NoSign, Mag: Zero()}
	}
}
