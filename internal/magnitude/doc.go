// Package magnitude implements the subtraction kernels for unsigned
// arbitrary-precision magnitudes stored as little-endian digit slices.
//
// # Naming Conventions
//
//   - Try* functions report underflow as a boolean and never panic.
//     Examples: [TrySub], [TrySubRev].
//   - The unprefixed forms ([Sub], [SubRev]) are strict: they panic with a
//     *apperrors.UnderflowError when the result would be negative. Callers are
//     expected to have ordered the operands already, for instance with [Cmp].
//   - [SubSign] never panics; it orders the operands itself and returns the
//     sign separately.
//
// All kernels mutate their first mutable operand in place. The mutated and
// read-only operands of a call must not share memory; this is not checked.
package magnitude
