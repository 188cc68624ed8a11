// Package batch evaluates subtraction jobs, one at a time through Apply or
// many concurrently through Evaluate.
//
// Strict operations (sub, subrev, scalar) that underflow do not take the
// process down: the panic raised by the kernel is recovered per job and
// reported as an *apperrors.UnderflowError in that job's Result.
package batch
