// Package logging provides the logging interface used by the magsub CLI and
// batch evaluator. It abstracts the underlying implementation so components
// log structured fields without depending on zerolog directly.
package logging
