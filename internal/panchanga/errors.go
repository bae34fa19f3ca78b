package panchanga

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error wraps exactly one of these, so callers can
// classify failures with errors.Is.
var (
	// ErrInvalidInputFormat means a textual date, time, or zone could not be parsed.
	ErrInvalidInputFormat = errors.New("invalid input format")

	// ErrIndexOutOfRange means a computed bucket index fell outside its lookup table.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNonFiniteResult means an input or intermediate angle was NaN or infinite.
	ErrNonFiniteResult = errors.New("non-finite result")

	// ErrNoConvergence means the Kepler iteration hit its iteration cap.
	ErrNoConvergence = errors.New("kepler equation did not converge")
)

// Error describes a failed calculation or parse step.
type Error struct {
	Op     string // step that failed, e.g. "nakshatra" or "parse date"
	Kind   error  // one of the Err* sentinels above
	Detail string // human-readable specifics, may be empty
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("panchanga: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("panchanga: %s: %v: %s", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(op string, kind error, format string, args ...any) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// IsInputError reports whether err was caused by malformed textual input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInputFormat)
}

// IsModelError reports whether err means the moment lies outside what the
// orbital model can classify (out-of-range index, non-finite angle, or a
// Kepler solve that did not converge).
func IsModelError(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrNonFiniteResult) ||
		errors.Is(err, ErrNoConvergence)
}
