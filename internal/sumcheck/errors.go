package sumcheck

import "fmt"

// ErrorCode identifies the class of a sumcheck prover error.
type ErrorCode int

const (
	// ErrUnknown is an unclassified error.
	ErrUnknown ErrorCode = iota

	// ErrIncorrectNumberOfVariables is returned by NewProverState when an operand's
	// variable count does not match n_rounds.
	ErrIncorrectNumberOfVariables

	// ErrPolynomialFailure wraps a propagated failure from an operand's
	// PartialLow, or from a Query's Update/WithFullQuery.
	ErrPolynomialFailure

	// ErrInvalidSwitchover classifies a switchover_fn value less than 1
	// (round 0 can never be a switchover round: the first round is never
	// preceded by a fold). NewProverState does not check switchover values
	// and never returns this code; an operand with a switchover below 1
	// switches over at the first Fold.
	ErrInvalidSwitchover

	// ErrProverExhausted is returned by Fold once it has already been
	// called n_rounds times.
	ErrProverExhausted
)

func (c ErrorCode) String() string {
	switch c {
	case ErrIncorrectNumberOfVariables:
		return "IncorrectNumberOfVariables"
	case ErrPolynomialFailure:
		return "PolynomialFailure"
	case ErrInvalidSwitchover:
		return "InvalidSwitchover"
	case ErrProverExhausted:
		return "ProverExhausted"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by this package's fallible
// operations. It carries a Code so callers can pattern-match the
// taxonomy, Details for human-readable context, and an optional wrapped
// Cause.
type Error struct {
	Code    ErrorCode
	Details string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sumcheck: %s: %s (caused by: %v)", e.Code, e.Details, e.Cause)
	}
	return fmt.Sprintf("sumcheck: %s: %s", e.Code, e.Details)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error by Code, so callers can write
// errors.Is(err, &sumcheck.Error{Code: sumcheck.ErrPolynomialFailure}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code ErrorCode, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Details: fmt.Sprintf(format, args...), Cause: cause}
}

// errIncorrectNumberOfVariables builds the operand-arity mismatch error.
func errIncorrectNumberOfVariables(expected, actual int) *Error {
	return newError(
		ErrIncorrectNumberOfVariables, nil,
		"expected %d variables, got %d", expected, actual,
	)
}

// errPolynomialFailure wraps a failure bubbled up from a collaborator
// (Query.Update, multilinear.WithFullQuery, or Multilinear.PartialLow).
func errPolynomialFailure(cause error, context string) *Error {
	return newError(ErrPolynomialFailure, cause, "%s", context)
}
