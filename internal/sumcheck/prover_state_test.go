package sumcheck

import (
	"testing"

	"github.com/vybium/vybium-sumcheck/internal/multilinear"
)

func alwaysZero(int) int { return 0 }

func TestNewProverStateRejectsArityMismatch(t *testing.T) {
	m := bitsOf(2, 0, 1, 1, 0)
	_, err := NewProverState(3, []multilinear.Multilinear{m}, alwaysZero)
	if err == nil {
		t.Fatal("expected an arity error, got nil")
	}
	var sErr *Error
	if !asError(err, &sErr) || sErr.Code != ErrIncorrectNumberOfVariables {
		t.Fatalf("expected ErrIncorrectNumberOfVariables, got %v", err)
	}
}

func TestNewProverStateAllocatesTensorToMaxSwitchover(t *testing.T) {
	m := bitsOf(2, 0, 1, 1, 0)
	switchAt2 := func(int) int { return 2 }
	ps, err := NewProverState(2, []multilinear.Multilinear{m}, switchAt2)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}
	if ps.query.Capacity() != 2 {
		t.Fatalf("query capacity = %d, want 2", ps.query.Capacity())
	}
	if !ps.hasTensor() {
		t.Fatal("expected a retained tensor before any fold")
	}
}

func TestRoundAndNRoundsAccessors(t *testing.T) {
	m := bitsOf(1, 0, 1)
	ps, err := NewProverState(1, []multilinear.Multilinear{m}, alwaysZero)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}
	if ps.Round() != 0 {
		t.Fatalf("Round() = %d, want 0", ps.Round())
	}
	if ps.NRounds() != 1 {
		t.Fatalf("NRounds() = %d, want 1", ps.NRounds())
	}
}

// asError is a small errors.As shim kept local to avoid importing
// "errors" into every test file that only needs this one assertion.
func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
