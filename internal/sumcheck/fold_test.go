package sumcheck

import (
	"testing"

	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

func TestFoldPastNRoundsIsExhausted(t *testing.T) {
	m := bitsOf(1, 0, 1)
	ps, err := NewProverState(1, []multilinear.Multilinear{m}, alwaysZero)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}

	if err := ps.Fold(towerfield.FNew(3)); err != nil {
		t.Fatalf("first Fold: %v", err)
	}
	err = ps.Fold(towerfield.FNew(3))
	if err == nil {
		t.Fatal("expected ErrProverExhausted, got nil")
	}
	var sErr *Error
	if !asError(err, &sErr) || sErr.Code != ErrProverExhausted {
		t.Fatalf("expected ErrProverExhausted, got %v", err)
	}
}

func TestFoldSwitchoverMatchesExtrapolateLine(t *testing.T) {
	m := bitsOf(1, 0, 1) // b0=0, b1=1
	switchover1 := func(int) int { return 1 }
	ps, err := NewProverState(1, []multilinear.Multilinear{m}, switchover1)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}

	if !ps.operands[0].isTransparent() {
		t.Fatal("expected operand to start Transparent")
	}

	challenge := towerfield.FNew(42)
	if err := ps.Fold(challenge); err != nil {
		t.Fatalf("Fold: %v", err)
	}

	if !ps.operands[0].isFolded() {
		t.Fatal("expected operand to have switched over to Folded")
	}

	got, err := ps.operands[0].folded.HypercubeEval(0)
	if err != nil {
		t.Fatalf("HypercubeEval: %v", err)
	}
	want := towerfield.ExtrapolateLine(towerfield.FZero(), towerfield.FOne(), challenge)
	if !got.Equal(want) {
		t.Fatalf("folded value = %v, want %v", got, want)
	}

	if ps.hasTensor() {
		t.Fatal("expected the shared tensor to be released once no Transparent operands remain")
	}
}

func TestFoldKeepsTensorWhileAnyOperandStillTransparent(t *testing.T) {
	early := bitsOf(2, 0, 1, 1, 0)
	late := bitsOf(2, 1, 0, 0, 1)

	// Two operands with distinct switchover rounds: operand 0 switches
	// at round 1, operand 1 at round 2 (the final fold).
	ps, err := NewProverState(2, []multilinear.Multilinear{early, late}, func(int) int { return 1 })
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}
	ps.operands[1].switchover = 2

	if err := ps.Fold(towerfield.FNew(9)); err != nil {
		t.Fatalf("Fold: %v", err)
	}

	if !ps.operands[0].isFolded() {
		t.Fatal("operand 0 should have switched over at round 1")
	}
	if !ps.operands[1].isTransparent() {
		t.Fatal("operand 1 should remain Transparent until round 2")
	}
	if !ps.hasTensor() {
		t.Fatal("expected the shared tensor to be retained while operand 1 is still Transparent")
	}
}
