package sumcheck_test

import (
	"testing"

	"github.com/vybium/vybium-sumcheck/internal/composition"
	"github.com/vybium/vybium-sumcheck/internal/evaluators"
	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/sumcheck"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

func denseOf(nVars int, vs ...int) *multilinear.Dense {
	values := make([]towerfield.Bit, len(vs))
	for i, v := range vs {
		values[i] = towerfield.BitFromInt(v)
	}
	d, err := multilinear.NewDense(nVars, values)
	if err != nil {
		panic(err)
	}
	return d
}

func never(int) int { return 1 << 20 }

// neverSwitchOperand wraps a Dense but reports a distinct extension
// degree, so a single SwitchoverFunc can route it differently than a
// plain Dense sharing the same underlying table shape. This is a
// test-only seam: production code picks switchover purely from a real
// operand's packing width.
type neverSwitchOperand struct {
	*multilinear.Dense
}

func (neverSwitchOperand) ExtensionDegree() int { return -1 }

// S1: a single operand, identity composition. Round 0's single round
// evaluation (domain point X=1, degree 1) must equal the plain sum over
// the hypercube's odd-indexed half, computed independently here via
// HypercubeEval.
func TestScenarioTrivialSingleOperand(t *testing.T) {
	m := denseOf(2, 0, 1, 1, 1)
	prod, err := composition.NewProduct(1)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	reg, err := evaluators.NewRegular(prod, 1)
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}

	ps, err := sumcheck.NewProverState(2, []multilinear.Multilinear{m}, never)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}

	got := ps.SumRoundEvals(evaluators.FromRegular(reg))

	want := towerfield.FZero()
	for vertex := 0; vertex < 2; vertex++ {
		v, err := m.HypercubeEval(2*vertex + 1)
		if err != nil {
			t.Fatalf("HypercubeEval: %v", err)
		}
		want = want.Add(v)
	}
	if !got[0].Equal(want) {
		t.Fatalf("round 0 eval = %v, want %v", got[0], want)
	}
}

// S2: a two-operand product composition. Round 0's two sampled domain
// points must match independent extrapolation from the raw hypercube
// data.
func TestScenarioProductOfTwoOperands(t *testing.T) {
	a := denseOf(2, 0, 1, 1, 0)
	b := denseOf(2, 1, 1, 0, 1)
	prod, err := composition.NewProduct(2)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	reg, err := evaluators.NewRegular(prod, 2)
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}

	ps, err := sumcheck.NewProverState(2, []multilinear.Multilinear{a, b}, never)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}
	got := ps.SumRoundEvals(evaluators.FromRegular(reg))

	want := make([]towerfield.F, 2)
	for vertex := 0; vertex < 2; vertex++ {
		a0, _ := a.HypercubeEval(2 * vertex)
		a1, _ := a.HypercubeEval(2*vertex + 1)
		b0, _ := b.HypercubeEval(2 * vertex)
		b1, _ := b.HypercubeEval(2*vertex + 1)
		for k, x := range evaluators.Domain(2) {
			ea := towerfield.ExtrapolateLine(a0, a1, x)
			eb := towerfield.ExtrapolateLine(b0, b1, x)
			want[k] = want[k].Add(ea.Mul(eb))
		}
	}
	for k := range want {
		if !got[k].Equal(want[k]) {
			t.Fatalf("round 0 eval[%d] = %v, want %v", k, got[k], want[k])
		}
	}
}

// S3/S4: switchover-round equivalence. After one fold, an operand that
// switched over at round 1 (now Folded) and an operand whose switchover
// is round 2 (still Transparent) must yield the same round evaluations,
// since the switchover point only trades representation, never changes
// the value represented.
func TestScenarioSwitchoverRoundIsValueInvariant(t *testing.T) {
	values := []int{0, 1, 1, 0}
	mSoon := denseOf(2, values...)
	mLate := denseOf(2, values...)

	prod, err := composition.NewProduct(1)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	reg, err := evaluators.NewRegular(prod, 1)
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}

	psSoon, err := sumcheck.NewProverState(2, []multilinear.Multilinear{mSoon}, func(int) int { return 1 })
	if err != nil {
		t.Fatalf("NewProverState (soon): %v", err)
	}
	psLate, err := sumcheck.NewProverState(2, []multilinear.Multilinear{mLate}, func(int) int { return 2 })
	if err != nil {
		t.Fatalf("NewProverState (late): %v", err)
	}

	challenge := towerfield.FNew(31)
	if err := psSoon.Fold(challenge); err != nil {
		t.Fatalf("psSoon.Fold: %v", err)
	}
	if err := psLate.Fold(challenge); err != nil {
		t.Fatalf("psLate.Fold: %v", err)
	}

	gotSoon := psSoon.SumRoundEvals(evaluators.FromRegular(reg))
	gotLate := psLate.SumRoundEvals(evaluators.FromRegular(reg))
	if !gotSoon[0].Equal(gotLate[0]) {
		t.Fatalf("switchover-round equivalence violated: switched-over path = %v, still-transparent path = %v", gotSoon[0], gotLate[0])
	}
}

// S4: switchover-round equivalence must hold across every round of a
// multi-fold run, not just a single post-fold snapshot. At n=3 the
// tensor query grows past one variable after the first fold, which is
// exactly where an expansion that binds challenges to the wrong tensor
// bit would diverge from the per-round halving path; n=2 can't expose
// that because a single-challenge tensor has no bit ordering to get
// wrong.
func TestScenarioSwitchoverEquivalenceAcrossMultipleRounds(t *testing.T) {
	values := []int{0, 1, 1, 0, 1, 0, 0, 1}
	mSoon := denseOf(3, values...)
	mLate := denseOf(3, values...)

	prod, err := composition.NewProduct(1)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	reg, err := evaluators.NewRegular(prod, 1)
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}

	// mSoon switches over after the first fold; mLate stays Transparent
	// through both folds exercised below.
	psSoon, err := sumcheck.NewProverState(3, []multilinear.Multilinear{mSoon}, func(int) int { return 1 })
	if err != nil {
		t.Fatalf("NewProverState (soon): %v", err)
	}
	psLate, err := sumcheck.NewProverState(3, []multilinear.Multilinear{mLate}, func(int) int { return 3 })
	if err != nil {
		t.Fatalf("NewProverState (late): %v", err)
	}

	challenges := []towerfield.F{towerfield.FNew(17), towerfield.FNew(44)}

	for round := 0; round <= len(challenges); round++ {
		gotSoon := psSoon.SumRoundEvals(evaluators.FromRegular(reg))
		gotLate := psLate.SumRoundEvals(evaluators.FromRegular(reg))
		if !gotSoon[0].Equal(gotLate[0]) {
			t.Fatalf("round %d: switchover-round equivalence violated: early-switchover = %v, late-switchover = %v", round, gotSoon[0], gotLate[0])
		}
		if round == len(challenges) {
			break
		}
		if err := psSoon.Fold(challenges[round]); err != nil {
			t.Fatalf("psSoon.Fold(round %d): %v", round, err)
		}
		if err := psLate.Fold(challenges[round]); err != nil {
			t.Fatalf("psLate.Fold(round %d): %v", round, err)
		}
	}
}

// S5: a heterogeneous round mixing one Folded and one still-Transparent
// operand must agree with a reference where both operands are already
// Folded, exercising the mixed-kernel dispatch path.
func TestScenarioMixedKernelMatchesAllFoldedReference(t *testing.T) {
	aValues := []int{0, 1, 1, 0}
	bValues := []int{1, 0, 0, 1}

	aMixed, bMixed := denseOf(2, aValues...), denseOf(2, bValues...)
	aRef, bRef := denseOf(2, aValues...), denseOf(2, bValues...)

	prod, err := composition.NewProduct(2)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	reg, err := evaluators.NewRegular(prod, 2)
	if err != nil {
		t.Fatalf("NewRegular: %v", err)
	}

	psMixed, err := sumcheck.NewProverState(
		2,
		[]multilinear.Multilinear{aMixed, neverSwitchOperand{bMixed}},
		func(deg int) int {
			if deg == -1 {
				return 99 // b never switches within n_rounds
			}
			return 1 // a switches at round 1
		},
	)
	if err != nil {
		t.Fatalf("NewProverState (mixed): %v", err)
	}

	psRef, err := sumcheck.NewProverState(2, []multilinear.Multilinear{aRef, bRef}, func(int) int { return 1 })
	if err != nil {
		t.Fatalf("NewProverState (ref): %v", err)
	}

	challenge := towerfield.FNew(5)
	if err := psMixed.Fold(challenge); err != nil {
		t.Fatalf("psMixed.Fold: %v", err)
	}
	if err := psRef.Fold(challenge); err != nil {
		t.Fatalf("psRef.Fold: %v", err)
	}

	gotMixed := psMixed.SumRoundEvals(evaluators.FromRegular(reg))
	gotRef := psRef.SumRoundEvals(evaluators.FromRegular(reg))
	for k := range gotRef {
		if !gotMixed[k].Equal(gotRef[k]) {
			t.Fatalf("mixed-kernel eval[%d] = %v, want %v (all-folded reference)", k, gotMixed[k], gotRef[k])
		}
	}
}

// S6: zerocheck gates the composed value by a per-vertex equality
// indicator operand and never samples X=0, matching a domain starting
// at 1 with no known-zero shortcut applied by this package.
func TestScenarioZerocheckGatesByEqOperand(t *testing.T) {
	m := denseOf(2, 0, 1, 1, 0)
	eq := denseOf(2, 1, 0, 0, 1)

	prod, err := composition.NewProduct(1)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	zc, err := evaluators.NewZerocheck(prod, 2, 1)
	if err != nil {
		t.Fatalf("NewZerocheck: %v", err)
	}

	ps, err := sumcheck.NewProverState(2, []multilinear.Multilinear{m, eq}, never)
	if err != nil {
		t.Fatalf("NewProverState: %v", err)
	}
	got := ps.SumRoundEvals(evaluators.FromZerocheck(zc))

	want := make([]towerfield.F, 2)
	for vertex := 0; vertex < 2; vertex++ {
		m0, _ := m.HypercubeEval(2 * vertex)
		m1, _ := m.HypercubeEval(2*vertex + 1)
		eq0, _ := eq.HypercubeEval(2 * vertex)
		eq1, _ := eq.HypercubeEval(2*vertex + 1)
		for k, x := range evaluators.Domain(2) {
			mx := towerfield.ExtrapolateLine(m0, m1, x)
			eqx := towerfield.ExtrapolateLine(eq0, eq1, x)
			want[k] = want[k].Add(mx.Mul(eqx))
		}
	}
	for k := range want {
		if !got[k].Equal(want[k]) {
			t.Fatalf("zerocheck eval[%d] = %v, want %v", k, got[k], want[k])
		}
	}
}
