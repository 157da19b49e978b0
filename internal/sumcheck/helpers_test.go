package sumcheck

import (
	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// sumEvaluator is a minimal test-only Evaluator: it samples only X=0 and
// accumulates the sole operand's value, so SumRoundEvals(sumEvaluator)
// computes the plaintext sum of operand 0 over the X=0 half of the
// remaining hypercube (the even-indexed vertices). It exists
// purely to exercise ProverState's internal dispatch without pulling in
// a real composition, which would create a needless dependency for
// these mechanics-level tests.
type sumEvaluator struct{}

func (sumEvaluator) NRoundEvals() int { return 1 }

func (sumEvaluator) ProcessVertex(_ int, evals0, _ []towerfield.F, _ []towerfield.F, roundEvals []towerfield.F) {
	roundEvals[0] = roundEvals[0].Add(evals0[0])
}

// bitsOf builds a Dense multilinear from a small list of ints (0 or 1).
func bitsOf(nVars int, vs ...int) *multilinear.Dense {
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
