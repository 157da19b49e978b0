package sumcheck

import "github.com/vybium/vybium-sumcheck/internal/towerfield"

// Evaluator decides which univariate evaluation points a round samples
// and how those samples combine into round polynomial coefficients.
// This abstraction is what unifies regular sumcheck and zerocheck: the
// prover is oblivious to which concrete Evaluator it was handed.
//
// Implementations must be safe to call concurrently from many workers,
// each with its own evalsZ scratch and roundEvals accumulator - an
// Evaluator must not itself synchronize, and ProcessVertex must not
// observe state written by another worker's call.
type Evaluator interface {
	// NRoundEvals is the number of univariate samples accumulated per
	// round. Must be constant over the evaluator's lifetime.
	NRoundEvals() int

	// ProcessVertex is given that at hypercube vertex index, each of the
	// operands has samples at X=0 (evals0[j]) and X=1 (evals1[j]). It may
	// use the writable scratch evalsZ (length len(evals0)) to compute any
	// higher-X extrapolations it needs, and must accumulate this
	// vertex's contribution into roundEvals (length NRoundEvals()).
	ProcessVertex(index int, evals0, evals1 []towerfield.F, evalsZ, roundEvals []towerfield.F)
}
