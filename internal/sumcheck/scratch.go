package sumcheck

import "github.com/vybium/vybium-sumcheck/internal/towerfield"

// parFoldState is the per-worker scratch area used by the round-sum
// engine: evaluations at X=0 and X=1 per operand, a writable scratch for
// higher-X extrapolations, and the accumulated round evaluations. Each
// worker owns one of these; there is no interior mutability shared
// across workers, which is what makes the reduction at the end of
// SumRoundEvals associative and commutative without locking.
type parFoldState struct {
	evals0     []towerfield.F
	evals1     []towerfield.F
	evalsZ     []towerfield.F
	roundEvals []towerfield.F
}

func newParFoldState(nOperands, nRoundEvals int) parFoldState {
	return parFoldState{
		evals0:     make([]towerfield.F, nOperands),
		evals1:     make([]towerfield.F, nOperands),
		evalsZ:     make([]towerfield.F, nOperands),
		roundEvals: make([]towerfield.F, nRoundEvals),
	}
}
