package evaluators

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/composition"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Regular evaluates a composition polynomial of the given degree at X=1
// plus degree-1 points extrapolated from the X=0/X=1 samples, mirroring
// compute_round_coeffs's domain {1, ..., degree} in the original prover
// (the X=0 sample itself is never composed here - the round polynomial's
// constant coefficient is recovered by the outer transcript from the
// previous round's claimed sum, which is out of this package's scope).
type Regular struct {
	comp   composition.Composition
	degree int
	domain []towerfield.F
}

// NewRegular builds a Regular evaluator for comp, which must have
// degree+1 or fewer operands worth of nonlinearity expressed through
// its NVars() arity (one evaluation per operand, at each domain point).
func NewRegular(comp composition.Composition, degree int) (*Regular, error) {
	if degree < 1 {
		return nil, fmt.Errorf("evaluators: Regular requires degree >= 1, got %d", degree)
	}
	return &Regular{
		comp:   comp,
		degree: degree,
		domain: Domain(degree),
	}, nil
}

func (r *Regular) NRoundEvals() int { return r.degree }

func (r *Regular) ProcessVertex(_ int, evals0, evals1, evalsZ, roundEvals []towerfield.F) {
	for k, x := range r.domain {
		for j := range evals0 {
			evalsZ[j] = towerfield.ExtrapolateLine(evals0[j], evals1[j], x)
		}
		v := mustEvaluate(r.comp, evalsZ)
		roundEvals[k] = roundEvals[k].Add(v)
	}
}

func mustEvaluate(c composition.Composition, point []towerfield.F) towerfield.F {
	v, err := c.Evaluate(point)
	if err != nil {
		// Neither NewRegular nor NewZerocheck checks the composition's
		// arity against the operand count; a mismatch surfaces here and
		// means the evaluator was built against the wrong composition.
		panic(err)
	}
	return v
}
