package evaluators

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/composition"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Zerocheck evaluates a composition gated by a per-vertex equality
// indicator operand, exploiting the identity that the round polynomial
// vanishes at X=0 by construction: like Regular it never samples X=0,
// sampling the domain {1, ..., degree}. The
// equality indicator is supplied as just another operand in the
// sumcheck instance, identified by eqIndex, and is multiplied into the
// composed value rather than passed through the composition itself.
type Zerocheck struct {
	comp    composition.Composition
	degree  int
	domain  []towerfield.F
	eqIndex int
}

// NewZerocheck builds a Zerocheck evaluator for comp over operands other
// than the one at eqIndex, which must hold the equality indicator
// multilinear eq(r, x) for the sumcheck instance's verifier challenges.
func NewZerocheck(comp composition.Composition, degree, eqIndex int) (*Zerocheck, error) {
	if degree < 1 {
		return nil, fmt.Errorf("evaluators: Zerocheck requires degree >= 1, got %d", degree)
	}
	if eqIndex < 0 {
		return nil, fmt.Errorf("evaluators: Zerocheck requires a non-negative eqIndex, got %d", eqIndex)
	}
	return &Zerocheck{
		comp:    comp,
		degree:  degree,
		domain:  Domain(degree),
		eqIndex: eqIndex,
	}, nil
}

func (z *Zerocheck) NRoundEvals() int { return z.degree }

func (z *Zerocheck) ProcessVertex(_ int, evals0, evals1, evalsZ, roundEvals []towerfield.F) {
	subset := make([]towerfield.F, 0, len(evals0)-1)

	for k, x := range z.domain {
		for j := range evals0 {
			evalsZ[j] = towerfield.ExtrapolateLine(evals0[j], evals1[j], x)
		}

		subset = subset[:0]
		for j, v := range evalsZ {
			if j == z.eqIndex {
				continue
			}
			subset = append(subset, v)
		}

		composed := mustEvaluate(z.comp, subset)
		roundEvals[k] = roundEvals[k].Add(composed.Mul(evalsZ[z.eqIndex]))
	}
}
