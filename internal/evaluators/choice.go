package evaluators

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Choice dispatches to whichever of Regular or Zerocheck it was built
// from, so that sumcheck.ProverState can be generic over the evaluator
// kind at a single call site. This is a Go rendering of the
// Either<L, R> SumcheckEvaluator combinator in the original prover:
// Rust gets a blanket impl over an enum with two variants; here the two
// constructors simply leave the other field nil.
type Choice struct {
	regular   *Regular
	zerocheck *Zerocheck
}

// FromRegular wraps a Regular evaluator as a Choice.
func FromRegular(r *Regular) Choice { return Choice{regular: r} }

// FromZerocheck wraps a Zerocheck evaluator as a Choice.
func FromZerocheck(z *Zerocheck) Choice { return Choice{zerocheck: z} }

func (c Choice) NRoundEvals() int {
	switch {
	case c.regular != nil:
		return c.regular.NRoundEvals()
	case c.zerocheck != nil:
		return c.zerocheck.NRoundEvals()
	default:
		panic(fmt.Errorf("evaluators: Choice holds neither a Regular nor a Zerocheck evaluator"))
	}
}

func (c Choice) ProcessVertex(index int, evals0, evals1, evalsZ, roundEvals []towerfield.F) {
	switch {
	case c.regular != nil:
		c.regular.ProcessVertex(index, evals0, evals1, evalsZ, roundEvals)
	case c.zerocheck != nil:
		c.zerocheck.ProcessVertex(index, evals0, evals1, evalsZ, roundEvals)
	default:
		panic(fmt.Errorf("evaluators: Choice holds neither a Regular nor a Zerocheck evaluator"))
	}
}
