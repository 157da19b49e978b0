package composition

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Composition is a low-degree polynomial that combines the per-vertex
// evaluations of a sumcheck instance's operands into a single field
// element. Evaluator implementations compose operand evaluations
// through one of these at each domain point of a round polynomial.
type Composition interface {
	// NVars reports how many operand evaluations Evaluate expects.
	NVars() int

	// Evaluate composes point, which must have length NVars().
	Evaluate(point []towerfield.F) (towerfield.F, error)
}

func errArity(c Composition, got int) error {
	return fmt.Errorf("composition: expected %d operand evaluations, got %d", c.NVars(), got)
}

func errInvalidArity(name string, n int) error {
	return fmt.Errorf("composition: %s requires a positive arity, got %d", name, n)
}
