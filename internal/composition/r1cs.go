package composition

import "github.com/vybium/vybium-sumcheck/internal/towerfield"

// R1CS composes the three per-constraint operand evaluations of a
// rank-1 constraint system - a, b, c, laid out in that order - into
// a*b - c. A sumcheck instance built over this composition proves that
// every hypercube vertex satisfies its constraint, mirroring the
// (A*w)*(B*w) = C*w shape of protocols.R1CS.SetConstraint.
type R1CS struct{}

func (R1CS) NVars() int { return 3 }

func (R1CS) Evaluate(point []towerfield.F) (towerfield.F, error) {
	r := R1CS{}
	if len(point) != r.NVars() {
		return towerfield.F(0), errArity(r, len(point))
	}
	a, b, c := point[0], point[1], point[2]
	return a.Mul(b).Sub(c), nil
}
