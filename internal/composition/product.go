package composition

import "github.com/vybium/vybium-sumcheck/internal/towerfield"

// Product composes n operand evaluations by multiplying them together.
// This is the simplest nontrivial composition exercised by the Regular
// evaluator and the demo CLI's toy instance.
type Product struct {
	n int
}

// NewProduct returns a Product composition over n operands. n must be
// at least 1.
func NewProduct(n int) (*Product, error) {
	if n < 1 {
		return nil, errInvalidArity("product", n)
	}
	return &Product{n: n}, nil
}

func (p *Product) NVars() int { return p.n }

func (p *Product) Evaluate(point []towerfield.F) (towerfield.F, error) {
	if len(point) != p.n {
		return towerfield.F(0), errArity(p, len(point))
	}
	acc := towerfield.FOne()
	for _, v := range point {
		acc = acc.Mul(v)
	}
	return acc, nil
}
