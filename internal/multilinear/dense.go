package multilinear

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Dense is a small-field multilinear polynomial: a dense table of GF(2)
// evaluations over the Boolean hypercube {0,1}^NVars. It is the
// externally-owned source polynomial a Transparent operand borrows
// without copying.
type Dense struct {
	nVars  int
	values []towerfield.Bit
}

// NewDense wraps values as a Dense multilinear over nVars variables.
// len(values) must equal 2^nVars.
func NewDense(nVars int, values []towerfield.Bit) (*Dense, error) {
	want := 1 << uint(nVars)
	if len(values) != want {
		return nil, fmt.Errorf("multilinear: dense table has %d entries, want %d for %d vars", len(values), want, nVars)
	}
	return &Dense{nVars: nVars, values: values}, nil
}

// NVars implements Multilinear.
func (d *Dense) NVars() int { return d.nVars }

// ExtensionDegree implements Multilinear: Dense data lives in GF(2),
// packed 8 bits to one GF(2^8) scalar.
func (d *Dense) ExtensionDegree() int { return towerfield.ExtensionDegreeBits }

// HypercubeEval implements Multilinear.
func (d *Dense) HypercubeEval(index int) (towerfield.F, error) {
	if index < 0 || index >= len(d.values) {
		return 0, fmt.Errorf("multilinear: hypercube index %d out of range [0,%d)", index, len(d.values))
	}
	return d.values[index].ToF(), nil
}

// valuesAsF embeds the GF(2) table into GF(2^8) on each call; both SubcubeEval
// and PartialLow contract over embedded values so the tensor arithmetic
// stays in a single field.
func (d *Dense) valuesAsF() []towerfield.F {
	out := make([]towerfield.F, len(d.values))
	for i, b := range d.values {
		out[i] = b.ToF()
	}
	return out
}

// SubcubeEval implements Multilinear: contracts the bits covered by
// query's prefix of variables, evaluated at the remaining-variable
// vertex index.
func (d *Dense) SubcubeEval(index int, query *Query) (towerfield.F, error) {
	m := query.NVars()
	rdVars := d.nVars - m
	if rdVars < 0 {
		return 0, fmt.Errorf("multilinear: query has more variables (%d) than multilinear (%d)", m, d.nVars)
	}
	if index < 0 || index >= (1<<uint(rdVars)) {
		return 0, fmt.Errorf("multilinear: subcube index %d out of range [0,%d)", index, 1<<uint(rdVars))
	}
	return query.contract(d.valuesAsF(), index), nil
}

// PartialLow implements Multilinear: the switchover event. Every
// remaining-variable vertex is contracted against query's tensor,
// materializing a Folded multilinear in the large field.
func (d *Dense) PartialLow(query *Query) (*Folded, error) {
	m := query.NVars()
	rdVars := d.nVars - m
	if rdVars < 0 {
		return nil, fmt.Errorf("multilinear: query has more variables (%d) than multilinear (%d)", m, d.nVars)
	}

	embedded := d.valuesAsF()
	out := make([]towerfield.F, 1<<uint(rdVars))
	for i := range out {
		out[i] = query.contract(embedded, i)
	}
	return NewFolded(rdVars, out)
}
