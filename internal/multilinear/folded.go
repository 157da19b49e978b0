package multilinear

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Folded is a large-field multilinear extension: a dense table of F
// evaluations, owned by the prover that materialized it. It is halved
// in size every subsequent fold round.
type Folded struct {
	nVars  int
	values []towerfield.F
}

// NewFolded wraps values as a Folded multilinear over nVars variables.
// len(values) must equal 2^nVars.
func NewFolded(nVars int, values []towerfield.F) (*Folded, error) {
	want := 1 << uint(nVars)
	if len(values) != want {
		return nil, fmt.Errorf("multilinear: folded table has %d entries, want %d for %d vars", len(values), want, nVars)
	}
	return &Folded{nVars: nVars, values: values}, nil
}

// NVars implements Multilinear.
func (f *Folded) NVars() int { return f.nVars }

// ExtensionDegree implements Multilinear: a folded operand is already a
// dense large-field table, so no further packing applies.
func (f *Folded) ExtensionDegree() int { return 1 }

// HypercubeEval implements Multilinear.
func (f *Folded) HypercubeEval(index int) (towerfield.F, error) {
	if index < 0 || index >= len(f.values) {
		return 0, fmt.Errorf("multilinear: hypercube index %d out of range [0,%d)", index, len(f.values))
	}
	return f.values[index], nil
}

// SubcubeEval implements Multilinear. The round-sum engine's kernels
// never invoke this for a Folded operand (they always direct-sample),
// but the method is implemented generally, identically to Dense, so
// Folded satisfies the Multilinear interface on its own.
func (f *Folded) SubcubeEval(index int, query *Query) (towerfield.F, error) {
	m := query.NVars()
	rdVars := f.nVars - m
	if rdVars < 0 {
		return 0, fmt.Errorf("multilinear: query has more variables (%d) than multilinear (%d)", m, f.nVars)
	}
	if index < 0 || index >= (1<<uint(rdVars)) {
		return 0, fmt.Errorf("multilinear: subcube index %d out of range [0,%d)", index, 1<<uint(rdVars))
	}
	return query.contract(f.values, index), nil
}

// PartialLow implements Multilinear: used each round to halve a Folded
// operand against the one-variable query Q1 = [1-challenge, challenge].
func (f *Folded) PartialLow(query *Query) (*Folded, error) {
	m := query.NVars()
	rdVars := f.nVars - m
	if rdVars < 0 {
		return nil, fmt.Errorf("multilinear: query has more variables (%d) than multilinear (%d)", m, f.nVars)
	}

	out := make([]towerfield.F, 1<<uint(rdVars))
	for i := range out {
		out[i] = query.contract(f.values, i)
	}
	return NewFolded(rdVars, out)
}
