package multilinear

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Query is the tensor product ⊗_i (1-c_i, c_i) of an ordered sequence of
// prior round challenges, materialized as a length-2^n_vars slice.
// Multiple still-Transparent operands share one Query to amortize the
// cost of expanding it once per round rather than once per operand.
type Query struct {
	capacity   int
	challenges []towerfield.F
	tensor     []towerfield.F
}

// New allocates an empty query sized to hold up to capacity challenges.
func New(capacity int) (*Query, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("multilinear: query capacity must be non-negative, got %d", capacity)
	}
	return &Query{
		capacity:   capacity,
		challenges: nil,
		tensor:     []towerfield.F{towerfield.FOne()},
	}, nil
}

// WithFullQuery builds a query directly from a full slice of challenges,
// without a pre-allocated capacity. Used to build the one-variable
// folding query Q1 = [1-challenge, challenge] in the fold engine.
func WithFullQuery(challenges []towerfield.F) (*Query, error) {
	q, err := New(len(challenges))
	if err != nil {
		return nil, err
	}
	return q.Update(challenges)
}

// NVars returns the number of challenges folded into this query so far.
func (q *Query) NVars() int {
	return len(q.challenges)
}

// Capacity returns the maximum number of challenges this query was
// allocated to hold.
func (q *Query) Capacity() int {
	return q.capacity
}

// Tensor returns the expanded tensor product, of length 2^NVars().
func (q *Query) Tensor() []towerfield.F {
	return q.tensor
}

// Update appends newChallenges to the query, doubling the tensor's
// length for each one. It does not mutate q; it returns the expanded
// query, matching the append-one interface the prover's fold engine
// consumes each round.
//
// Each new challenge c splits the tensor into a low half (scaled by
// 1-c) and a high half (scaled by c), rather than interleaving: this
// keeps the first-ever-appended challenge bound to tensor index bit 0,
// matching contract's (base<<m)|a addressing, where bit 0 of a is the
// first remaining-variable to be contracted away. Interleaving would
// instead bind the most-recently-appended challenge to bit 0, reversing
// variable order relative to repeated single-variable halving.
func (q *Query) Update(newChallenges []towerfield.F) (*Query, error) {
	if len(q.challenges)+len(newChallenges) > q.capacity {
		return nil, fmt.Errorf(
			"multilinear: query overflow: capacity %d, have %d, appending %d",
			q.capacity, len(q.challenges), len(newChallenges),
		)
	}

	challenges := make([]towerfield.F, len(q.challenges), len(q.challenges)+len(newChallenges))
	copy(challenges, q.challenges)

	tensor := make([]towerfield.F, len(q.tensor))
	copy(tensor, q.tensor)

	for _, c := range newChallenges {
		oneMinusC := towerfield.FOne().Sub(c)
		half := len(tensor)
		expanded := make([]towerfield.F, half*2)
		for i, v := range tensor {
			expanded[i] = v.Mul(oneMinusC)
			expanded[i+half] = v.Mul(c)
		}
		tensor = expanded
		challenges = append(challenges, c)
	}

	return &Query{
		capacity:   q.capacity,
		challenges: challenges,
		tensor:     tensor,
	}, nil
}

// contract computes Σ_a tensor[a] * values[(base<<m)|a] for a concrete
// slice of scalar values, where m = q.NVars(). Both PartialLow and
// SubcubeEval reduce to this: the former materializes it for every
// remaining-variable vertex, the latter evaluates it at just one.
func (q *Query) contract(values []towerfield.F, base int) towerfield.F {
	m := q.NVars()
	acc := towerfield.FZero()
	offset := base << uint(m)
	for a, weight := range q.tensor {
		acc = acc.Add(weight.Mul(values[offset+a]))
	}
	return acc
}
