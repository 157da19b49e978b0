package sumcheck

import "github.com/vybium/vybium-sumcheck/internal/multilinear"

// operand is a tagged variant carrying one of two payloads: the original
// small-field multilinear, not yet materialized (transparent), or a
// densely materialized large-field multilinear, halved each round
// (folded). It is intentionally a closed sum type rather than an open
// interface: the two variants hold different storage (borrowed vs.
// owned, small-field vs. large-field) and are routed through different
// sampling kernels in the round-sum engine.
type operand struct {
	// transparent holds the externally-owned small-field multilinear
	// while folded is nil; switchover is the round at which this
	// operand transitions. Invariant: only valid while round < switchover.
	transparent multilinear.Multilinear
	switchover  int

	// folded holds the owned large-field materialization once this
	// operand has switched over; transparent is nil in that case.
	folded *multilinear.Folded
}

func newTransparentOperand(data multilinear.Multilinear, switchover int) operand {
	return operand{transparent: data, switchover: switchover}
}

func (o *operand) isTransparent() bool { return o.folded == nil }
func (o *operand) isFolded() bool      { return o.folded != nil }
