package multilinear

import "github.com/vybium/vybium-sumcheck/internal/towerfield"

// Multilinear is the external interface the sumcheck prover consumes for
// each operand's payload, regardless of whether it is still
// small-field (Dense) or already materialized in the large field
// (Folded).
type Multilinear interface {
	// NVars is the number of variables this multilinear is defined over.
	NVars() int

	// ExtensionDegree is the number of small-field elements packed into
	// one large-field scalar for this multilinear's representation. Fed
	// to the caller-supplied switchover_fn.
	ExtensionDegree() int

	// HypercubeEval returns the evaluation at hypercube vertex index, in
	// [0, 2^NVars()).
	HypercubeEval(index int) (towerfield.F, error)

	// SubcubeEval contracts this multilinear over the variables covered
	// by query, returning the evaluation at remaining-variable vertex
	// index, in [0, 2^(NVars()-query.NVars())).
	SubcubeEval(index int, query *Query) (towerfield.F, error)

	// PartialLow performs a full low-variable partial evaluation against
	// query, returning a materialized Folded multilinear over
	// NVars()-query.NVars() variables.
	PartialLow(query *Query) (*Folded, error)
}
