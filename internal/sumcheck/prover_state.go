package sumcheck

import (
	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// ProverState is a prover state machine for a generalized multivariate
// sumcheck protocol. Given a composite polynomial built from several
// multilinear operands over a hypercube of dimension n, it produces, in
// each of n rounds, the univariate round polynomial's coefficients, and
// consumes the verifier's random challenge for that round.
//
// Each operand is associated with a switchover round, which controls a
// time/memory tradeoff: in rounds before switchover, partial evaluation
// is obtained by doing small-field * large-field inner products
// (SubcubeEval), with no additional memory; after switchover, the inner
// products are stored in a newly materialized large-field multilinear,
// halved each round.
//
// Once constructed, the expected caller behavior is to alternate
// SumRoundEvals and Fold, for a total of n_rounds calls to each.
type ProverState struct {
	operands []operand
	query    *multilinear.Query
	round    int
	nRounds  int
}

// SwitchoverFunc decides, given an operand's extension degree, the round
// at which that operand should switch over from Transparent to Folded.
// It is consulted once per operand, in NewProverState.
type SwitchoverFunc func(extensionDegree int) int

// NewProverState constructs a ProverState for nRounds rounds over the
// given operands, consulting switchoverFn once per operand to decide its
// switchover round.
//
// NewProverState fully validates every operand's variable count before retaining
// any of them; on error it returns before allocating the tensor query.
func NewProverState(nRounds int, operands []multilinear.Multilinear, switchoverFn SwitchoverFunc) (*ProverState, error) {
	maxQueryVars := 1

	wrapped := make([]operand, len(operands))
	for i, m := range operands {
		if m.NVars() != nRounds {
			return nil, errIncorrectNumberOfVariables(nRounds, m.NVars())
		}

		switchover := switchoverFn(m.ExtensionDegree())
		if switchover > maxQueryVars {
			maxQueryVars = switchover
		}
		wrapped[i] = newTransparentOperand(m, switchover)
	}

	query, err := multilinear.New(maxQueryVars)
	if err != nil {
		return nil, errPolynomialFailure(err, "allocating tensor query")
	}

	return &ProverState{
		operands: wrapped,
		query:    query,
		round:    0,
		nRounds:  nRounds,
	}, nil
}

// Round returns the number of Fold calls made so far.
func (ps *ProverState) Round() int { return ps.round }

// NRounds returns the total number of rounds this prover was constructed
// for.
func (ps *ProverState) NRounds() int { return ps.nRounds }

// hasTensor reports whether the shared tensor query is still retained
// (i.e. whether any operand remains Transparent).
func (ps *ProverState) hasTensor() bool { return ps.query != nil }

// zeroRoundEvals returns an all-zero round-evaluation vector of length n,
// used by the round-sum engine as the empty sum and as each reduction's
// starting value.
func zeroRoundEvals(n int) []towerfield.F {
	return make([]towerfield.F, n)
}
