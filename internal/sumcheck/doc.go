// Package sumcheck implements the prover state machine for a
// generalized multivariate sumcheck protocol over a finite field tower,
// as used in succinct argument systems (regular sumcheck and
// zerocheck). Given a composite polynomial built from several
// multilinear operands over a hypercube of dimension n, ProverState
// interactively convinces a verifier of a claimed sum by sending, in
// each of n rounds, a univariate polynomial and receiving a random
// challenge.
//
// The package owns the per-operand switchover optimization that trades
// memory for multiplication cost, and the parallel round-sum engine. It
// does not own the field tower arithmetic, the multilinear polynomial
// abstraction, the outer transcript, or the SumcheckEvaluator
// implementations. Those are external collaborators, consumed through
// the multilinear.Multilinear and Evaluator interfaces.
package sumcheck
