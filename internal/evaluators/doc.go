// Package evaluators provides the SumcheckEvaluator plug-ins that drive
// sumcheck.ProverState's round-sum engine: Regular, for a plain
// composition over the hypercube, and Zerocheck, for a composition
// gated by a per-vertex equality indicator. Choice composes the two
// behind a single sumcheck.Evaluator, mirroring the Either<L, R>
// evaluator combinator in the original binius sumcheck prover.
//
// Neither Regular nor Zerocheck owns round-polynomial interpolation or
// the outer transcript; they only produce the round evaluation vector
// that sumcheck.ProverState.SumRoundEvals asks for.
package evaluators
