// Package vybiumsumcheck is the public entry point to vybium-sumcheck:
// a generalized multivariate sumcheck prover over a binary field tower.
//
// Quick start:
//
//	operands := []vybiumsumcheck.Multilinear{a, b}
//	ps, err := vybiumsumcheck.NewProverState(nRounds, operands, switchoverFn)
//	...
//	eval := vybiumsumcheck.FromRegular(regular)
//	for round := 0; round < nRounds; round++ {
//		coeffs := ps.SumRoundEvals(eval)
//		// ... interpolate coeffs into the round polynomial, send it to
//		// the verifier, receive a challenge back ...
//		if err := ps.Fold(challenge); err != nil {
//			return err
//		}
//	}
//
// This package only re-exports the stable surface of
// internal/sumcheck, internal/multilinear, internal/evaluators and
// internal/composition, which hold the actual implementation and are
// not importable outside this module.
package vybiumsumcheck
