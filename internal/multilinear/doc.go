// Package multilinear implements the multilinear polynomial abstraction
// the sumcheck prover operates over: hypercube-vertex evaluation,
// partial low-variable evaluation against a tensor query, and the
// subcube inner product evaluation that combines hypercube sampling
// with tensor contraction.
//
// These are external collaborators of internal/sumcheck: the prover
// state only calls the methods of the Multilinear interface and Query,
// never reaches into their storage.
package multilinear
