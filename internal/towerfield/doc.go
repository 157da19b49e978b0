// Package towerfield implements the small finite field tower that the
// sumcheck prover operates over: a base scalar field F = GF(2^8), a
// one-bit subfield Bit = GF(2) that small-field operands are built
// from, and a packed field P whose Scalar is F.
//
// internal/sumcheck treats all three as external collaborators: it only
// calls their arithmetic methods, never reaches into their
// representation.
package towerfield
