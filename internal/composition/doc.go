// Package composition provides the low-degree composition polynomials
// that evaluators.Regular and evaluators.Zerocheck compose multilinear
// operand evaluations through. The sumcheck prover itself never
// references this package - the composition polynomial is always an
// external collaborator from its point of view - but the evaluator
// plug-ins and the demo CLI need a concrete composition to exercise,
// following an R1CS constraint's a*b = c shape.
package composition
