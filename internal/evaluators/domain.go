package evaluators

import "github.com/vybium/vybium-sumcheck/internal/towerfield"

// Domain returns the first n nonzero field elements {1, 2, ..., n},
// encoded as towerfield.F, in the byte representation of the tower's
// base field. Regular and Zerocheck both sample their composition along
// a prefix of this sequence.
func Domain(n int) []towerfield.F {
	points := make([]towerfield.F, n)
	for i := range points {
		points[i] = towerfield.FNew(byte(i + 1))
	}
	return points
}
