package sumcheck

import (
	"fmt"

	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Fold applies the verifier's challenge for the round just summed,
// advancing the prover to the next round.
//
// Fold is not transactional: if an operand's PartialLow fails partway
// through the operand vector, earlier operands in the vector have
// already been replaced. Callers must treat the ProverState as poisoned
// on any error from Fold.
func (ps *ProverState) Fold(challenge towerfield.F) error {
	if ps.round >= ps.nRounds {
		return &Error{Code: ErrProverExhausted, Details: fmt.Sprintf("fold called after all %d rounds completed", ps.nRounds)}
	}

	ps.round++

	// Update the shared tensor before any switchover below, since
	// switchover consumes the updated tensor.
	if ps.query != nil {
		expanded, err := ps.query.Update([]towerfield.F{challenge})
		if err != nil {
			return errPolynomialFailure(err, "extending tensor query")
		}
		ps.query = expanded
	}

	// One-variable query for halving already-folded operands.
	partialQuery, err := multilinear.WithFullQuery([]towerfield.F{challenge})
	if err != nil {
		return errPolynomialFailure(err, "building one-variable fold query")
	}

	anyTransparentLeft := false

	for i := range ps.operands {
		op := &ps.operands[i]

		switch {
		case op.isTransparent() && op.switchover <= ps.round:
			// Switchover event: perform the full low-variable partial
			// evaluation in the large field and replace the record.
			large, err := op.transparent.PartialLow(ps.query)
			if err != nil {
				return errPolynomialFailure(err, fmt.Sprintf("switchover of operand %d", i))
			}
			op.transparent = nil
			op.folded = large

		case op.isTransparent():
			anyTransparentLeft = true

		default:
			// Already folded: halve against the one-variable query.
			next, err := op.folded.PartialLow(partialQuery)
			if err != nil {
				return errPolynomialFailure(err, fmt.Sprintf("halving operand %d", i))
			}
			op.folded = next
		}
	}

	if !anyTransparentLeft {
		ps.query = nil
	}

	return nil
}
