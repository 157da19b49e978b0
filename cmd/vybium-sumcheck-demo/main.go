// Command vybium-sumcheck-demo drives one full sumcheck.ProverState
// round-trip over a toy instance read from stdin, printing each round's
// coefficients to stdout as JSON lines. It exists to exercise the
// library end to end; it is not a reference transcript implementation -
// the challenge derivation below is a standalone, deterministic stand-in
// for the Fiat-Shamir transcript the package explicitly does not own.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/vybium/vybium-sumcheck/internal/composition"
	"github.com/vybium/vybium-sumcheck/internal/evaluators"
	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/sumcheck"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Instance is the stdin input format: one dense Boolean table per
// operand, each of length 2^NVars, plus which composition to run and
// when operands should switch over.
type Instance struct {
	NVars       int     `json:"n_vars"`
	Operands    [][]int `json:"operands"`
	Composition string  `json:"composition"` // "product" or "r1cs"
	Switchover  int     `json:"switchover"`  // round at which every operand switches over
}

// RoundRecord is one line of demo output: the round index, the sampled
// round evaluations, and the challenge the demo's stand-in transcript
// derived for it.
type RoundRecord struct {
	Round      int    `json:"round"`
	RoundEvals []byte `json:"round_evals"`
	Challenge  byte   `json:"challenge"`
}

func main() {
	cfg := DefaultRunConfig()
	if err := cfg.Validate(); err != nil {
		fatal(fmt.Sprintf("invalid run config: %v", err))
	}
	cfg.applyWorkers()

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fatal("failed to read instance")
	}

	var instance Instance
	if err := json.Unmarshal(scanner.Bytes(), &instance); err != nil {
		fatal(fmt.Sprintf("failed to parse instance: %v", err))
	}
	if instance.Composition == "" {
		instance.Composition = cfg.Evaluator
	}
	if instance.NVars == 0 {
		instance.NVars = cfg.NVars
	}

	operands, err := buildOperands(instance)
	if err != nil {
		fatal(fmt.Sprintf("failed to build operands: %v", err))
	}

	switchoverAt := instance.Switchover
	switchoverFn := func(int) int { return switchoverAt }

	logStderr(fmt.Sprintf("constructing prover state over %d rounds, %d operands", instance.NVars, len(operands)))
	ps, err := sumcheck.NewProverState(instance.NVars, operands, switchoverFn)
	if err != nil {
		fatal(fmt.Sprintf("failed to construct prover state: %v", err))
	}

	eval, err := buildEvaluator(instance.Composition, len(operands))
	if err != nil {
		fatal(fmt.Sprintf("failed to build evaluator: %v", err))
	}

	transcript := newStandInTranscript()

	for round := 0; round < instance.NVars; round++ {
		coeffs := ps.SumRoundEvals(eval)

		encoded := make([]byte, len(coeffs))
		for i, c := range coeffs {
			encoded[i] = c.Byte()
		}

		challenge := transcript.next(round, encoded)

		record := RoundRecord{Round: round, RoundEvals: encoded, Challenge: challenge.Byte()}
		line, err := json.Marshal(record)
		if err != nil {
			fatal(fmt.Sprintf("failed to serialize round %d: %v", round, err))
		}
		os.Stdout.Write(line)
		os.Stdout.Write([]byte("\n"))

		if err := ps.Fold(challenge); err != nil {
			fatal(fmt.Sprintf("fold failed at round %d: %v", round, err))
		}
	}

	logStderr("sumcheck round-trip complete")
}

func buildOperands(instance Instance) ([]multilinear.Multilinear, error) {
	operands := make([]multilinear.Multilinear, len(instance.Operands))
	for i, table := range instance.Operands {
		values := make([]towerfield.Bit, len(table))
		for j, v := range table {
			values[j] = towerfield.BitFromInt(v)
		}
		d, err := multilinear.NewDense(instance.NVars, values)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		operands[i] = d
	}
	return operands, nil
}

func buildEvaluator(kind string, nOperands int) (sumcheck.Evaluator, error) {
	switch kind {
	case "product":
		comp, err := composition.NewProduct(nOperands)
		if err != nil {
			return nil, err
		}
		reg, err := evaluators.NewRegular(comp, nOperands)
		if err != nil {
			return nil, err
		}
		return evaluators.FromRegular(reg), nil
	case "r1cs":
		if nOperands != 3 {
			return nil, fmt.Errorf("r1cs composition requires exactly 3 operands, got %d", nOperands)
		}
		reg, err := evaluators.NewRegular(composition.R1CS{}, 2)
		if err != nil {
			return nil, err
		}
		return evaluators.FromRegular(reg), nil
	default:
		return nil, fmt.Errorf("unknown composition %q", kind)
	}
}

// standInTranscript derives a per-round challenge from a blake2b digest
// of the round index and that round's evaluations, so repeated runs
// over the same instance are reproducible without a real Fiat-Shamir
// transcript, which this package does not own.
type standInTranscript struct {
	state []byte
}

func newStandInTranscript() *standInTranscript {
	return &standInTranscript{state: []byte("vybium-sumcheck-demo")}
}

func (t *standInTranscript) next(round int, roundEvals []byte) towerfield.F {
	h, _ := blake2b.New256(nil)
	h.Write(t.state)
	h.Write([]byte{byte(round)})
	h.Write(roundEvals)
	digest := h.Sum(nil)
	t.state = digest
	return towerfield.FNew(digest[0])
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-sumcheck-demo:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
