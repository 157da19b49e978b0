package sumcheck

import (
	"runtime"
	"sync"

	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// SumRoundEvals computes the sum of the partial polynomial evaluations
// over the hypercube for the current round, dispatching evaluator's
// ProcessVertex for each remaining hypercube vertex and reducing the
// per-worker accumulators by element-wise addition.
//
// SumRoundEvals has no fallible path of its own: Multilinear's
// HypercubeEval/SubcubeEval are asserted in-range by construction, since
// the vertex indices this engine generates are always within
// [0, 2^(n_vars-round)) by the invariants ProverState maintains. A
// violation would indicate invariant corruption, not a user error, so it
// panics rather than returning an error.
func (ps *ProverState) SumRoundEvals(evaluator Evaluator) []towerfield.F {
	nRoundEvals := evaluator.NRoundEvals()
	rdVars := ps.nRounds - ps.round
	if rdVars <= 0 {
		// Called too many times; defined as the empty sum.
		return zeroRoundEvals(nRoundEvals)
	}

	total := 1 << uint(rdVars-1)

	anyTransparent, anyFolded := false, false
	for i := range ps.operands {
		if ps.operands[i].isTransparent() {
			anyTransparent = true
		} else {
			anyFolded = true
		}
	}

	// Three specialized kernels, plus the mixed fallback, matching the
	// four dispatch cases in the component design.
	switch {
	case anyTransparent && !anyFolded && ps.round == 0:
		return ps.sumRoundEvalsHelper(total, evaluator, ps.sampleDirectTransparent)
	case anyTransparent && !anyFolded:
		return ps.sumRoundEvalsHelper(total, evaluator, ps.sampleSubcubeTransparent)
	case anyFolded && !anyTransparent:
		return ps.sumRoundEvalsHelper(total, evaluator, ps.sampleDirectFolded)
	default:
		return ps.sumRoundEvalsHelper(total, evaluator, ps.sampleMixed)
	}
}

// mustEval panics on an out-of-range evaluation, which by construction
// never happens for indices this package itself generates.
func mustEval(v towerfield.F, err error) towerfield.F {
	if err != nil {
		panic(err)
	}
	return v
}

func (ps *ProverState) sampleDirectTransparent(vertex int, evals0, evals1 []towerfield.F) {
	for j := range ps.operands {
		m := ps.operands[j].transparent
		evals0[j] = mustEval(m.HypercubeEval(2 * vertex))
		evals1[j] = mustEval(m.HypercubeEval(2*vertex + 1))
	}
}

func (ps *ProverState) sampleSubcubeTransparent(vertex int, evals0, evals1 []towerfield.F) {
	q := ps.query
	for j := range ps.operands {
		m := ps.operands[j].transparent
		evals0[j] = mustEval(m.SubcubeEval(2*vertex, q))
		evals1[j] = mustEval(m.SubcubeEval(2*vertex+1, q))
	}
}

func (ps *ProverState) sampleDirectFolded(vertex int, evals0, evals1 []towerfield.F) {
	for j := range ps.operands {
		m := ps.operands[j].folded
		evals0[j] = mustEval(m.HypercubeEval(2 * vertex))
		evals1[j] = mustEval(m.HypercubeEval(2*vertex + 1))
	}
}

func (ps *ProverState) sampleMixed(vertex int, evals0, evals1 []towerfield.F) {
	q := ps.query
	for j := range ps.operands {
		op := &ps.operands[j]
		if op.isTransparent() {
			evals0[j] = mustEval(op.transparent.SubcubeEval(2*vertex, q))
			evals1[j] = mustEval(op.transparent.SubcubeEval(2*vertex+1, q))
		} else {
			evals0[j] = mustEval(op.folded.HypercubeEval(2 * vertex))
			evals1[j] = mustEval(op.folded.HypercubeEval(2*vertex + 1))
		}
	}
}

// sumRoundEvalsHelper partitions [0, total) across a worker pool, each
// worker maintaining its own parFoldState, and reduces the partial
// round-evaluation vectors by element-wise addition once all workers
// finish.
func (ps *ProverState) sumRoundEvalsHelper(
	total int,
	evaluator Evaluator,
	sample func(vertex int, evals0, evals1 []towerfield.F),
) []towerfield.F {
	nOperands := len(ps.operands)
	nRoundEvals := evaluator.NRoundEvals()

	numWorkers := runtime.NumCPU()
	if numWorkers > total {
		numWorkers = total
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	chunkSize := (total + numWorkers - 1) / numWorkers
	partials := make([][]towerfield.F, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			start := workerID * chunkSize
			if start >= total {
				partials[workerID] = zeroRoundEvals(nRoundEvals)
				return
			}
			end := start + chunkSize
			if end > total {
				end = total
			}

			state := newParFoldState(nOperands, nRoundEvals)
			for i := start; i < end; i++ {
				sample(i, state.evals0, state.evals1)
				evaluator.ProcessVertex(i, state.evals0, state.evals1, state.evalsZ, state.roundEvals)
			}
			partials[workerID] = state.roundEvals
		}(w)
	}
	wg.Wait()

	result := zeroRoundEvals(nRoundEvals)
	for _, partial := range partials {
		for i, v := range partial {
			result[i] = result[i].Add(v)
		}
	}
	return result
}
