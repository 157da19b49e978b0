package towerfield

import (
	"fmt"
	"sync"
)

// BatchInvert inverts a slice of field elements using Montgomery's trick:
// one pass to accumulate running products, a single inversion of the
// total product, then a back-substitution pass.
func BatchInvert(elements []F) ([]F, error) {
	n := len(elements)
	if n == 0 {
		return []F{}, nil
	}
	if n == 1 {
		inv, err := elements[0].Inv()
		if err != nil {
			return nil, err
		}
		return []F{inv}, nil
	}

	for i, e := range elements {
		if e.IsZero() {
			return nil, fmt.Errorf("towerfield: cannot invert zero element at index %d", i)
		}
	}

	acc := make([]F, n)
	acc[0] = elements[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(elements[i])
	}

	accInv, err := acc[n-1].Inv()
	if err != nil {
		return nil, fmt.Errorf("towerfield: failed to invert accumulator: %w", err)
	}

	results := make([]F, n)
	for i := n - 1; i > 0; i-- {
		results[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(elements[i])
	}
	results[0] = accInv

	return results, nil
}

// ParallelBatchInvert chunks elements across numWorkers goroutines and
// batch-inverts each chunk independently, matching the chunked
// sync.WaitGroup fan-out in core.Field.ParallelBatchInversion. Falls back
// to BatchInvert for small batches, where goroutine overhead would
// dominate.
func ParallelBatchInvert(elements []F, numWorkers int) ([]F, error) {
	n := len(elements)
	if n == 0 {
		return []F{}, nil
	}
	if n < 1000 || numWorkers <= 1 {
		return BatchInvert(elements)
	}

	chunkSize := (n + numWorkers - 1) / numWorkers
	results := make([]F, n)

	var wg sync.WaitGroup
	errChan := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			start := workerID * chunkSize
			if start >= n {
				return
			}
			end := start + chunkSize
			if end > n {
				end = n
			}

			inverted, err := BatchInvert(elements[start:end])
			if err != nil {
				errChan <- fmt.Errorf("towerfield: worker %d failed: %w", workerID, err)
				return
			}
			copy(results[start:end], inverted)
		}(w)
	}

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}

	return results, nil
}
