package main

import (
	"fmt"
	"runtime"
)

// RunConfig configures the demo driver, following utils.Config's
// DefaultConfig+Validate shape.
type RunConfig struct {
	// NVars is the fallback hypercube dimension used when stdin's
	// instance omits n_vars.
	NVars int

	// NOperands is validated but not read by the driver: the operand
	// count is always the number of tables in stdin's instance.
	NOperands int

	// Workers caps GOMAXPROCS for the round-sum engine's worker pool;
	// 0 leaves the runtime default untouched.
	Workers int

	// Evaluator selects the fallback composition ("product" or "r1cs")
	// when stdin's instance omits it.
	Evaluator string
}

// DefaultRunConfig returns the demo's default configuration.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		NVars:     4,
		NOperands: 2,
		Workers:   0,
		Evaluator: "product",
	}
}

// Validate checks that a RunConfig is usable.
func (c RunConfig) Validate() error {
	if c.NVars <= 0 {
		return fmt.Errorf("n_vars must be positive, got %d", c.NVars)
	}
	if c.NOperands <= 0 {
		return fmt.Errorf("n_operands must be positive, got %d", c.NOperands)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Evaluator != "product" && c.Evaluator != "r1cs" {
		return fmt.Errorf("evaluator must be 'product' or 'r1cs', got %q", c.Evaluator)
	}
	return nil
}

// applyWorkers sets GOMAXPROCS when the config requests a specific
// worker cap, so the round-sum engine's runtime.NumCPU()-sized pool is
// bounded the way the operator asked.
func (c RunConfig) applyWorkers() {
	if c.Workers > 0 {
		runtime.GOMAXPROCS(c.Workers)
	}
}
