package vybiumsumcheck

import (
	"github.com/vybium/vybium-sumcheck/internal/composition"
	"github.com/vybium/vybium-sumcheck/internal/evaluators"
	"github.com/vybium/vybium-sumcheck/internal/multilinear"
	"github.com/vybium/vybium-sumcheck/internal/sumcheck"
	"github.com/vybium/vybium-sumcheck/internal/towerfield"
)

// Field tower.
type (
	F   = towerfield.F
	Bit = towerfield.Bit
	P   = towerfield.P
)

// Multilinear operand representations.
type (
	Multilinear = multilinear.Multilinear
	Dense       = multilinear.Dense
	Folded      = multilinear.Folded
	Query       = multilinear.Query
)

var (
	NewDense       = multilinear.NewDense
	NewFolded      = multilinear.NewFolded
	NewQuery       = multilinear.New
	WithFullQuery  = multilinear.WithFullQuery
)

// Prover state machine.
type (
	ProverState    = sumcheck.ProverState
	SwitchoverFunc = sumcheck.SwitchoverFunc
	Evaluator      = sumcheck.Evaluator
	Error          = sumcheck.Error
	ErrorCode      = sumcheck.ErrorCode
)

var NewProverState = sumcheck.NewProverState

const (
	ErrIncorrectNumberOfVariables = sumcheck.ErrIncorrectNumberOfVariables
	ErrPolynomialFailure          = sumcheck.ErrPolynomialFailure
	ErrInvalidSwitchover          = sumcheck.ErrInvalidSwitchover
	ErrProverExhausted            = sumcheck.ErrProverExhausted
)

// Evaluator plug-ins.
type (
	Regular   = evaluators.Regular
	Zerocheck = evaluators.Zerocheck
	Choice    = evaluators.Choice
)

var (
	NewRegular     = evaluators.NewRegular
	NewZerocheck   = evaluators.NewZerocheck
	FromRegular    = evaluators.FromRegular
	FromZerocheck  = evaluators.FromZerocheck
	Domain         = evaluators.Domain
)

// Composition polynomials.
type (
	Composition = composition.Composition
	Product     = composition.Product
	R1CS        = composition.R1CS
)

var NewProduct = composition.NewProduct
