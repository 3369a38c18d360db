package breakeven

import (
	"fmt"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// Target is the financial input the solver varies
type Target string

const (
	TargetExpenses   Target = "expenses"
	TargetDeductions Target = "deductions"
)

// ParseTarget accepts "expenses" or "deductions"
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetExpenses, TargetDeductions:
		return t, nil
	default:
		return "", &BreakEvenError{Operation: "parse_target", Message: fmt.Sprintf("unknown target %q", s)}
	}
}

// Label is the Portuguese name shown in reports
func (t Target) Label() string {
	switch t {
	case TargetDeductions:
		return "deduções"
	default:
		return "despesas"
	}
}

// SolverOptions configures the bisection
type SolverOptions struct {
	MaxIterations int
	// Tolerance is the width, in centavos, at which the search stops
	Tolerance int64
}

// DefaultSolverOptions searches to the nearest real (100 centavos)
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 64,
		Tolerance:     100,
	}
}

// Request asks for the smallest value of Target at which Lucro Real becomes
// the recommended regime
type Request struct {
	Input  domain.FinancialInput `json:"input"`
	Target Target                `json:"target"`

	// Upper bound of the search. Zero means the largest value that still
	// leaves a non-negative profit.
	Max int64 `json:"max,omitempty"`
}

// Result of a break-even search
type Result struct {
	Request Request `json:"request"`

	// Found is false when Lucro Real is never recommended within the range
	Found bool `json:"found"`

	// Value is the smallest value of the target, in centavos, at which Lucro
	// Real is recommended. Only meaningful when Found.
	Value int64 `json:"value"`

	// Ratio is Value over gross revenue
	Ratio float64 `json:"ratio"`

	// Comparison at Value, or at the upper bound when not found
	Comparison domain.RegimeComparison `json:"comparison"`

	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergenceInfo,omitempty"`
}

// SectorResult pairs a sector with its break-even result
type SectorResult struct {
	Sector domain.Sector `json:"sector"`
	Result Result        `json:"result"`
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
