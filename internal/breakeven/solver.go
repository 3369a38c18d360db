package breakeven

import (
	"context"
	"fmt"

	"github.com/fabiotcs/apptributario-sub000/internal/calculation"
	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// Solver finds where Lucro Real overtakes the other regimes. Lucro Real is the
// only regime whose liability falls as expenses or deductions grow, so
// "Lucro Real is recommended" is monotone in the target and bisection applies.
type Solver struct {
	Engine  *compare.Engine
	Options SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calc *calculation.RegimeCalculator, options SolverOptions) *Solver {
	return &Solver{
		Engine:  compare.NewEngine(calc),
		Options: options,
	}
}

// NewDefaultSolver creates a solver over the default tables with default options
func NewDefaultSolver() *Solver {
	return NewSolver(calculation.NewRegimeCalculator(), DefaultSolverOptions())
}

// Solve runs the break-even search
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if req.Target == "" {
		req.Target = TargetExpenses
	}
	if _, err := ParseTarget(string(req.Target)); err != nil {
		return nil, err
	}
	if req.Max < 0 {
		return nil, &BreakEvenError{Operation: "solve", Message: "max cannot be negative"}
	}

	hi := req.Max
	if hi == 0 {
		hi = s.defaultMax(req)
	}

	maxIterations := s.Options.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultSolverOptions().MaxIterations
	}
	tolerance := s.Options.Tolerance
	if tolerance <= 0 {
		tolerance = 1
	}

	result := &Result{Request: req}

	upper := s.compareAt(req, hi)
	if upper.RecommendedRegime != domain.RegimeReal {
		result.Comparison = upper
		result.ConvergenceInfo = fmt.Sprintf("Lucro Real não é recomendado em %s", domain.FormatBRL(hi))
		return result, nil
	}

	lower := s.compareAt(req, 0)
	if lower.RecommendedRegime == domain.RegimeReal {
		result.Found = true
		result.Comparison = lower
		result.ConvergenceInfo = "Lucro Real já é recomendado com valor zero"
		return result, nil
	}

	lo := int64(0)
	best := upper
	for hi-lo > tolerance && result.Iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, &BreakEvenError{Operation: "solve", Message: "search cancelled", Cause: err}
		}
		result.Iterations++

		mid := lo + (hi-lo)/2
		comparison := s.compareAt(req, mid)
		if comparison.RecommendedRegime == domain.RegimeReal {
			hi = mid
			best = comparison
		} else {
			lo = mid
		}
	}

	result.Found = true
	result.Value = hi
	result.Comparison = best
	if req.Input.GrossRevenue > 0 {
		result.Ratio = float64(hi) / float64(req.Input.GrossRevenue)
	}
	if hi-lo <= tolerance {
		result.ConvergenceInfo = fmt.Sprintf("convergiu dentro de %s", domain.FormatBRL(tolerance))
	} else {
		result.ConvergenceInfo = fmt.Sprintf("interrompido após %d iterações", result.Iterations)
	}
	return result, nil
}

// SolveSectors runs the same search once per known sector
func (s *Solver) SolveSectors(ctx context.Context, req Request) ([]SectorResult, error) {
	results := make([]SectorResult, 0, len(domain.KnownSectors()))
	for _, sector := range domain.KnownSectors() {
		sectorReq := req
		sectorReq.Input.Sector = sector

		result, err := s.Solve(ctx, sectorReq)
		if err != nil {
			return nil, &BreakEvenError{Operation: "solve_sectors", Message: string(sector), Cause: err}
		}
		results = append(results, SectorResult{Sector: sector, Result: *result})
	}
	return results, nil
}

func (s *Solver) defaultMax(req Request) int64 {
	in := req.Input
	var other int64
	switch req.Target {
	case TargetDeductions:
		other = in.Expenses
	default:
		other = in.Deductions
	}
	if m := in.GrossRevenue - other; m > 0 {
		return m
	}
	return 0
}

func (s *Solver) compareAt(req Request, value int64) domain.RegimeComparison {
	input := req.Input
	switch req.Target {
	case TargetDeductions:
		input.Deductions = value
	default:
		input.Expenses = value
	}
	return s.Engine.Compare(input)
}
