package breakeven

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiotcs/apptributario-sub000/internal/calculation"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

func exactSolver() *Solver {
	return NewSolver(calculation.NewRegimeCalculator(), SolverOptions{MaxIterations: 64, Tolerance: 1})
}

func servicesInput() domain.FinancialInput {
	return domain.FinancialInput{
		GrossRevenue: 250000000,
		Sector:       domain.SectorServices,
	}
}

func TestSolveExpensesExact(t *testing.T) {
	// Simples: 22,000,000. Real: 0.34 * profit - 24,000, which first rounds
	// below 22,000,000 at a profit of 64,776,469.
	result, err := exactSolver().Solve(context.Background(), Request{Input: servicesInput()})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, TargetExpenses, result.Request.Target)
	assert.Equal(t, int64(185223531), result.Value)
	assert.Equal(t, domain.RegimeReal, result.Comparison.RecommendedRegime)
	assert.Equal(t, int64(21999999), result.Comparison.Result(domain.RegimeReal).AnnualTaxLiability)
	assert.InDelta(t, 0.7409, result.Ratio, 0.0001)
	assert.Greater(t, result.Iterations, 0)
	assert.Contains(t, result.ConvergenceInfo, "convergiu")
}

func TestSolveOneCentBelowIsATie(t *testing.T) {
	input := servicesInput()
	input.Expenses = 185223530

	comparison := exactSolver().Engine.Compare(input)
	assert.Equal(t, domain.RegimeSimplified, comparison.RecommendedRegime)
	assert.Equal(t, int64(22000000), comparison.Result(domain.RegimeReal).AnnualTaxLiability)
}

func TestSolveDefaultTolerance(t *testing.T) {
	result, err := NewDefaultSolver().Solve(context.Background(), Request{Input: servicesInput()})
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.GreaterOrEqual(t, result.Value, int64(185223531))
	assert.LessOrEqual(t, result.Value-185223531, int64(100))
	assert.Equal(t, domain.RegimeReal, result.Comparison.RecommendedRegime)
}

func TestSolveAgainstPresumed(t *testing.T) {
	// Commerce at 300,000,000: Presumido 8,136,000 beats Simples 14,400,000
	input := domain.FinancialInput{GrossRevenue: 300000000, Sector: domain.SectorCommerce}

	result, err := exactSolver().Solve(context.Background(), Request{Input: input})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, int64(276000002), result.Value)
}

func TestSolveNotReached(t *testing.T) {
	result, err := exactSolver().Solve(context.Background(), Request{Input: domain.FinancialInput{Sector: domain.SectorServices}})
	require.NoError(t, err)

	assert.False(t, result.Found)
	assert.Zero(t, result.Iterations)
	assert.Equal(t, domain.RegimeSimplified, result.Comparison.RecommendedRegime)
	assert.Contains(t, result.ConvergenceInfo, "não é recomendado")
}

func TestSolveAlreadyRecommended(t *testing.T) {
	input := servicesInput()
	input.Expenses = 200000000

	result, err := exactSolver().Solve(context.Background(), Request{Input: input, Target: TargetDeductions})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Zero(t, result.Value)
	assert.Zero(t, result.Iterations)
	assert.Equal(t, domain.RegimeReal, result.Comparison.RecommendedRegime)
}

func TestSolveDeductionsTarget(t *testing.T) {
	input := servicesInput()
	input.Expenses = 100000000

	result, err := exactSolver().Solve(context.Background(), Request{Input: input, Target: TargetDeductions})
	require.NoError(t, err)

	// same break-even profit, reached through deductions
	assert.True(t, result.Found)
	assert.Equal(t, int64(85223531), result.Value)
}

func TestSolveErrors(t *testing.T) {
	solver := exactSolver()

	_, err := solver.Solve(context.Background(), Request{Input: servicesInput(), Target: "revenue"})
	var bee *BreakEvenError
	require.ErrorAs(t, err, &bee)
	assert.Equal(t, "parse_target", bee.Operation)

	_, err = solver.Solve(context.Background(), Request{Input: servicesInput(), Max: -1})
	assert.EqualError(t, err, "solve: max cannot be negative")
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exactSolver().Solve(ctx, Request{Input: servicesInput()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolveSectors(t *testing.T) {
	results, err := exactSolver().SolveSectors(context.Background(), Request{Input: servicesInput()})
	require.NoError(t, err)
	require.Len(t, results, len(domain.KnownSectors()))

	for i, sector := range domain.KnownSectors() {
		assert.Equal(t, sector, results[i].Sector)
		assert.Equal(t, sector, results[i].Result.Request.Input.Sector)
		assert.True(t, results[i].Result.Found, sector)
		assert.Equal(t, domain.RegimeReal, results[i].Result.Comparison.RecommendedRegime, sector)
	}
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("deductions")
	require.NoError(t, err)
	assert.Equal(t, TargetDeductions, target)

	_, err = ParseTarget("")
	assert.Error(t, err)
}
