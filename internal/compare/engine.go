package compare

import (
	"github.com/fabiotcs/apptributario-sub000/internal/calculation"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// Engine runs all three regime calculations and picks the cheapest
type Engine struct {
	Calc   *calculation.RegimeCalculator
	Logger calculation.Logger
}

// NewEngine creates a comparison engine; a nil calculator selects the default tables
func NewEngine(calc *calculation.RegimeCalculator) *Engine {
	if calc == nil {
		calc = calculation.NewRegimeCalculator()
	}
	return &Engine{
		Calc:   calc,
		Logger: calculation.NopLogger{},
	}
}

// SetLogger sets the logger on the engine and its calculator
func (e *Engine) SetLogger(l calculation.Logger) {
	e.Logger = calculation.OrNop(l)
	e.Calc.SetLogger(l)
}

// Compare evaluates Simples Nacional, Lucro Presumido and Lucro Real in that
// order. A later regime only replaces the running minimum when it is strictly
// cheaper, so exact ties go to the regime evaluated first. Savings are always
// measured against Simples Nacional.
func (e *Engine) Compare(input domain.FinancialInput) domain.RegimeComparison {
	logger := calculation.OrNop(e.Logger)

	simplified := e.Calc.CalculateSimplified(input)
	presumed := e.Calc.CalculatePresumed(input)
	realResult := e.Calc.CalculateReal(input)

	recommended := domain.RegimeSimplified
	minLiability := simplified.AnnualTaxLiability

	if presumed.AnnualTaxLiability < minLiability {
		recommended = domain.RegimePresumed
		minLiability = presumed.AnnualTaxLiability
	}
	if realResult.AnnualTaxLiability < minLiability {
		recommended = domain.RegimeReal
		minLiability = realResult.AnnualTaxLiability
	}

	savings := simplified.AnnualTaxLiability - minLiability
	if savings < 0 {
		savings = 0
	}

	comparison := domain.RegimeComparison{
		Results: map[domain.Regime]domain.RegimeResult{
			domain.RegimeSimplified: simplified,
			domain.RegimePresumed:   presumed,
			domain.RegimeReal:       realResult,
		},
		RecommendedRegime: recommended,
		EstimatedSavings:  savings,
	}
	comparison.Analysis = RenderAnalysis(&comparison)

	logger.Debugf("regime comparison: simplified=%d presumed=%d real=%d recommended=%s savings=%d",
		simplified.AnnualTaxLiability, presumed.AnnualTaxLiability, realResult.AnnualTaxLiability, recommended, savings)

	return comparison
}

var defaultEngine = NewEngine(nil)

// CompareRegimes compares the three regimes over the default tables
func CompareRegimes(input domain.FinancialInput) domain.RegimeComparison {
	return defaultEngine.Compare(input)
}
