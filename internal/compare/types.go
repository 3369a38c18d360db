package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// Scenario is a named set of annual figures to compare
type Scenario struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Input       domain.FinancialInput `json:"input"`
}

// ScenarioResult is one scenario's regime comparison with metrics against the base
type ScenarioResult struct {
	ScenarioName string                  `json:"scenarioName"`
	Description  string                  `json:"description,omitempty"`
	Input        domain.FinancialInput   `json:"input"`
	Comparison   domain.RegimeComparison `json:"comparison"`

	// Key metrics
	RecommendedRegime domain.Regime `json:"recommendedRegime"`
	MinimumLiability  int64         `json:"minimumLiability"`
	EffectiveRate     float64       `json:"effectiveRate"`

	// Comparison to base
	LiabilityDiffFromBase int64           `json:"liabilityDiffFromBase"`
	LiabilityPctFromBase  decimal.Decimal `json:"liabilityPctFromBase"`
	RegimeChanged         bool            `json:"regimeChanged"`
}

// ComparisonSet represents a base scenario and its alternatives
type ComparisonSet struct {
	BaseScenarioName   string           `json:"baseScenarioName"`
	BaseResult         *ScenarioResult  `json:"baseResult"`
	AlternativeResults []ScenarioResult `json:"alternativeResults"`
	Recommendations    []string         `json:"recommendations"`
}

// MetricsCalculator runs the regime comparison for scenarios and derives metrics
type MetricsCalculator struct {
	Engine *Engine
}

// NewMetricsCalculator creates a metrics calculator; a nil engine selects the default
func NewMetricsCalculator(engine *Engine) *MetricsCalculator {
	if engine == nil {
		engine = NewEngine(nil)
	}
	return &MetricsCalculator{Engine: engine}
}

// CalculateMetrics compares the regimes for one scenario
func (mc *MetricsCalculator) CalculateMetrics(s Scenario) ScenarioResult {
	comparison := mc.Engine.Compare(s.Input)
	recommended := comparison.Recommended()

	return ScenarioResult{
		ScenarioName:      s.Name,
		Description:       s.Description,
		Input:             s.Input,
		Comparison:        comparison,
		RecommendedRegime: comparison.RecommendedRegime,
		MinimumLiability:  recommended.AnnualTaxLiability,
		EffectiveRate:     recommended.EffectiveTaxRate,
	}
}

// CalculateComparison fills the scenario's differences from the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ScenarioResult) ScenarioResult {
	scenario.LiabilityDiffFromBase = scenario.MinimumLiability - base.MinimumLiability

	if base.MinimumLiability != 0 {
		scenario.LiabilityPctFromBase = decimal.NewFromInt(scenario.LiabilityDiffFromBase).
			Div(decimal.NewFromInt(base.MinimumLiability)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	scenario.RegimeChanged = scenario.RecommendedRegime != base.RecommendedRegime
	return scenario
}

// CompareScenarios evaluates the base and every alternative
func (mc *MetricsCalculator) CompareScenarios(base Scenario, alternatives []Scenario) *ComparisonSet {
	baseResult := mc.CalculateMetrics(base)

	set := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: make([]ScenarioResult, 0, len(alternatives)),
	}
	for _, alt := range alternatives {
		set.AlternativeResults = append(set.AlternativeResults, mc.CalculateComparison(mc.CalculateMetrics(alt), baseResult))
	}
	set.Recommendations = GenerateRecommendations(set)
	return set
}

// GenerateRecommendations points out the cheapest alternative and any regime changes
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	lowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MinimumLiability < lowest.MinimumLiability {
			lowest = alt
		}
	}

	if lowest != compSet.BaseResult {
		recommendations = append(recommendations, fmt.Sprintf("Menor imposto: %s economiza %s em relação a %s no %s",
			lowest.ScenarioName,
			domain.FormatBRL(compSet.BaseResult.MinimumLiability-lowest.MinimumLiability),
			compSet.BaseScenarioName,
			lowest.RecommendedRegime.DisplayName()))
	}

	for _, alt := range compSet.AlternativeResults {
		if alt.RegimeChanged {
			recommendations = append(recommendations, fmt.Sprintf("Mudança de regime: %s muda a recomendação de %s para %s",
				alt.ScenarioName,
				compSet.BaseResult.RecommendedRegime.DisplayName(),
				alt.RecommendedRegime.DisplayName()))
		}
	}

	return recommendations
}
