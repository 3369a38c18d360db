package opportunity

import (
	"sort"

	"github.com/fabiotcs/apptributario-sub000/internal/calculation"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// DefaultGenerators returns the built-in generators in emission order
func DefaultGenerators() []Generator {
	return []Generator{
		DetectDeductions,
		DetectCredits,
		DetectTiming,
		DetectExpenseOptimizations,
	}
}

// Aggregator runs every generator, scores the results and ranks them
type Aggregator struct {
	Generators []Generator
	Logger     calculation.Logger
}

// NewAggregator creates an aggregator over the built-in generators
func NewAggregator() *Aggregator {
	return &Aggregator{
		Generators: DefaultGenerators(),
		Logger:     calculation.NopLogger{},
	}
}

// SetLogger sets the logger used for detection diagnostics
func (a *Aggregator) SetLogger(l calculation.Logger) {
	a.Logger = calculation.OrNop(l)
}

// DetectAll concatenates the generator outputs in order, assigns each
// opportunity its priority and sorts by priority descending. Ties keep their
// generation order.
func (a *Aggregator) DetectAll(input domain.FinancialInput, company *domain.CompanyContext) []domain.Opportunity {
	logger := calculation.OrNop(a.Logger)

	var all []domain.Opportunity
	for _, generate := range a.Generators {
		all = append(all, generate(input, company)...)
	}

	for i := range all {
		all[i].Priority = ScoreOpportunity(all[i])
		logger.Debugf("opportunity %s (%s): savings=%d cost=%d roi=%.2f priority=%d",
			all[i].Title, all[i].Category, all[i].EstimatedSavings, all[i].ImplementationCost, all[i].ROI, all[i].Priority)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority > all[j].Priority
	})

	logger.Infof("detected %d opportunities", len(all))
	return all
}

var defaultAggregator = NewAggregator()

// DetectAllOpportunities runs the built-in generators and returns the ranked list
func DetectAllOpportunities(input domain.FinancialInput, company *domain.CompanyContext) []domain.Opportunity {
	return defaultAggregator.DetectAll(input, company)
}

// FilterByRegime keeps the opportunities applicable under r, preserving order
func FilterByRegime(opportunities []domain.Opportunity, r domain.Regime) []domain.Opportunity {
	filtered := make([]domain.Opportunity, 0, len(opportunities))
	for _, o := range opportunities {
		if o.AppliesTo(r) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Summarize totals a ranked opportunity list. TopOpportunity is the title of
// the first entry.
func Summarize(opportunities []domain.Opportunity) domain.SavingsSummary {
	summary := domain.SavingsSummary{
		OpportunityCount: len(opportunities),
		ByCategory:       make(map[domain.Category]int),
		ByRisk:           make(map[domain.Level]int),
	}

	for _, o := range opportunities {
		summary.TotalEstimatedSavings += o.EstimatedSavings
		summary.TotalImplementationCost += o.ImplementationCost
		summary.ByCategory[o.Category]++
		summary.ByRisk[o.RiskLevel]++
		if o.IsQuickWin() {
			summary.QuickWins++
			summary.QuickWinSavings += o.EstimatedSavings
		}
	}
	summary.NetSavings = summary.TotalEstimatedSavings - summary.TotalImplementationCost

	if len(opportunities) > 0 {
		summary.TopOpportunity = opportunities[0].Title
	}
	return summary
}
