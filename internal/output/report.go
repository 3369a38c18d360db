package output

import (
	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/fabiotcs/apptributario-sub000/internal/opportunity"
)

// Report bundles everything the formatters render for one company
type Report struct {
	Company       domain.CompanyContext   `json:"company"`
	Financials    domain.FinancialInput   `json:"financials"`
	Comparison    domain.RegimeComparison `json:"comparison"`
	Opportunities []domain.Opportunity    `json:"opportunities"`
	Summary       domain.SavingsSummary   `json:"summary"`

	// Applicable holds the opportunities usable under the recommended regime
	Applicable []domain.Opportunity `json:"applicable"`
}

// ReportGenerator runs the comparison and the opportunity detection for a
// configuration
type ReportGenerator struct {
	Engine     *compare.Engine
	Aggregator *opportunity.Aggregator
}

// NewReportGenerator creates a report generator over the default engine and aggregator
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{
		Engine:     compare.NewEngine(nil),
		Aggregator: opportunity.NewAggregator(),
	}
}

// Generate builds the full report for a loaded configuration
func (rg *ReportGenerator) Generate(config *domain.Configuration) *Report {
	comparison := rg.Engine.Compare(config.Financials)
	opportunities := rg.Aggregator.DetectAll(config.Financials, &config.Company)

	return &Report{
		Company:       config.Company,
		Financials:    config.Financials,
		Comparison:    comparison,
		Opportunities: opportunities,
		Summary:       opportunity.Summarize(opportunities),
		Applicable:    opportunity.FilterByRegime(opportunities, comparison.RecommendedRegime),
	}
}
