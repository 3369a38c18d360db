package domain

import (
	"github.com/shopspring/decimal"
)

// ProfitTax is a tax levied on a profit base (IRPJ, CSLL). The additional rate
// applies only to the monthly profit above TaxRules.MonthlyAdditionalThreshold.
type ProfitTax struct {
	Name           string          `yaml:"name" json:"name"`
	BaseRate       decimal.Decimal `yaml:"base_rate" json:"baseRate"`
	AdditionalRate decimal.Decimal `yaml:"additional_rate" json:"additionalRate"`
}

// TaxRules holds the lookup tables used by the regime calculators.
// Calculators only read from it; DefaultTaxRules builds a fresh copy on every call.
type TaxRules struct {
	SimplifiedRates            map[Sector]decimal.Decimal `yaml:"simplified_rates" json:"simplifiedRates"`
	PresumedMargins            map[Sector]decimal.Decimal `yaml:"presumed_margins" json:"presumedMargins"`
	ProfitTaxes                []ProfitTax                `yaml:"profit_taxes" json:"profitTaxes"`
	MonthlyAdditionalThreshold int64                      `yaml:"monthly_additional_threshold" json:"monthlyAdditionalThreshold"`
}

// DefaultMonthlyAdditionalThreshold is the monthly profit, in centavos, above
// which the additional profit tax rates apply
const DefaultMonthlyAdditionalThreshold int64 = 20000

// DefaultTaxRules returns the built-in simplified model of the Brazilian tables
func DefaultTaxRules() TaxRules {
	return TaxRules{
		SimplifiedRates: map[Sector]decimal.Decimal{
			SectorCommerce:     decimal.RequireFromString("0.048"),
			SectorIndustry:     decimal.RequireFromString("0.058"),
			SectorServices:     decimal.RequireFromString("0.088"),
			SectorTechnology:   decimal.RequireFromString("0.112"),
			SectorConstruction: decimal.RequireFromString("0.072"),
			SectorDefault:      decimal.RequireFromString("0.088"),
		},
		PresumedMargins: map[Sector]decimal.Decimal{
			SectorCommerce:     decimal.RequireFromString("0.08"),
			SectorIndustry:     decimal.RequireFromString("0.08"),
			SectorServices:     decimal.RequireFromString("0.32"),
			SectorTechnology:   decimal.RequireFromString("0.32"),
			SectorConstruction: decimal.RequireFromString("0.08"),
			SectorDefault:      decimal.RequireFromString("0.32"),
		},
		ProfitTaxes: []ProfitTax{
			{Name: "IRPJ", BaseRate: decimal.RequireFromString("0.15"), AdditionalRate: decimal.RequireFromString("0.10")},
			{Name: "CSLL", BaseRate: decimal.RequireFromString("0.09"), AdditionalRate: decimal.Zero},
		},
		MonthlyAdditionalThreshold: DefaultMonthlyAdditionalThreshold,
	}
}

// SimplifiedRate returns the Simples Nacional rate for a sector. The boolean is
// false when the sector was unknown and the DEFAULT entry was used.
func (tr TaxRules) SimplifiedRate(s Sector) (decimal.Decimal, bool) {
	return lookupSector(tr.SimplifiedRates, s)
}

// PresumedMargin returns the Lucro Presumido margin for a sector, falling back to DEFAULT
func (tr TaxRules) PresumedMargin(s Sector) (decimal.Decimal, bool) {
	return lookupSector(tr.PresumedMargins, s)
}

func lookupSector(table map[Sector]decimal.Decimal, s Sector) (decimal.Decimal, bool) {
	if v, ok := table[NormalizeSector(s)]; ok {
		return v, true
	}
	if v, ok := table[SectorDefault]; ok {
		return v, false
	}
	// An overridden table without DEFAULT still falls back to services
	return table[SectorServices], false
}

// RulesOverride is the partial form of TaxRules read from rule files and the
// company file's rules section. A nil threshold means "not set"; zero is a
// valid override.
type RulesOverride struct {
	SimplifiedRates            map[Sector]decimal.Decimal `yaml:"simplified_rates,omitempty" json:"simplifiedRates,omitempty"`
	PresumedMargins            map[Sector]decimal.Decimal `yaml:"presumed_margins,omitempty" json:"presumedMargins,omitempty"`
	ProfitTaxes                []ProfitTax                `yaml:"profit_taxes,omitempty" json:"profitTaxes,omitempty"`
	MonthlyAdditionalThreshold *int64                     `yaml:"monthly_additional_threshold,omitempty" json:"monthlyAdditionalThreshold,omitempty"`
}

// Overlay returns a copy of tr with the parts set in override applied.
// Sector keys are merged individually; profit taxes are replaced as a whole.
func (tr TaxRules) Overlay(override RulesOverride) TaxRules {
	merged := TaxRules{
		SimplifiedRates:            mergeSectorTable(tr.SimplifiedRates, override.SimplifiedRates),
		PresumedMargins:            mergeSectorTable(tr.PresumedMargins, override.PresumedMargins),
		ProfitTaxes:                append([]ProfitTax(nil), tr.ProfitTaxes...),
		MonthlyAdditionalThreshold: tr.MonthlyAdditionalThreshold,
	}
	if len(override.ProfitTaxes) > 0 {
		merged.ProfitTaxes = append([]ProfitTax(nil), override.ProfitTaxes...)
	}
	if override.MonthlyAdditionalThreshold != nil {
		merged.MonthlyAdditionalThreshold = *override.MonthlyAdditionalThreshold
	}
	return merged
}

func mergeSectorTable(base, override map[Sector]decimal.Decimal) map[Sector]decimal.Decimal {
	merged := make(map[Sector]decimal.Decimal, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[NormalizeSector(k)] = v
	}
	return merged
}
