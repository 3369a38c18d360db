package domain

// Configuration is the top-level structure of a company input file
type Configuration struct {
	Company    CompanyContext `yaml:"company" json:"company"`
	Financials FinancialInput `yaml:"financials" json:"financials"`

	// Rules optionally overrides parts of DefaultTaxRules for this company
	Rules *RulesOverride `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// EffectiveRules returns base with the file's own overrides applied. The
// file's rules section wins over anything already in base.
func (c *Configuration) EffectiveRules(base TaxRules) TaxRules {
	if c != nil && c.Rules != nil {
		return base.Overlay(*c.Rules)
	}
	return base
}
