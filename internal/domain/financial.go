package domain

import "strings"

// Sector identifies the company's main activity. Lookups normalize the value with
// NormalizeSector, so "serviço" and "SERVIÇO" select the same table entry.
type Sector string

const (
	SectorCommerce     Sector = "COMÉRCIO"
	SectorIndustry     Sector = "INDÚSTRIA"
	SectorServices     Sector = "SERVIÇO"
	SectorTechnology   Sector = "TECNOLOGIA"
	SectorConstruction Sector = "CONSTRUÇÃO"

	// SectorDefault is the fallback table key for unknown sectors
	SectorDefault Sector = "DEFAULT"
)

// KnownSectors lists the sectors with their own table entries
func KnownSectors() []Sector {
	return []Sector{SectorCommerce, SectorIndustry, SectorServices, SectorTechnology, SectorConstruction}
}

// NormalizeSector trims and uppercases a sector for table lookups
func NormalizeSector(s Sector) Sector {
	return Sector(strings.ToUpper(strings.TrimSpace(string(s))))
}

// FinancialInput holds one company's annual figures. All money fields are in
// centavos; absent values are simply zero.
type FinancialInput struct {
	GrossRevenue     int64  `yaml:"gross_revenue" json:"grossRevenue"`
	Expenses         int64  `yaml:"expenses" json:"expenses"`
	Deductions       int64  `yaml:"deductions" json:"deductions"`
	TaxCredits       int64  `yaml:"tax_credits" json:"taxCredits"`
	PreviousPayments int64  `yaml:"previous_payments" json:"previousPayments"`
	Sector           Sector `yaml:"sector" json:"sector"`
}

// CompanyContext carries the descriptive facts the opportunity detectors match on
type CompanyContext struct {
	Name        string `yaml:"name" json:"name"`
	Industry    string `yaml:"industry" json:"industry"`
	State       string `yaml:"state" json:"state"`
	Description string `yaml:"description" json:"description"`
}

// StateCode returns the registration state uppercased, or "" for a nil context
func (c *CompanyContext) StateCode() string {
	if c == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(c.State))
}
