package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidInput is wrapped by every validation failure
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCompany is returned when the company block has no name
	ErrMissingCompany = errors.New("company name is required")
)

// InputParser handles parsing of company files and rule overrides
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a company configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a company configuration
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadRules reads a YAML rule override file and applies it on top of the
// default tables
func (ip *InputParser) LoadRules(filename string) (domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	var override domain.RulesOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if err := ip.ValidateRules(&override); err != nil {
		return domain.TaxRules{}, fmt.Errorf("rules validation failed: %w", err)
	}

	return domain.DefaultTaxRules().Overlay(override), nil
}

// ResolveRules returns the tables a configuration runs with: the defaults,
// then the rules file (when rulesPath is set), then the company file's own
// rules section.
func (ip *InputParser) ResolveRules(cfg *domain.Configuration, rulesPath string) (domain.TaxRules, error) {
	base := domain.DefaultTaxRules()
	if rulesPath != "" {
		var err error
		if base, err = ip.LoadRules(rulesPath); err != nil {
			return domain.TaxRules{}, err
		}
	}
	return cfg.EffectiveRules(base), nil
}

// ValidateConfiguration validates a loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("%w: configuration is empty", ErrInvalidInput)
	}
	if err := ip.validateCompany(&config.Company); err != nil {
		return fmt.Errorf("company validation failed: %w", err)
	}
	if err := ValidateFinancials(config.Financials); err != nil {
		return fmt.Errorf("financials validation failed: %w", err)
	}
	if config.Rules != nil {
		if err := ip.ValidateRules(config.Rules); err != nil {
			return fmt.Errorf("rules validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateCompany(company *domain.CompanyContext) error {
	if strings.TrimSpace(company.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrMissingCompany)
	}
	if company.State != "" {
		code := company.StateCode()
		if len(code) != 2 || !isLetters(code) {
			return fmt.Errorf("%w: state must be a two-letter code, got %q", ErrInvalidInput, company.State)
		}
	}
	return nil
}

// ValidateFinancials rejects negative money values
func ValidateFinancials(input domain.FinancialInput) error {
	fields := []struct {
		name  string
		value int64
	}{
		{"gross_revenue", input.GrossRevenue},
		{"expenses", input.Expenses},
		{"deductions", input.Deductions},
		{"tax_credits", input.TaxCredits},
		{"previous_payments", input.PreviousPayments},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// ValidateRules checks that every rate in an override lies in [0, 1] and that a
// threshold, when set, is not negative
func (ip *InputParser) ValidateRules(rules *domain.RulesOverride) error {
	for sector, rate := range rules.SimplifiedRates {
		if !isFraction(rate) {
			return fmt.Errorf("%w: simplified rate for %s must be between 0 and 1", ErrInvalidInput, sector)
		}
	}
	for sector, margin := range rules.PresumedMargins {
		if !isFraction(margin) {
			return fmt.Errorf("%w: presumed margin for %s must be between 0 and 1", ErrInvalidInput, sector)
		}
	}
	for i, tax := range rules.ProfitTaxes {
		if tax.Name == "" {
			return fmt.Errorf("%w: profit tax %d has no name", ErrInvalidInput, i)
		}
		if !isFraction(tax.BaseRate) || !isFraction(tax.AdditionalRate) {
			return fmt.Errorf("%w: rates for %s must be between 0 and 1", ErrInvalidInput, tax.Name)
		}
	}
	if rules.MonthlyAdditionalThreshold != nil && *rules.MonthlyAdditionalThreshold < 0 {
		return fmt.Errorf("%w: monthly additional threshold cannot be negative", ErrInvalidInput)
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
