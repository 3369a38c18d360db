package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// scale multiplies an amount by (1 + percent/100), rounded to the centavo
func scale(amount int64, percent decimal.Decimal) int64 {
	factor := decimal.NewFromInt(1).Add(percent.Div(hundred))
	return decimal.NewFromInt(amount).Mul(factor).Round(0).IntPart()
}

// ScaleRevenue grows or shrinks gross revenue by a percentage
type ScaleRevenue struct {
	Percent decimal.Decimal
}

func (t *ScaleRevenue) Name() string { return "scale_revenue" }

func (t *ScaleRevenue) Description() string {
	return fmt.Sprintf("Altera a receita bruta em %s%%", t.Percent.String())
}

func (t *ScaleRevenue) Validate(base domain.FinancialInput) error {
	if t.Percent.LessThan(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percent must be at least -100, got %s", t.Percent), nil)
	}
	return nil
}

func (t *ScaleRevenue) Apply(base domain.FinancialInput) (domain.FinancialInput, error) {
	base.GrossRevenue = scale(base.GrossRevenue, t.Percent)
	return base, nil
}

// ScaleExpenses grows or shrinks operating expenses by a percentage
type ScaleExpenses struct {
	Percent decimal.Decimal
}

func (t *ScaleExpenses) Name() string { return "scale_expenses" }

func (t *ScaleExpenses) Description() string {
	return fmt.Sprintf("Altera as despesas em %s%%", t.Percent.String())
}

func (t *ScaleExpenses) Validate(base domain.FinancialInput) error {
	if t.Percent.LessThan(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percent must be at least -100, got %s", t.Percent), nil)
	}
	return nil
}

func (t *ScaleExpenses) Apply(base domain.FinancialInput) (domain.FinancialInput, error) {
	base.Expenses = scale(base.Expenses, t.Percent)
	return base, nil
}

// Field names accepted by AdjustAmount
const (
	FieldRevenue          = "revenue"
	FieldExpenses         = "expenses"
	FieldDeductions       = "deductions"
	FieldTaxCredits       = "credits"
	FieldPreviousPayments = "payments"
)

var fieldLabels = map[string]string{
	FieldRevenue:          "receita bruta",
	FieldExpenses:         "despesas",
	FieldDeductions:       "deduções",
	FieldTaxCredits:       "créditos tributários",
	FieldPreviousPayments: "pagamentos antecipados",
}

// AdjustAmount adds a signed amount in centavos to one money field. The
// result may not go negative.
type AdjustAmount struct {
	Field  string
	Amount int64
}

func (t *AdjustAmount) Name() string { return "adjust_amount" }

func (t *AdjustAmount) Description() string {
	return fmt.Sprintf("Ajusta %s em %s", fieldLabels[t.Field], domain.FormatBRL(t.Amount))
}

func (t *AdjustAmount) Validate(base domain.FinancialInput) error {
	current, ok := field(&base, t.Field)
	if !ok {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown field %q", t.Field), nil)
	}
	if *current+t.Amount < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("%s would become negative", t.Field), nil)
	}
	return nil
}

func (t *AdjustAmount) Apply(base domain.FinancialInput) (domain.FinancialInput, error) {
	current, ok := field(&base, t.Field)
	if !ok {
		return base, NewTransformError(t.Name(), "apply", fmt.Sprintf("unknown field %q", t.Field), nil)
	}
	*current += t.Amount
	return base, nil
}

func field(in *domain.FinancialInput, name string) (*int64, bool) {
	switch name {
	case FieldRevenue:
		return &in.GrossRevenue, true
	case FieldExpenses:
		return &in.Expenses, true
	case FieldDeductions:
		return &in.Deductions, true
	case FieldTaxCredits:
		return &in.TaxCredits, true
	case FieldPreviousPayments:
		return &in.PreviousPayments, true
	default:
		return nil, false
	}
}

// ReclassifyExpenses moves a share of expenses into deductions
type ReclassifyExpenses struct {
	Percent decimal.Decimal
}

func (t *ReclassifyExpenses) Name() string { return "reclassify_expenses" }

func (t *ReclassifyExpenses) Description() string {
	return fmt.Sprintf("Reclassifica %s%% das despesas como deduções", t.Percent.String())
}

func (t *ReclassifyExpenses) Validate(base domain.FinancialInput) error {
	if t.Percent.IsNegative() || t.Percent.GreaterThan(hundred) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percent must be between 0 and 100, got %s", t.Percent), nil)
	}
	return nil
}

func (t *ReclassifyExpenses) Apply(base domain.FinancialInput) (domain.FinancialInput, error) {
	moved := decimal.NewFromInt(base.Expenses).Mul(t.Percent).Div(hundred).Round(0).IntPart()
	base.Expenses -= moved
	base.Deductions += moved
	return base, nil
}

// SetSector changes the activity sector used for the Simples and Presumido tables
type SetSector struct {
	Sector domain.Sector
}

func (t *SetSector) Name() string { return "set_sector" }

func (t *SetSector) Description() string {
	return fmt.Sprintf("Altera o setor para %s", t.Sector)
}

func (t *SetSector) Validate(base domain.FinancialInput) error {
	s := domain.NormalizeSector(t.Sector)
	for _, known := range domain.KnownSectors() {
		if s == known {
			return nil
		}
	}
	return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown sector %q", t.Sector), nil)
}

func (t *SetSector) Apply(base domain.FinancialInput) (domain.FinancialInput, error) {
	base.Sector = domain.NormalizeSector(t.Sector)
	return base, nil
}
