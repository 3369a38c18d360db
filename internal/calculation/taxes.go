package calculation

import (
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Simples Nacional: a single flat rate per sector applied to gross revenue
//    - Expenses, deductions and credits are ignored
//
// 2. Lucro Presumido: profit is a sector margin of gross revenue
//    - IRPJ 15% + 10% additional on monthly profit above the threshold
//    - CSLL 9%, no additional
//
// 3. Lucro Real: profit is revenue minus expenses and deductions, never negative
//    - Same IRPJ/CSLL structure as Lucro Presumido
//    - Tax credits reduce the annual liability, previous payments only the monthly balance
//
// 4. PIS/COFINS, ISS, ICMS and payroll taxes are not modelled

var twelve = decimal.NewFromInt(12)

// RegimeCalculator computes the annual liability of a company under each regime
type RegimeCalculator struct {
	Rules  domain.TaxRules
	Logger Logger
}

// NewRegimeCalculator creates a calculator over the built-in tables
func NewRegimeCalculator() *RegimeCalculator {
	return NewRegimeCalculatorWithRules(domain.DefaultTaxRules())
}

// NewRegimeCalculatorWithRules creates a calculator with configurable tables
func NewRegimeCalculatorWithRules(rules domain.TaxRules) *RegimeCalculator {
	return &RegimeCalculator{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger; nil selects a no-op logger
func (rc *RegimeCalculator) SetLogger(l Logger) {
	rc.Logger = OrNop(l)
}

// Calculate dispatches to the calculator of the given regime
func (rc *RegimeCalculator) Calculate(regime domain.Regime, input domain.FinancialInput) domain.RegimeResult {
	switch regime {
	case domain.RegimePresumed:
		return rc.CalculatePresumed(input)
	case domain.RegimeReal:
		return rc.CalculateReal(input)
	default:
		return rc.CalculateSimplified(input)
	}
}

// CalculateSimplified applies the sector's Simples Nacional rate to gross revenue
func (rc *RegimeCalculator) CalculateSimplified(input domain.FinancialInput) domain.RegimeResult {
	rate, known := rc.Rules.SimplifiedRate(input.Sector)
	if !known {
		rc.logger().Debugf("sector %q has no simplified rate, using default %s", input.Sector, rate.String())
	}

	liability := nonNegative(roundCents(decimal.NewFromInt(input.GrossRevenue).Mul(rate)))
	advantages, disadvantages := regimeProfile(domain.RegimeSimplified)

	return domain.RegimeResult{
		Regime:                domain.RegimeSimplified,
		EffectiveTaxRate:      rate.InexactFloat64(),
		AnnualTaxLiability:    liability,
		AverageMonthlyPayment: monthlyPayment(liability),
		TaxableBase:           input.GrossRevenue,
		Advantages:            advantages,
		Disadvantages:         disadvantages,
	}
}

// CalculatePresumed taxes the sector's presumed share of revenue as profit
func (rc *RegimeCalculator) CalculatePresumed(input domain.FinancialInput) domain.RegimeResult {
	margin, known := rc.Rules.PresumedMargin(input.Sector)
	if !known {
		rc.logger().Debugf("sector %q has no presumed margin, using default %s", input.Sector, margin.String())
	}

	presumedProfit := roundCents(decimal.NewFromInt(input.GrossRevenue).Mul(margin))
	liability := nonNegative(roundCents(rc.profitTaxes(presumedProfit)))
	advantages, disadvantages := regimeProfile(domain.RegimePresumed)

	return domain.RegimeResult{
		Regime:                domain.RegimePresumed,
		EffectiveTaxRate:      effectiveRate(liability, input.GrossRevenue),
		AnnualTaxLiability:    liability,
		AverageMonthlyPayment: monthlyPayment(liability),
		TaxableBase:           presumedProfit,
		Advantages:            advantages,
		Disadvantages:         disadvantages,
	}
}

// CalculateReal taxes the actual profit, then applies credits and previous payments
func (rc *RegimeCalculator) CalculateReal(input domain.FinancialInput) domain.RegimeResult {
	actualProfit := nonNegative(input.GrossRevenue - input.Expenses - input.Deductions)

	liability := nonNegative(roundCents(rc.profitTaxes(actualProfit)) - input.TaxCredits)
	remaining := nonNegative(liability - input.PreviousPayments)
	advantages, disadvantages := regimeProfile(domain.RegimeReal)

	return domain.RegimeResult{
		Regime:                domain.RegimeReal,
		EffectiveTaxRate:      effectiveRate(liability, input.GrossRevenue),
		AnnualTaxLiability:    liability,
		AverageMonthlyPayment: monthlyPayment(remaining),
		TaxableBase:           actualProfit,
		RemainingBalance:      remaining,
		Advantages:            advantages,
		Disadvantages:         disadvantages,
	}
}

// profitTaxes sums every profit tax over an annual profit base. The monthly
// excess over the threshold, times twelve, equals the annual profit minus
// twelve thresholds.
func (rc *RegimeCalculator) profitTaxes(annualProfit int64) decimal.Decimal {
	profit := decimal.NewFromInt(annualProfit)
	annualThreshold := decimal.NewFromInt(rc.Rules.MonthlyAdditionalThreshold).Mul(twelve)
	annualExcess := decimal.Max(decimal.Zero, profit.Sub(annualThreshold))

	total := decimal.Zero
	for _, tax := range rc.Rules.ProfitTaxes {
		total = total.Add(profit.Mul(tax.BaseRate)).Add(annualExcess.Mul(tax.AdditionalRate))
	}
	return total
}

func (rc *RegimeCalculator) logger() Logger {
	return OrNop(rc.Logger)
}

// roundCents rounds half away from zero to whole centavos
func roundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func monthlyPayment(annual int64) int64 {
	return roundCents(decimal.NewFromInt(annual).Div(twelve))
}

func effectiveRate(liability, grossRevenue int64) float64 {
	if grossRevenue <= 0 {
		return 0
	}
	return decimal.NewFromInt(liability).Div(decimal.NewFromInt(grossRevenue)).InexactFloat64()
}

var defaultCalculator = NewRegimeCalculator()

// CalculateSimplified runs the Simples Nacional calculation over the default tables
func CalculateSimplified(input domain.FinancialInput) domain.RegimeResult {
	return defaultCalculator.CalculateSimplified(input)
}

// CalculatePresumed runs the Lucro Presumido calculation over the default tables
func CalculatePresumed(input domain.FinancialInput) domain.RegimeResult {
	return defaultCalculator.CalculatePresumed(input)
}

// CalculateReal runs the Lucro Real calculation over the default tables
func CalculateReal(input domain.FinancialInput) domain.RegimeResult {
	return defaultCalculator.CalculateReal(input)
}
