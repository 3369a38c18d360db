package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter formats a regime comparison as CSV, one row per regime
type CSVFormatter struct{}

// Format generates CSV output for a regime comparison
func (cf *CSVFormatter) Format(rc *domain.RegimeComparison) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Regime",
		"Effective Rate",
		"Annual Tax",
		"Average Monthly Payment",
		"Taxable Base",
		"Recommended",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, result := range rc.Ordered() {
		if err := writer.Write(cf.formatRow(result, result.Regime == rc.RecommendedRegime)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a regime result as a CSV row
func (cf *CSVFormatter) formatRow(result domain.RegimeResult, recommended bool) []string {
	return []string{
		result.Regime.String(),
		decimal.NewFromFloat(result.EffectiveTaxRate).StringFixed(6),
		domain.CentsToDecimal(result.AnnualTaxLiability).StringFixed(2),
		domain.CentsToDecimal(result.AverageMonthlyPayment).StringFixed(2),
		domain.CentsToDecimal(result.TaxableBase).StringFixed(2),
		strconv.FormatBool(recommended),
	}
}
