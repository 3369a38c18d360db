package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CentsToDecimal converts centavos to a reais amount
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatBRL renders centavos as "R$ 1234.56". No locale grouping is applied.
func FormatBRL(cents int64) string {
	return "R$ " + CentsToDecimal(cents).StringFixed(2)
}

// FormatRate renders a ratio as a percentage with two decimals
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(hundred).StringFixed(2) + "%"
}
