package compare

import (
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats a regime comparison as a console table
type TableFormatter struct{}

// Format generates a table comparing the three regimes
func (tf *TableFormatter) Format(rc *domain.RegimeComparison) string {
	var sb strings.Builder

	sb.WriteString("COMPARAÇÃO DE REGIMES TRIBUTÁRIOS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Regime",
		numWidth, "Alíq. Efet.",
		numWidth, "Imposto Anual",
		numWidth, "Mensal",
		numWidth, "vs Simples"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	simplified := rc.Result(domain.RegimeSimplified)
	for _, result := range rc.Ordered() {
		sb.WriteString(tf.formatRow(result, simplified, result.Regime == rc.RecommendedRegime, nameWidth, numWidth))
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Recomendado: %s\n", rc.RecommendedRegime.DisplayName()))
	if rc.EstimatedSavings > 0 {
		sb.WriteString(fmt.Sprintf("Economia estimada: R$%s por ano\n", tf.formatCents(rc.EstimatedSavings)))
	}

	return sb.String()
}

// formatRow formats a single regime row
func (tf *TableFormatter) formatRow(result, baseline domain.RegimeResult, recommended bool, nameWidth, numWidth int) string {
	name := result.Regime.DisplayName()
	if recommended {
		name += " *"
	}

	delta := result.AnnualTaxLiability - baseline.AnnualTaxLiability

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, domain.FormatRate(result.EffectiveTaxRate),
		numWidth, "R$"+tf.formatCents(result.AnnualTaxLiability),
		numWidth, "R$"+tf.formatCents(result.AverageMonthlyPayment),
		numWidth, tf.deltaSymbol(delta)+tf.formatCents(abs(delta)))
}

// formatCents formats centavos for display (in thousands or millions of reais)
func (tf *TableFormatter) formatCents(cents int64) string {
	d := domain.CentsToDecimal(cents)
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns the sign prefix for a liability delta
func (tf *TableFormatter) deltaSymbol(delta int64) string {
	if delta > 0 {
		return "+"
	} else if delta < 0 {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line summary of the comparison
func (tf *TableFormatter) FormatCompact(rc *domain.RegimeComparison) string {
	parts := make([]string, 0, 3)
	for _, result := range rc.Ordered() {
		marker := ""
		if result.Regime == rc.RecommendedRegime {
			marker = "*"
		}
		parts = append(parts, fmt.Sprintf("%s%s: R$%s", result.Regime.DisplayName(), marker, tf.formatCents(result.AnnualTaxLiability)))
	}
	return strings.Join(parts, " | ")
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// FormatScenarios generates a table of what-if scenarios against the base
func (tf *TableFormatter) FormatScenarios(cs *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("COMPARAÇÃO DE CENÁRIOS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-24s %-18s %12s %10s %12s\n", "Cenário", "Regime", "Imposto Anual", "Alíq. Efet.", "vs Base"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if cs.BaseResult != nil {
		sb.WriteString(tf.formatScenarioRow(*cs.BaseResult, true))
	}
	for _, alt := range cs.AlternativeResults {
		sb.WriteString(tf.formatScenarioRow(alt, false))
	}

	if len(cs.Recommendations) > 0 {
		sb.WriteString("\n")
		for _, rec := range cs.Recommendations {
			sb.WriteString("• " + rec + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatScenarioRow(r ScenarioResult, base bool) string {
	diff := "base"
	if !base {
		diff = tf.deltaSymbol(r.LiabilityDiffFromBase) + tf.formatCents(abs(r.LiabilityDiffFromBase))
	}
	regime := r.RecommendedRegime.DisplayName()
	if r.RegimeChanged {
		regime += " *"
	}
	return fmt.Sprintf("%-24s %-18s %12s %10s %12s\n",
		tf.truncate(r.ScenarioName, 24),
		regime,
		"R$"+tf.formatCents(r.MinimumLiability),
		domain.FormatRate(r.EffectiveRate),
		diff)
}
