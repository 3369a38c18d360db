package compare

import (
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// Section labels of the analysis text. Callers may parse the report by them.
const (
	AnalysisTitle          = "ANÁLISE COMPARATIVA DE REGIMES TRIBUTÁRIOS"
	RecommendationHeading  = "RECOMENDAÇÃO"
	DisclaimerHeading      = "AVISO"
	Disclaimer             = "Esta análise é uma estimativa baseada em um modelo simplificado da legislação e não substitui a orientação de um contador."
	analysisSeparatorWidth = 60
)

// RenderAnalysis produces the display report for a comparison. The three
// regimes always appear in evaluation order, followed by the recommendation
// and the disclaimer.
func RenderAnalysis(rc *domain.RegimeComparison) string {
	var sb strings.Builder

	sb.WriteString(AnalysisTitle + "\n")
	sb.WriteString(strings.Repeat("=", analysisSeparatorWidth) + "\n\n")

	for i, regime := range domain.AllRegimes() {
		result := rc.Result(regime)
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.ToUpper(regime.DisplayName())))
		sb.WriteString(fmt.Sprintf("   Alíquota efetiva: %s\n", domain.FormatRate(result.EffectiveTaxRate)))
		sb.WriteString(fmt.Sprintf("   Imposto anual: %s\n", domain.FormatBRL(result.AnnualTaxLiability)))
		sb.WriteString(fmt.Sprintf("   Pagamento mensal médio: %s\n", domain.FormatBRL(result.AverageMonthlyPayment)))
		sb.WriteString("\n")
	}

	sb.WriteString(RecommendationHeading + "\n")
	sb.WriteString(strings.Repeat("-", analysisSeparatorWidth) + "\n")
	sb.WriteString(fmt.Sprintf("   Regime recomendado: %s\n", strings.ToUpper(rc.RecommendedRegime.DisplayName())))
	if rc.EstimatedSavings > 0 {
		sb.WriteString(fmt.Sprintf("   Economia estimada em relação ao Simples Nacional: %s por ano\n", domain.FormatBRL(rc.EstimatedSavings)))
	} else {
		sb.WriteString("   O Simples Nacional já é o regime de menor custo estimado.\n")
	}
	sb.WriteString("\n")

	sb.WriteString(DisclaimerHeading + "\n")
	sb.WriteString(strings.Repeat("-", analysisSeparatorWidth) + "\n")
	sb.WriteString("   " + Disclaimer + "\n")

	return sb.String()
}
