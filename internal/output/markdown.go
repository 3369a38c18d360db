package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown. The HTML
// formatter renders this same document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	title := "Relatório de Planejamento Tributário"
	if report.Company.Name != "" {
		title += " - " + report.Company.Name
	}
	fmt.Fprintf(buf, "# %s\n\n", title)

	buf.WriteString("## Comparação de regimes\n\n")
	buf.WriteString("| Regime | Alíquota efetiva | Imposto anual | Pagamento mensal |\n")
	buf.WriteString("|---|---:|---:|---:|\n")
	for _, r := range report.Comparison.Ordered() {
		name := r.Regime.DisplayName()
		if r.Regime == report.Comparison.RecommendedRegime {
			name = "**" + name + "**"
		}
		fmt.Fprintf(buf, "| %s | %s | %s | %s |\n",
			name,
			domain.FormatRate(r.EffectiveTaxRate),
			domain.FormatBRL(r.AnnualTaxLiability),
			domain.FormatBRL(r.AverageMonthlyPayment))
	}
	fmt.Fprintf(buf, "\nRegime recomendado: **%s**", report.Comparison.RecommendedRegime.DisplayName())
	if report.Comparison.EstimatedSavings > 0 {
		fmt.Fprintf(buf, ", economia estimada de %s por ano", domain.FormatBRL(report.Comparison.EstimatedSavings))
	}
	buf.WriteString(".\n\n")

	buf.WriteString("## Oportunidades\n\n")
	if len(report.Opportunities) == 0 {
		buf.WriteString("Nenhuma oportunidade identificada.\n\n")
	} else {
		buf.WriteString("| # | Oportunidade | Economia | Custo | ROI | Prioridade | Risco |\n")
		buf.WriteString("|---:|---|---:|---:|---:|---:|---|\n")
		for i, o := range report.Opportunities {
			fmt.Fprintf(buf, "| %d | %s | %s | %s | %.0f%% | %d | %s |\n",
				i+1,
				escapeCell(o.Title),
				domain.FormatBRL(o.EstimatedSavings),
				domain.FormatBRL(o.ImplementationCost),
				o.ROI,
				o.Priority,
				o.RiskLevel)
		}
		buf.WriteString("\n")

		for _, o := range report.Opportunities {
			fmt.Fprintf(buf, "### %s\n\n%s\n\n", o.Title, o.Description)
			writeBullets(buf, "Requisitos", o.Requirements)
			writeBullets(buf, "Ações", o.ActionItems)
			writeBullets(buf, "Indicadores de sucesso", o.SuccessMetrics)
		}
	}

	s := report.Summary
	buf.WriteString("## Resumo\n\n")
	fmt.Fprintf(buf, "- Oportunidades: %d\n", s.OpportunityCount)
	fmt.Fprintf(buf, "- Economia estimada total: %s\n", domain.FormatBRL(s.TotalEstimatedSavings))
	fmt.Fprintf(buf, "- Custo de implementação: %s\n", domain.FormatBRL(s.TotalImplementationCost))
	fmt.Fprintf(buf, "- Economia líquida: %s\n", domain.FormatBRL(s.NetSavings))
	fmt.Fprintf(buf, "- Ganhos rápidos: %d\n\n", s.QuickWins)

	fmt.Fprintf(buf, "> **%s:** %s\n", compare.DisclaimerHeading, compare.Disclaimer)

	return buf.Bytes(), nil
}

func writeBullets(buf *bytes.Buffer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(buf, "**%s**\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(buf, "- %s\n", item)
	}
	buf.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
