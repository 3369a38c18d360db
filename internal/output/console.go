package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/compare"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// ConsoleFormatter prints the comparison table, the ranked opportunities and
// the savings summary as plain text
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}

	if report.Company.Name != "" {
		fmt.Fprintf(buf, "Empresa: %s", report.Company.Name)
		if code := report.Company.StateCode(); code != "" {
			fmt.Fprintf(buf, " (%s)", code)
		}
		buf.WriteString("\n\n")
	}

	table := &compare.TableFormatter{}
	buf.WriteString(table.Format(&report.Comparison))
	buf.WriteString("\n")

	writeOpportunityList(buf, report.Opportunities)
	buf.WriteString("\n")
	writeSummary(buf, report.Summary)

	return buf.Bytes(), nil
}

// FormatOpportunities renders only the ranked list and its summary
func FormatOpportunities(opportunities []domain.Opportunity, summary domain.SavingsSummary) string {
	buf := &bytes.Buffer{}
	writeOpportunityList(buf, opportunities)
	buf.WriteString("\n")
	writeSummary(buf, summary)
	return buf.String()
}

func writeOpportunityList(buf *bytes.Buffer, opportunities []domain.Opportunity) {
	buf.WriteString("OPORTUNIDADES DE OTIMIZAÇÃO TRIBUTÁRIA\n")
	buf.WriteString(strings.Repeat("=", 80) + "\n")
	if len(opportunities) == 0 {
		buf.WriteString("Nenhuma oportunidade identificada.\n")
		return
	}

	fmt.Fprintf(buf, "%-4s %-44s %14s %8s %6s %-6s\n", "#", "Oportunidade", "Economia", "ROI", "Prio", "Risco")
	buf.WriteString(strings.Repeat("-", 80) + "\n")
	for i, o := range opportunities {
		fmt.Fprintf(buf, "%-4d %-44s %14s %7.0f%% %6d %-6s\n",
			i+1,
			truncate(o.Title, 44),
			domain.FormatBRL(o.EstimatedSavings),
			o.ROI,
			o.Priority,
			o.RiskLevel)
	}
}

func writeSummary(buf *bytes.Buffer, s domain.SavingsSummary) {
	buf.WriteString("RESUMO\n")
	buf.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(buf, "Oportunidades:              %d\n", s.OpportunityCount)
	fmt.Fprintf(buf, "Economia total estimada:    %s\n", domain.FormatBRL(s.TotalEstimatedSavings))
	fmt.Fprintf(buf, "Custo de implementação:     %s\n", domain.FormatBRL(s.TotalImplementationCost))
	fmt.Fprintf(buf, "Economia líquida:           %s\n", domain.FormatBRL(s.NetSavings))
	fmt.Fprintf(buf, "Ganhos rápidos:             %d (%s)\n", s.QuickWins, domain.FormatBRL(s.QuickWinSavings))
	if s.TopOpportunity != "" {
		fmt.Fprintf(buf, "Principal oportunidade:     %s\n", s.TopOpportunity)
	}
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// JSONFormatter serializes the whole report
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
