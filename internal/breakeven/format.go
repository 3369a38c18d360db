package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// TableFormatter formats break-even results as console text
type TableFormatter struct{}

// Format renders a single search result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("PONTO DE EQUILÍBRIO DO LUCRO REAL\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Variável:      %s\n", result.Request.Target.Label()))
	sb.WriteString(fmt.Sprintf("Receita bruta: %s\n", domain.FormatBRL(result.Request.Input.GrossRevenue)))
	sb.WriteString(fmt.Sprintf("Situação:      %s\n", tf.formatStatus(result.Found)))
	sb.WriteString(fmt.Sprintf("Iterações:     %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergência:  %s\n", result.ConvergenceInfo))
	}

	if result.Found {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Lucro Real passa a ser recomendado a partir de %s de %s (%s da receita)\n",
			domain.FormatBRL(result.Value), result.Request.Target.Label(), domain.FormatRate(result.Ratio)))
		r := result.Comparison.Result(domain.RegimeReal)
		sb.WriteString(fmt.Sprintf("Imposto anual nesse ponto: %s\n", domain.FormatBRL(r.AnnualTaxLiability)))
	}

	return sb.String()
}

// FormatSectors renders one row per sector
func (tf *TableFormatter) FormatSectors(results []SectorResult) string {
	var sb strings.Builder

	sb.WriteString("PONTO DE EQUILÍBRIO DO LUCRO REAL POR SETOR\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-14s %20s %10s\n", "Setor", "Equilíbrio", "Proporção"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, sr := range results {
		if !sr.Result.Found {
			sb.WriteString(fmt.Sprintf("%-14s %20s %10s\n", sr.Sector, "nunca", "-"))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-14s %20s %10s\n",
			sr.Sector, domain.FormatBRL(sr.Result.Value), domain.FormatRate(sr.Result.Ratio)))
	}
	return sb.String()
}

func (tf *TableFormatter) formatStatus(found bool) string {
	if found {
		return "encontrado"
	}
	return "não atingido"
}

// JSONFormatter formats break-even results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format marshals any break-even result value
func (jf *JSONFormatter) Format(v any) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
