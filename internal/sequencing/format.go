package sequencing

import (
	"fmt"
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

// FormatPlan renders an implementation plan as console text
func FormatPlan(plan ImplementationPlan) string {
	var sb strings.Builder

	sb.WriteString("PLANO DE IMPLEMENTAÇÃO\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Estratégia:  %s\n", plan.StrategyUsed))
	if plan.Budget > 0 {
		sb.WriteString(fmt.Sprintf("Orçamento:   %s (restante %s)\n", domain.FormatBRL(plan.Budget), domain.FormatBRL(plan.RemainingBudget)))
	} else {
		sb.WriteString("Orçamento:   ilimitado\n")
	}
	sb.WriteString("\n")

	if len(plan.Steps) == 0 {
		sb.WriteString("Nada a implementar.\n")
	}
	for _, step := range plan.Steps {
		o := step.Opportunity
		sb.WriteString(fmt.Sprintf("%2d. %s\n", step.Step, o.Title))
		sb.WriteString(fmt.Sprintf("    custo %s, economia %s, líquido acumulado %s\n",
			domain.FormatBRL(o.ImplementationCost),
			domain.FormatBRL(o.EstimatedSavings),
			domain.FormatBRL(step.CumulativeSavings-step.CumulativeCost)))
	}

	if len(plan.Deferred) > 0 {
		sb.WriteString("\nAdiadas:\n")
		for _, o := range plan.Deferred {
			sb.WriteString(fmt.Sprintf("  - %s (%s)\n", o.Title, domain.FormatBRL(o.ImplementationCost)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Custo total:      %s\n", domain.FormatBRL(plan.TotalCost)))
	sb.WriteString(fmt.Sprintf("Economia total:   %s\n", domain.FormatBRL(plan.TotalSavings)))
	sb.WriteString(fmt.Sprintf("Economia líquida: %s\n", domain.FormatBRL(plan.NetSavings)))
	for _, note := range plan.Notes {
		sb.WriteString("Nota: " + note + "\n")
	}
	return sb.String()
}
