package opportunity

import (
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	deferralThreshold = int64(1000000000)
	deferralRate      = decimal.RequireFromString("0.005")
	deferralCost      = int64(300000)

	accelerationRate = decimal.RequireFromString("0.02")
)

// DetectTiming emits timing opportunities: revenue deferral for large
// companies and expense acceleration for everyone.
func DetectTiming(input domain.FinancialInput, _ *domain.CompanyContext) []domain.Opportunity {
	var opportunities []domain.Opportunity

	if input.GrossRevenue > deferralThreshold {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryTiming,
			Title:                "Diferimento de receitas",
			Description:          "Reconhecer receitas de contratos de longo prazo conforme a execução ou pelo regime de caixa adia o pagamento dos tributos.",
			EstimatedSavings:     share(input.GrossRevenue, deferralRate),
			ImplementationCost:   deferralCost,
			RiskLevel:            domain.LevelHigh,
			ImplementationEffort: domain.LevelMedium,
			ApplicableRegimes:    []domain.Regime{domain.RegimePresumed, domain.RegimeReal},
			Requirements: []string{
				"Contratos com faturamento parcelado ou de longo prazo",
				"Controle de recebimentos por contrato",
			},
			Timeline: "Próximo exercício",
			ActionItems: []string{
				"Identificar contratos elegíveis ao diferimento",
				"Avaliar a opção pelo regime de caixa",
				"Ajustar o faturamento ao cronograma de execução",
			},
			SuccessMetrics: []string{
				"Receita diferida controlada por contrato",
				"Fluxo de caixa tributário postergado",
			},
		}, "revenue-deferral"))
	}

	opportunities = append(opportunities, finalize(domain.Opportunity{
		Category:             domain.CategoryTiming,
		Title:                "Antecipação de despesas",
		Description:          "Antecipar para o exercício corrente despesas já previstas (manutenção, treinamento, material de consumo) reduz o lucro tributável do período.",
		EstimatedSavings:     share(input.Expenses, accelerationRate),
		ImplementationCost:   0,
		RiskLevel:            domain.LevelLow,
		ImplementationEffort: domain.LevelLow,
		ApplicableRegimes:    []domain.Regime{domain.RegimeReal},
		Requirements: []string{
			"Caixa disponível para a antecipação",
			"Despesas necessárias à atividade",
		},
		Timeline: TimelineImmediate,
		ActionItems: []string{
			"Listar as despesas previstas para o início do próximo exercício",
			"Negociar a antecipação com fornecedores",
		},
		SuccessMetrics: []string{
			"Despesas antecipadas até o fechamento do exercício",
		},
	}, "expense-acceleration"))

	return opportunities
}
