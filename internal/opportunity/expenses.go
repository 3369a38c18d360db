package opportunity

import (
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Each expense opportunity looks at an estimated sub-budget, a fixed share of
// total expenses, and fires only when that budget exceeds its threshold.
var (
	payrollShare        = decimal.RequireFromString("0.30")
	contractorThreshold = int64(20000000)
	contractorRate      = decimal.RequireFromString("0.15")
	contractorCost      = int64(1000000)

	equipmentShare = decimal.RequireFromString("0.15")
	leaseThreshold = int64(10000000)
	leaseRate      = decimal.RequireFromString("0.10")
	leaseCost      = int64(200000)

	servicesShare        = decimal.RequireFromString("0.20")
	outsourcingThreshold = int64(15000000)
	outsourcingRate      = decimal.RequireFromString("0.12")
	outsourcingCost      = int64(500000)
)

// DetectExpenseOptimizations emits expense restructuring opportunities:
// contractor versus employee, lease versus purchase and service outsourcing.
func DetectExpenseOptimizations(input domain.FinancialInput, _ *domain.CompanyContext) []domain.Opportunity {
	var opportunities []domain.Opportunity

	if payroll := share(input.Expenses, payrollShare); payroll > contractorThreshold {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryExpenseOptimization,
			Title:                "Revisão do modelo de contratação",
			Description:          "Avaliar a contratação de profissionais especializados como prestadores de serviço em vez de vínculo CLT, reduzindo encargos sobre a folha.",
			EstimatedSavings:     share(payroll, contractorRate),
			ImplementationCost:   contractorCost,
			RiskLevel:            domain.LevelMedium,
			ImplementationEffort: domain.LevelMedium,
			ApplicableRegimes:    allRegimes(),
			Requirements: []string{
				"Análise jurídica trabalhista",
				"Atividades sem subordinação ou habitualidade",
			},
			Timeline: "3-6 meses",
			ActionItems: []string{
				"Mapear funções passíveis de contratação por prestação de serviço",
				"Obter parecer trabalhista",
				"Revisar contratos vigentes",
			},
			SuccessMetrics: []string{
				"Redução de encargos sobre a folha",
				"Nenhum passivo trabalhista identificado",
			},
		}, "contractor-model"))
	}

	if equipment := share(input.Expenses, equipmentShare); equipment > leaseThreshold {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryExpenseOptimization,
			Title:                "Arrendamento em vez de compra de equipamentos",
			Description:          "Contraprestações de arrendamento operacional são dedutíveis integralmente no período, enquanto a compra é deduzida apenas via depreciação.",
			EstimatedSavings:     share(equipment, leaseRate),
			ImplementationCost:   leaseCost,
			RiskLevel:            domain.LevelLow,
			ImplementationEffort: domain.LevelLow,
			ApplicableRegimes:    allRegimes(),
			Requirements: []string{
				"Plano de renovação de equipamentos",
				"Cotações de arrendadoras",
			},
			Timeline: "1-3 meses",
			ActionItems: []string{
				"Listar as aquisições de equipamentos previstas",
				"Comparar o custo total de compra e de arrendamento",
			},
			SuccessMetrics: []string{
				"Contratos de arrendamento firmados",
				"Redução do desembolso inicial com equipamentos",
			},
		}, "lease-vs-purchase"))
	}

	if services := share(input.Expenses, servicesShare); services > outsourcingThreshold {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryExpenseOptimization,
			Title:                "Terceirização de serviços de apoio",
			Description:          "Terceirizar atividades de apoio (limpeza, segurança, TI, contabilidade) converte custos fixos em despesas dedutíveis com possível crédito de PIS/COFINS.",
			EstimatedSavings:     share(services, outsourcingRate),
			ImplementationCost:   outsourcingCost,
			RiskLevel:            domain.LevelMedium,
			ImplementationEffort: domain.LevelMedium,
			ApplicableRegimes:    allRegimes(),
			Requirements: []string{
				"Processos de apoio documentados",
				"Fornecedores com regularidade fiscal",
			},
			Timeline: "3-6 meses",
			ActionItems: []string{
				"Identificar atividades de apoio terceirizáveis",
				"Solicitar propostas de fornecedores",
				"Definir acordos de nível de serviço",
			},
			SuccessMetrics: []string{
				"Custo por atividade de apoio reduzido",
				"Contratos com SLA em vigor",
			},
		}, "service-outsourcing"))
	}

	return opportunities
}
