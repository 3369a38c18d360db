package opportunity

import (
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	homeOfficeRate = decimal.RequireFromString("0.07")
	homeOfficeCap  = int64(1500000)

	depreciationThreshold = int64(50000000)
	depreciationRate      = decimal.RequireFromString("0.05")
	depreciationCap       = int64(5000000)
	depreciationCost      = int64(500000)

	innovationRate = decimal.RequireFromString("0.06")
	innovationCost = int64(2000000)
)

// technologyKeywords are matched against the lowercased industry tag
var technologyKeywords = []string{"tecnologia", "technology", "software", "inovação", "innovation"}

// DetectDeductions emits deductible expense opportunities: home office always,
// accelerated depreciation above an expense threshold and the Lei do Bem R&D
// incentive for technology companies.
func DetectDeductions(input domain.FinancialInput, company *domain.CompanyContext) []domain.Opportunity {
	opportunities := []domain.Opportunity{
		finalize(domain.Opportunity{
			Category:             domain.CategoryDeduction,
			Title:                "Dedução de despesas de home office",
			Description:          "Parte das despesas com estrutura de trabalho remoto (energia, internet, aluguel proporcional) pode ser tratada como despesa operacional dedutível.",
			EstimatedSavings:     capAt(share(input.Expenses, homeOfficeRate), homeOfficeCap),
			ImplementationCost:   0,
			RiskLevel:            domain.LevelLow,
			ImplementationEffort: domain.LevelLow,
			ApplicableRegimes:    []domain.Regime{domain.RegimeReal},
			Requirements: []string{
				"Política formal de trabalho remoto",
				"Comprovantes das despesas rateadas",
			},
			Timeline: TimelineImmediate,
			ActionItems: []string{
				"Levantar despesas de estrutura remota dos colaboradores",
				"Definir critério de rateio com a contabilidade",
				"Registrar as despesas em centro de custo próprio",
			},
			SuccessMetrics: []string{
				"Despesas de home office escrituradas mensalmente",
				"Redução da base de cálculo do IRPJ/CSLL",
			},
		}, "home-office"),
	}

	if input.Expenses > depreciationThreshold {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryDeduction,
			Title:                "Depreciação acelerada de equipamentos",
			Description:          "Revisar o imobilizado e aplicar as taxas de depreciação acelerada permitidas para máquinas e equipamentos utilizados em mais de um turno.",
			EstimatedSavings:     capAt(share(input.Expenses, depreciationRate), depreciationCap),
			ImplementationCost:   depreciationCost,
			RiskLevel:            domain.LevelLow,
			ImplementationEffort: domain.LevelMedium,
			ApplicableRegimes:    []domain.Regime{domain.RegimeReal},
			Requirements: []string{
				"Inventário atualizado do ativo imobilizado",
				"Laudo de utilização dos equipamentos",
			},
			Timeline: "1-3 meses",
			ActionItems: []string{
				"Conciliar o inventário físico com o controle patrimonial",
				"Classificar os bens por turno de utilização",
				"Recalcular as quotas de depreciação do exercício",
			},
			SuccessMetrics: []string{
				"Quotas de depreciação recalculadas",
				"Economia de IRPJ/CSLL no exercício",
			},
		}, "equipment-depreciation"))
	}

	if isTechnologyCompany(company) {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryDeduction,
			Title:                "Incentivo à inovação (Lei do Bem)",
			Description:          "Dispêndios com pesquisa e desenvolvimento tecnológico permitem exclusão adicional da base do IRPJ e da CSLL.",
			EstimatedSavings:     share(input.Expenses, innovationRate),
			ImplementationCost:   innovationCost,
			RiskLevel:            domain.LevelMedium,
			ImplementationEffort: domain.LevelHigh,
			ApplicableRegimes:    []domain.Regime{domain.RegimeReal},
			Requirements: []string{
				"Apuração pelo Lucro Real",
				"Regularidade fiscal (CND)",
				"Projetos de P&D documentados",
			},
			Timeline: "3-6 meses",
			ActionItems: []string{
				"Mapear projetos e dispêndios de P&D",
				"Implantar controle de horas técnicas por projeto",
				"Preparar o formulário FORMP&D",
			},
			SuccessMetrics: []string{
				"Projetos elegíveis documentados",
				"Exclusão adicional aplicada na apuração anual",
			},
		}, "innovation-incentive"))
	}

	return opportunities
}

func isTechnologyCompany(company *domain.CompanyContext) bool {
	if company == nil {
		return false
	}
	industry := strings.ToLower(company.Industry)
	for _, keyword := range technologyKeywords {
		if strings.Contains(industry, keyword) {
			return true
		}
	}
	return false
}
