package opportunity

import (
	"strings"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	sudeneRate = decimal.RequireFromString("0.015")
	sudeneCost = int64(1500000)

	exportRate = decimal.RequireFromString("0.03")
	exportCost = int64(800000)
)

// northeastStates are the states inside the SUDENE area
var northeastStates = map[string]bool{
	"AL": true, "BA": true, "CE": true, "MA": true, "PB": true,
	"PE": true, "PI": true, "RN": true, "SE": true,
}

// exportKeywords are matched case-sensitively against the company description
var exportKeywords = []string{"export", "Export", "exportação", "Exportação"}

// DetectCredits emits credit and incentive opportunities: the SUDENE regional
// incentive for Northeast companies and export tax relief for exporters.
func DetectCredits(input domain.FinancialInput, company *domain.CompanyContext) []domain.Opportunity {
	var opportunities []domain.Opportunity

	if northeastStates[company.StateCode()] {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryCredit,
			Title:                "Incentivo regional SUDENE",
			Description:          "Empreendimentos na área da SUDENE podem obter redução de 75% do IRPJ sobre o lucro da exploração.",
			EstimatedSavings:     share(input.GrossRevenue, sudeneRate),
			ImplementationCost:   sudeneCost,
			RiskLevel:            domain.LevelMedium,
			ImplementationEffort: domain.LevelHigh,
			ApplicableRegimes:    []domain.Regime{domain.RegimeReal},
			Requirements: []string{
				"Estabelecimento na área de atuação da SUDENE",
				"Setor considerado prioritário",
				"Apuração pelo Lucro Real",
			},
			Timeline: "6-12 meses",
			ActionItems: []string{
				"Verificar o enquadramento do setor como prioritário",
				"Protocolar o pleito na SUDENE",
				"Solicitar o reconhecimento do benefício à Receita Federal",
			},
			SuccessMetrics: []string{
				"Laudo constitutivo emitido",
				"Redução do IRPJ aplicada na apuração",
			},
		}, "sudene"))
	}

	if isExporter(company) {
		opportunities = append(opportunities, finalize(domain.Opportunity{
			Category:             domain.CategoryCredit,
			Title:                "Desoneração de receitas de exportação",
			Description:          "Receitas de exportação são imunes a PIS/COFINS e ICMS, e os créditos acumulados na cadeia podem ser ressarcidos ou compensados.",
			EstimatedSavings:     share(input.GrossRevenue, exportRate),
			ImplementationCost:   exportCost,
			RiskLevel:            domain.LevelLow,
			ImplementationEffort: domain.LevelMedium,
			ApplicableRegimes:    allRegimes(),
			Requirements: []string{
				"Registro no Siscomex",
				"Segregação das receitas de exportação",
			},
			Timeline: "1-3 meses",
			ActionItems: []string{
				"Segregar as receitas de exportação na escrituração",
				"Apurar créditos acumulados de PIS/COFINS",
				"Transmitir os pedidos de ressarcimento (PER/DCOMP)",
			},
			SuccessMetrics: []string{
				"Créditos ressarcidos ou compensados",
				"Receitas de exportação segregadas mensalmente",
			},
		}, "export-relief"))
	}

	return opportunities
}

func isExporter(company *domain.CompanyContext) bool {
	if company == nil {
		return false
	}
	for _, keyword := range exportKeywords {
		if strings.Contains(company.Description, keyword) {
			return true
		}
	}
	return false
}
