package calculation

import "github.com/fabiotcs/apptributario-sub000/internal/domain"

type profile struct {
	advantages    []string
	disadvantages []string
}

var regimeProfiles = map[domain.Regime]profile{
	domain.RegimeSimplified: {
		advantages: []string{
			"Recolhimento unificado em guia única (DAS)",
			"Menor complexidade contábil e de obrigações acessórias",
			"Alíquota previsível sobre o faturamento",
		},
		disadvantages: []string{
			"Imposto incide sobre a receita mesmo em caso de prejuízo",
			"Limite de faturamento anual para enquadramento",
			"Não permite aproveitamento de créditos de PIS/COFINS",
		},
	},
	domain.RegimePresumed: {
		advantages: []string{
			"Base de cálculo presumida simplifica a apuração",
			"Vantajoso quando a margem real supera a presumida",
			"Custo operacional menor que o do Lucro Real",
		},
		disadvantages: []string{
			"Tributa o lucro presumido mesmo com margem real baixa",
			"Não permite compensar prejuízos fiscais",
			"Adicional de IRPJ sobre o lucro acima do limite mensal",
		},
	},
	domain.RegimeReal: {
		advantages: []string{
			"Tributa apenas o lucro efetivamente apurado",
			"Permite compensar prejuízos e aproveitar créditos fiscais",
			"Deduções e incentivos fiscais reduzem a base de cálculo",
		},
		disadvantages: []string{
			"Maior complexidade contábil e custo de conformidade",
			"Exige escrituração completa e controles rigorosos",
			"Maior exposição à fiscalização",
		},
	},
}

// regimeProfile returns fresh copies so callers cannot alter the shared table
func regimeProfile(r domain.Regime) (advantages, disadvantages []string) {
	p := regimeProfiles[r]
	return append([]string(nil), p.advantages...), append([]string(nil), p.disadvantages...)
}
