package opportunity

import (
	"fmt"
	"testing"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(string, ...any)  {}
func (l *recordingLogger) Errorf(string, ...any) {}

func fullCompany() *domain.CompanyContext {
	return &domain.CompanyContext{
		Name:        "Nordeste Software Ltda",
		Industry:    "Tecnologia",
		State:       "BA",
		Description: "Exportação de software",
	}
}

func TestDetectAllOpportunities_Ranking(t *testing.T) {
	got := DetectAllOpportunities(sampleInput(), fullCompany())
	require.Len(t, got, 9)

	assert.Equal(t, []string{
		"Arrendamento em vez de compra de equipamentos",
		"Dedução de despesas de home office",
		"Depreciação acelerada de equipamentos",
		"Desoneração de receitas de exportação",
		"Antecipação de despesas",
		"Revisão do modelo de contratação",
		"Terceirização de serviços de apoio",
		"Incentivo à inovação (Lei do Bem)",
		"Incentivo regional SUDENE",
	}, titles(got))

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Priority, got[i].Priority)
	}
	assert.Equal(t, 8, got[0].Priority)
	assert.Equal(t, 6, got[len(got)-1].Priority)
}

func TestDetectAllOpportunities_StableTies(t *testing.T) {
	same := func(title string) Generator {
		return func(domain.FinancialInput, *domain.CompanyContext) []domain.Opportunity {
			return []domain.Opportunity{{Title: title, ROI: 100}}
		}
	}
	a := &Aggregator{Generators: []Generator{same("a"), same("b"), same("c")}}
	got := a.DetectAll(domain.FinancialInput{}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, titles(got))
}

func TestDetectAllOpportunities_MinimalCompany(t *testing.T) {
	got := DetectAllOpportunities(domain.FinancialInput{GrossRevenue: 10000000, Expenses: 1000000}, nil)
	assert.ElementsMatch(t, []string{
		"Dedução de despesas de home office",
		"Antecipação de despesas",
	}, titles(got))
	for _, o := range got {
		assert.True(t, o.IsQuickWin())
		assert.Equal(t, 7, o.Priority)
	}
}

func TestAggregator_SetLogger(t *testing.T) {
	a := NewAggregator()
	logger := &recordingLogger{}
	a.SetLogger(logger)
	got := a.DetectAll(sampleInput(), nil)

	assert.Len(t, logger.lines, len(got)+1)
	assert.Contains(t, logger.lines[len(logger.lines)-1], fmt.Sprintf("detected %d opportunities", len(got)))

	a.SetLogger(nil)
	assert.NotPanics(t, func() { a.DetectAll(sampleInput(), nil) })
}

func TestFilterByRegime(t *testing.T) {
	all := DetectAllOpportunities(sampleInput(), fullCompany())

	simplified := FilterByRegime(all, domain.RegimeSimplified)
	assert.Equal(t, []string{
		"Arrendamento em vez de compra de equipamentos",
		"Desoneração de receitas de exportação",
		"Revisão do modelo de contratação",
		"Terceirização de serviços de apoio",
	}, titles(simplified))

	assert.Len(t, FilterByRegime(all, domain.RegimeReal), len(all))
	assert.Empty(t, FilterByRegime(nil, domain.RegimeReal))
}

func TestSummarize(t *testing.T) {
	summary := Summarize(DetectAllOpportunities(sampleInput(), fullCompany()))

	assert.Equal(t, 9, summary.OpportunityCount)
	assert.Equal(t, int64(42350000), summary.TotalEstimatedSavings)
	assert.Equal(t, int64(6500000), summary.TotalImplementationCost)
	assert.Equal(t, int64(35850000), summary.NetSavings)
	assert.Equal(t, 3, summary.QuickWins)
	assert.Equal(t, int64(6750000), summary.QuickWinSavings)
	assert.Equal(t, "Arrendamento em vez de compra de equipamentos", summary.TopOpportunity)

	assert.Equal(t, map[domain.Category]int{
		domain.CategoryDeduction:           3,
		domain.CategoryCredit:              2,
		domain.CategoryTiming:              1,
		domain.CategoryExpenseOptimization: 3,
	}, summary.ByCategory)
	assert.Equal(t, 5, summary.ByRisk[domain.LevelLow])
	assert.Equal(t, 4, summary.ByRisk[domain.LevelMedium])
	assert.Zero(t, summary.ByRisk[domain.LevelHigh])
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.OpportunityCount)
	assert.Empty(t, summary.TopOpportunity)
	assert.NotNil(t, summary.ByCategory)
}
