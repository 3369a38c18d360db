package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesComparison() domain.RegimeComparison {
	return CompareRegimes(domain.FinancialInput{
		GrossRevenue: 250000000,
		Expenses:     240000000,
		Sector:       domain.SectorServices,
	})
}

func TestRenderAnalysis_SectionOrder(t *testing.T) {
	comparison := servicesComparison()
	analysis := comparison.Analysis

	labels := []string{
		AnalysisTitle,
		"1. SIMPLES NACIONAL",
		"2. LUCRO PRESUMIDO",
		"3. LUCRO REAL",
		RecommendationHeading,
		DisclaimerHeading,
	}

	last := -1
	for _, label := range labels {
		idx := strings.Index(analysis, label)
		require.NotEqual(t, -1, idx, "missing section %q", label)
		assert.Greater(t, idx, last, "section %q out of order", label)
		last = idx
	}

	assert.Contains(t, analysis, "Alíquota efetiva: 8.80%")
	assert.Contains(t, analysis, "Imposto anual: R$ 220000.00")
	assert.Contains(t, analysis, "Regime recomendado: LUCRO REAL")
	assert.Contains(t, analysis, "R$ 186240.00")
	assert.Contains(t, analysis, Disclaimer)
}

func TestRenderAnalysis_NoSavings(t *testing.T) {
	comparison := CompareRegimes(domain.FinancialInput{GrossRevenue: 250000000, Sector: domain.SectorServices})

	assert.Contains(t, comparison.Analysis, "Regime recomendado: SIMPLES NACIONAL")
	assert.Contains(t, comparison.Analysis, "já é o regime de menor custo")
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	comparison := servicesComparison()

	result := formatter.Format(&comparison)

	assert.Contains(t, result, "COMPARAÇÃO DE REGIMES TRIBUTÁRIOS")
	assert.Contains(t, result, "Simples Nacional")
	assert.Contains(t, result, "Lucro Presumido")
	assert.Contains(t, result, "Lucro Real *")
	assert.Contains(t, result, "Recomendado: Lucro Real")
	assert.Contains(t, result, "Economia estimada: R$186.2K por ano")
	assert.NotContains(t, result, "Recommended")

	assert.Less(t, strings.Index(result, "Simples Nacional"), strings.Index(result, "Lucro Presumido"))
	assert.Less(t, strings.Index(result, "Lucro Presumido"), strings.Index(result, "Lucro Real"))
}

func TestTableFormatter_FormatCents(t *testing.T) {
	formatter := &TableFormatter{}

	assert.Equal(t, "2.50M", formatter.formatCents(250000000))
	assert.Equal(t, "220.0K", formatter.formatCents(22000000))
	assert.Equal(t, "999", formatter.formatCents(99900))
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	comparison := servicesComparison()

	result := formatter.FormatCompact(&comparison)

	assert.Equal(t, 2, strings.Count(result, " | "))
	assert.Contains(t, result, "Lucro Real*")
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	comparison := servicesComparison()

	result, err := formatter.Format(&comparison)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Regime,"))
	assert.True(t, strings.HasPrefix(lines[1], "SIMPLIFIED,0.088000,220000.00"))
	assert.True(t, strings.HasPrefix(lines[2], "PRESUMED,"))
	assert.True(t, strings.HasPrefix(lines[3], "REAL,"))
	assert.True(t, strings.HasSuffix(lines[3], ",true"))
}

func TestJSONFormatter_Format(t *testing.T) {
	comparison := servicesComparison()

	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}

		result, err := formatter.Format(&comparison)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, "REAL", decoded["recommendedRegime"])

		results, ok := decoded["results"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, results, "SIMPLIFIED")
		assert.Contains(t, results, "PRESUMED")
		assert.Contains(t, results, "REAL")
	}
}

func TestJSONFormatter_RoundTrip(t *testing.T) {
	comparison := servicesComparison()
	formatter := &JSONFormatter{}

	result, err := formatter.Format(&comparison)
	require.NoError(t, err)

	var decoded domain.RegimeComparison
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	assert.Equal(t, comparison.RecommendedRegime, decoded.RecommendedRegime)
	assert.Equal(t, comparison.Result(domain.RegimeReal).AnnualTaxLiability, decoded.Result(domain.RegimeReal).AnnualTaxLiability)
}
