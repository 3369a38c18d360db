package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fabiotcs/apptributario-sub000/internal/config"
	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "taxopt", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"compare", "regime", "opportunities", "report", "breakeven", "whatif", "plan", "validate", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "testdata/company.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPARAÇÃO DE REGIMES TRIBUTÁRIOS")
	assert.Contains(t, out, "Recomendado: Simples Nacional")
}

func TestCompareCommand_Formats(t *testing.T) {
	out, err := execute(t, "compare", "testdata/company.yaml", "--format", "json")
	require.NoError(t, err)
	var rc domain.RegimeComparison
	require.NoError(t, json.Unmarshal([]byte(out), &rc))
	assert.Equal(t, domain.RegimeSimplified, rc.RecommendedRegime)
	assert.Equal(t, int64(30000000), rc.Result(domain.RegimeReal).AnnualTaxLiability)

	out, err = execute(t, "compare", "testdata/company.yaml", "-f", "analysis")
	require.NoError(t, err)
	assert.Contains(t, out, "ANÁLISE COMPARATIVA DE REGIMES TRIBUTÁRIOS")

	_, err = execute(t, "compare", "testdata/company.yaml", "-f", "yaml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestCompareCommand_FormatFromEnv(t *testing.T) {
	t.Setenv("TAXOPT_OUTPUT_FORMAT", "csv")
	out, err := execute(t, "compare", "testdata/company.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Regime,Effective Rate,Annual Tax")
}

func TestCompareCommand_RulesOverride(t *testing.T) {
	out, err := execute(t, "compare", "testdata/company.yaml", "--rules", "testdata/rules.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Recomendado: Lucro Presumido")
}

func TestRegimeCommand(t *testing.T) {
	out, err := execute(t, "regime", "real", "testdata/company.yaml", "-f", "json")
	require.NoError(t, err)

	var result domain.RegimeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.RegimeReal, result.Regime)
	assert.Equal(t, int64(30000000), result.AnnualTaxLiability)
	assert.Equal(t, int64(24000000), result.RemainingBalance)
	assert.Equal(t, int64(2000000), result.AverageMonthlyPayment)

	out, err = execute(t, "regime", "simplified", "testdata/company.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "SIMPLES NACIONAL")
	assert.Contains(t, out, "Alíquota efetiva:   8.80%")
	assert.Contains(t, out, "Imposto anual:")
	assert.NotContains(t, out, "Effective rate")

	_, err = execute(t, "regime", "mei", "testdata/company.yaml")
	assert.ErrorContains(t, err, "unknown regime")
}

func TestOpportunitiesCommand(t *testing.T) {
	out, err := execute(t, "opportunities", "testdata/company.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "OPORTUNIDADES DE OTIMIZAÇÃO TRIBUTÁRIA")
	assert.Contains(t, out, "Incentivo regional SUDENE")

	out, err = execute(t, "opportunities", "testdata/company.yaml", "--regime", "simplified", "-f", "json")
	require.NoError(t, err)
	var payload struct {
		Opportunities []domain.Opportunity  `json:"opportunities"`
		Summary       domain.SavingsSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.NotEmpty(t, payload.Opportunities)
	for _, o := range payload.Opportunities {
		assert.True(t, o.AppliesTo(domain.RegimeSimplified), o.Title)
	}
	assert.Equal(t, len(payload.Opportunities), payload.Summary.OpportunityCount)
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report", "testdata/company.yaml", "-f", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "# Relatório de Planejamento Tributário - Nordeste Software Ltda")

	_, err = execute(t, "report", "testdata/company.yaml", "-f", "pdf")
	assert.ErrorContains(t, err, "unsupported format for report")
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "testdata/company.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuração válida: Nordeste Software Ltda")

	_, err = execute(t, "validate", "testdata/invalid.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingCompany)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "taxopt dev")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		_, err := newLogger("debug", format)
		assert.NoError(t, err, format)
	}
	_, err := newLogger("info", "xml")
	assert.ErrorContains(t, err, "invalid log format")
}

func TestBreakevenCommand(t *testing.T) {
	out, err := execute(t, "breakeven", "testdata/company.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "PONTO DE EQUILÍBRIO DO LUCRO REAL")
	assert.Contains(t, out, "Situação:      encontrado")

	out, err = execute(t, "breakeven", "testdata/company.yaml", "--all-sectors", "-f", "json")
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 5)

	_, err = execute(t, "breakeven", "testdata/company.yaml", "--target", "revenue")
	assert.ErrorContains(t, err, "unknown target")
}

func TestWhatifCommand(t *testing.T) {
	out, err := execute(t, "whatif", "testdata/company.yaml", "--template", "growth_10", "--apply", "scale_expenses:percent=-50")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPARAÇÃO DE CENÁRIOS")
	assert.Contains(t, out, "growth_10")
	assert.Contains(t, out, "personalizado")

	out, err = execute(t, "whatif", "testdata/company.yaml", "--template", "cost_cut_15", "-f", "json")
	require.NoError(t, err)
	var set map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "Base", set["baseScenarioName"])

	_, err = execute(t, "whatif", "testdata/company.yaml")
	assert.ErrorContains(t, err, "at least one --apply or --template")

	_, err = execute(t, "whatif", "testdata/company.yaml", "--template", "nope")
	assert.ErrorContains(t, err, "unknown template: nope")
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan", "testdata/company.yaml", "--strategy", "quick_wins")
	require.NoError(t, err)
	assert.Contains(t, out, "PLANO DE IMPLEMENTAÇÃO")
	assert.Contains(t, out, "Estratégia:  quick_wins")
	assert.Contains(t, out, "não aplicáveis no Simples Nacional")

	out, err = execute(t, "plan", "testdata/company.yaml", "--all-regimes", "--budget", "100", "-f", "json")
	require.NoError(t, err)
	var plan map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, float64(100), plan["budget"])
	assert.NotEmpty(t, plan["deferred"])

	_, err = execute(t, "plan", "testdata/company.yaml", "--strategy", "custom", "--categories", "bogus")
	assert.ErrorContains(t, err, "unknown category")
}
