package opportunity

import (
	"testing"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() domain.FinancialInput {
	return domain.FinancialInput{
		GrossRevenue: 250000000,
		Expenses:     150000000,
		Sector:       domain.SectorTechnology,
	}
}

func titles(opportunities []domain.Opportunity) []string {
	out := make([]string, len(opportunities))
	for i, o := range opportunities {
		out[i] = o.Title
	}
	return out
}

func TestDetectDeductions(t *testing.T) {
	t.Run("below depreciation threshold only home office", func(t *testing.T) {
		got := DetectDeductions(domain.FinancialInput{GrossRevenue: 100000000, Expenses: 10000000}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Dedução de despesas de home office", got[0].Title)
		assert.Equal(t, int64(700000), got[0].EstimatedSavings)
		assert.Equal(t, int64(0), got[0].ImplementationCost)
		assert.Equal(t, 100.0, got[0].ROI)
	})

	t.Run("above depreciation threshold both", func(t *testing.T) {
		got := DetectDeductions(sampleInput(), &domain.CompanyContext{Industry: "Varejo"})
		require.Len(t, got, 2)
		assert.Equal(t, int64(1500000), got[0].EstimatedSavings, "home office is capped")
		assert.Equal(t, int64(5000000), got[1].EstimatedSavings, "depreciation is capped")
		assert.Equal(t, int64(500000), got[1].ImplementationCost)
		assert.InDelta(t, 900.0, got[1].ROI, 1e-9)
	})

	t.Run("technology industry adds innovation incentive", func(t *testing.T) {
		got := DetectDeductions(sampleInput(), &domain.CompanyContext{Industry: "Software as a Service"})
		require.Len(t, got, 3)
		assert.Equal(t, int64(9000000), got[2].EstimatedSavings)
		assert.Equal(t, domain.LevelHigh, got[2].ImplementationEffort)
	})

	t.Run("zero expenses", func(t *testing.T) {
		got := DetectDeductions(domain.FinancialInput{}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, int64(0), got[0].EstimatedSavings)
	})
}

func TestDetectCredits(t *testing.T) {
	t.Run("northeast state gets SUDENE", func(t *testing.T) {
		got := DetectCredits(sampleInput(), &domain.CompanyContext{State: "BA"})
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Title, "SUDENE")
		assert.Equal(t, int64(3750000), got[0].EstimatedSavings)
		assert.Equal(t, []domain.Regime{domain.RegimeReal}, got[0].ApplicableRegimes)
	})

	t.Run("state match is case insensitive", func(t *testing.T) {
		got := DetectCredits(sampleInput(), &domain.CompanyContext{State: " pe "})
		require.Len(t, got, 1)
	})

	t.Run("southern state gets nothing", func(t *testing.T) {
		got := DetectCredits(sampleInput(), &domain.CompanyContext{State: "SC"})
		for _, o := range got {
			assert.NotContains(t, o.Title, "SUDENE")
		}
		assert.Empty(t, got)
	})

	t.Run("nil company", func(t *testing.T) {
		assert.Empty(t, DetectCredits(sampleInput(), nil))
	})

	t.Run("exporter", func(t *testing.T) {
		got := DetectCredits(sampleInput(), &domain.CompanyContext{Description: "Exportamos café para a Europa"})
		require.Len(t, got, 1)
		assert.Equal(t, int64(7500000), got[0].EstimatedSavings)
		assert.Equal(t, domain.AllRegimes(), got[0].ApplicableRegimes)
	})

	t.Run("export keyword is case sensitive", func(t *testing.T) {
		assert.Empty(t, DetectCredits(sampleInput(), &domain.CompanyContext{Description: "EXPORT TRADING"}))
	})
}

func TestDetectTiming(t *testing.T) {
	t.Run("acceleration always present", func(t *testing.T) {
		got := DetectTiming(sampleInput(), nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Antecipação de despesas", got[0].Title)
		assert.Equal(t, int64(3000000), got[0].EstimatedSavings)
	})

	t.Run("large revenue adds deferral first", func(t *testing.T) {
		got := DetectTiming(domain.FinancialInput{GrossRevenue: 2000000000, Expenses: 100000000}, nil)
		require.Len(t, got, 2)
		assert.Equal(t, "Diferimento de receitas", got[0].Title)
		assert.Equal(t, int64(10000000), got[0].EstimatedSavings)
		assert.Equal(t, domain.LevelHigh, got[0].RiskLevel)
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		got := DetectTiming(domain.FinancialInput{GrossRevenue: 1000000000}, nil)
		assert.Len(t, got, 1)
	})
}

func TestDetectExpenseOptimizations(t *testing.T) {
	t.Run("all three above thresholds", func(t *testing.T) {
		got := DetectExpenseOptimizations(sampleInput(), nil)
		require.Len(t, got, 3)
		assert.Equal(t, int64(6750000), got[0].EstimatedSavings)
		assert.Equal(t, int64(2250000), got[1].EstimatedSavings)
		assert.Equal(t, int64(3600000), got[2].EstimatedSavings)
	})

	t.Run("small budget yields nothing", func(t *testing.T) {
		assert.Empty(t, DetectExpenseOptimizations(domain.FinancialInput{Expenses: 50000000}, nil))
	})
}

func TestCalculateROI(t *testing.T) {
	assert.Equal(t, 100.0, CalculateROI(0, 0))
	assert.Equal(t, 100.0, CalculateROI(123456, 0))
	assert.InDelta(t, 150.0, CalculateROI(3750000, 1500000), 1e-9)
	assert.InDelta(t, -100.0, CalculateROI(0, 500000), 1e-9)
}

func TestScoreOpportunity(t *testing.T) {
	tests := []struct {
		name   string
		roi    float64
		effort domain.Level
		risk   domain.Level
		want   int
	}{
		{"zero cost quick win", 100, domain.LevelLow, domain.LevelLow, 7},
		{"bonus is capped", 100000, domain.LevelLow, domain.LevelLow, 8},
		{"huge roi heavy lift", 100000, domain.LevelHigh, domain.LevelHigh, 5},
		{"half rounds up", 150, domain.LevelHigh, domain.LevelMedium, 6},
		{"total loss", -100, domain.LevelLow, domain.LevelLow, 3},
		{"clamped to one", -100000, domain.LevelLow, domain.LevelLow, 1},
		{"clamped with penalties", -1000, domain.LevelHigh, domain.LevelHigh, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreOpportunity(domain.Opportunity{ROI: tt.roi, ImplementationEffort: tt.effort, RiskLevel: tt.risk})
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 10)
		})
	}
}

func TestOpportunityIDs(t *testing.T) {
	company := &domain.CompanyContext{Industry: "tecnologia", State: "BA", Description: "export"}
	first := DetectAllOpportunities(sampleInput(), company)
	second := DetectAllOpportunities(sampleInput(), company)

	seen := make(map[string]bool)
	for i, o := range first {
		_, err := uuid.Parse(o.ID)
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
		assert.Equal(t, o.ID, second[i].ID)
	}

	// IDs do not depend on amounts
	other := DetectDeductions(domain.FinancialInput{Expenses: 1}, nil)
	assert.Equal(t, first[1].ID, other[0].ID)
}
