package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOverlay_Threshold(t *testing.T) {
	defaults := DefaultTaxRules()

	assert.Equal(t, DefaultMonthlyAdditionalThreshold, defaults.Overlay(RulesOverride{}).MonthlyAdditionalThreshold)

	zero := int64(0)
	assert.Zero(t, defaults.Overlay(RulesOverride{MonthlyAdditionalThreshold: &zero}).MonthlyAdditionalThreshold)

	raised := int64(50000)
	assert.Equal(t, raised, defaults.Overlay(RulesOverride{MonthlyAdditionalThreshold: &raised}).MonthlyAdditionalThreshold)
}

func TestOverlay_LeavesBaseUntouched(t *testing.T) {
	base := DefaultTaxRules()
	merged := base.Overlay(RulesOverride{
		PresumedMargins: map[Sector]decimal.Decimal{SectorServices: decimal.RequireFromString("0.16")},
	})

	margin, _ := merged.PresumedMargin(SectorServices)
	assert.True(t, margin.Equal(decimal.RequireFromString("0.16")))

	original, _ := base.PresumedMargin(SectorServices)
	assert.True(t, original.Equal(decimal.RequireFromString("0.32")))
}

func TestConfigurationEffectiveRules(t *testing.T) {
	base := DefaultTaxRules()
	assert.Equal(t, base, (&Configuration{}).EffectiveRules(base))

	zero := int64(0)
	cfg := &Configuration{Rules: &RulesOverride{MonthlyAdditionalThreshold: &zero}}
	assert.Zero(t, cfg.EffectiveRules(base).MonthlyAdditionalThreshold)
}
