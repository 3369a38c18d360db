package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryList(t *testing.T) {
	assert.Equal(t, []string{
		"adjust_amount",
		"reclassify_expenses",
		"scale_expenses",
		"scale_revenue",
		"set_sector",
	}, NewTransformRegistry().List())
}

func TestParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tr, err := registry.ParseTransformSpec("adjust_amount: field=expenses, amount=-500000")
	require.NoError(t, err)
	adjust, ok := tr.(*AdjustAmount)
	require.True(t, ok)
	assert.Equal(t, "expenses", adjust.Field)
	assert.Equal(t, int64(-500000), adjust.Amount)

	tr, err = registry.ParseTransformSpec("scale_revenue:percent=12.5")
	require.NoError(t, err)
	assert.True(t, tr.(*ScaleRevenue).Percent.Equal(decimal.RequireFromString("12.5")))

	tr, err = registry.ParseTransformSpec("set_sector:sector=INDÚSTRIA")
	require.NoError(t, err)
	assert.Equal(t, "set_sector", tr.Name())
}

func TestParseTransformSpecErrors(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec string
		want string
	}{
		{"scale_revenue", "invalid transform spec format"},
		{"scale_revenue:10", "invalid parameter format"},
		{"scale_revenue:amount=1", "requires 'percent' parameter"},
		{"scale_revenue:percent=ten", "invalid percent value"},
		{"adjust_amount:amount=1", "requires 'field' parameter"},
		{"adjust_amount:field=expenses", "requires 'amount' parameter"},
		{"adjust_amount:field=expenses,amount=1.5", "invalid amount value"},
		{"set_sector:", "requires 'sector' parameter"},
		{"bogus:x=1", "unknown transform: bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseTransformSpecs(t *testing.T) {
	transforms, err := NewTransformRegistry().ParseTransformSpecs([]string{
		"scale_revenue:percent=10",
		"reclassify_expenses:percent=5",
	})
	require.NoError(t, err)
	require.Len(t, transforms, 2)
	assert.Equal(t, "reclassify_expenses", transforms[1].Name())

	_, err = NewTransformRegistry().ParseTransformSpecs([]string{"bad"})
	assert.Error(t, err)
}

func TestBuiltInTemplates(t *testing.T) {
	templates := CreateBuiltInTemplates()
	assert.Equal(t, []string{"cost_cut_15", "downturn_20", "growth_10", "growth_25", "reclassify_10"}, templates.List())

	growth, ok := templates.Get("GROWTH_10")
	require.True(t, ok)
	out, err := ApplyTransforms(baseInput(), growth.Transforms)
	require.NoError(t, err)
	assert.Equal(t, int64(275000000), out.GrossRevenue)
	assert.Equal(t, int64(165000000), out.Expenses)

	_, ok = templates.Get("missing")
	assert.False(t, ok)
}
