package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiotcs/apptributario-sub000/internal/domain"
)

func baseInput() domain.FinancialInput {
	return domain.FinancialInput{
		GrossRevenue: 250000000,
		Expenses:     150000000,
		Deductions:   10000000,
		TaxCredits:   576000,
		Sector:       domain.SectorServices,
	}
}

func TestApplyTransforms_Empty(t *testing.T) {
	result, err := ApplyTransforms(baseInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, baseInput(), result)
}

func TestApplyTransforms_Sequence(t *testing.T) {
	base := baseInput()
	result, err := ApplyTransforms(base, []FinancialTransform{
		&ScaleRevenue{Percent: decimal.NewFromInt(10)},
		&AdjustAmount{Field: FieldExpenses, Amount: -5000000},
		&SetSector{Sector: "comércio"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(275000000), result.GrossRevenue)
	assert.Equal(t, int64(145000000), result.Expenses)
	assert.Equal(t, domain.SectorCommerce, result.Sector)

	// base is untouched
	assert.Equal(t, baseInput(), base)
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(baseInput(), []FinancialTransform{nil})
	assert.EqualError(t, err, "transform at index 0 is nil")
}

func TestApplyTransforms_ValidationFailure(t *testing.T) {
	result, err := ApplyTransforms(baseInput(), []FinancialTransform{
		&ScaleRevenue{Percent: decimal.NewFromInt(10)},
		&AdjustAmount{Field: FieldDeductions, Amount: -20000000},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transform adjust_amount validation failed")
	assert.Equal(t, baseInput(), result)

	var te *TransformError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "validate", te.Operation)
}

func TestScaleTransforms(t *testing.T) {
	in := baseInput()

	out, err := (&ScaleExpenses{Percent: decimal.RequireFromString("-12.5")}).Apply(in)
	require.NoError(t, err)
	assert.Equal(t, int64(131250000), out.Expenses)

	out, err = (&ScaleRevenue{Percent: decimal.NewFromInt(-100)}).Apply(in)
	require.NoError(t, err)
	assert.Zero(t, out.GrossRevenue)

	assert.Error(t, (&ScaleRevenue{Percent: decimal.NewFromInt(-101)}).Validate(in))
	assert.Error(t, (&ScaleExpenses{Percent: decimal.NewFromInt(-150)}).Validate(in))
}

func TestAdjustAmount(t *testing.T) {
	in := baseInput()

	for _, f := range []string{FieldRevenue, FieldExpenses, FieldDeductions, FieldTaxCredits, FieldPreviousPayments} {
		tr := &AdjustAmount{Field: f, Amount: 100}
		require.NoError(t, tr.Validate(in), f)
	}

	out, err := (&AdjustAmount{Field: FieldPreviousPayments, Amount: 6000000}).Apply(in)
	require.NoError(t, err)
	assert.Equal(t, int64(6000000), out.PreviousPayments)

	assert.Error(t, (&AdjustAmount{Field: "profit", Amount: 1}).Validate(in))
	_, err = (&AdjustAmount{Field: "profit", Amount: 1}).Apply(in)
	assert.Error(t, err)
}

func TestReclassifyExpenses(t *testing.T) {
	tr := &ReclassifyExpenses{Percent: decimal.NewFromInt(10)}
	require.NoError(t, tr.Validate(baseInput()))

	out, err := tr.Apply(baseInput())
	require.NoError(t, err)
	assert.Equal(t, int64(135000000), out.Expenses)
	assert.Equal(t, int64(25000000), out.Deductions)

	assert.Error(t, (&ReclassifyExpenses{Percent: decimal.NewFromInt(101)}).Validate(baseInput()))
	assert.Error(t, (&ReclassifyExpenses{Percent: decimal.NewFromInt(-1)}).Validate(baseInput()))
}

func TestSetSector(t *testing.T) {
	assert.NoError(t, (&SetSector{Sector: " tecnologia "}).Validate(baseInput()))
	assert.Error(t, (&SetSector{Sector: "AGRO"}).Validate(baseInput()))
	assert.Equal(t, "Altera o setor para INDÚSTRIA", (&SetSector{Sector: domain.SectorIndustry}).Description())
	assert.Equal(t, "Ajusta despesas em R$ 1000.00", (&AdjustAmount{Field: FieldExpenses, Amount: 100000}).Description())
}

func TestTransformError(t *testing.T) {
	err := NewTransformError("set_sector", "validate", "bad", nil)
	assert.EqualError(t, err, "transform set_sector (validate): bad")
}
