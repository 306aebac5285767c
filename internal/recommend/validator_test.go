package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwise-group/audit-cli/internal/model"
)

func TestValidateOne_HVACDefaultsSubstituted(t *testing.T) {
	v := NewValidator(nil, 0)

	// savings missing, cost NaN, payback missing.
	rec := &model.Recommendation{
		Type:          "HVAC System Upgrade",
		EstimatedCost: math.NaN(),
	}
	got := v.ValidateOne(rec)

	assert.Equal(t, CategoryHVAC, got.Category)
	assert.Equal(t, 520.0, got.AnnualSavings)
	assert.Equal(t, 3850.0, got.EstimatedCost)
	assert.InDelta(t, 7.4, got.PaybackYears, 0.01)
	assert.True(t, got.IsEstimated)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.Equal(t, model.StatusPending, got.Status)
}

func TestValidateOne_ValidRecordUntouched(t *testing.T) {
	v := NewValidator(nil, 0)

	rec := &model.Recommendation{
		Title:         "Attic Insulation",
		Type:          "Insulation Upgrade",
		Category:      "insulation",
		Priority:      model.PriorityHigh,
		Status:        model.StatusPending,
		AnnualSavings: 400,
		EstimatedCost: 2000,
		PaybackYears:  5,
	}
	got := v.ValidateOne(rec)

	assert.Equal(t, 400.0, got.AnnualSavings)
	assert.Equal(t, 2000.0, got.EstimatedCost)
	assert.Equal(t, 5.0, got.PaybackYears)
	assert.False(t, got.IsEstimated)
}

func TestValidateOne_InconsistentPaybackRecomputed(t *testing.T) {
	v := NewValidator(nil, 0)

	rec := &model.Recommendation{
		Category:      "lighting",
		AnnualSavings: 100,
		EstimatedCost: 300,
		PaybackYears:  12, // way off from 3.0
	}
	got := v.ValidateOne(rec)

	assert.Equal(t, 3.0, got.PaybackYears)
	assert.True(t, got.IsEstimated)
}

func TestValidateOne_PaybackAlwaysRecomputed(t *testing.T) {
	v := NewValidator(nil, 0)

	// Slight drift from cost/savings is corrected without flagging the
	// record as estimated.
	got := v.ValidateOne(&model.Recommendation{
		Category:      "lighting",
		AnnualSavings: 100,
		EstimatedCost: 300,
		PaybackYears:  3.1,
	})
	assert.Equal(t, 3.0, got.PaybackYears)
	assert.False(t, got.IsEstimated)

	// The derived value always equals cost/savings regardless of the
	// supplied figure.
	for _, supplied := range []float64{2.9, 3.0, 3.05, 4, 30} {
		got := v.ValidateOne(&model.Recommendation{
			Category:      "lighting",
			AnnualSavings: 100,
			EstimatedCost: 300,
			PaybackYears:  supplied,
		})
		assert.Equal(t, 3.0, got.PaybackYears, "supplied %v", supplied)
	}
}

func TestValidateOne_NegativeAndNonFiniteValues(t *testing.T) {
	v := NewValidator(nil, 0)

	tests := []struct {
		name    string
		savings float64
		cost    float64
	}{
		{"negative savings", -50, 300},
		{"infinite cost", 100, math.Inf(1)},
		{"both nan", math.NaN(), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ValidateOne(&model.Recommendation{
				Category:      "lighting",
				AnnualSavings: tt.savings,
				EstimatedCost: tt.cost,
			})
			assert.True(t, got.AnnualSavings > 0)
			assert.True(t, got.EstimatedCost > 0)
			assert.False(t, math.IsNaN(got.PaybackYears))
			assert.False(t, math.IsInf(got.PaybackYears, 0))
			assert.True(t, got.IsEstimated)
		})
	}
}

func TestValidateOne_NilProducesGenericDefault(t *testing.T) {
	v := NewValidator(nil, 0)

	got := v.ValidateOne(nil)

	assert.Equal(t, CategoryGeneral, got.Category)
	assert.Equal(t, model.PriorityMedium, got.Priority)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.True(t, got.AnnualSavings > 0)
	assert.True(t, got.EstimatedCost > 0)
	assert.InDelta(t, got.EstimatedCost/got.AnnualSavings, got.PaybackYears, 0.01)
	assert.True(t, got.IsEstimated)
}

func TestValidateOne_PartialScopeScaledDefaults(t *testing.T) {
	v := NewValidator(nil, 0.5)

	got := v.ValidateOne(&model.Recommendation{
		Type:  "Insulation Upgrade",
		Scope: "attic only",
	})

	// insulation defaults {350, 1800} scaled by 0.5.
	assert.Equal(t, 175.0, got.AnnualSavings)
	assert.Equal(t, 900.0, got.EstimatedCost)
	assert.InDelta(t, 900.0/175.0, got.PaybackYears, 0.01)
	assert.True(t, got.IsEstimated)
}

func TestValidateOne_WholeHomeScopeNotScaled(t *testing.T) {
	v := NewValidator(nil, 0.5)

	got := v.ValidateOne(&model.Recommendation{
		Type:  "Insulation Upgrade",
		Scope: model.ScopeWholeHome,
	})
	assert.Equal(t, 350.0, got.AnnualSavings)
}

func TestValidateOne_UserValuesNotScaledByScope(t *testing.T) {
	v := NewValidator(nil, 0.5)

	got := v.ValidateOne(&model.Recommendation{
		Type:          "Insulation Upgrade",
		Scope:         "attic only",
		AnnualSavings: 200,
		EstimatedCost: 1000,
		PaybackYears:  5,
	})
	assert.Equal(t, 200.0, got.AnnualSavings)
	assert.Equal(t, 1000.0, got.EstimatedCost)
	assert.False(t, got.IsEstimated)
}

func TestValidateAll_Idempotent(t *testing.T) {
	v := NewValidator(nil, 0)

	raw := []*model.Recommendation{
		nil,
		{Type: "HVAC System Upgrade"},
		{Category: "lighting", AnnualSavings: 100, EstimatedCost: 300, PaybackYears: 3},
		{Type: "Solar Panels", EstimatedCost: -1},
	}

	first := v.ValidateAll(raw)
	require.Len(t, first, len(raw))

	again := make([]*model.Recommendation, len(first))
	for i := range first {
		again[i] = &first[i]
	}
	second := v.ValidateAll(again)

	assert.Equal(t, first, second)
}

func TestValidateAll_AllFieldsAlwaysValid(t *testing.T) {
	v := NewValidator(nil, 0)

	raw := []*model.Recommendation{
		nil,
		{Type: "x", AnnualSavings: math.Inf(-1), EstimatedCost: math.NaN(), PaybackYears: -2},
		{Type: "Window Replacement", Scope: "bedroom only"},
	}
	for _, rec := range v.ValidateAll(raw) {
		assert.GreaterOrEqual(t, rec.AnnualSavings, 0.0)
		assert.GreaterOrEqual(t, rec.EstimatedCost, 0.0)
		if rec.AnnualSavings > 0 {
			assert.InDelta(t, rec.EstimatedCost/rec.AnnualSavings, rec.PaybackYears, 0.01)
		}
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		category string
		recType  string
		want     string
	}{
		{"hvac", "", CategoryHVAC},
		{"", "HVAC System Upgrade", CategoryHVAC},
		{"", "High-Efficiency Furnace", CategoryHVAC},
		{"", "Smart Thermostat", CategorySmartHome},
		{"", "Attic Insulation", CategoryInsulation},
		{"", "Air Sealing", CategoryInsulation},
		{"", "Window Replacement", CategoryWindows},
		{"", "LED Retrofit", CategoryLighting},
		{"", "ENERGY STAR Refrigerator", CategoryAppliances},
		{"", "Tankless Water Heater", CategoryWaterHeating},
		{"", "Solar Panel Installation", CategoryRenewable},
		{"", "Weatherstripping Doors", CategoryWindows},
		{"", "", CategoryGeneral},
		{"bogus", "mystery upgrade", CategoryGeneral},
		{"Renewable", "", CategoryRenewable},
	}
	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.recType, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFor(tt.category, tt.recType))
		})
	}
}
