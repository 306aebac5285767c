package hvac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateCooling_CentralAC(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	tests := []struct {
		name string
		raw  float64
		want Classification
	}{
		{"excellent", 18, ClassExcellent},
		{"good", 16.5, ClassGood},
		{"average", 14, ClassAverage},
		{"poor", 12.5, ClassPoor},
		{"very poor", 9, ClassVeryPoor},
		{"zero is unknown", 0, ClassUnknown},
		{"negative is unknown", -4, ClassUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.RateCooling("central-ac", tt.raw)
			assert.Equal(t, tt.want, got.Classification)
		})
	}
}

func TestRateCooling_MiniSplitUsesOwnCutPoints(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	// 18 SEER is Excellent for central air but only Average for a mini-split.
	assert.Equal(t, ClassExcellent, a.RateCooling("central-ac", 18).Classification)
	assert.Equal(t, ClassAverage, a.RateCooling("mini-split", 18).Classification)
	assert.Equal(t, ClassExcellent, a.RateCooling("mini-split", 22).Classification)
}

func TestRateCooling_UnknownTypeFallsBack(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	got := a.RateCooling("swamp-cooler", 18)
	assert.Equal(t, ClassExcellent, got.Classification)
	assert.Equal(t, 18.0, got.Normalized)
}

func TestRateHeating_Furnace(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	assert.Equal(t, ClassExcellent, a.RateHeating("furnace", 96).Classification)
	assert.Equal(t, ClassGood, a.RateHeating("furnace", 92).Classification)
	assert.Equal(t, ClassAverage, a.RateHeating("furnace", 85).Classification)
	assert.Equal(t, ClassVeryPoor, a.RateHeating("furnace", 60).Classification)
	assert.Equal(t, ClassUnknown, a.RateHeating("furnace", 0).Classification)
}

func TestRateHeating_HeatPumpUsesHSPF(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	got := a.RateHeating("heat-pump", 10.2)
	assert.Equal(t, ClassExcellent, got.Classification)
	assert.Equal(t, 10.2, got.Normalized)
}

func TestRateHeating_FractionRescaledToPercent(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	got := a.RateHeating("furnace", 0.92)
	assert.Equal(t, ClassGood, got.Classification)
	assert.Equal(t, 92.0, got.Normalized)
}

func TestRateHeating_MisScaledValueReinterpreted(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	// An AFUE of 250 is not 250%; it is decimal-scaled down, then classified.
	got := a.RateHeating("furnace", 250)
	assert.Equal(t, 25.0, got.Normalized)
	assert.Equal(t, ClassVeryPoor, got.Classification)

	// 920 scales to 92.
	got = a.RateHeating("furnace", 920)
	assert.Equal(t, 92.0, got.Normalized)
	assert.Equal(t, ClassGood, got.Classification)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		scale  Scale
		raw    float64
		want   float64
		wantOK bool
	}{
		{"percent passthrough", ScalePercent, 92, 92, true},
		{"fraction rescale", ScalePercent, 0.85, 85, true},
		{"percent decimal scale", ScalePercent, 250, 25, true},
		{"percent double decimal scale", ScalePercent, 9200, 92, true},
		{"seer passthrough", ScaleSEER, 16, 16, true},
		{"seer mis-scaled", ScaleSEER, 160, 16, true},
		{"hspf mis-scaled", ScaleHSPF, 92, 9.2, true},
		{"zero unusable", ScaleSEER, 0, 0, false},
		{"negative unusable", ScalePercent, -80, 0, false},
		{"nan unusable", ScaleSEER, math.NaN(), 0, false},
		{"inf unusable", ScaleHSPF, math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.scale, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestGap_NeverNegative(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	// Installed system exceeds target: gap is zero, not negative.
	assert.Equal(t, 0.0, a.CoolingGap("central-ac", 18, 14))
	assert.Equal(t, 1.5, a.CoolingGap("central-ac", 12.5, 14))

	// Both sides normalized before differencing.
	assert.InDelta(t, 10.0, a.HeatingGap("furnace", 0.80, 90), 1e-9)

	// Missing current counts as zero installed efficiency.
	assert.Equal(t, 14.0, a.CoolingGap("central-ac", 0, 14))

	// Missing or corrupt target yields a zero gap.
	assert.Equal(t, 0.0, a.CoolingGap("central-ac", 12, 0))
	assert.Equal(t, 0.0, a.HeatingGap("furnace", 80, math.NaN()))
}

func TestGap_PropertyNonNegative(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})
	values := []float64{-5, 0, 0.5, 8, 13, 14, 16, 22, 250, math.NaN(), math.Inf(1)}
	types := []string{"central-ac", "mini-split", "heat-pump", "window-ac", "unknown-type"}

	for _, st := range types {
		for _, cur := range values {
			for _, tgt := range values {
				g := a.CoolingGap(st, cur, tgt)
				assert.GreaterOrEqual(t, g, 0.0)
				assert.False(t, math.IsNaN(g))
			}
		}
	}
}

func TestStandardsFor(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	region, std := a.StandardsFor("TX")
	assert.Equal(t, "south", region)
	assert.Equal(t, 15.0, std.MinSEER)

	region, std = a.StandardsFor("AZ")
	assert.Equal(t, "southwest", region)
	assert.Equal(t, 15.0, std.MinSEER)

	region, std = a.StandardsFor("NY")
	assert.Equal(t, "north", region)
	assert.Equal(t, 14.0, std.MinSEER)
	assert.Equal(t, 90.0, std.MinAFUE)

	// Unrecognized codes fall back to the default region.
	region, std = a.StandardsFor("ZZ")
	assert.Equal(t, "north", region)
	assert.Equal(t, 14.0, std.MinSEER)
}

func TestFormatValues(t *testing.T) {
	a := NewAnalyzer(Thresholds{}, Standards{})

	assert.Equal(t, "16.0 SEER", a.FormatCooling("central-ac", 16))
	assert.Equal(t, "9.5 HSPF", a.FormatHeating("heat-pump", 9.5))
	assert.Equal(t, "92% AFUE", a.FormatHeating("furnace", 92))
	assert.Equal(t, "Not available", a.FormatCooling("central-ac", 0))
	assert.Equal(t, "Not available", a.FormatHeating("boiler", 0))
}
