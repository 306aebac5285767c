package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattwise-group/audit-cli/internal/model"
)

func allTiers() []string {
	return []string{"excellent", "good", "average", "poor", "none", "unknown", "bogus", ""}
}

func TestScore_OverallAlwaysInBand(t *testing.T) {
	c := NewCalculator(Config{})

	// Extreme inputs in every direction must still land inside [60, 95].
	extremes := []Components{
		{}, // everything unknown
		{
			Insulation:    model.InsulationBlock{Attic: "excellent", Walls: "excellent", Floor: "excellent"},
			Lighting:      model.LightingBlock{PrimaryType: "led", LEDPercent: 100},
			Windows:       model.WindowBlock{PaneType: "triple", Condition: "excellent"},
			CoolingRelGap: 0,
			HeatingRelGap: 0,
		},
		{
			Insulation:    model.InsulationBlock{Attic: "none", Walls: "none", Floor: "none"},
			Lighting:      model.LightingBlock{PrimaryType: "incandescent"},
			Windows:       model.WindowBlock{PaneType: "single", Condition: "poor"},
			CoolingRelGap: 1,
			HeatingRelGap: 1,
		},
	}
	years := []int{0, 1900, 1955, 1975, 1995, 2005, 2020}

	for _, comp := range extremes {
		for _, year := range years {
			s := c.Score(comp, year)
			assert.GreaterOrEqual(t, s.Overall, 60.0)
			assert.LessOrEqual(t, s.Overall, 95.0)
		}
	}
}

func TestScore_BestCaseClampsToBandMax(t *testing.T) {
	c := NewCalculator(Config{})

	s := c.Score(Components{
		Insulation: model.InsulationBlock{Attic: "excellent", Walls: "excellent", Floor: "excellent"},
		Lighting:   model.LightingBlock{PrimaryType: "led", LEDPercent: 100},
		Windows:    model.WindowBlock{PaneType: "triple", Condition: "excellent"},
	}, 2020)

	assert.Equal(t, 95.0, s.Overall)
	assert.Equal(t, "Excellent", s.Rating)
}

func TestScore_WorstCaseClampsToBandMin(t *testing.T) {
	c := NewCalculator(Config{})

	s := c.Score(Components{
		Insulation:    model.InsulationBlock{Attic: "none", Walls: "none", Floor: "none"},
		Lighting:      model.LightingBlock{PrimaryType: "incandescent"},
		Windows:       model.WindowBlock{PaneType: "single", Condition: "poor"},
		CoolingRelGap: 1,
		HeatingRelGap: 1,
	}, 1920)

	assert.Equal(t, 60.0, s.Overall)
	assert.Equal(t, "Needs Improvement", s.Rating)
}

func TestScore_AgeAdjustmentBounded(t *testing.T) {
	c := NewCalculator(Config{})

	comp := Components{
		Insulation: model.InsulationBlock{Attic: "good", Walls: "good", Floor: "good"},
		Lighting:   model.LightingBlock{PrimaryType: "mixed"},
		Windows:    model.WindowBlock{PaneType: "double"},
	}

	newer := c.Score(comp, 2020)
	mid := c.Score(comp, 1990)
	older := c.Score(comp, 1950)

	assert.Equal(t, 3.0, newer.AgeAdjustment)
	assert.Equal(t, 0.0, mid.AgeAdjustment)
	assert.Equal(t, -3.0, older.AgeAdjustment)
	assert.InDelta(t, 6.0, newer.Overall-older.Overall, 0.11)
}

func TestScore_UnknownYearNoAdjustment(t *testing.T) {
	c := NewCalculator(Config{})
	s := c.Score(Components{}, 0)
	assert.Equal(t, 0.0, s.AgeAdjustment)
}

func TestScore_CorruptGapsSubstituted(t *testing.T) {
	c := NewCalculator(Config{})

	s := c.Score(Components{
		CoolingRelGap: math.NaN(),
		HeatingRelGap: math.Inf(1),
	}, 2000)

	assert.False(t, math.IsNaN(s.HVAC))
	assert.False(t, math.IsNaN(s.Overall))
	assert.GreaterOrEqual(t, s.Overall, 60.0)
	assert.LessOrEqual(t, s.Overall, 95.0)
	// Corrupt sub-score falls back to the band midpoint.
	assert.Equal(t, 77.5, s.HVAC)
}

func TestScore_SubScoresInRange(t *testing.T) {
	c := NewCalculator(Config{})

	for _, attic := range allTiers() {
		for _, pane := range []string{"single", "double", "triple", "", "weird"} {
			s := c.Score(Components{
				Insulation: model.InsulationBlock{Attic: attic, Walls: attic, Floor: attic},
				Windows:    model.WindowBlock{PaneType: pane, Condition: "poor"},
			}, 1985)
			for _, sub := range []float64{s.Insulation, s.HVAC, s.Lighting, s.Windows} {
				assert.GreaterOrEqual(t, sub, 0.0)
				assert.LessOrEqual(t, sub, 100.0)
			}
		}
	}
}

func TestRelGap(t *testing.T) {
	assert.Equal(t, 0.0, RelGap(0, 14))
	assert.InDelta(t, 0.5, RelGap(7, 14), 1e-9)
	assert.Equal(t, 1.0, RelGap(20, 14)) // clamped
	assert.Equal(t, 0.0, RelGap(5, 0))   // no target
	assert.Equal(t, 0.0, RelGap(math.NaN(), 14))
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{85, "Good"},
		{75, "Fair"},
		{65, "Needs Improvement"},
		{60, "Needs Improvement"},
		{40, "Poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.score))
	}
}

func TestInterpret_IndependentOfClamp(t *testing.T) {
	// A custom band must not shift the interpretation thresholds.
	c := NewCalculator(Config{Band: Band{Min: 20, Max: 99}})
	s := c.Score(Components{
		Insulation: model.InsulationBlock{Attic: "none", Walls: "none", Floor: "none"},
		Lighting:   model.LightingBlock{PrimaryType: "incandescent"},
		Windows:    model.WindowBlock{PaneType: "single", Condition: "poor"},
		CoolingRelGap: 1,
		HeatingRelGap: 1,
	}, 1920)
	assert.Equal(t, Interpret(s.Overall), s.Rating)
}

func TestNewCalculator_Defaults(t *testing.T) {
	c := NewCalculator(Config{})
	assert.Equal(t, DefaultConfig(), c.cfg)
}
