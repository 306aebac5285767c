package usage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattwise-group/audit-cli/internal/model"
)

func TestEstimate_ValidRawHoursPassThrough(t *testing.T) {
	e := NewEstimator(nil)
	occ := model.Occupancy{Pattern: "standard", HouseholdSize: 4}

	assert.Equal(t, 8.5, e.Estimate(8.5, occ))
	assert.Equal(t, 24.0, e.Estimate(24, occ))
	assert.Equal(t, 0.25, e.Estimate(0.25, occ))
}

func TestEstimate_StandardHousehold(t *testing.T) {
	e := NewEstimator(nil)

	// base 12 + 0.5 * (5 - 2) = 13.5
	got := e.Estimate(0, model.Occupancy{Pattern: "standard", HouseholdSize: 5})
	assert.Equal(t, 13.5, got)
}

func TestEstimate_InvalidRawHours(t *testing.T) {
	e := NewEstimator(nil)
	occ := model.Occupancy{Pattern: "part-time", HouseholdSize: 2}

	tests := []struct {
		name string
		raw  float64
	}{
		{"zero", 0},
		{"negative", -3},
		{"over 24", 25},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 8.0, e.Estimate(tt.raw, occ))
		})
	}
}

func TestEstimate_UsesScheduleAnswers(t *testing.T) {
	e := NewEstimator(nil)

	// standard base 12, early wake +1, late sleep +1, plus 0.5 for the
	// third person.
	got := e.Estimate(0, model.Occupancy{
		Pattern:       "standard",
		HouseholdSize: 3,
		WakeTime:      "early",
		SleepTime:     "late",
	})
	assert.Equal(t, 14.5, got)

	// A lone schedule answer still refines the baseline.
	got = e.Estimate(math.NaN(), model.Occupancy{Pattern: "standard", SleepTime: "early"})
	assert.Equal(t, 11.0, got)

	// Usable raw hours always win over schedule answers.
	got = e.Estimate(9, model.Occupancy{Pattern: "standard", WakeTime: "early", SleepTime: "late"})
	assert.Equal(t, 9.0, got)
}

func TestEstimate_UnknownPatternFallsBackToStandard(t *testing.T) {
	e := NewEstimator(nil)

	got := e.Estimate(0, model.Occupancy{Pattern: "commuter", HouseholdSize: 2})
	assert.Equal(t, 12.0, got)
}

func TestEstimate_CappedAt24(t *testing.T) {
	e := NewEstimator(nil)

	// full-time base 16 + 0.5 * 18 = 25 -> capped
	got := e.Estimate(0, model.Occupancy{Pattern: "full-time", HouseholdSize: 20})
	assert.Equal(t, 24.0, got)
}

func TestEstimate_AlwaysInRange(t *testing.T) {
	e := NewEstimator(nil)

	patterns := []string{"full-time", "standard", "part-time", "weekend-only", "seasonal", "vacant", "bogus", ""}
	for _, p := range patterns {
		for size := 0; size <= 30; size++ {
			got := e.Estimate(math.NaN(), model.Occupancy{Pattern: p, HouseholdSize: size})
			assert.GreaterOrEqual(t, got, 1.0, "pattern %q size %d", p, size)
			assert.LessOrEqual(t, got, 24.0, "pattern %q size %d", p, size)
		}
	}
}

func TestFromSchedule(t *testing.T) {
	e := NewEstimator(nil)

	tests := []struct {
		name    string
		wake    string
		sleep   string
		pattern string
		want    float64
	}{
		{"standard day", "standard", "standard", "standard", 12},
		{"early riser late sleeper", "early", "late", "standard", 14},
		{"late riser early sleeper", "late", "early", "standard", 10},
		{"varied contributes nothing", "varied", "varied", "standard", 12},
		{"vacant floor", "late", "early", "vacant", 1}, // 2 - 2 = 0 -> floored
		{"unknown pattern", "early", "standard", "whatever", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.FromSchedule(tt.wake, tt.sleep, tt.pattern))
		})
	}
}

func TestFromSchedule_AlwaysInRange(t *testing.T) {
	e := NewEstimator(nil)
	habits := []string{"early", "standard", "late", "varied", ""}
	patterns := []string{"full-time", "standard", "vacant", "nope"}

	for _, w := range habits {
		for _, s := range habits {
			for _, p := range patterns {
				got := e.FromSchedule(w, s, p)
				assert.GreaterOrEqual(t, got, 1.0)
				assert.LessOrEqual(t, got, 24.0)
			}
		}
	}
}

func TestNewEstimator_CustomTable(t *testing.T) {
	e := NewEstimator(BaseHours{"standard": 10})
	assert.Equal(t, 10.0, e.Estimate(0, model.Occupancy{Pattern: "standard"}))
}
