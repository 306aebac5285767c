// Package usage derives plausible daily equipment operating hours when the
// surveyed value is absent or out of range.
package usage

import (
	"math"

	"github.com/wattwise-group/audit-cli/internal/model"
)

// BaseHours maps an occupancy pattern to its baseline daily operating hours.
type BaseHours map[string]float64

// standardPattern is the fallback for unrecognized occupancy tags.
const standardPattern = "standard"

const (
	// maxDailyHours caps every estimate.
	maxDailyHours = 24
	// minScheduleHours floors schedule-derived estimates.
	minScheduleHours = 1
	// householdStep is the per-person adjustment above baselineHousehold.
	householdStep     = 0.5
	baselineHousehold = 2
)

// DefaultBaseHours returns the built-in occupancy baseline table.
func DefaultBaseHours() BaseHours {
	return BaseHours{
		"full-time":    16,
		"standard":     12,
		"part-time":    8,
		"weekend-only": 5,
		"seasonal":     6,
		"vacant":       2,
	}
}

// Estimator produces usage-hours figures from occupancy answers. It is a
// pure, total function of its inputs: it never fails and always returns a
// usable number in (0, 24].
type Estimator struct {
	base BaseHours
}

// NewEstimator creates an Estimator. A nil table selects the defaults.
func NewEstimator(base BaseHours) *Estimator {
	if base == nil {
		base = DefaultBaseHours()
	}
	return &Estimator{base: base}
}

// Estimate returns rawHours unchanged when it is a finite number in
// (0, 24]. Otherwise it derives a figure from the occupancy pattern's
// baseline, refined by wake/sleep answers when the survey recorded them,
// plus a household-size adjustment, capped at 24.
func (e *Estimator) Estimate(rawHours float64, occ model.Occupancy) float64 {
	if usable(rawHours) {
		return rawHours
	}

	hours := e.baseFor(occ.Pattern)
	if occ.WakeTime != "" || occ.SleepTime != "" {
		hours = e.FromSchedule(occ.WakeTime, occ.SleepTime, occ.Pattern)
	}
	if occ.HouseholdSize > baselineHousehold {
		hours += householdStep * float64(occ.HouseholdSize-baselineHousehold)
	}
	return math.Min(hours, maxDailyHours)
}

// FromSchedule derives hours from wake/sleep habit answers. Early wake and
// late sleep each extend the day by an hour; late wake and early sleep each
// shorten it. "varied" and "standard" contribute nothing. The result is
// clamped to [1, 24].
func (e *Estimator) FromSchedule(wakeTime, sleepTime, pattern string) float64 {
	hours := e.baseFor(pattern)

	switch wakeTime {
	case "early":
		hours++
	case "late":
		hours--
	}
	switch sleepTime {
	case "late":
		hours++
	case "early":
		hours--
	}

	return math.Min(math.Max(hours, minScheduleHours), maxDailyHours)
}

func (e *Estimator) baseFor(pattern string) float64 {
	if h, ok := e.base[pattern]; ok {
		return h
	}
	return e.base[standardPattern]
}

// usable reports whether a raw hours value can be trusted as-is.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 && v <= maxDailyHours
}
