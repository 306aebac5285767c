// Package hvac normalizes heating and cooling efficiency values across
// equipment types and rates them against classification tables and
// regional minimum standards.
package hvac

import "math"

// Classification buckets for a normalized efficiency value.
type Classification string

const (
	ClassExcellent Classification = "Excellent"
	ClassGood      Classification = "Good"
	ClassAverage   Classification = "Average"
	ClassPoor      Classification = "Poor"
	ClassVeryPoor  Classification = "Very Poor"
	ClassUnknown   Classification = "Unknown"
)

// Scale identifies the unit a raw efficiency number is expressed on.
type Scale string

const (
	ScaleSEER    Scale = "seer"
	ScaleHSPF    Scale = "hspf"
	ScalePercent Scale = "percent" // AFUE
)

// Plausible ceilings per scale. Values above these are treated as
// mis-scaled survey input (e.g. an AFUE of 250) and decimal-scaled down
// rather than rejected.
const (
	maxPercent = 100
	maxSEER    = 30
	maxHSPF    = 15
)

// ThresholdSet holds descending classification cut-points for one
// equipment type. A normalized value v classifies as Excellent when
// v >= Excellent, Good when v >= Good, and so on; below Poor it is
// Very Poor.
type ThresholdSet struct {
	Scale     Scale   `yaml:"scale"`
	Excellent float64 `yaml:"excellent"`
	Good      float64 `yaml:"good"`
	Average   float64 `yaml:"average"`
	Poor      float64 `yaml:"poor"`
}

// Thresholds keys classification tables by equipment type, separately for
// the cooling and heating sides.
type Thresholds struct {
	Cooling map[string]ThresholdSet `yaml:"cooling"`
	Heating map[string]ThresholdSet `yaml:"heating"`
}

// Default equipment type keys used when the surveyed type is unrecognized.
const (
	defaultCoolingType = "central-ac"
	defaultHeatingType = "furnace"
)

// DefaultThresholds returns the built-in classification tables.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Cooling: map[string]ThresholdSet{
			"central-ac": {Scale: ScaleSEER, Excellent: 18, Good: 16, Average: 14, Poor: 12},
			"heat-pump":  {Scale: ScaleSEER, Excellent: 18, Good: 16, Average: 14, Poor: 12},
			"mini-split": {Scale: ScaleSEER, Excellent: 22, Good: 19, Average: 16, Poor: 13},
			"window-ac":  {Scale: ScaleSEER, Excellent: 14, Good: 12, Average: 10, Poor: 9},
		},
		Heating: map[string]ThresholdSet{
			"furnace":   {Scale: ScalePercent, Excellent: 95, Good: 90, Average: 82, Poor: 75},
			"boiler":    {Scale: ScalePercent, Excellent: 94, Good: 88, Average: 82, Poor: 75},
			"heat-pump": {Scale: ScaleHSPF, Excellent: 10, Good: 9, Average: 8.2, Poor: 7.5},
		},
	}
}

// Rating pairs a classification with the normalized value it was derived
// from. Normalized is zero when the classification is Unknown.
type Rating struct {
	Classification Classification `json:"classification"`
	Normalized     float64        `json:"normalized"`
}

// Analyzer rates equipment efficiency. It holds only read-only tables and
// is safe for concurrent use.
type Analyzer struct {
	thresholds Thresholds
	standards  Standards
}

// NewAnalyzer creates an Analyzer. Zero-value tables select the defaults.
func NewAnalyzer(thresholds Thresholds, standards Standards) *Analyzer {
	if thresholds.Cooling == nil && thresholds.Heating == nil {
		thresholds = DefaultThresholds()
	}
	if standards.Regions == nil {
		standards = DefaultStandards()
	}
	return &Analyzer{thresholds: thresholds, standards: standards}
}

// RateCooling classifies a SEER-like cooling efficiency value for the
// given system type. Zero, NaN, and infinite values classify as Unknown
// and are not normalized.
func (a *Analyzer) RateCooling(systemType string, raw float64) Rating {
	ts, ok := a.thresholds.Cooling[systemType]
	if !ok {
		ts = a.thresholds.Cooling[defaultCoolingType]
	}
	return rate(ts, raw)
}

// RateHeating classifies a heating efficiency value for the given system
// type: AFUE percentage for furnaces and boilers, HSPF for heat pumps.
func (a *Analyzer) RateHeating(systemType string, raw float64) Rating {
	ts, ok := a.thresholds.Heating[systemType]
	if !ok {
		ts = a.thresholds.Heating[defaultHeatingType]
	}
	return rate(ts, raw)
}

func rate(ts ThresholdSet, raw float64) Rating {
	v, ok := Normalize(ts.Scale, raw)
	if !ok {
		return Rating{Classification: ClassUnknown}
	}
	switch {
	case v >= ts.Excellent:
		return Rating{ClassExcellent, v}
	case v >= ts.Good:
		return Rating{ClassGood, v}
	case v >= ts.Average:
		return Rating{ClassAverage, v}
	case v >= ts.Poor:
		return Rating{ClassPoor, v}
	default:
		return Rating{ClassVeryPoor, v}
	}
}

// Normalize converts a raw survey value onto its scale's expected range.
// Percentage values in (0, 1] are read as fractions and rescaled; values
// above the scale's plausible ceiling are decimal-scaled down until they
// fit. The second return is false when the value is missing or not a
// finite positive number, in which case it must not be used.
func Normalize(scale Scale, raw float64) (float64, bool) {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, false
	}

	v := raw
	ceiling := float64(maxSEER)
	switch scale {
	case ScalePercent:
		if v <= 1 {
			v *= 100
		}
		ceiling = maxPercent
	case ScaleHSPF:
		ceiling = maxHSPF
	}

	for v > ceiling {
		v /= 10
	}
	return v, true
}

// CoolingGap returns the non-negative SEER shortfall of the current
// cooling system against the target. Both sides are normalized first; a
// missing current value counts as zero efficiency installed, a missing
// target yields a zero gap.
func (a *Analyzer) CoolingGap(systemType string, current, target float64) float64 {
	return a.gap(a.coolingScale(systemType), current, target)
}

// HeatingGap is CoolingGap for the heating side.
func (a *Analyzer) HeatingGap(systemType string, current, target float64) float64 {
	return a.gap(a.heatingScale(systemType), current, target)
}

func (a *Analyzer) gap(scale Scale, current, target float64) float64 {
	t, ok := Normalize(scale, target)
	if !ok {
		return 0
	}
	c, ok := Normalize(scale, current)
	if !ok {
		c = 0
	}
	return math.Max(0, t-c)
}

func (a *Analyzer) coolingScale(systemType string) Scale {
	if ts, ok := a.thresholds.Cooling[systemType]; ok {
		return ts.Scale
	}
	return a.thresholds.Cooling[defaultCoolingType].Scale
}

func (a *Analyzer) heatingScale(systemType string) Scale {
	if ts, ok := a.thresholds.Heating[systemType]; ok {
		return ts.Scale
	}
	return a.thresholds.Heating[defaultHeatingType].Scale
}
