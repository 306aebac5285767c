// Package score combines validated component signals into a bounded,
// explainable overall efficiency score.
package score

import (
	"math"

	"go.uber.org/zap"

	"github.com/wattwise-group/audit-cli/internal/model"
)

// The overall score is deliberately clamped to this band: a consumer
// report should never alarm with a near-zero score nor flatter with a
// near-perfect one.
const (
	DefaultBandMin = 60
	DefaultBandMax = 95
)

// DefaultAgeAdjustmentMax bounds how far construction age can nudge the
// overall score in either direction.
const DefaultAgeAdjustmentMax = 3

// Band is the allowed range for the overall score.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Midpoint is the fallback substituted when a computation produces a
// non-finite value.
func (b Band) Midpoint() float64 { return (b.Min + b.Max) / 2 }

// Weights holds the relative contribution of each component sub-score.
type Weights struct {
	Insulation float64 `yaml:"insulation"`
	HVAC       float64 `yaml:"hvac"`
	Lighting   float64 `yaml:"lighting"`
	Windows    float64 `yaml:"windows"`
}

// Config tunes the calculator. Zero values select the documented defaults.
type Config struct {
	Band             Band    `yaml:"band"`
	Weights          Weights `yaml:"weights"`
	AgeAdjustmentMax float64 `yaml:"age_adjustment_max"`
}

// DefaultConfig returns the built-in scoring policy. Weights sum to 100.
func DefaultConfig() Config {
	return Config{
		Band:             Band{Min: DefaultBandMin, Max: DefaultBandMax},
		Weights:          Weights{Insulation: 30, HVAC: 35, Lighting: 15, Windows: 20},
		AgeAdjustmentMax: DefaultAgeAdjustmentMax,
	}
}

// Components carries the pre-validated sub-signals the calculator scores.
// The relative gaps are gap/target per side, in [0, 1], as produced by
// RelGap from the hvac analyzer's output.
type Components struct {
	Insulation    model.InsulationBlock
	Lighting      model.LightingBlock
	Windows       model.WindowBlock
	CoolingRelGap float64
	HeatingRelGap float64
}

// RelGap converts an absolute efficiency gap to the relative shortfall
// against its target, clamped to [0, 1]. A missing target yields zero.
func RelGap(gap, target float64) float64 {
	if target <= 0 || math.IsNaN(gap) || math.IsInf(gap, 0) {
		return 0
	}
	return math.Min(math.Max(gap/target, 0), 1)
}

// Calculator computes efficiency scores. Read-only after construction.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator, filling zero config fields with
// defaults.
func NewCalculator(cfg Config) *Calculator {
	def := DefaultConfig()
	if cfg.Band.Max <= cfg.Band.Min {
		cfg.Band = def.Band
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	if cfg.AgeAdjustmentMax <= 0 {
		cfg.AgeAdjustmentMax = def.AgeAdjustmentMax
	}
	return &Calculator{cfg: cfg}
}

// Score computes all sub-scores (each 0-100), applies the bounded
// building-age adjustment, and clamps the overall result to the band.
// Malformed inputs never propagate: any non-finite intermediate value is
// replaced by the band midpoint.
func (c *Calculator) Score(comp Components, yearBuilt int) model.EfficiencyScore {
	s := model.EfficiencyScore{
		Insulation:    c.guard(scoreInsulation(comp.Insulation)),
		HVAC:          c.guard(scoreHVAC(comp.CoolingRelGap, comp.HeatingRelGap)),
		Lighting:      c.guard(scoreLighting(comp.Lighting)),
		Windows:       c.guard(scoreWindows(comp.Windows)),
		AgeAdjustment: c.ageAdjustment(yearBuilt),
	}

	w := c.cfg.Weights
	weightSum := w.Insulation + w.HVAC + w.Lighting + w.Windows
	weighted := (s.Insulation*w.Insulation + s.HVAC*w.HVAC +
		s.Lighting*w.Lighting + s.Windows*w.Windows) / weightSum

	overall := weighted + s.AgeAdjustment
	if math.IsNaN(overall) || math.IsInf(overall, 0) {
		zap.L().Warn("score: non-finite overall, substituting band midpoint")
		overall = c.cfg.Band.Midpoint()
	}
	s.Overall = round1(math.Min(math.Max(overall, c.cfg.Band.Min), c.cfg.Band.Max))
	s.Rating = Interpret(s.Overall)
	return s
}

// guard keeps sub-scores finite and inside 0-100, substituting the band
// midpoint for corrupt values.
func (c *Calculator) guard(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return c.cfg.Band.Midpoint()
	}
	return round1(math.Min(math.Max(v, 0), 100))
}

// insulationTierPoints maps surveyed quality tiers to points.
var insulationTierPoints = map[string]float64{
	"excellent": 100,
	"good":      80,
	"average":   60,
	"poor":      35,
	"none":      15,
	"unknown":   55,
}

// Attic losses dominate, so the attic answer carries the most weight.
func scoreInsulation(ins model.InsulationBlock) float64 {
	return 0.5*insulationPoints(ins.Attic) +
		0.35*insulationPoints(ins.Walls) +
		0.15*insulationPoints(ins.Floor)
}

func insulationPoints(tier string) float64 {
	if p, ok := insulationTierPoints[tier]; ok {
		return p
	}
	return insulationTierPoints["unknown"]
}

// scoreHVAC derives the sub-score from the relative gaps: no shortfall on
// either side scores 100, a full shortfall on both sides scores 0.
func scoreHVAC(coolingRelGap, heatingRelGap float64) float64 {
	return 100 - 50*coolingRelGap - 50*heatingRelGap
}

var lightingTypePoints = map[string]float64{
	"led":          100,
	"cfl":          70,
	"mixed":        60,
	"incandescent": 30,
	"unknown":      55,
}

func scoreLighting(l model.LightingBlock) float64 {
	points, ok := lightingTypePoints[l.PrimaryType]
	if !ok {
		points = lightingTypePoints["unknown"]
	}
	if l.LEDPercent > 0 {
		share := math.Min(l.LEDPercent, 100)
		return 0.5*points + 0.5*share
	}
	return points
}

var windowPanePoints = map[string]float64{
	"triple":  100,
	"double":  75,
	"single":  30,
	"unknown": 55,
}

func scoreWindows(w model.WindowBlock) float64 {
	points, ok := windowPanePoints[w.PaneType]
	if !ok {
		points = windowPanePoints["unknown"]
	}
	switch w.Condition {
	case "excellent", "good":
		points += 5
	case "poor":
		points -= 10
	}
	return points
}

// ageAdjustment maps construction year to a bounded nudge: newer homes
// benefit from tighter codes, older homes pay a small penalty. An unknown
// year contributes nothing.
func (c *Calculator) ageAdjustment(yearBuilt int) float64 {
	var factor float64
	switch {
	case yearBuilt == 0:
		factor = 0
	case yearBuilt >= 2015:
		factor = 1
	case yearBuilt >= 2000:
		factor = 0.5
	case yearBuilt >= 1980:
		factor = 0
	case yearBuilt >= 1960:
		factor = -0.5
	default:
		factor = -1
	}
	return factor * c.cfg.AgeAdjustmentMax
}

// Interpret maps an overall score to its qualitative label. The
// thresholds are fixed and independent of the clamp band.
func Interpret(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 60:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
