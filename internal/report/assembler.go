// Package report assembles the canonical report payload consumed by every
// rendering surface.
package report

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/wattwise-group/audit-cli/internal/hvac"
	"github.com/wattwise-group/audit-cli/internal/model"
	"github.com/wattwise-group/audit-cli/internal/recommend"
	"github.com/wattwise-group/audit-cli/internal/score"
	"github.com/wattwise-group/audit-cli/internal/usage"
)

// ErrNoSubject is returned when assembly is requested without an audit.
// It is the engine's only fatal condition: every other data gap is
// repaired with documented defaults, but a report needs a subject.
var ErrNoSubject = eris.New("report: audit subject is missing")

// Assembler orchestrates the derivation components into one ReportData.
// It is stateless; a single instance may serve concurrent requests.
type Assembler struct {
	estimator  *usage.Estimator
	analyzer   *hvac.Analyzer
	validator  *recommend.Validator
	calculator *score.Calculator
}

// NewAssembler wires the assembler from its components. Nil components
// select defaults.
func NewAssembler(est *usage.Estimator, an *hvac.Analyzer, val *recommend.Validator, calc *score.Calculator) *Assembler {
	if est == nil {
		est = usage.NewEstimator(nil)
	}
	if an == nil {
		an = hvac.NewAnalyzer(hvac.Thresholds{}, hvac.Standards{})
	}
	if val == nil {
		val = recommend.NewValidator(nil, 0)
	}
	if calc == nil {
		calc = score.NewCalculator(score.Config{})
	}
	return &Assembler{estimator: est, analyzer: an, validator: val, calculator: calc}
}

// Assemble normalizes the raw audit, validates the recommendations, and
// derives the score, HVAC assessment, usage hours, and summary aggregates.
// Both rendering surfaces consume the returned structure as-is; every
// derived number in it is computed exactly once here.
func (a *Assembler) Assemble(raw model.RawAudit, rawRecs []model.RawRecommendation) (*model.ReportData, error) {
	if raw == nil {
		return nil, ErrNoSubject
	}

	audit := NormalizeAudit(raw)
	validated := a.validator.ValidateAll(ParseRecommendations(rawRecs))

	region, std := a.analyzer.StandardsFor(audit.BasicInfo.State)
	assessment := a.assessHvac(audit.HeatingCooling, region, std)

	rawHours := audit.EnergyConsumption.DailyUsageHours
	hours := a.estimator.Estimate(rawHours, audit.EnergyConsumption.Occupancy)

	efficiency := a.calculator.Score(score.Components{
		Insulation:    audit.CurrentConditions.Insulation,
		Lighting:      audit.CurrentConditions.Lighting,
		Windows:       audit.CurrentConditions.Windows,
		CoolingRelGap: score.RelGap(assessment.CoolingGap, a.coolingTarget(audit.HeatingCooling.Cooling.SystemType, std)),
		HeatingRelGap: score.RelGap(assessment.HeatingGap, a.heatingTarget(audit.HeatingCooling.Heating.SystemType, std)),
	}, audit.BasicInfo.YearBuilt)

	data := &model.ReportData{
		GeneratedAt:     time.Now().UTC(),
		Property:        audit.BasicInfo,
		Home:            audit.HomeDetails,
		Score:           efficiency,
		Hvac:            assessment,
		DailyUsageHours: hours,
		UsageEstimated:  hours != rawHours,
		Recommendations: validated,
		Summary:         summarize(validated),
	}

	zap.L().Info("report: assembled",
		zap.String("property", audit.BasicInfo.PropertyName),
		zap.Float64("overall_score", efficiency.Overall),
		zap.Int("recommendations", len(validated)),
		zap.Float64("total_savings", data.Summary.TotalAnnualSavings),
	)
	return data, nil
}

func (a *Assembler) assessHvac(hc model.HeatingCooling, region string, std hvac.RegionStandard) model.HvacAssessment {
	coolType := hc.Cooling.SystemType
	heatType := hc.Heating.SystemType

	cooling := a.analyzer.RateCooling(coolType, hc.Cooling.Efficiency)
	heating := a.analyzer.RateHeating(heatType, hc.Heating.Efficiency)

	return model.HvacAssessment{
		CoolingClassification: string(cooling.Classification),
		CoolingNormalized:     cooling.Normalized,
		CoolingDisplay:        a.analyzer.FormatCooling(coolType, cooling.Normalized),
		CoolingGap:            a.analyzer.CoolingGap(coolType, hc.Cooling.Efficiency, a.coolingTarget(coolType, std)),
		HeatingClassification: string(heating.Classification),
		HeatingNormalized:     heating.Normalized,
		HeatingDisplay:        a.analyzer.FormatHeating(heatType, heating.Normalized),
		HeatingGap:            a.analyzer.HeatingGap(heatType, hc.Heating.Efficiency, a.heatingTarget(heatType, std)),
		Region:                region,
	}
}

// coolingTarget picks the regional minimum matching the system's scale.
func (a *Assembler) coolingTarget(systemType string, std hvac.RegionStandard) float64 {
	_ = systemType // every cooling type rates on SEER today
	return std.MinSEER
}

func (a *Assembler) heatingTarget(systemType string, std hvac.RegionStandard) float64 {
	if systemType == "heat-pump" {
		return std.MinHSPF
	}
	return std.MinAFUE
}

// summarize folds over the already-validated list. Downstream renderers
// must never recompute these aggregates; this single fold is what keeps
// the interactive view and the exported document in agreement.
func summarize(recs []model.Recommendation) model.ReportSummary {
	s := model.ReportSummary{RecommendationCount: len(recs)}

	var implementedEstimated float64
	for _, r := range recs {
		s.TotalAnnualSavings += r.AnnualSavings
		s.TotalEstimatedCost += r.EstimatedCost
		if r.IsEstimated {
			s.EstimatedCount++
		}
		if r.Status == model.StatusImplemented {
			s.ImplementedCount++
		}
		if r.ActualSavings != nil {
			s.TotalActualSavings += *r.ActualSavings
			implementedEstimated += r.AnnualSavings
		}
	}

	if implementedEstimated > 0 {
		pct := s.TotalActualSavings / implementedEstimated * 100
		s.SavingsAccuracyPct = &pct
	}
	return s
}
