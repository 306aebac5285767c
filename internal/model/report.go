package model

import "time"

// EfficiencyScore holds the component sub-scores (each 0-100) and the
// clamped overall score. Overall always lies inside the configured band.
type EfficiencyScore struct {
	Overall       float64 `json:"overall"`
	Insulation    float64 `json:"insulation"`
	HVAC          float64 `json:"hvac"`
	Lighting      float64 `json:"lighting"`
	Windows       float64 `json:"windows"`
	AgeAdjustment float64 `json:"age_adjustment"`
	Rating        string  `json:"rating"`
}

// HvacAssessment carries the normalized equipment ratings and improvement
// gaps computed against the property's regional standard.
type HvacAssessment struct {
	CoolingClassification string  `json:"cooling_classification"`
	CoolingNormalized     float64 `json:"cooling_normalized"`
	CoolingDisplay        string  `json:"cooling_display"`
	CoolingGap            float64 `json:"cooling_gap"`
	HeatingClassification string  `json:"heating_classification"`
	HeatingNormalized     float64 `json:"heating_normalized"`
	HeatingDisplay        string  `json:"heating_display"`
	HeatingGap            float64 `json:"heating_gap"`
	Region                string  `json:"region"`
}

// ReportSummary aggregates the validated recommendation list. Every field
// here is derived by folding over ReportData.Recommendations; the two
// rendering surfaces format these numbers and never recompute them.
type ReportSummary struct {
	TotalAnnualSavings  float64  `json:"total_estimated_savings"`
	TotalEstimatedCost  float64  `json:"total_estimated_cost"`
	TotalActualSavings  float64  `json:"total_actual_savings"`
	ImplementedCount    int      `json:"implemented_count"`
	EstimatedCount      int      `json:"estimated_count"`
	RecommendationCount int      `json:"recommendation_count"`
	SavingsAccuracyPct  *float64 `json:"savings_accuracy_pct,omitempty"`
}

// ReportData is the single assembled payload consumed by both rendering
// surfaces (interactive JSON view and XLSX export). Callers treat it as
// immutable.
type ReportData struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	Property        BasicInfo       `json:"property"`
	Home            HomeDetails     `json:"home"`
	Score           EfficiencyScore `json:"score"`
	Hvac            HvacAssessment  `json:"hvac"`
	DailyUsageHours float64         `json:"daily_usage_hours"`
	UsageEstimated  bool            `json:"usage_estimated"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         ReportSummary    `json:"summary"`
}
