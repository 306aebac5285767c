package model

// RecommendationPriority levels as stored on recommendation records.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// RecommendationStatus tracks what the homeowner did with a recommendation.
type RecommendationStatus string

const (
	StatusPending     RecommendationStatus = "pending"
	StatusImplemented RecommendationStatus = "implemented"
	StatusDismissed   RecommendationStatus = "dismissed"
)

// Scope values. Anything other than ScopeWholeHome is treated as a
// partial-area recommendation by the validator.
const (
	ScopeWholeHome = "whole-home"
	ScopePartial   = "partial"
)

// Recommendation is an upgrade suggestion with its financial triple.
// In validated output all three financial fields are finite and
// non-negative, and PaybackYears == EstimatedCost / AnnualSavings whenever
// AnnualSavings > 0.
type Recommendation struct {
	ID       string                 `json:"id,omitempty"`
	Title    string                 `json:"title"`
	Type     string                 `json:"type"`     // free-form, e.g. "HVAC System Upgrade"
	Category string                 `json:"category"` // normalized category key, e.g. "hvac"
	Priority RecommendationPriority `json:"priority"`
	Status   RecommendationStatus   `json:"status"`
	Scope    string                 `json:"scope,omitempty"`

	AnnualSavings float64 `json:"estimated_savings"` // $/year
	EstimatedCost float64 `json:"estimated_cost"`    // $
	PaybackYears  float64 `json:"payback_period"`    // years

	// ActualSavings is populated once a homeowner reports post-implementation
	// utility data. Nil until then.
	ActualSavings *float64 `json:"actual_savings,omitempty"`

	// IsEstimated marks recommendations where the validator substituted one
	// or more fields, so presentation layers can flag the figures.
	IsEstimated bool `json:"is_estimated"`
}

// RawRecommendation is a recommendation as supplied by the caller: any of
// the financial fields may be absent, string-encoded, NaN, or negative,
// and the record itself may be nil.
type RawRecommendation = map[string]any
