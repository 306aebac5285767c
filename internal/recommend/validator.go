// Package recommend repairs missing or corrupt financial fields on
// recommendation records using category-aware defaults.
package recommend

import (
	"math"

	"go.uber.org/zap"

	"github.com/wattwise-group/audit-cli/internal/model"
)

// DefaultPartialScopeFactor scales whole-home defaults down for
// partial-area recommendations (e.g. "attic only"). The ratio is product
// policy; override it via configuration, not here.
const DefaultPartialScopeFactor = 0.4

// paybackTolerance is the relative slack allowed before a supplied payback
// figure counts as a substitution. The payback is always recomputed from
// cost/savings; the tolerance only decides whether the record is flagged
// as carrying estimated figures.
const paybackTolerance = 0.05

// Validator repairs recommendation records. It holds only read-only
// tables and is safe for concurrent use.
type Validator struct {
	table        DefaultsTable
	partialScale float64
}

// NewValidator creates a Validator. A nil table selects the defaults; a
// partialScale outside (0, 1] selects DefaultPartialScopeFactor.
func NewValidator(table DefaultsTable, partialScale float64) *Validator {
	if table == nil {
		table = DefaultTable()
	}
	if partialScale <= 0 || partialScale > 1 {
		partialScale = DefaultPartialScopeFactor
	}
	return &Validator{table: table, partialScale: partialScale}
}

// ValidateOne returns a repaired copy of the recommendation. A nil input
// yields a complete generic default so callers never null-check
// downstream. In the returned record all three financial fields are
// finite and non-negative, and PaybackYears == EstimatedCost /
// AnnualSavings (savings is always positive after substitution).
// Validation is a fixed point: re-validating an already-valid record
// changes nothing.
func (v *Validator) ValidateOne(rec *model.Recommendation) model.Recommendation {
	if rec == nil {
		return v.genericDefault()
	}

	out := *rec
	out.Category = CategoryFor(rec.Category, rec.Type)
	if out.Priority == "" {
		out.Priority = model.PriorityMedium
	}
	if out.Status == "" {
		out.Status = model.StatusPending
	}

	defaults, ok := v.table[out.Category]
	if !ok {
		defaults = v.table[CategoryGeneral]
	}
	scale := 1.0
	if out.Scope != "" && out.Scope != model.ScopeWholeHome {
		scale = v.partialScale
	}

	substituted := false
	if !positiveFinite(out.AnnualSavings) {
		out.AnnualSavings = defaults.AnnualSavings * scale
		substituted = true
	}
	if !positiveFinite(out.EstimatedCost) {
		out.EstimatedCost = defaults.EstimatedCost * scale
		substituted = true
	}

	// Keep the triple internally consistent instead of trusting three
	// independently-sourced numbers. Minor rounding drift in the supplied
	// figure is corrected silently; a larger disagreement marks the record.
	payback := round2(out.EstimatedCost / out.AnnualSavings)
	if !positiveFinite(out.PaybackYears) || relDiff(out.PaybackYears, payback) > paybackTolerance {
		substituted = true
	}
	out.PaybackYears = payback

	if substituted {
		out.IsEstimated = true
		zap.L().Debug("recommend: substituted defaults",
			zap.String("category", out.Category),
			zap.String("type", out.Type),
			zap.Float64("scale", scale),
		)
	}
	return out
}

// ValidateAll validates every entry of the list, including nil entries,
// and returns a list of the same length.
func (v *Validator) ValidateAll(recs []*model.Recommendation) []model.Recommendation {
	out := make([]model.Recommendation, len(recs))
	for i, rec := range recs {
		out[i] = v.ValidateOne(rec)
	}
	return out
}

func (v *Validator) genericDefault() model.Recommendation {
	defaults := v.table[CategoryGeneral]
	return model.Recommendation{
		Title:         "General Efficiency Improvement",
		Type:          "General Efficiency Improvement",
		Category:      CategoryGeneral,
		Priority:      model.PriorityMedium,
		Status:        model.StatusPending,
		AnnualSavings: defaults.AnnualSavings,
		EstimatedCost: defaults.EstimatedCost,
		PaybackYears:  round2(defaults.EstimatedCost / defaults.AnnualSavings),
		IsEstimated:   true,
	}
}

func positiveFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
