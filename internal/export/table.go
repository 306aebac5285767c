package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/wattwise-group/audit-cli/internal/model"
)

// WriteTable renders the report as aligned text for terminal output.
func WriteTable(out io.Writer, report *model.ReportData) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "Property:\t%s\n", report.Property.PropertyName)
	if report.Property.State != "" {
		_, _ = fmt.Fprintf(w, "State:\t%s\n", report.Property.State)
	}
	_, _ = fmt.Fprintf(w, "Generated:\t%s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	_, _ = fmt.Fprintln(w)

	sc := report.Score
	_, _ = fmt.Fprintf(w, "Overall score:\t%.1f / 100 (%s)\n", sc.Overall, sc.Rating)
	_, _ = fmt.Fprintf(w, "  Insulation:\t%.1f\n", sc.Insulation)
	_, _ = fmt.Fprintf(w, "  HVAC:\t%.1f\n", sc.HVAC)
	_, _ = fmt.Fprintf(w, "  Lighting:\t%.1f\n", sc.Lighting)
	_, _ = fmt.Fprintf(w, "  Windows:\t%.1f\n", sc.Windows)
	_, _ = fmt.Fprintf(w, "  Age adjustment:\t%+.1f\n", sc.AgeAdjustment)
	_, _ = fmt.Fprintln(w)

	h := report.Hvac
	_, _ = fmt.Fprintf(w, "Cooling:\t%s\t%s\tgap %.1f\n", Label(h.CoolingClassification), h.CoolingDisplay, h.CoolingGap)
	_, _ = fmt.Fprintf(w, "Heating:\t%s\t%s\tgap %.1f\n", Label(h.HeatingClassification), h.HeatingDisplay, h.HeatingGap)
	_, _ = fmt.Fprintf(w, "Region:\t%s\n", Label(h.Region))
	_, _ = fmt.Fprintf(w, "Usage hours:\t%.1f/day\n", report.DailyUsageHours)
	_, _ = fmt.Fprintln(w)

	if len(report.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w, "TITLE\tCATEGORY\tPRIORITY\tSAVINGS/YR\tCOST\tPAYBACK")
		_, _ = fmt.Fprintln(w, "-----\t--------\t--------\t----------\t----\t-------")
		for _, rec := range report.Recommendations {
			title := rec.Title
			if title == "" {
				title = rec.Type
			}
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f yrs\n",
				title,
				Label(rec.Category),
				Label(string(rec.Priority)),
				money(rec.AnnualSavings),
				money(rec.EstimatedCost),
				rec.PaybackYears,
			)
		}
		_, _ = fmt.Fprintln(w)
	}

	s := report.Summary
	_, _ = fmt.Fprintf(w, "Total annual savings:\t%s\n", money(s.TotalAnnualSavings))
	_, _ = fmt.Fprintf(w, "Total estimated cost:\t%s\n", money(s.TotalEstimatedCost))
	_, _ = fmt.Fprintf(w, "Implemented:\t%d of %d\n", s.ImplementedCount, s.RecommendationCount)
	_, _ = fmt.Fprintf(w, "Estimated figures:\t%d\n", s.EstimatedCount)
	if s.SavingsAccuracyPct != nil {
		_, _ = fmt.Fprintf(w, "Savings accuracy:\t%.1f%%\n", *s.SavingsAccuracyPct)
	}
	_ = w.Flush()
}
