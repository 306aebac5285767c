// Package export renders assembled reports for delivery. Exporters
// consume model.ReportData as-is; totals come from the summary and are
// never recomputed here.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wattwise-group/audit-cli/internal/model"
)

var titler = cases.Title(language.AmericanEnglish)

// Label converts a machine token like "smart-home" or "heat_pump" into
// a display heading.
func Label(token string) string {
	if token == "" {
		return ""
	}
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(token)
	return titler.String(cleaned)
}

// WriteXLSX renders the report as a workbook with Summary, Score,
// HVAC and Recommendations sheets.
func WriteXLSX(w io.Writer, report *model.ReportData) error {
	if report == nil {
		return eris.New("export: nil report")
	}

	f := xlsx.NewFile()

	if err := addSummarySheet(f, report); err != nil {
		return err
	}
	if err := addScoreSheet(f, report); err != nil {
		return err
	}
	if err := addHvacSheet(f, report); err != nil {
		return err
	}
	if err := addRecommendationSheet(f, report); err != nil {
		return err
	}

	return eris.Wrap(f.Write(w), "export: write workbook")
}

func addSummarySheet(f *xlsx.File, report *model.ReportData) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	addPair(sheet, "Property", report.Property.PropertyName)
	addPair(sheet, "State", report.Property.State)
	addPair(sheet, "Generated", report.GeneratedAt.Format("2006-01-02 15:04 MST"))
	addPair(sheet, "Overall Score", fmt.Sprintf("%.1f", report.Score.Overall))
	addPair(sheet, "Rating", report.Score.Rating)
	addPair(sheet, "Daily Usage Hours", fmt.Sprintf("%.1f", report.DailyUsageHours))

	s := report.Summary
	addPair(sheet, "Recommendations", fmt.Sprintf("%d", s.RecommendationCount))
	addPair(sheet, "Total Annual Savings", money(s.TotalAnnualSavings))
	addPair(sheet, "Total Estimated Cost", money(s.TotalEstimatedCost))
	addPair(sheet, "Implemented", fmt.Sprintf("%d", s.ImplementedCount))
	addPair(sheet, "Estimated Figures", fmt.Sprintf("%d", s.EstimatedCount))
	if s.SavingsAccuracyPct != nil {
		addPair(sheet, "Savings Accuracy", fmt.Sprintf("%.1f%%", *s.SavingsAccuracyPct))
	}
	return nil
}

func addScoreSheet(f *xlsx.File, report *model.ReportData) error {
	sheet, err := f.AddSheet("Score")
	if err != nil {
		return eris.Wrap(err, "export: add score sheet")
	}

	addRow(sheet, "Component", "Score")
	sc := report.Score
	addPair(sheet, "Insulation", fmt.Sprintf("%.1f", sc.Insulation))
	addPair(sheet, "HVAC", fmt.Sprintf("%.1f", sc.HVAC))
	addPair(sheet, "Lighting", fmt.Sprintf("%.1f", sc.Lighting))
	addPair(sheet, "Windows", fmt.Sprintf("%.1f", sc.Windows))
	addPair(sheet, "Age Adjustment", fmt.Sprintf("%+.1f", sc.AgeAdjustment))
	addPair(sheet, "Overall", fmt.Sprintf("%.1f", sc.Overall))
	return nil
}

func addHvacSheet(f *xlsx.File, report *model.ReportData) error {
	sheet, err := f.AddSheet("HVAC")
	if err != nil {
		return eris.Wrap(err, "export: add hvac sheet")
	}

	h := report.Hvac
	addRow(sheet, "System", "Rating", "Efficiency", "Gap To Standard")
	addRow(sheet, "Cooling", Label(h.CoolingClassification), h.CoolingDisplay, fmt.Sprintf("%.1f", h.CoolingGap))
	addRow(sheet, "Heating", Label(h.HeatingClassification), h.HeatingDisplay, fmt.Sprintf("%.1f", h.HeatingGap))
	addPair(sheet, "Region", Label(h.Region))
	return nil
}

func addRecommendationSheet(f *xlsx.File, report *model.ReportData) error {
	sheet, err := f.AddSheet("Recommendations")
	if err != nil {
		return eris.Wrap(err, "export: add recommendations sheet")
	}

	addRow(sheet, "Title", "Category", "Priority", "Status", "Annual Savings", "Estimated Cost", "Payback (yrs)", "Figures")
	for _, rec := range report.Recommendations {
		source := "user-provided"
		if rec.IsEstimated {
			source = "estimated"
		}
		title := rec.Title
		if title == "" {
			title = rec.Type
		}
		addRow(sheet,
			title,
			Label(rec.Category),
			Label(string(rec.Priority)),
			Label(string(rec.Status)),
			money(rec.AnnualSavings),
			money(rec.EstimatedCost),
			fmt.Sprintf("%.1f", rec.PaybackYears),
			source,
		)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells ...string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().Value = c
	}
}

func addPair(sheet *xlsx.Sheet, key, value string) {
	addRow(sheet, key, value)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
