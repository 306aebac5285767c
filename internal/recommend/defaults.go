package recommend

import "strings"

// Category keys for the default financial tables.
const (
	CategoryHVAC         = "hvac"
	CategoryInsulation   = "insulation"
	CategoryWindows      = "windows"
	CategoryLighting     = "lighting"
	CategoryAppliances   = "appliances"
	CategoryWaterHeating = "water-heating"
	CategorySmartHome    = "smart-home"
	CategoryRenewable    = "renewable"
	CategoryGeneral      = "general"
)

// FinancialDefaults holds the representative whole-home financial figures
// substituted when a recommendation arrives with missing or corrupt values.
// The figures are product policy, not physics; tune via a policy table
// override rather than editing code.
type FinancialDefaults struct {
	AnnualSavings float64 `yaml:"annual_savings"`
	EstimatedCost float64 `yaml:"estimated_cost"`
}

// DefaultsTable keys substitution defaults by recommendation category.
type DefaultsTable map[string]FinancialDefaults

// DefaultTable returns the built-in category defaults.
func DefaultTable() DefaultsTable {
	return DefaultsTable{
		CategoryHVAC:         {AnnualSavings: 520, EstimatedCost: 3850},
		CategoryInsulation:   {AnnualSavings: 350, EstimatedCost: 1800},
		CategoryWindows:      {AnnualSavings: 270, EstimatedCost: 6500},
		CategoryLighting:     {AnnualSavings: 110, EstimatedCost: 350},
		CategoryAppliances:   {AnnualSavings: 150, EstimatedCost: 1200},
		CategoryWaterHeating: {AnnualSavings: 180, EstimatedCost: 1400},
		CategorySmartHome:    {AnnualSavings: 90, EstimatedCost: 450},
		CategoryRenewable:    {AnnualSavings: 850, EstimatedCost: 12000},
		CategoryGeneral:      {AnnualSavings: 120, EstimatedCost: 800},
	}
}

// categoryKeywords maps substrings of free-form type tags to categories.
// Order matters: more specific matches come first (a "smart thermostat"
// is smart-home, not hvac).
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"smart", CategorySmartHome},
	{"thermostat", CategorySmartHome},
	{"solar", CategoryRenewable},
	{"renewable", CategoryRenewable},
	{"water heat", CategoryWaterHeating},
	{"water-heat", CategoryWaterHeating},
	{"hvac", CategoryHVAC},
	{"furnace", CategoryHVAC},
	{"boiler", CategoryHVAC},
	{"heat pump", CategoryHVAC},
	{"air condition", CategoryHVAC},
	{"cooling", CategoryHVAC},
	{"heating", CategoryHVAC},
	{"insulat", CategoryInsulation},
	{"air seal", CategoryInsulation},
	{"window", CategoryWindows},
	{"door", CategoryWindows},
	{"light", CategoryLighting},
	{"led", CategoryLighting},
	{"appliance", CategoryAppliances},
	{"refrigerator", CategoryAppliances},
	{"washer", CategoryAppliances},
	{"dryer", CategoryAppliances},
}

var knownCategories = map[string]struct{}{
	CategoryHVAC: {}, CategoryInsulation: {}, CategoryWindows: {},
	CategoryLighting: {}, CategoryAppliances: {}, CategoryWaterHeating: {},
	CategorySmartHome: {}, CategoryRenewable: {}, CategoryGeneral: {},
}

// CategoryFor normalizes a recommendation's category/type tag to a
// defaults-table key. Unmatched tags map to the general category.
func CategoryFor(category, recType string) string {
	if c := strings.ToLower(strings.TrimSpace(category)); c != "" {
		if _, ok := knownCategories[c]; ok {
			return c
		}
	}
	tag := strings.ToLower(category + " " + recType)
	for _, kc := range categoryKeywords {
		if strings.Contains(tag, kc.keyword) {
			return kc.category
		}
	}
	return CategoryGeneral
}
