package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/wattwise-group/audit-cli/internal/model"
)

// This file is the adapter between the loosely-typed survey payloads the
// intake surfaces produce and the strict AuditRecord the engine consumes.
// Raw audits arrive with sections keyed in camelCase (fresh submissions)
// or snake_case (persisted rows), sections may be string-encoded JSON, and
// any block may be missing. The adapter resolves all of that here so no
// engine component ever needs a defensive check.

// NormalizeAudit converts a raw audit into the canonical AuditRecord.
// Every nested block in the result is populated; string quality fields
// default to "unknown", numerics to zero.
func NormalizeAudit(raw model.RawAudit) model.AuditRecord {
	basic := section(raw, "basicInfo", "basic_info")
	home := section(raw, "homeDetails", "home_details")
	cond := section(raw, "currentConditions", "current_conditions")
	hc := section(raw, "heatingCooling", "heating_cooling")
	energy := section(raw, "energyConsumption", "energy_consumption")
	prefs := section(raw, "productPreferences", "product_preferences")

	insulation := section(cond, "insulation")
	windows := section(cond, "windows")
	lighting := section(cond, "lighting")
	heating := section(hc, "heatingSystem", "heating_system", "heating")
	cooling := section(hc, "coolingSystem", "cooling_system", "cooling")
	occupancy := section(energy, "occupancy", "occupancyPattern", "occupancy_pattern")

	return model.AuditRecord{
		BasicInfo: model.BasicInfo{
			PropertyName: str(basic, "propertyName", "property_name"),
			OwnerName:    str(basic, "ownerName", "owner_name"),
			Address:      str(basic, "address"),
			City:         str(basic, "city"),
			State:        strings.ToUpper(str(basic, "state")),
			ZipCode:      str(basic, "zipCode", "zip_code"),
			YearBuilt:    integer(basic, "yearBuilt", "year_built"),
			SquareFeet:   integer(basic, "squareFeet", "square_feet", "squareFootage", "square_footage"),
		},
		HomeDetails: model.HomeDetails{
			HomeType:       tier(home, "homeType", "home_type"),
			Stories:        integer(home, "stories"),
			Bedrooms:       integer(home, "bedrooms"),
			FoundationType: tier(home, "foundationType", "foundation_type"),
			RoofType:       tier(home, "roofType", "roof_type"),
		},
		CurrentConditions: model.CurrentConditions{
			Insulation: model.InsulationBlock{
				Attic: tier(insulation, "attic"),
				Walls: tier(insulation, "walls"),
				Floor: tier(insulation, "floor"),
			},
			Windows: model.WindowBlock{
				PaneType:      tier(windows, "paneType", "pane_type", "type"),
				FrameMaterial: tier(windows, "frameMaterial", "frame_material"),
				Condition:     tier(windows, "condition"),
			},
			Lighting: model.LightingBlock{
				PrimaryType: tier(lighting, "primaryType", "primary_type", "type"),
				LEDPercent:  num(lighting, "ledPercent", "led_percent"),
			},
			AirSealing: tier(cond, "airSealing", "air_sealing"),
		},
		HeatingCooling: model.HeatingCooling{
			Heating: model.HeatingSystem{
				SystemType: tier(heating, "systemType", "system_type", "type"),
				FuelType:   tier(heating, "fuelType", "fuel_type"),
				AgeYears:   integer(heating, "ageYears", "age_years", "age"),
				Efficiency: num(heating, "efficiency"),
			},
			Cooling: model.CoolingSystem{
				SystemType: tier(cooling, "systemType", "system_type", "type"),
				AgeYears:   integer(cooling, "ageYears", "age_years", "age"),
				Efficiency: num(cooling, "efficiency"),
			},
			Thermostat: tier(hc, "thermostat", "thermostatType", "thermostat_type"),
		},
		EnergyConsumption: model.EnergyConsumption{
			MonthlyElectricKWh: num(energy, "monthlyElectricKwh", "monthly_electric_kwh"),
			MonthlyGasTherms:   num(energy, "monthlyGasTherms", "monthly_gas_therms"),
			DailyUsageHours:    num(energy, "dailyUsageHours", "daily_usage_hours"),
			Occupancy: model.Occupancy{
				Pattern:       tier(occupancy, "pattern", "type"),
				HouseholdSize: integer(occupancy, "householdSize", "household_size"),
				WakeTime:      str(occupancy, "wakeTime", "wake_time"),
				SleepTime:     str(occupancy, "sleepTime", "sleep_time"),
			},
		},
		ProductPreferences: model.ProductPreferences{
			BudgetRange: str(prefs, "budgetRange", "budget_range"),
			Priorities:  strSlice(prefs, "priorities"),
		},
	}
}

// ParseRecommendations converts raw recommendation payloads into typed
// records for the validator. Entirely-absent entries stay nil; the
// validator turns those into complete generic defaults. Unparseable
// financial values become NaN so the validator substitutes them.
func ParseRecommendations(raw []model.RawRecommendation) []*model.Recommendation {
	out := make([]*model.Recommendation, len(raw))
	for i, r := range raw {
		if r == nil {
			continue
		}
		out[i] = &model.Recommendation{
			ID:            str(r, "id"),
			Title:         str(r, "title"),
			Type:          str(r, "type"),
			Category:      str(r, "category"),
			Priority:      model.RecommendationPriority(strings.ToLower(str(r, "priority"))),
			Status:        model.RecommendationStatus(strings.ToLower(str(r, "status"))),
			Scope:         str(r, "scope"),
			AnnualSavings: financial(r, "estimatedSavings", "estimated_savings"),
			EstimatedCost: financial(r, "estimatedCost", "estimated_cost"),
			PaybackYears:  financial(r, "paybackPeriod", "payback_period"),
			ActualSavings: optFinancial(r, "actualSavings", "actual_savings"),
		}
	}
	return out
}

// section resolves a nested object by any of the given keys, decoding
// string-encoded JSON sub-objects. Missing or undecodable sections return
// nil, which every field accessor tolerates.
func section(m map[string]any, keys ...string) map[string]any {
	v, ok := lookup(m, keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		return t
	case string:
		var decoded map[string]any
		if err := json.Unmarshal([]byte(t), &decoded); err != nil {
			return nil
		}
		return decoded
	default:
		return nil
	}
}

func lookup(m map[string]any, keys ...string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str resolves a string field; non-strings are stringified where sensible.
func str(m map[string]any, keys ...string) string {
	v, ok := lookup(m, keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// tier is str with the "unknown" default for quality-tier fields.
func tier(m map[string]any, keys ...string) string {
	s := strings.ToLower(str(m, keys...))
	if s == "" {
		return model.QualityUnknown
	}
	return s
}

// num resolves a numeric field, coercing numeric strings. Missing and
// unparseable values return 0.
func num(m map[string]any, keys ...string) float64 {
	v, ok := coerceNumber(m, keys...)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func integer(m map[string]any, keys ...string) int {
	return int(num(m, keys...))
}

// financial resolves a financial field for the validator: missing values
// return 0 and unparseable ones NaN, both of which the validator replaces
// with category defaults.
func financial(m map[string]any, keys ...string) float64 {
	v, ok := coerceNumber(m, keys...)
	if !ok {
		return 0
	}
	return v
}

func optFinancial(m map[string]any, keys ...string) *float64 {
	v, ok := coerceNumber(m, keys...)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// coerceNumber pulls a number out of float64, int, json.Number, or string
// representations. The second return is false only when the field is
// absent; present-but-garbage values yield NaN.
func coerceNumber(m map[string]any, keys ...string) (float64, bool) {
	v, ok := lookup(m, keys...)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(t, "$"))
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	default:
		return math.NaN(), true
	}
}

func strSlice(m map[string]any, keys ...string) []string {
	v, ok := lookup(m, keys...)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
