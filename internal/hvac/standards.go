package hvac

import "fmt"

// RegionStandard holds the minimum efficiency levels new equipment must
// meet in a climate region.
type RegionStandard struct {
	MinSEER float64 `yaml:"min_seer"`
	MinHSPF float64 `yaml:"min_hspf"`
	MinAFUE float64 `yaml:"min_afue"`
}

// Standards maps two-letter state codes to climate regions and regions to
// their minimum standards. Unrecognized states fall back to DefaultRegion.
type Standards struct {
	Regions       map[string]RegionStandard `yaml:"regions"`
	StateRegion   map[string]string         `yaml:"state_region"`
	DefaultRegion string                    `yaml:"default_region"`
}

// DefaultStandards returns the built-in regional standards table, derived
// from the federal minimums that took effect in 2023.
func DefaultStandards() Standards {
	return Standards{
		DefaultRegion: "north",
		Regions: map[string]RegionStandard{
			"north":     {MinSEER: 14, MinHSPF: 8.8, MinAFUE: 90},
			"south":     {MinSEER: 15, MinHSPF: 8.8, MinAFUE: 80},
			"southwest": {MinSEER: 15, MinHSPF: 8.8, MinAFUE: 80},
		},
		StateRegion: map[string]string{
			// South.
			"AL": "south", "AR": "south", "DE": "south", "FL": "south",
			"GA": "south", "KY": "south", "LA": "south", "MD": "south",
			"MS": "south", "NC": "south", "OK": "south", "SC": "south",
			"TN": "south", "TX": "south", "VA": "south", "DC": "south",
			"HI": "south",
			// Southwest.
			"AZ": "southwest", "CA": "southwest", "NM": "southwest", "NV": "southwest",
			// Everything else classifies north via the default.
			"AK": "north", "CO": "north", "CT": "north", "IA": "north",
			"ID": "north", "IL": "north", "IN": "north", "KS": "north",
			"MA": "north", "ME": "north", "MI": "north", "MN": "north",
			"MO": "north", "MT": "north", "ND": "north", "NE": "north",
			"NH": "north", "NJ": "north", "NY": "north", "OH": "north",
			"OR": "north", "PA": "north", "RI": "north", "SD": "north",
			"UT": "north", "VT": "north", "WA": "north", "WI": "north",
			"WV": "north", "WY": "north",
		},
	}
}

// StandardsFor resolves the minimum standards for a state code, falling
// back to the default region for unrecognized codes. The region name is
// returned alongside for display.
func (a *Analyzer) StandardsFor(stateCode string) (string, RegionStandard) {
	region, ok := a.standards.StateRegion[stateCode]
	if !ok {
		region = a.standards.DefaultRegion
	}
	std, ok := a.standards.Regions[region]
	if !ok {
		region = a.standards.DefaultRegion
		std = a.standards.Regions[region]
	}
	return region, std
}

// notAvailable is rendered when an efficiency value was never reported.
const notAvailable = "Not available"

// FormatCooling renders a normalized cooling value with its unit.
func (a *Analyzer) FormatCooling(systemType string, normalized float64) string {
	return formatValue(a.coolingScale(systemType), normalized)
}

// FormatHeating renders a normalized heating value with its unit.
func (a *Analyzer) FormatHeating(systemType string, normalized float64) string {
	return formatValue(a.heatingScale(systemType), normalized)
}

func formatValue(scale Scale, v float64) string {
	if v <= 0 {
		return notAvailable
	}
	switch scale {
	case ScalePercent:
		return fmt.Sprintf("%.0f%% AFUE", v)
	case ScaleHSPF:
		return fmt.Sprintf("%.1f HSPF", v)
	default:
		return fmt.Sprintf("%.1f SEER", v)
	}
}
