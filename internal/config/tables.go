package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/wattwise-group/audit-cli/internal/hvac"
	"github.com/wattwise-group/audit-cli/internal/recommend"
)

// PolicyTables holds operator overrides for the engine's built-in
// lookup tables. Absent sections keep the defaults; present sections
// are merged key by key.
type PolicyTables struct {
	CategoryDefaults map[string]recommend.FinancialDefaults `yaml:"category_defaults"`
	Cooling          map[string]hvac.ThresholdSet           `yaml:"cooling_thresholds"`
	Heating          map[string]hvac.ThresholdSet           `yaml:"heating_thresholds"`
	Regions          map[string]hvac.RegionStandard         `yaml:"regions"`
	StateRegion      map[string]string                      `yaml:"state_region"`
}

// LoadPolicyTables reads a YAML override file. An empty path returns
// nil tables and no error.
func LoadPolicyTables(path string) (*PolicyTables, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read tables %s", path)
	}

	var tables PolicyTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, eris.Wrapf(err, "config: parse tables %s", path)
	}
	return &tables, nil
}

// MergeDefaults overlays the override tables onto the engine defaults
// and returns the merged copies.
func (t *PolicyTables) MergeDefaults() (recommend.DefaultsTable, hvac.Thresholds, hvac.Standards) {
	defaults := recommend.DefaultTable()
	thresholds := hvac.DefaultThresholds()
	standards := hvac.DefaultStandards()

	if t == nil {
		return defaults, thresholds, standards
	}

	for category, fin := range t.CategoryDefaults {
		defaults[category] = fin
	}
	for system, set := range t.Cooling {
		thresholds.Cooling[system] = set
	}
	for system, set := range t.Heating {
		thresholds.Heating[system] = set
	}
	for region, std := range t.Regions {
		standards.Regions[region] = std
	}
	for state, region := range t.StateRegion {
		standards.StateRegion[state] = region
	}

	return defaults, thresholds, standards
}
