package model

// RawAudit is an audit record as it arrives from the intake surfaces:
// already-deserialized JSON whose sections may be missing, string-encoded,
// or keyed in either camelCase (fresh submissions) or snake_case (persisted
// rows). The report assembler normalizes it into an AuditRecord before any
// engine component touches it.
type RawAudit = map[string]any

// AuditRecord is the canonical, fully-populated form of a home energy
// survey. Every nested block is always present; fields the survey did not
// answer carry their zero value or the "unknown" tier so downstream code
// never needs nil checks.
type AuditRecord struct {
	BasicInfo          BasicInfo          `json:"basic_info"`
	HomeDetails        HomeDetails        `json:"home_details"`
	CurrentConditions  CurrentConditions  `json:"current_conditions"`
	HeatingCooling     HeatingCooling     `json:"heating_cooling"`
	EnergyConsumption  EnergyConsumption  `json:"energy_consumption"`
	ProductPreferences ProductPreferences `json:"product_preferences"`
}

// BasicInfo identifies the audited property.
type BasicInfo struct {
	PropertyName string `json:"property_name"`
	OwnerName    string `json:"owner_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	YearBuilt    int    `json:"year_built"`
	SquareFeet   int    `json:"square_feet"`
}

// HomeDetails describes the building itself.
type HomeDetails struct {
	HomeType       string `json:"home_type"`
	Stories        int    `json:"stories"`
	Bedrooms       int    `json:"bedrooms"`
	FoundationType string `json:"foundation_type"`
	RoofType       string `json:"roof_type"`
}

// CurrentConditions groups the envelope and lighting answers.
type CurrentConditions struct {
	Insulation InsulationBlock `json:"insulation"`
	Windows    WindowBlock     `json:"windows"`
	Lighting   LightingBlock   `json:"lighting"`
	AirSealing string          `json:"air_sealing"`
}

// QualityUnknown is the tier recorded when a survey section was absent.
const QualityUnknown = "unknown"

// InsulationBlock holds per-area insulation quality tiers
// (excellent/good/average/poor/none/unknown).
type InsulationBlock struct {
	Attic string `json:"attic"`
	Walls string `json:"walls"`
	Floor string `json:"floor"`
}

// WindowBlock holds window construction answers.
type WindowBlock struct {
	PaneType      string `json:"pane_type"` // single/double/triple/unknown
	FrameMaterial string `json:"frame_material"`
	Condition     string `json:"condition"`
}

// LightingBlock holds lighting answers.
type LightingBlock struct {
	PrimaryType string  `json:"primary_type"` // led/cfl/incandescent/mixed/unknown
	LEDPercent  float64 `json:"led_percent"`  // 0-100 share of LED fixtures
}

// HeatingCooling groups the HVAC equipment answers.
type HeatingCooling struct {
	Heating    HeatingSystem `json:"heating"`
	Cooling    CoolingSystem `json:"cooling"`
	Thermostat string        `json:"thermostat"` // manual/programmable/smart/unknown
}

// HeatingSystem describes the installed heating equipment. Efficiency is
// the raw survey number; its scale depends on SystemType (AFUE percentage
// for furnaces and boilers, HSPF for heat pumps).
type HeatingSystem struct {
	SystemType string  `json:"system_type"`
	FuelType   string  `json:"fuel_type"`
	AgeYears   int     `json:"age_years"`
	Efficiency float64 `json:"efficiency"`
}

// CoolingSystem describes the installed cooling equipment. Efficiency is
// SEER-like; zero means not reported.
type CoolingSystem struct {
	SystemType string  `json:"system_type"`
	AgeYears   int     `json:"age_years"`
	Efficiency float64 `json:"efficiency"`
}

// Occupancy carries the usage-pattern answers consumed by the hours
// estimator.
type Occupancy struct {
	Pattern       string `json:"pattern"` // full-time/standard/part-time/weekend-only/seasonal/vacant
	HouseholdSize int    `json:"household_size"`
	WakeTime      string `json:"wake_time"`  // early/standard/late/varied
	SleepTime     string `json:"sleep_time"` // early/standard/late/varied
}

// EnergyConsumption groups the consumption answers.
type EnergyConsumption struct {
	MonthlyElectricKWh float64   `json:"monthly_electric_kwh"`
	MonthlyGasTherms   float64   `json:"monthly_gas_therms"`
	DailyUsageHours    float64   `json:"daily_usage_hours"` // raw; estimator repairs out-of-range values
	Occupancy          Occupancy `json:"occupancy"`
}

// ProductPreferences holds upgrade-preference answers. They pass through
// the report untouched; nothing in the engine scores them.
type ProductPreferences struct {
	BudgetRange string   `json:"budget_range"`
	Priorities  []string `json:"priorities"`
}
