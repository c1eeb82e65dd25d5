// Package engine implements the activity-based emissions model: it expands a
// job mix into physical activity quantities, resolves them against an
// emission-factor table, and aggregates the result into per-scope totals.
//
// Every exported function is a pure function of its inputs. Inputs are
// treated as immutable snapshots and are never mutated; identical inputs
// always produce identical outputs. Malformed numeric inputs are coerced to
// defaults rather than rejected, so the engine stays computable under
// partial or interactive input.
package engine

// Scope labels used by the emission-factor table.
const (
	// Scope1 covers direct combustion and leakage emissions.
	Scope1 = "S1"
	// Scope2 covers purchased energy emissions.
	Scope2 = "S2"
	// Scope3 covers other indirect value-chain emissions.
	Scope3 = "S3"
)

// KgPerTonne converts factor-table kilograms to reporting tonnes.
const KgPerTonne = 1000.0

// ParameterSet is the immutable scalar configuration for one calculation run.
type ParameterSet struct {
	// Year labels the reporting period (free text, e.g. "2026").
	Year string `yaml:"year" json:"year"`
	// Entity labels the reporting organization on generated activities.
	Entity string `yaml:"entity" json:"entity"`
	// TotalJobsPerYear is the annual job volume distributed across job types.
	TotalJobsPerYear int `yaml:"total_jobs_per_year" json:"total_jobs_per_year"`
	// FuelEconomyLPer100km converts driven distance to fuel volume.
	FuelEconomyLPer100km float64 `yaml:"fuel_economy_l_per_100km" json:"fuel_economy_l_per_100km"`
	// OfficeM2 is the heated/lit floor area.
	OfficeM2 float64 `yaml:"office_m2" json:"office_m2"`
	// ElecIntensityKWhM2 is electricity use per m² and year.
	ElecIntensityKWhM2 float64 `yaml:"elec_intensity_kwh_m2" json:"elec_intensity_kwh_m2"`
	// HeatIntensityKWhM2 is district heat use per m² and year.
	HeatIntensityKWhM2 float64 `yaml:"heat_intensity_kwh_m2" json:"heat_intensity_kwh_m2"`
	// RefrigerantChargeKg is the installed refrigerant charge.
	RefrigerantChargeKg float64 `yaml:"refrigerant_charge_kg" json:"refrigerant_charge_kg"`
	// LeakRateFrac is the annual leak fraction of the charge (0..1).
	LeakRateFrac float64 `yaml:"leak_rate_frac" json:"leak_rate_frac"`
	// EmployeesFTE is the full-time-equivalent headcount.
	EmployeesFTE float64 `yaml:"employees_fte" json:"employees_fte"`
	// CommuteKmPerDayRoundtrip is the average daily commute round trip.
	CommuteKmPerDayRoundtrip float64 `yaml:"commute_km_per_day_roundtrip" json:"commute_km_per_day_roundtrip"`
	// WorkdaysPerYear scales the daily commute to an annual distance.
	WorkdaysPerYear float64 `yaml:"workdays_per_year" json:"workdays_per_year"`
}

// JobType describes one category in the job mix.
type JobType struct {
	// JobType is the key other records reference.
	JobType string `yaml:"job_type" json:"job_type"`
	// Share is the relative weight of this type in the mix. Shares need not
	// sum to 1 across the set; they are normalized against their own sum.
	Share float64 `yaml:"share" json:"share"`
	// LegsPerJob is the number of vehicle legs a single job causes.
	LegsPerJob float64 `yaml:"legs_per_job" json:"legs_per_job"`
	// AvgOneWayKm is the average one-way distance per leg.
	AvgOneWayKm float64 `yaml:"avg_one_way_km" json:"avg_one_way_km"`
	// DetourFactor inflates the one-way distance for real-world routing.
	DetourFactor float64 `yaml:"detour_factor" json:"detour_factor"`
	// RevisitRate is the fraction of jobs needing an extra visit.
	RevisitRate float64 `yaml:"revisit_rate" json:"revisit_rate"`
	Notes       string  `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// ExpandedJob is the per-type result of expanding the job mix.
type ExpandedJob struct {
	JobType string `json:"job_type"`
	// JobCount is the rounded share of the annual job volume. Rows round
	// independently, so counts can drift from the stated total by a small
	// integer; that drift is preserved, not reconciled.
	JobCount  int     `json:"job_count"`
	AvgLegKm  float64 `json:"avg_leg_km"`
	TotalLegs float64 `json:"total_legs"`
	TotalKm   float64 `json:"total_km"`
}

// Expansion is the full Job-Mix Expander output.
type Expansion struct {
	Jobs []ExpandedJob `json:"jobs"`
	// TotalKm is the summed driving distance across all job types.
	TotalKm float64 `json:"total_km"`
	// TotalFuelL is the fuel volume implied by TotalKm and the fuel economy.
	TotalFuelL float64 `json:"total_fuel_l"`
}

// MaterialRequirement links a purchased material to a job type.
type MaterialRequirement struct {
	JobType   string  `yaml:"job_type" json:"job_type"`
	Item      string  `yaml:"item" json:"item"`
	Unit      string  `yaml:"unit" json:"unit"`
	QtyPerJob float64 `yaml:"qty_per_job" json:"qty_per_job"`
}

// EmissionFactor maps one (category, item, unit) key to a mass of CO2e per
// unit and a scope tag. The table is externally supplied; duplicate keys
// resolve last-write-wins.
type EmissionFactor struct {
	Category string `yaml:"category" json:"category"`
	Item     string `yaml:"item" json:"item"`
	Unit     string `yaml:"unit" json:"unit"`
	// Value is kg CO2e per Unit.
	Value float64 `yaml:"value" json:"value"`
	// Scope is one of Scope1, Scope2, Scope3.
	Scope string `yaml:"scope" json:"scope"`
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Activity is one physical flow (fuel burned, energy used, distance
// traveled, material consumed) expressed in the factor table's vocabulary.
type Activity struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Item     string  `json:"item"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Entity   string  `json:"entity"`
	Period   string  `json:"period"`
	Notes    string  `json:"notes,omitempty"`
}

// Emissions is an optional emissions value (the unit is the holding field's
// contract: kilograms in EmissionsKg, tonnes in EmissionsT). Valid is false
// when no factor matched the activity; an invalid value is distinct from a
// genuine zero and must never enter arithmetic.
type Emissions struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Tonnes converts a kilogram-valued Emissions to reporting tonnes. Invalid
// stays invalid.
func (e Emissions) Tonnes() Emissions {
	if !e.Valid {
		return Emissions{}
	}
	return Emissions{Value: e.Value / KgPerTonne, Valid: true}
}

// LineItem is an activity merged with its resolved factor and emissions.
type LineItem struct {
	Activity
	// FactorValue is kg CO2e per unit; meaningful only when EmissionsKg.Valid.
	FactorValue float64 `json:"factor_value"`
	// Scope is the factor's scope tag, or "" when no factor matched.
	Scope string `json:"scope"`
	// EmissionsKg is quantity × factor in kilograms, invalid on a miss.
	EmissionsKg Emissions `json:"emissions_kg"`
	// EmissionsT is EmissionsKg in reporting tonnes.
	EmissionsT Emissions `json:"emissions_t"`
}

// ScopeSubtotal is one entry of the ordered scope breakdown.
type ScopeSubtotal struct {
	// Scope is the scope label; "" is the unscoped bucket for activities
	// with no matching factor.
	Scope string `json:"scope"`
	// Tonnes is the subtotal of defined emissions under this label.
	Tonnes float64 `json:"tonnes"`
}

// Summary aggregates resolved line items.
type Summary struct {
	// TotalT is the sum of all defined reporting-unit emissions.
	TotalT float64 `json:"total_t"`
	// ScopeT maps scope label (including "") to its subtotal in tonnes.
	ScopeT map[string]float64 `json:"scope_t"`
}

// Snapshot bundles the immutable inputs of one calculation run.
type Snapshot struct {
	Parameters ParameterSet          `yaml:"parameters" json:"parameters"`
	JobTypes   []JobType             `yaml:"job_types" json:"job_types"`
	Materials  []MaterialRequirement `yaml:"materials" json:"materials"`
	Factors    []EmissionFactor      `yaml:"factors" json:"factors"`
}

// Result is the full activity-pipeline output for one snapshot.
type Result struct {
	Expansion  Expansion  `json:"expansion"`
	Activities []Activity `json:"activities"`
	LineItems  []LineItem `json:"line_items"`
	Summary    Summary    `json:"summary"`
}
