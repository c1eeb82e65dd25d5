// Package scope2 estimates annual electricity consumption for an
// organization from up to four independent proxies, resolves a grid emission
// factor for the chosen geography, and scores how much the resulting
// Scope-2 figure can be trusted.
//
// Like the activity engine, everything here is a pure function of its
// inputs: no I/O, no shared state, identical inputs give identical outputs.
// A proxy whose inputs are missing is simply absent from the candidate set;
// that is normal operation, not an error.
package scope2

import "fmt"

// Method identifies one electricity estimation proxy.
type Method int

const (
	// MethodProvided uses a directly supplied annual kWh figure.
	MethodProvided Method = iota
	// MethodRevenueIntensity derives kWh from revenue or value added.
	MethodRevenueIntensity
	// MethodEmployeeIntensity derives kWh from headcount.
	MethodEmployeeIntensity
	// MethodAreaIntensity derives kWh from floor area and building type.
	MethodAreaIntensity
)

// String returns the method's display label.
func (m Method) String() string {
	switch m {
	case MethodProvided:
		return "provided kWh"
	case MethodRevenueIntensity:
		return "revenue intensity"
	case MethodEmployeeIntensity:
		return "employee intensity"
	case MethodAreaIntensity:
		return "area intensity"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a CLI/config token to a Method.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "provided":
		return MethodProvided, true
	case "revenue":
		return MethodRevenueIntensity, true
	case "employee":
		return MethodEmployeeIntensity, true
	case "area":
		return MethodAreaIntensity, true
	default:
		return 0, false
	}
}

// Overrides replaces the built-in intensity constants when Enabled.
type Overrides struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	// KWhPerEmployee overrides the per-country employee intensity.
	KWhPerEmployee float64 `yaml:"kwh_per_employee" json:"kwh_per_employee"`
	// KWhPerRevenue overrides the per-country revenue intensity
	// (kWh per currency unit).
	KWhPerRevenue float64 `yaml:"kwh_per_revenue" json:"kwh_per_revenue"`
	// KWhPerM2 overrides the building-type area intensity.
	KWhPerM2 float64 `yaml:"kwh_per_m2" json:"kwh_per_m2"`
}

// Inputs is the immutable input snapshot for one Scope-2 estimation.
type Inputs struct {
	// Country selects the grid factor and intensity defaults.
	Country string `json:"country"`
	// Region optionally selects a sub-national grid factor where the
	// country supports one.
	Region string `json:"region,omitempty"`
	// Employees is the FTE headcount; zero disables the employee method.
	Employees float64 `json:"employees"`
	// Revenue is annual revenue or value added in the country's currency;
	// zero disables the revenue method.
	Revenue float64 `json:"revenue"`
	// FloorspaceM2 is the floor area; zero disables the area method.
	FloorspaceM2 float64 `json:"floorspace_m2"`
	// BuildingType selects the area-intensity benchmark.
	BuildingType string `json:"building_type"`
	// AnnualKWh is an optional direct meter/bill figure.
	AnnualKWh float64 `json:"annual_kwh,omitempty"`
	// Overrides replaces intensity constants when enabled.
	Overrides Overrides `json:"overrides,omitempty"`
	// Auto selects the estimation method by priority; when false,
	// LockedMethod is used if it produced a value.
	Auto bool `json:"auto"`
	// LockedMethod is the explicitly chosen method for Auto == false.
	LockedMethod Method `json:"locked_method,omitempty"`
}

// Estimate is one proxy's electricity figure.
type Estimate struct {
	Method Method  `json:"method"`
	KWh    float64 `json:"kwh"`
	// Label describes how the figure was derived.
	Label string `json:"label"`
}

// GridFactor is the resolved emission intensity of the electricity supply.
type GridFactor struct {
	// KgPerKWh is kg CO2e per kWh.
	KgPerKWh float64 `json:"kg_per_kwh"`
	// Source is the provenance label ("Country" or "Country • Region").
	Source string `json:"source"`
}

// EmissionsKg is an optional kilogram figure; Valid is false when no method
// produced an estimate.
type EmissionsKg struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Scenario is one method's emissions under the resolved grid factor,
// computed for side-by-side comparison independent of selection.
type Scenario struct {
	Method      Method  `json:"method"`
	KWh         float64 `json:"kwh"`
	EmissionsKg float64 `json:"emissions_kg"`
}

// Result is the full Scope-2 estimation output.
type Result struct {
	// Estimates holds every available method's figure in priority order.
	Estimates []Estimate `json:"estimates"`
	// Selected points into Estimates; nil when no method was available.
	Selected *Estimate `json:"selected,omitempty"`
	// Grid is the resolved grid factor used for all emissions figures.
	Grid GridFactor `json:"grid"`
	// EmissionsKg is selected kWh × grid factor.
	EmissionsKg EmissionsKg `json:"emissions_kg"`
	// Scenarios compares every available method under the same factor.
	Scenarios []Scenario `json:"scenarios"`
}

// Confidence is the heuristic reliability score for a Scope-2 result.
type Confidence struct {
	// Score lies in [0.1, 1.0], rounded to 2 decimals.
	Score float64 `json:"score"`
	// Flags lists diagnostics in evaluation order; none suppresses another.
	Flags []string `json:"flags,omitempty"`
}
