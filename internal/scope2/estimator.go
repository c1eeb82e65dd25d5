package scope2

import (
	"context"
	"fmt"
	"math"

	"github.com/carbontally/carbontally/internal/logging"
)

// sanitize coerces non-finite values to zero, mirroring the engine's
// never-fail numeric policy.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// estimateRevenue computes the revenue-intensity proxy. Unavailable when
// revenue is zero or no kWh-per-currency intensity exists for the country
// and no override is supplied.
func estimateRevenue(in Inputs, country Country) (Estimate, bool) {
	revenue := sanitize(in.Revenue)
	if revenue <= 0 {
		return Estimate{}, false
	}

	intensity := country.KWhPerRevenue
	if in.Overrides.Enabled && sanitize(in.Overrides.KWhPerRevenue) > 0 {
		intensity = sanitize(in.Overrides.KWhPerRevenue)
	}
	if intensity <= 0 {
		return Estimate{}, false
	}

	return Estimate{
		Method: MethodRevenueIntensity,
		KWh:    revenue * intensity,
		Label:  fmt.Sprintf("%.0f revenue × %.3f kWh/unit", revenue, intensity),
	}, true
}

// EffectiveKWhPerEmployee returns the employee intensity the estimator would
// apply for these inputs: the override when enabled and positive, else the
// country default, else DefaultKWhPerEmployee. The confidence scorer checks
// this same value against its plausibility band.
func EffectiveKWhPerEmployee(in Inputs, country Country) float64 {
	if in.Overrides.Enabled && sanitize(in.Overrides.KWhPerEmployee) > 0 {
		return sanitize(in.Overrides.KWhPerEmployee)
	}
	if country.KWhPerEmployee > 0 {
		return country.KWhPerEmployee
	}
	return DefaultKWhPerEmployee
}

// estimateEmployees computes the employee-intensity proxy.
func estimateEmployees(in Inputs, country Country) (Estimate, bool) {
	employees := sanitize(in.Employees)
	if employees <= 0 {
		return Estimate{}, false
	}

	intensity := EffectiveKWhPerEmployee(in, country)
	return Estimate{
		Method: MethodEmployeeIntensity,
		KWh:    employees * intensity,
		Label:  fmt.Sprintf("%.0f employees × %.0f kWh/employee", employees, intensity),
	}, true
}

// estimateArea computes the area-intensity proxy, keyed by building type.
func estimateArea(in Inputs) (Estimate, bool) {
	area := sanitize(in.FloorspaceM2)
	if area <= 0 {
		return Estimate{}, false
	}

	intensity, ok := LookupBuildingIntensity(in.BuildingType)
	if in.Overrides.Enabled && sanitize(in.Overrides.KWhPerM2) > 0 {
		intensity, ok = sanitize(in.Overrides.KWhPerM2), true
	}
	if !ok || intensity <= 0 {
		return Estimate{}, false
	}

	return Estimate{
		Method: MethodAreaIntensity,
		KWh:    area * intensity,
		Label:  fmt.Sprintf("%.0f m² × %.0f kWh/m² (%s)", area, intensity, in.BuildingType),
	}, true
}

// estimateProvided wraps the direct kWh figure.
func estimateProvided(in Inputs) (Estimate, bool) {
	kwh := sanitize(in.AnnualKWh)
	if kwh <= 0 {
		return Estimate{}, false
	}
	return Estimate{
		Method: MethodProvided,
		KWh:    kwh,
		Label:  "metered/billed annual kWh",
	}, true
}

// selectionPriority is the automatic-mode ordering. The provided figure
// ranks last: it is used only when none of the intensity methods could
// produce a value, even if a provided value exists.
//
//nolint:gochecknoglobals // Constant ordering.
var selectionPriority = []Method{
	MethodRevenueIntensity,
	MethodEmployeeIntensity,
	MethodAreaIntensity,
	MethodProvided,
}

// EstimateElectricity runs all four proxies over the input snapshot,
// resolves the grid factor, selects a method, and computes emissions plus
// per-method comparison scenarios.
//
// Methods whose required inputs are missing or zero are simply absent from
// the result; they are not errors. When nothing is available, Selected is
// nil and EmissionsKg is invalid.
func EstimateElectricity(ctx context.Context, in Inputs) Result {
	log := logging.FromContext(ctx)

	country, known := LookupCountry(in.Country)
	if !known {
		log.Debug().
			Str("component", "scope2").
			Str("country", in.Country).
			Msg("unknown country, using world-average grid factor")
	}

	grid := ResolveGridFactor(country, in.Region)

	available := make(map[Method]Estimate, len(selectionPriority))
	if est, ok := estimateRevenue(in, country); ok {
		available[est.Method] = est
	}
	if est, ok := estimateEmployees(in, country); ok {
		available[est.Method] = est
	}
	if est, ok := estimateArea(in); ok {
		available[est.Method] = est
	}
	if est, ok := estimateProvided(in); ok {
		available[est.Method] = est
	}

	result := Result{Grid: grid}
	for _, m := range selectionPriority {
		est, ok := available[m]
		if !ok {
			continue
		}
		result.Estimates = append(result.Estimates, est)
		result.Scenarios = append(result.Scenarios, Scenario{
			Method:      m,
			KWh:         est.KWh,
			EmissionsKg: est.KWh * grid.KgPerKWh,
		})
	}

	result.Selected = selectEstimate(in, result.Estimates)
	if result.Selected != nil {
		result.EmissionsKg = EmissionsKg{
			Value: result.Selected.KWh * grid.KgPerKWh,
			Valid: true,
		}
	}

	log.Debug().
		Str("component", "scope2").
		Str("grid_source", grid.Source).
		Int("methods_available", len(result.Estimates)).
		Bool("selected", result.Selected != nil).
		Msg("electricity estimated")

	return result
}

// selectEstimate applies the selection rules over the available estimates
// (already in priority order).
//
// Automatic mode takes the first by priority. Locked mode takes the
// explicitly chosen method when it produced a value and otherwise falls
// back to the automatic choice.
func selectEstimate(in Inputs, estimates []Estimate) *Estimate {
	if len(estimates) == 0 {
		return nil
	}

	if !in.Auto {
		for i := range estimates {
			if estimates[i].Method == in.LockedMethod {
				return &estimates[i]
			}
		}
	}
	return &estimates[0]
}
