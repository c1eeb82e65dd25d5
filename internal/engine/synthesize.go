package engine

import (
	"context"
	"fmt"

	"github.com/carbontally/carbontally/internal/logging"
)

// Core activity identifiers. The "core-" namespace is reserved for the five
// fixed activities every run emits; material activities use the disjoint
// "mat-" namespace so the two can never collide.
const (
	ActivityIDFuel        = "core-fuel"
	ActivityIDElectricity = "core-electricity"
	ActivityIDHeat        = "core-heat"
	ActivityIDRefrigerant = "core-refrigerant"
	ActivityIDCommute     = "core-commute"
)

// Activity vocabulary. These category/item/unit triples match the default
// emission-factor table keys so downstream lookups can succeed.
const (
	CategoryFuel        = "fuel"
	CategoryEnergy      = "energy"
	CategoryRefrigerant = "refrigerant"
	CategoryTravel      = "travel"
	CategoryMaterial    = "material"

	ItemDiesel       = "diesel"
	ItemElectricity  = "electricity"
	ItemDistrictHeat = "district_heat"
	ItemRefrigerant  = "R410A"
	ItemCommuteCar   = "commute_car"

	UnitLitre = "L"
	UnitKWh   = "kWh"
	UnitKg    = "kg"
	UnitKm    = "km"
)

// SynthesizeActivities turns an expanded job mix plus operational parameters
// into the canonical activity list.
//
// Five core activities are always emitted, each with its own rounding
// policy: fuel volume (1 decimal), electricity and heat (nearest kWh),
// refrigerant leak (2 decimals), commute distance (nearest km).
//
// One material activity is emitted per requirement whose job type exists in
// the expansion; requirements referencing an unknown job type are skipped
// silently. Material quantities are qtyPerJob × jobCount, 2 decimals.
func SynthesizeActivities(
	ctx context.Context,
	params ParameterSet,
	exp Expansion,
	materials []MaterialRequirement,
) []Activity {
	log := logging.FromContext(ctx)

	entity := params.Entity
	period := params.Year

	activities := []Activity{
		{
			ID:       ActivityIDFuel,
			Category: CategoryFuel,
			Item:     ItemDiesel,
			Quantity: roundTo(sanitize(exp.TotalFuelL), 1),
			Unit:     UnitLitre,
			Entity:   entity,
			Period:   period,
			Notes:    "derived from job mix driving distance",
		},
		{
			ID:       ActivityIDElectricity,
			Category: CategoryEnergy,
			Item:     ItemElectricity,
			Quantity: roundTo(sanitize(params.OfficeM2)*sanitize(params.ElecIntensityKWhM2), 0),
			Unit:     UnitKWh,
			Entity:   entity,
			Period:   period,
			Notes:    "office area × electricity intensity",
		},
		{
			ID:       ActivityIDHeat,
			Category: CategoryEnergy,
			Item:     ItemDistrictHeat,
			Quantity: roundTo(sanitize(params.OfficeM2)*sanitize(params.HeatIntensityKWhM2), 0),
			Unit:     UnitKWh,
			Entity:   entity,
			Period:   period,
			Notes:    "office area × heat intensity",
		},
		{
			ID:       ActivityIDRefrigerant,
			Category: CategoryRefrigerant,
			Item:     ItemRefrigerant,
			Quantity: roundTo(sanitize(params.RefrigerantChargeKg)*sanitize(params.LeakRateFrac), 2),
			Unit:     UnitKg,
			Entity:   entity,
			Period:   period,
			Notes:    "annual leakage from installed charge",
		},
		{
			ID:       ActivityIDCommute,
			Category: CategoryTravel,
			Item:     ItemCommuteCar,
			Quantity: roundTo(sanitize(params.EmployeesFTE)*sanitize(params.CommuteKmPerDayRoundtrip)*sanitize(params.WorkdaysPerYear), 0),
			Unit:     UnitKm,
			Entity:   entity,
			Period:   period,
			Notes:    "FTE × daily round trip × workdays",
		},
	}

	// Index expanded rows by job type for the material join.
	counts := make(map[string]int, len(exp.Jobs))
	for _, job := range exp.Jobs {
		counts[job.JobType] = job.JobCount
	}

	for i, req := range materials {
		count, ok := counts[req.JobType]
		if !ok {
			log.Debug().
				Str("component", "engine").
				Str("operation", "synthesize").
				Str("job_type", req.JobType).
				Str("item", req.Item).
				Msg("material requirement references unknown job type, skipping")
			continue
		}
		activities = append(activities, Activity{
			ID:       fmt.Sprintf("mat-%d", i+1),
			Category: CategoryMaterial,
			Item:     req.Item,
			Quantity: roundTo(sanitize(req.QtyPerJob)*float64(count), 2),
			Unit:     req.Unit,
			Entity:   entity,
			Period:   period,
			Notes:    fmt.Sprintf("%s × %d jobs", req.JobType, count),
		})
	}

	log.Debug().
		Str("component", "engine").
		Str("operation", "synthesize").
		Int("activities", len(activities)).
		Msg("activities synthesized")

	return activities
}
