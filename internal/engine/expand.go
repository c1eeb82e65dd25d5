package engine

import (
	"context"
	"math"

	"github.com/carbontally/carbontally/internal/logging"
)

// ExpandJobMix normalizes job-type shares against their own sum and derives
// per-type job counts, leg distances, and driving totals.
//
// The calculation per job type:
//  1. jobCount = round(totalJobs × share / sumShares)
//  2. avgLegKm = avgOneWayKm × detourFactor
//  3. totalLegs = legsPerJob × jobCount × (1 + revisitRate)
//  4. totalKm = totalLegs × avgLegKm
//
// A zero share sum falls back to 1 to avoid division by zero. Because each
// row rounds its count independently, the summed counts can differ from
// TotalJobsPerYear by a small integer; that drift is intentional and is
// never reconciled.
//
// Total fuel is totalKm × fuelEconomy / 100 (economy is litres per 100 km).
// Non-finite inputs are coerced to zero; ExpandJobMix never fails.
func ExpandJobMix(ctx context.Context, params ParameterSet, types []JobType) Expansion {
	log := logging.FromContext(ctx)

	sumShares := 0.0
	for _, jt := range types {
		sumShares += sanitize(jt.Share)
	}
	if sumShares == 0 {
		sumShares = 1
	}

	totalJobs := float64(params.TotalJobsPerYear)
	exp := Expansion{Jobs: make([]ExpandedJob, 0, len(types))}

	for _, jt := range types {
		jobCount := int(math.Round(totalJobs * sanitize(jt.Share) / sumShares))
		avgLegKm := sanitize(jt.AvgOneWayKm) * sanitize(jt.DetourFactor)
		totalLegs := sanitize(jt.LegsPerJob) * float64(jobCount) * (1 + sanitize(jt.RevisitRate))
		totalKm := totalLegs * avgLegKm

		exp.Jobs = append(exp.Jobs, ExpandedJob{
			JobType:   jt.JobType,
			JobCount:  jobCount,
			AvgLegKm:  avgLegKm,
			TotalLegs: totalLegs,
			TotalKm:   totalKm,
		})
		exp.TotalKm += totalKm
	}

	exp.TotalFuelL = exp.TotalKm * sanitize(params.FuelEconomyLPer100km) / 100

	log.Debug().
		Str("component", "engine").
		Str("operation", "expand_job_mix").
		Int("job_types", len(types)).
		Float64("total_km", exp.TotalKm).
		Float64("total_fuel_l", exp.TotalFuelL).
		Msg("job mix expanded")

	return exp
}
