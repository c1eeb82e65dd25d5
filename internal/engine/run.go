package engine

import (
	"context"

	"github.com/carbontally/carbontally/internal/logging"
)

// Run executes the full activity pipeline for one snapshot:
// expander → synthesizer → resolver → aggregator.
//
// Run is a pure function of the snapshot. It never mutates its input, never
// fails, and is safe to invoke concurrently with different snapshots.
func Run(ctx context.Context, snap Snapshot) Result {
	log := logging.FromContext(ctx)

	expansion := ExpandJobMix(ctx, snap.Parameters, snap.JobTypes)
	activities := SynthesizeActivities(ctx, snap.Parameters, expansion, snap.Materials)
	items := ResolveEmissions(ctx, activities, snap.Factors)
	summary := Aggregate(items)

	log.Debug().
		Str("component", "engine").
		Str("operation", "run").
		Int("line_items", len(items)).
		Float64("total_t", summary.TotalT).
		Msg("pipeline complete")

	return Result{
		Expansion:  expansion,
		Activities: activities,
		LineItems:  items,
		Summary:    summary,
	}
}
