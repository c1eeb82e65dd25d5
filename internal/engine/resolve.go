package engine

import (
	"context"

	"github.com/carbontally/carbontally/internal/logging"
)

// factorKey is the lookup key of the emission-factor table.
type factorKey struct {
	category string
	item     string
	unit     string
}

// buildFactorIndex indexes a factor table by (category, item, unit).
// Duplicate keys resolve last-write-wins, matching the editable-table
// contract.
func buildFactorIndex(factors []EmissionFactor) map[factorKey]EmissionFactor {
	index := make(map[factorKey]EmissionFactor, len(factors))
	for _, f := range factors {
		index[factorKey{f.Category, f.Item, f.Unit}] = f
	}
	return index
}

// ResolveEmissions joins activities against the factor table.
//
// A matched activity gets emissions = quantity × factor value and the
// factor's scope tag. A miss leaves EmissionsKg invalid and Scope empty:
// "no factor" must stay distinguishable from a genuine zero downstream, so
// it is never coerced to 0. Reporting-unit emissions (tonnes) are derived
// only for defined values.
func ResolveEmissions(ctx context.Context, activities []Activity, factors []EmissionFactor) []LineItem {
	log := logging.FromContext(ctx)
	index := buildFactorIndex(factors)

	items := make([]LineItem, 0, len(activities))
	misses := 0
	for _, act := range activities {
		item := LineItem{Activity: act}

		if f, ok := index[factorKey{act.Category, act.Item, act.Unit}]; ok {
			item.FactorValue = f.Value
			item.Scope = f.Scope
			item.EmissionsKg = Emissions{Value: sanitize(act.Quantity) * sanitize(f.Value), Valid: true}
			item.EmissionsT = item.EmissionsKg.Tonnes()
		} else {
			misses++
		}
		items = append(items, item)
	}

	if misses > 0 {
		log.Debug().
			Str("component", "engine").
			Str("operation", "resolve").
			Int("unmatched", misses).
			Msg("activities without a matching emission factor")
	}

	return items
}
