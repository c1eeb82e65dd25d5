package engine

import "sort"

// Aggregate sums resolved line items into a total and per-scope subtotals.
//
// Only defined reporting-unit emissions contribute; an unresolved line item
// adds no phantom zero to its scope bucket, but its (empty) scope label
// still appears in the breakdown so unmatched activity is visible.
func Aggregate(items []LineItem) Summary {
	summary := Summary{ScopeT: make(map[string]float64)}

	for _, item := range items {
		if !item.EmissionsT.Valid {
			// Unscoped bucket exists even when nothing defined lands in it.
			if _, ok := summary.ScopeT[item.Scope]; !ok {
				summary.ScopeT[item.Scope] = 0
			}
			continue
		}
		summary.TotalT += item.EmissionsT.Value
		summary.ScopeT[item.Scope] += item.EmissionsT.Value
	}

	return summary
}

// Ordered returns the scope breakdown sorted by label for deterministic
// enumeration. The unscoped "" bucket sorts first.
func (s Summary) Ordered() []ScopeSubtotal {
	labels := make([]string, 0, len(s.ScopeT))
	for label := range s.ScopeT {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	ordered := make([]ScopeSubtotal, 0, len(labels))
	for _, label := range labels {
		ordered = append(ordered, ScopeSubtotal{Scope: label, Tonnes: s.ScopeT[label]})
	}
	return ordered
}
