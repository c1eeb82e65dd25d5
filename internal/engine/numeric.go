package engine

import "math"

// sanitize coerces non-finite values to zero so the calculation path never
// propagates NaN or Inf. Malformed input becomes a defined default rather
// than an error (the engine must stay computable under partial input).
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	mult := math.Pow(10, float64(places))
	return math.Round(v*mult) / mult
}
