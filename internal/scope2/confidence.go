package scope2

import "math"

// Base confidence scores per selected method. A metered figure is nearly
// certain; area benchmarks are the weakest proxy.
const (
	BaseScoreProvided = 0.98
	BaseScoreRevenue  = 0.85
	BaseScoreEmployee = 0.80
	BaseScoreArea     = 0.55
)

// Plausibility band for the effective kWh/employee constant. Values outside
// it suggest a misconfigured override or an atypical organization.
const (
	MinPlausibleKWhPerEmployee = 500.0
	MaxPlausibleKWhPerEmployee = 15000.0
)

// Multiplicative penalties.
const (
	PenaltyImplausibleIntensity = 0.7
	PenaltyMissingRegion        = 0.85
)

// Score bounds.
const (
	MinConfidenceScore = 0.1
	MaxConfidenceScore = 1.0
)

// Confidence flag texts, accumulated in evaluation order.
const (
	FlagNoEstimate       = "no electricity estimate available from any method"
	FlagIntensityTooLow  = "effective kWh/employee below plausible minimum (500)"
	FlagIntensityTooHigh = "effective kWh/employee above plausible maximum (15000)"
	FlagRegionNotChosen  = "country has sub-national grid factors but no region was chosen"
)

// ScoreConfidence derives a bounded confidence score and diagnostic flags
// for a Scope-2 result.
//
// The base score comes from the selected method. Penalties multiply: ×0.7
// per violated kWh/employee plausibility bound when the employee method was
// selected, ×0.85 when the country supports sub-national factors but no
// region was chosen. The score is clamped to [0.1, 1.0] and rounded to two
// decimals. Flags never suppress one another.
func ScoreConfidence(in Inputs, result Result) Confidence {
	conf := Confidence{}

	score := MinConfidenceScore
	if result.Selected == nil {
		conf.Flags = append(conf.Flags, FlagNoEstimate)
	} else {
		switch result.Selected.Method {
		case MethodProvided:
			score = BaseScoreProvided
		case MethodRevenueIntensity:
			score = BaseScoreRevenue
		case MethodEmployeeIntensity:
			score = BaseScoreEmployee
		case MethodAreaIntensity:
			score = BaseScoreArea
		}
	}

	if result.Selected != nil && result.Selected.Method == MethodEmployeeIntensity {
		country, _ := LookupCountry(in.Country)
		effective := EffectiveKWhPerEmployee(in, country)
		if effective < MinPlausibleKWhPerEmployee {
			score *= PenaltyImplausibleIntensity
			conf.Flags = append(conf.Flags, FlagIntensityTooLow)
		}
		if effective > MaxPlausibleKWhPerEmployee {
			score *= PenaltyImplausibleIntensity
			conf.Flags = append(conf.Flags, FlagIntensityTooHigh)
		}
	}

	country, _ := LookupCountry(in.Country)
	if country.Regions != nil {
		if _, ok := country.Regions.Factor(in.Region); !ok {
			score *= PenaltyMissingRegion
			conf.Flags = append(conf.Flags, FlagRegionNotChosen)
		}
	}

	conf.Score = clampScore(score)
	return conf
}

// clampScore bounds a score to [0.1, 1.0] and rounds to two decimals.
func clampScore(score float64) float64 {
	score = math.Min(MaxConfidenceScore, math.Max(MinConfidenceScore, score))
	return math.Round(score*100) / 100
}
