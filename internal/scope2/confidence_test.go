package scope2

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreFor(t *testing.T, in Inputs) Confidence {
	t.Helper()
	result := EstimateElectricity(context.Background(), in)
	return ScoreConfidence(in, result)
}

func TestScoreConfidenceBaseScores(t *testing.T) {
	tests := []struct {
		name      string
		in        Inputs
		wantScore float64
	}{
		{
			name:      "provided",
			in:        Inputs{Country: "Germany", AnnualKWh: 50_000, Auto: true},
			wantScore: BaseScoreProvided,
		},
		{
			name:      "revenue intensity",
			in:        Inputs{Country: "Germany", Revenue: 1_000_000, Auto: true},
			wantScore: BaseScoreRevenue,
		},
		{
			name:      "employee intensity",
			in:        Inputs{Country: "Germany", Employees: 20, Auto: true},
			wantScore: BaseScoreEmployee,
		},
		{
			name:      "area intensity",
			in:        Inputs{Country: "Germany", FloorspaceM2: 500, BuildingType: "office", Auto: true},
			wantScore: BaseScoreArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := scoreFor(t, tt.in)
			assert.InDelta(t, tt.wantScore, conf.Score, 1e-9)
			assert.Empty(t, conf.Flags)
		})
	}
}

func TestScoreConfidenceImplausibleEmployeeIntensity(t *testing.T) {
	t.Run("below minimum", func(t *testing.T) {
		in := Inputs{
			Country:   "Germany",
			Employees: 20,
			Overrides: Overrides{Enabled: true, KWhPerEmployee: 100},
			Auto:      true,
		}
		conf := scoreFor(t, in)
		assert.InDelta(t, 0.56, conf.Score, 1e-9) // 0.80 × 0.7
		require.Len(t, conf.Flags, 1)
		assert.Equal(t, FlagIntensityTooLow, conf.Flags[0])
	})

	t.Run("above maximum", func(t *testing.T) {
		in := Inputs{
			Country:   "Germany",
			Employees: 20,
			Overrides: Overrides{Enabled: true, KWhPerEmployee: 60_000},
			Auto:      true,
		}
		conf := scoreFor(t, in)
		assert.InDelta(t, 0.56, conf.Score, 1e-9)
		require.Len(t, conf.Flags, 1)
		assert.Equal(t, FlagIntensityTooHigh, conf.Flags[0])
	})

	t.Run("penalty only applies when employee method is selected", func(t *testing.T) {
		in := Inputs{
			Country:   "Germany",
			Employees: 20,
			Revenue:   1_000_000,
			Overrides: Overrides{Enabled: true, KWhPerEmployee: 100},
			Auto:      true,
		}
		conf := scoreFor(t, in)
		assert.InDelta(t, BaseScoreRevenue, conf.Score, 1e-9)
		assert.Empty(t, conf.Flags)
	})
}

func TestScoreConfidenceMissingRegion(t *testing.T) {
	t.Run("sub-national country without region", func(t *testing.T) {
		in := Inputs{Country: "Canada", Employees: 20, Auto: true}
		conf := scoreFor(t, in)
		assert.InDelta(t, 0.68, conf.Score, 1e-9) // 0.80 × 0.85
		require.Len(t, conf.Flags, 1)
		assert.Equal(t, FlagRegionNotChosen, conf.Flags[0])
	})

	t.Run("region chosen clears the penalty", func(t *testing.T) {
		in := Inputs{Country: "Canada", Region: "Quebec", Employees: 20, Auto: true}
		conf := scoreFor(t, in)
		assert.InDelta(t, BaseScoreEmployee, conf.Score, 1e-9)
		assert.Empty(t, conf.Flags)
	})

	t.Run("no penalty for countries without sub-national factors", func(t *testing.T) {
		in := Inputs{Country: "Germany", Employees: 20, Auto: true}
		conf := scoreFor(t, in)
		assert.InDelta(t, BaseScoreEmployee, conf.Score, 1e-9)
	})
}

func TestScoreConfidencePenaltiesStack(t *testing.T) {
	in := Inputs{
		Country:   "Canada",
		Employees: 20,
		Overrides: Overrides{Enabled: true, KWhPerEmployee: 100},
		Auto:      true,
	}

	conf := scoreFor(t, in)

	// 0.80 × 0.7 × 0.85 = 0.476 → 0.48; both flags survive, in order.
	assert.InDelta(t, 0.48, conf.Score, 1e-9)
	require.Len(t, conf.Flags, 2)
	assert.Equal(t, FlagIntensityTooLow, conf.Flags[0])
	assert.Equal(t, FlagRegionNotChosen, conf.Flags[1])
}

func TestScoreConfidenceNoEstimate(t *testing.T) {
	in := Inputs{Country: "Germany", Auto: true}
	conf := scoreFor(t, in)

	assert.InDelta(t, MinConfidenceScore, conf.Score, 1e-9)
	require.Len(t, conf.Flags, 1)
	assert.Equal(t, FlagNoEstimate, conf.Flags[0])
}

func TestScoreConfidenceAlwaysBounded(t *testing.T) {
	inputs := []Inputs{
		{},
		{Country: "Atlantis", Auto: true},
		{Country: "Canada", Employees: 1, Overrides: Overrides{Enabled: true, KWhPerEmployee: 1}, Auto: true},
		{Country: "Australia", Employees: math.MaxFloat64, Revenue: math.Inf(1), Auto: true},
		{Country: "Germany", AnnualKWh: 1e18, Auto: true},
	}

	for _, in := range inputs {
		conf := scoreFor(t, in)
		assert.GreaterOrEqual(t, conf.Score, MinConfidenceScore)
		assert.LessOrEqual(t, conf.Score, MaxConfidenceScore)
	}
}
