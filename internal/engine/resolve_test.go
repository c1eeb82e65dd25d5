package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmissions(t *testing.T) {
	factors := []EmissionFactor{
		{Category: "fuel", Item: "diesel", Unit: "L", Value: 2.68, Scope: Scope1},
		{Category: "material", Item: "zero_rated", Unit: "kg", Value: 0, Scope: Scope3},
	}
	activities := []Activity{
		{ID: "a1", Category: "fuel", Item: "diesel", Unit: "L", Quantity: 100},
		{ID: "a2", Category: "material", Item: "zero_rated", Unit: "kg", Quantity: 50},
		{ID: "a3", Category: "material", Item: "unlisted", Unit: "kg", Quantity: 50},
	}

	items := ResolveEmissions(context.Background(), activities, factors)
	require.Len(t, items, 3)

	matched := items[0]
	assert.True(t, matched.EmissionsKg.Valid)
	assert.InDelta(t, 268.0, matched.EmissionsKg.Value, 1e-9)
	assert.InDelta(t, 0.268, matched.EmissionsT.Value, 1e-9)
	assert.Equal(t, Scope1, matched.Scope)

	// A genuinely zero-rated factor yields a *defined* zero...
	zeroRated := items[1]
	assert.True(t, zeroRated.EmissionsKg.Valid)
	assert.Zero(t, zeroRated.EmissionsKg.Value)
	assert.Equal(t, Scope3, zeroRated.Scope)

	// ...while a missing factor yields undefined emissions and empty scope.
	// The two must stay distinguishable downstream.
	unmatched := items[2]
	assert.False(t, unmatched.EmissionsKg.Valid)
	assert.False(t, unmatched.EmissionsT.Valid)
	assert.Empty(t, unmatched.Scope)
}

func TestResolveDuplicateKeyLastWriteWins(t *testing.T) {
	factors := []EmissionFactor{
		{Category: "fuel", Item: "diesel", Unit: "L", Value: 2.68, Scope: Scope1},
		{Category: "fuel", Item: "diesel", Unit: "L", Value: 3.17, Scope: Scope1, Notes: "biodiesel blend override"},
	}
	activities := []Activity{
		{ID: "a1", Category: "fuel", Item: "diesel", Unit: "L", Quantity: 10},
	}

	items := ResolveEmissions(context.Background(), activities, factors)
	require.Len(t, items, 1)
	assert.InDelta(t, 31.7, items[0].EmissionsKg.Value, 1e-9)
}

func TestResolveKeyMatchingIsExact(t *testing.T) {
	factors := []EmissionFactor{
		{Category: "fuel", Item: "diesel", Unit: "L", Value: 2.68, Scope: Scope1},
	}

	// Same category/item under a different unit must not match.
	items := ResolveEmissions(context.Background(), []Activity{
		{ID: "a1", Category: "fuel", Item: "diesel", Unit: "gal", Quantity: 10},
	}, factors)

	require.Len(t, items, 1)
	assert.False(t, items[0].EmissionsKg.Valid)
}
