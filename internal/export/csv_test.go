package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbontally/carbontally/internal/engine"
)

func TestWriteLineItemsCSV(t *testing.T) {
	items := []engine.LineItem{
		{
			Activity: engine.Activity{
				ID: "core-fuel", Category: "fuel", Item: "diesel",
				Quantity: 123.4, Unit: "L", Entity: "org", Period: "2025",
			},
			FactorValue: 2.68,
			Scope:       engine.Scope1,
			EmissionsKg: engine.Emissions{Value: 330.712, Valid: true},
			EmissionsT:  engine.Emissions{Value: 0.330712, Valid: true},
		},
		{
			Activity: engine.Activity{
				ID: "mat-1", Category: "material", Item: "unlisted",
				Quantity: 9, Unit: "kg", Entity: "org", Period: "2025",
			},
			// unresolved: no factor, no scope, no emissions
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLineItemsCSV(&buf, items))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, LineItemHeader, records[0])

	resolved := records[1]
	assert.Equal(t, "core-fuel", resolved[0])
	assert.Equal(t, "2.68", resolved[8])
	assert.Equal(t, "S1", resolved[9])
	assert.Equal(t, "0.330712", resolved[10])

	// Undefined numerics are empty fields, never "NaN".
	unresolved := records[2]
	assert.Equal(t, "mat-1", unresolved[0])
	assert.Empty(t, unresolved[8])
	assert.Empty(t, unresolved[9])
	assert.Empty(t, unresolved[10])
	assert.NotContains(t, buf.String(), "NaN")
}

func TestWriteLineItemsCSVEscapesDelimiters(t *testing.T) {
	items := []engine.LineItem{
		{
			Activity: engine.Activity{
				ID: "mat-1", Category: "material", Item: `pipe, 12mm "heavy"`,
				Quantity: 1, Unit: "m", Entity: "org, inc.", Period: "2025",
				Notes: "line1\nline2",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLineItemsCSV(&buf, items))

	// The embedded comma, quote and newline must round-trip through a
	// conforming reader.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `pipe, 12mm "heavy"`, records[1][2])
	assert.Equal(t, "org, inc.", records[1][5])
	assert.Equal(t, "line1\nline2", records[1][7])
}

func TestWriteLineItemsCSVEndToEnd(t *testing.T) {
	result := engine.Run(context.Background(), engine.DefaultSnapshot())

	var buf bytes.Buffer
	require.NoError(t, WriteLineItemsCSV(&buf, result.LineItems))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(result.LineItems)+1)
}
