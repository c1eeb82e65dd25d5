// Package export serializes calculation results. Undefined numeric values
// render as empty fields, never as a "NaN" token; delimiter and quote
// escaping is delegated to encoding/csv.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/carbontally/carbontally/internal/engine"
)

// LineItemHeader is the ordered CSV field list for merged line items.
//
//nolint:gochecknoglobals // Fixed output contract.
var LineItemHeader = []string{
	"id",
	"category",
	"item",
	"quantity",
	"unit",
	"entity",
	"period",
	"notes",
	"factor_kg_per_unit",
	"scope",
	"emissions_t",
}

// WriteLineItemsCSV writes the merged line items of a result in the fixed
// field order. Unresolved emissions leave the factor, scope and emissions
// fields empty on that row.
func WriteLineItemsCSV(w io.Writer, items []engine.LineItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(LineItemHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, item := range items {
		record := []string{
			item.ID,
			item.Category,
			item.Item,
			formatFloat(item.Quantity),
			item.Unit,
			item.Entity,
			item.Period,
			item.Notes,
			"",
			item.Scope,
			"",
		}
		if item.EmissionsT.Valid {
			record[8] = formatFloat(item.FactorValue)
			record[10] = formatFloat(item.EmissionsT.Value)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", item.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// formatFloat renders a float compactly without trailing zeros. Non-finite
// values (which the engine coerces away, but the contract forbids leaking
// regardless) render as an empty field.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if s == "NaN" || s == "+Inf" || s == "-Inf" {
		return ""
	}
	return s
}
