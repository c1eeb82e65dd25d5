package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/carbontally/carbontally/internal/engine"
	"github.com/carbontally/carbontally/internal/scope2"
)

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Styles for terminal output.
//
//nolint:gochecknoglobals // Lip Gloss styles are package-level by convention.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// styleText applies style only in styled mode so plain output stays free of
// escape sequences.
func styleText(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

// renderReport prints the expansion, line items and scope totals.
func renderReport(w io.Writer, result engine.Result, styled bool) {
	fmt.Fprintln(w, styleText(styled, sectionStyle, "JOB MIX"))
	for _, job := range result.Expansion.Jobs {
		printer.Fprintf(w, "  %-12s %6d jobs  %10.1f km\n", job.JobType, job.JobCount, job.TotalKm)
	}
	printer.Fprintf(w, "  total driving %.1f km, fuel %.1f L\n\n", result.Expansion.TotalKm, result.Expansion.TotalFuelL)

	fmt.Fprintln(w, styleText(styled, sectionStyle, "LINE ITEMS"))
	header := fmt.Sprintf("  %-18s %-12s %-15s %12s %-4s %-3s %12s",
		"id", "category", "item", "quantity", "unit", "scope", "tCO2e")
	fmt.Fprintln(w, styleText(styled, headerStyle, header))

	for _, item := range result.LineItems {
		var emissions string
		scope := item.Scope
		if item.EmissionsT.Valid {
			emissions = printer.Sprintf("%.3f", item.EmissionsT.Value)
		} else {
			scope = "-"
			emissions = styleText(styled, dimStyle, "no factor")
		}
		printer.Fprintf(w, "  %-18s %-12s %-15s %12.2f %-4s %-3s %12s\n",
			item.ID, item.Category, item.Item, item.Quantity, item.Unit, scope, emissions)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleText(styled, sectionStyle, "TOTALS"))
	for _, sub := range result.Summary.Ordered() {
		label := sub.Scope
		if label == "" {
			label = "unscoped"
		}
		printer.Fprintf(w, "  %-10s %10.3f tCO2e\n", label, sub.Tonnes)
	}
	printer.Fprintf(w, "  %-10s %10.3f tCO2e\n", "total", result.Summary.TotalT)
}

// renderElectricity prints the Scope-2 estimate, scenario comparison and
// confidence assessment.
func renderElectricity(w io.Writer, in scope2.Inputs, result scope2.Result, conf scope2.Confidence, styled bool) {
	fmt.Fprintln(w, styleText(styled, sectionStyle, "SCOPE-2 ELECTRICITY"))
	printer.Fprintf(w, "  grid factor: %.4f kg CO2e/kWh (%s)\n\n", result.Grid.KgPerKWh, result.Grid.Source)

	if len(result.Estimates) == 0 {
		fmt.Fprintln(w, "  no estimation method available for the given inputs")
	}

	for _, sc := range result.Scenarios {
		marker := " "
		if result.Selected != nil && result.Selected.Method == sc.Method {
			marker = styleText(styled, headerStyle, "*")
		}
		printer.Fprintf(w, "  %s %-18s %12.0f kWh %12.0f kg CO2e\n",
			marker, sc.Method.String(), sc.KWh, sc.EmissionsKg)
	}

	if result.Selected != nil {
		mode := "auto"
		if !in.Auto {
			mode = "locked"
		}
		printer.Fprintf(w, "\n  selected (%s): %s — %s\n", mode, result.Selected.Method, result.Selected.Label)
		printer.Fprintf(w, "  emissions: %.0f kg CO2e (%.3f t)\n",
			result.EmissionsKg.Value, result.EmissionsKg.Value/engine.KgPerTonne)
	}

	printer.Fprintf(w, "\n  confidence: %.2f\n", conf.Score)
	for _, flag := range conf.Flags {
		fmt.Fprintf(w, "    - %s\n", styleText(styled, dimStyle, flag))
	}
}

// renderFactors prints the effective emission-factor table.
func renderFactors(w io.Writer, factors []engine.EmissionFactor, styled bool) {
	header := fmt.Sprintf("%-12s %-15s %-5s %12s %-5s %s",
		"category", "item", "unit", "kg/unit", "scope", "notes")
	fmt.Fprintln(w, styleText(styled, headerStyle, header))

	for _, f := range factors {
		printer.Fprintf(w, "%-12s %-15s %-5s %12.4f %-5s %s\n",
			f.Category, f.Item, f.Unit, f.Value, f.Scope, f.Notes)
	}
}
