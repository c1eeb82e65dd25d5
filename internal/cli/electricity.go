package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbontally/carbontally/internal/config"
	"github.com/carbontally/carbontally/internal/export"
	"github.com/carbontally/carbontally/internal/scope2"
)

func newElectricityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "electricity",
		Short: "Estimate Scope-2 electricity via multiple methods",
		Long: "electricity estimates annual electricity consumption from up to four " +
			"independent proxies (metered kWh, revenue, headcount, floor area), " +
			"selects the best available method, converts it to emissions with the " +
			"resolved grid factor, and scores the result's confidence.",
		RunE: runElectricity,
	}

	cmd.Flags().String("country", "", "country for grid factor and intensity defaults")
	cmd.Flags().String("region", "", "sub-national region where the country supports one")
	cmd.Flags().Float64("employees", 0, "FTE headcount")
	cmd.Flags().Float64("revenue", 0, "annual revenue or value added (local currency)")
	cmd.Flags().Float64("floorspace", 0, "floor area in m²")
	cmd.Flags().String("building", "", "building type (office, retail, warehouse, ...)")
	cmd.Flags().Float64("kwh", 0, "directly known annual kWh")
	cmd.Flags().String("lock", "", "lock the method: provided, revenue, employee or area")
	cmd.Flags().Bool("json", false, "emit the estimate as JSON")

	return cmd
}

func runElectricity(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	in, err := cfg.Scope2.Scope2Inputs()
	if err != nil {
		return err
	}
	if err := applyElectricityFlags(cmd, &in); err != nil {
		return err
	}

	result := scope2.EstimateElectricity(ctx, in)
	confidence := scope2.ScoreConfidence(in, result)

	logger.Info().
		Ctx(ctx).
		Str("grid_source", result.Grid.Source).
		Bool("estimate_available", result.Selected != nil).
		Float64("confidence", confidence.Score).
		Msg("scope-2 electricity estimated")

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return export.WriteJSON(out, export.Report{
			Scope2: &export.Scope2Report{Result: result, Confidence: confidence},
		})
	}

	renderElectricity(out, in, result, confidence, isWriterTerminal(out))
	return nil
}

// applyElectricityFlags overlays explicitly set flags on the configured
// inputs. Only changed flags are applied, so config values survive.
func applyElectricityFlags(cmd *cobra.Command, in *scope2.Inputs) error {
	flags := cmd.Flags()

	if flags.Changed("country") {
		in.Country, _ = flags.GetString("country")
	}
	if flags.Changed("region") {
		in.Region, _ = flags.GetString("region")
	}
	if flags.Changed("employees") {
		in.Employees, _ = flags.GetFloat64("employees")
	}
	if flags.Changed("revenue") {
		in.Revenue, _ = flags.GetFloat64("revenue")
	}
	if flags.Changed("floorspace") {
		in.FloorspaceM2, _ = flags.GetFloat64("floorspace")
	}
	if flags.Changed("building") {
		in.BuildingType, _ = flags.GetString("building")
	}
	if flags.Changed("kwh") {
		in.AnnualKWh, _ = flags.GetFloat64("kwh")
	}
	if flags.Changed("lock") {
		token, _ := flags.GetString("lock")
		method, ok := scope2.ParseMethod(token)
		if !ok {
			return fmt.Errorf("unknown method %q for --lock (want provided, revenue, employee or area)", token)
		}
		in.Auto = false
		in.LockedMethod = method
	}

	return nil
}
