package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/carbontally/carbontally/internal/config"
	"github.com/carbontally/carbontally/internal/engine"
	"github.com/carbontally/carbontally/internal/export"
	"github.com/carbontally/carbontally/pkg/version"
)

// Output format tokens for the report command.
const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the activity pipeline and print the emissions report",
		Long: "report expands the configured job mix into physical activities, " +
			"resolves them against the emission-factor table and prints the " +
			"merged line items with per-scope totals.",
		RunE: runReport,
	}

	cmd.Flags().StringP("format", "f", formatTable, "output format: table, csv or json")
	cmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != formatTable && format != formatCSV && format != formatJSON {
		return fmt.Errorf("unknown format %q (want table, csv or json)", format)
	}

	runID := ulid.Make().String()
	logger.Info().
		Ctx(ctx).
		Str("run_id", runID).
		Str("period", cfg.Snapshot.Parameters.Year).
		Msg("running emissions report")

	result := engine.Run(ctx, cfg.Snapshot)

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format {
	case formatCSV:
		return export.WriteLineItemsCSV(out, result.LineItems)
	case formatJSON:
		return export.WriteJSON(out, export.Report{
			RunID:   runID,
			Version: version.GetVersion(),
			Result:  result,
		})
	default:
		renderReport(out, result, isWriterTerminal(out))
		return nil
	}
}

// openOutput resolves the --output flag to a writer. An empty flag means
// stdout; the returned cleanup is a no-op in that case.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	return f, func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("path", path).Msg("closing output file")
		}
	}, nil
}

// isWriterTerminal reports whether w is an interactive terminal, which
// switches the table renderer between styled and plain output.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
