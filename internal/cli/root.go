// Package cli wires the carbontally commands: report (activity pipeline),
// electricity (Scope-2 estimator) and factors (emission-factor table).
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carbontally/carbontally/internal/config"
	"github.com/carbontally/carbontally/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root cobra command for the carbontally CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carbontally",
		Short: "Organizational greenhouse-gas estimation from operational proxies",
		Long: "carbontally estimates an organization's greenhouse-gas emissions from " +
			"operational proxies (job volumes, energy use, travel, materials) and " +
			"estimates Scope-2 electricity via several independent methods with a " +
			"confidence score.",
		Version: ver,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringP("config", "c", "", "path to a YAML snapshot/config file")

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newElectricityCmd())
	cmd.AddCommand(newFactorsCmd())

	return cmd
}

// setupLogging configures the context logger from the config file and flags.
// The --debug flag wins over the configured level. Config-load failures are
// ignored here on purpose: the command itself reports them with context.
func setupLogging(cmd *cobra.Command) {
	cfgPath, _ := cmd.Flags().GetString("config")
	level := "info"
	format := "console"

	if cfg, err := config.Load(cfgPath); err == nil {
		if cfg.Logging.Level != "" {
			level = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			format = cfg.Logging.Format
		}
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
		format = "console"
	}

	base := logging.NewLogger(logging.Config{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
	logger = logging.ComponentLogger(base, "cli")
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
}
