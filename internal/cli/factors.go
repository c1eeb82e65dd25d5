package cli

import (
	"github.com/spf13/cobra"

	"github.com/carbontally/carbontally/internal/config"
)

func newFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "List the effective emission-factor table",
		Long: "factors prints the emission-factor table the report command will " +
			"resolve against: the built-in defaults overlaid with any factors " +
			"from the config file, duplicate keys resolving last-write-wins.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderFactors(out, cfg.Snapshot.Factors, isWriterTerminal(out))
			return nil
		},
	}
}
