package commands

import (
	"github.com/mainakk/lsystem/catalog"
	"github.com/mainakk/lsystem/internal/cli/config"
	"github.com/mainakk/lsystem/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the presets in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			return output.Presets(cmd.OutOrStdout(), output.Mode(cfg.Output), catalog.All())
		},
	}
}
