package commands

import (
	"github.com/mainakk/lsystem"
	"github.com/mainakk/lsystem/internal/cli/config"
	"github.com/mainakk/lsystem/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "trace [preset]",
		Short: "Print the line segments drawn by a preset",
		Long: `Expand a preset and walk the result with a turtle. Segments are written
in order; 2D presets produce (x, y) pairs and 3D presets (x, y, z) pairs.`,
		Example: `  lsystem trace dragon-curve -n 8 -o csv > dragon.csv
  lsystem trace hilbert-3d -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.GetLogger(ctx)

			p, err := src.resolve(args)
			if err != nil {
				return err
			}
			n := iterations(cfg, p)

			segments, err := p.Segments(n, expandOptions(cfg)...)
			if err != nil {
				return err
			}

			lo, hi := lsystem.Bounds(segments)
			logger.Debug("traced", "preset", p.Name, "mode", p.Geometry.Mode, "iterations", n,
				"segments", len(segments), "min", lo, "max", hi)

			return output.Segments(cmd.OutOrStdout(), output.Mode(cfg.Output), segments)
		},
	}
	src.register(cmd)
	return cmd
}
