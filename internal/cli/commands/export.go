package commands

import (
	"github.com/mainakk/lsystem"
	"github.com/mainakk/lsystem/catalog"
	"github.com/mainakk/lsystem/interchange/lsif"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [preset...]",
		Short: "Write catalog presets as an LSIF stream",
		Long: `Write catalog presets as LSIF documents, all of them when no name is given.
The output can be edited and fed back with --file or to the stream command.`,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := catalog.All()
			if len(args) > 0 {
				presets = make([]lsystem.Preset, 0, len(args))
				for _, name := range args {
					p, err := catalog.Get(name)
					if err != nil {
						return err
					}
					presets = append(presets, p)
				}
			}

			enc := lsif.NewEncoder(cmd.OutOrStdout())
			for _, p := range presets {
				if err := enc.Encode(lsif.FromPreset(p)); err != nil {
					return err
				}
			}
			return enc.Close()
		},
	}
}
