package commands

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/mainakk/lsystem/internal/cli/config"
	"github.com/mainakk/lsystem/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewExpandCommand creates the expand command.
func NewExpandCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "expand [preset]",
		Short: "Print the rewritten string of a preset",
		Example: `  lsystem expand koch-curve -n 2
  lsystem expand -f plants.lsif.yml --name plant-a`,
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

			s, err := p.Expand(n, expandOptions(cfg)...)
			if err != nil {
				return err
			}
			logger.Debug("expanded", "preset", p.Name, "iterations", n, "letters", utf8.RuneCountInString(s))

			w := cmd.OutOrStdout()
			if output.Mode(cfg.Output) == output.ModeJSON {
				return json.NewEncoder(w).Encode(struct {
					Name       string `json:"name"`
					Iterations int    `json:"iterations"`
					Symbols    string `json:"symbols"`
				}{p.Name, n, s})
			}
			_, err = fmt.Fprintln(w, s)
			return err
		},
	}
	src.register(cmd)
	return cmd
}
