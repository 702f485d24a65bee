// Package cli provides the command-line interface for lsystem.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mainakk/lsystem/catalog"
	"github.com/mainakk/lsystem/internal/cli/commands"
	"github.com/mainakk/lsystem/internal/cli/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lsystem",
		Short: "Expand and trace Lindenmayer systems",
		Long: `lsystem rewrites Lindenmayer-system grammars and walks the result with a
turtle, producing the line segments of fractal curves and plants in 2D or 3D.

Presets come from the built-in catalog (see "lsystem list") or from LSIF files.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := cfg.Logger(cmd.ErrOrStderr())
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	d := config.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	flags.IntP("iterations", "n", d.Iterations, "rewriting rounds (negative: the preset's own count)")
	flags.Int("max-length", d.MaxLength, "refuse expansions longer than this many letters (0: no limit)")
	flags.Bool("strict", d.Strict, "fail on variables without a rule instead of copying them")
	flags.StringP("output", "o", d.Output, "output format ("+strings.Join(config.Outputs(), "|")+")")
	flags.Int("workers", d.Workers, "concurrent documents in the stream command")
	flags.BoolP("verbose", "v", d.Verbose, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Outputs(), cobra.ShellCompDirectiveNoFileComp
	})

	presetCompletion := func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
	}

	expand := commands.NewExpandCommand()
	expand.ValidArgsFunction = presetCompletion
	trace := commands.NewTraceCommand()
	trace.ValidArgsFunction = presetCompletion

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(expand)
	rootCmd.AddCommand(trace)
	rootCmd.AddCommand(commands.NewStreamCommand())
	rootCmd.AddCommand(commands.NewExportCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
