// Package commands implements the lsystem subcommands.
package commands

import (
	"os"

	"github.com/mainakk/lsystem"
	"github.com/mainakk/lsystem/catalog"
	"github.com/mainakk/lsystem/interchange/lsif"
	"github.com/mainakk/lsystem/internal/cli/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// sourceFlags selects where a command reads its preset from.
type sourceFlags struct {
	file string
	name string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "read the preset from an LSIF file instead of the catalog")
	cmd.Flags().StringVar(&s.name, "name", "", "document to use when the file holds several (default: the first)")
}

// resolve returns the preset named by args[0] in the catalog, or the
// selected document of --file.
func (s *sourceFlags) resolve(args []string) (lsystem.Preset, error) {
	if s.file == "" {
		if len(args) != 1 {
			return lsystem.Preset{}, errors.New("expected a preset name or --file")
		}
		return catalog.Get(args[0])
	}
	if len(args) != 0 {
		return lsystem.Preset{}, errors.New("a preset name cannot be combined with --file")
	}

	f, err := os.Open(s.file)
	if err != nil {
		return lsystem.Preset{}, errors.Wrap(err, "failed to open preset file")
	}
	defer f.Close()

	formats, err := lsif.NewDecoder(f).DecodeAll()
	if err != nil {
		return lsystem.Preset{}, errors.Wrapf(err, "failed to decode %s", s.file)
	}
	for _, format := range formats {
		if s.name == "" || format.Name == s.name {
			return format.Import()
		}
	}
	if s.name != "" {
		return lsystem.Preset{}, errors.Wrapf(catalog.ErrUnknownPreset, "%q in %s", s.name, s.file)
	}
	return lsystem.Preset{}, errors.Errorf("%s holds no documents", s.file)
}

// iterations picks the configured count, falling back to the preset's.
func iterations(cfg *config.Config, p lsystem.Preset) int {
	if cfg.Iterations >= 0 {
		return cfg.Iterations
	}
	return p.Iterations
}

func expandOptions(cfg *config.Config) []lsystem.ExpandOption {
	opts := []lsystem.ExpandOption{lsystem.WithMaxLength(cfg.MaxLength)}
	if cfg.Strict {
		opts = append(opts, lsystem.WithStrict())
	}
	return opts
}
