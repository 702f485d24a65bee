// Package config loads the CLI configuration.
//
// Precedence, highest first: flags set on the command line, LSYSTEM_*
// environment variables, the config file, built-in defaults.
package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// DefaultConfigFile is looked up in the working directory when no
	// --config is given.
	DefaultConfigFile = "lsystem.yaml"

	// DefaultMaxLength bounds the expanded string, in letters.
	DefaultMaxLength = 50_000_000

	// EnvPrefix prefixes environment overrides, e.g. LSYSTEM_MAX_LENGTH.
	EnvPrefix = "LSYSTEM_"
)

// Config holds every CLI option.
type Config struct {
	// Iterations overrides the preset's suggested count when >= 0.
	Iterations int    `koanf:"iterations"`
	MaxLength  int    `koanf:"max_length"`
	Strict     bool   `koanf:"strict"`
	Output     string `koanf:"output"`
	Workers    int    `koanf:"workers"`
	Verbose    bool   `koanf:"verbose"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Iterations: -1,
		MaxLength:  DefaultMaxLength,
		Output:     "auto",
		Workers:    runtime.NumCPU(),
	}
}

var outputs = []string{"auto", "json", "csv", "table", "text"}

// Outputs lists the accepted --output values.
func Outputs() []string {
	return append([]string(nil), outputs...)
}

// Load reads the configuration. cfgFile may be empty; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	d := Defaults()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"iterations": d.Iterations,
		"max_length": d.MaxLength,
		"strict":     d.Strict,
		"output":     d.Output,
		"workers":    d.Workers,
		"verbose":    d.Verbose,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", used)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxLength < 0 {
		return errors.Errorf("max_length must not be negative, got %d", c.MaxLength)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	for _, o := range outputs {
		if c.Output == o {
			return nil
		}
	}
	return errors.Errorf("unknown output %q, want one of %s", c.Output, strings.Join(outputs, ", "))
}

// Logger builds the CLI logger. Debug output is enabled by Verbose.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type configKey struct{}

type loggerKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored by WithConfig, or the defaults.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	d := Defaults()
	return &d
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from ctx.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
