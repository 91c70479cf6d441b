// Package config loads settings for the clockdiagram command.
// Values come from defaults, an optional YAML file, CLOCKDIAGRAM_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iafilius/ClockDiagram/src/logging"
	"github.com/iafilius/ClockDiagram/src/plot"
)

// Config is the complete command configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig controls where and how a diagram is written.
type OutputConfig struct {
	Format  string `mapstructure:"format"  yaml:"format"`  // "svg" or "png"
	Path    string `mapstructure:"path"    yaml:"path"`    // "-" for stdout
	Creator string `mapstructure:"creator" yaml:"creator"` // recorded in SVG metadata
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"format":    "output.format",
	"output":    "output.path",
	"creator":   "output.creator",
	"log-level": "logging.level",
}

// Load reads configuration from the first config.yaml found in ./config or
// ~/.clockdiagram, then the environment, then flags (which may be nil).
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".clockdiagram"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return finish(v, flags)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return finish(v, flags)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("CLOCKDIAGRAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", string(plot.FormatSVG))
	v.SetDefault("output.path", "-")
	v.SetDefault("output.creator", plot.DefaultCreator)
	v.SetDefault("logging.level", "info")
}

func finish(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := plot.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

// OutputFormat returns the parsed output format. svg (the default) defers to a known
// extension of the output path, so "-o GLY.png" is enough to get a PNG.
func (c *Config) OutputFormat() plot.Format {
	f, _ := plot.ParseFormat(c.Output.Format)
	if f != plot.FormatSVG || c.Output.Path == "-" {
		return f
	}
	if ext := filepath.Ext(c.Output.Path); ext != "" {
		if g, err := plot.ParseFormat(ext); err == nil {
			return g
		}
	}
	return f
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
