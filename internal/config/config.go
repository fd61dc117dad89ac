// Package config loads scanner settings from defaults, an optional config
// file and FXSCANNER_* environment variables.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by New.
const EnvPrefix = "FXSCANNER"

// Config is the complete scanner configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls diagnostics output.
type LogConfig struct {
	// Verbosity follows the -v flag count.
	Verbosity int `mapstructure:"verbosity"`
	// JSON switches to structured JSON logs.
	JSON bool `mapstructure:"json"`
}

// OutputConfig controls how the header is written.
type OutputConfig struct {
	// Atomic writes through a temporary file and a rename.
	Atomic bool `mapstructure:"atomic"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.verbosity", 0)
	v.SetDefault("log.json", false)
	v.SetDefault("output.atomic", true)
}

// New returns a viper instance with defaults and environment binding set
// up. configPath, when non-empty, names a TOML, YAML or JSON file to read;
// its format follows the file extension.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
		}
	}

	return v, nil
}

// LoadWithViper decodes the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}
