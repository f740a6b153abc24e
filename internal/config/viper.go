// Viper-based hierarchical configuration for the CLI: defaults, an
// optional config file, then CPA005_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Generate struct {
		// Profile is the default destination-bank layout profile.
		Profile string `mapstructure:"profile" yaml:"profile"`
		// OriginatorFile is the default originator profile YAML path.
		OriginatorFile string `mapstructure:"originator_file" yaml:"originator_file"`
	} `mapstructure:"generate" yaml:"generate"`
}

// InitializeConfig loads the application configuration. The config file
// is optional; defaults and environment variables always apply.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("generate.profile", "standard")
	v.SetDefault("generate.originator_file", "originator.yaml")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cpa005")
	v.AddConfigPath(".cpa005")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CPA005")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
