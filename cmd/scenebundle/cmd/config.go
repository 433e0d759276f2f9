package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
//
// Settings are resolved from flags, then SCENEBUNDLE_* environment
// variables, then the config file.
type CLIConfig struct {
	Output      string `mapstructure:"output" json:"output" yaml:"output"`                // Bundle directory
	Placeholder string `mapstructure:"placeholder" json:"placeholder" yaml:"placeholder"` // Token for the bundle root in references
	Manifest    bool   `mapstructure:"manifest" json:"manifest" yaml:"manifest"`          // Write manifest.yaml
	LogLevel    string `mapstructure:"log-level" json:"log-level" yaml:"log-level"`       // Logging level
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}
