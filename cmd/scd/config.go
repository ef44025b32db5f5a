// Config loading for the scd CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = ".scd"
	configFileType = "yaml"

	// Config keys.
	cfgKeyStateFile = "state_file"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	// Defaults.
	defaultStateFile = "scd_state.json"
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// loadConfig reads the CLI configuration using Viper. When path is empty the
// search order is .scd.yaml in the working directory, then config.yaml in
// ~/.scd/. A missing config file is not an error; defaults apply.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyStateFile, defaultStateFile)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetEnvPrefix("SCD")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".scd"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config file is fine; run on defaults.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
