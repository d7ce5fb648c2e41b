package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfigFile names an explicit config file that takes precedence over
// the search paths passed to Load.
const EnvConfigFile = "CONFIG_FILE"

// Load reads configuration from a YAML file and environment variables.
// configPath is the directory searched for configName.yaml; a missing file
// is not an error so services can run from env vars alone. An explicit file
// set through CONFIG_FILE must exist.
func Load(configPath, configName string) (*viper.Viper, error) {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if file := os.Getenv(EnvConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return v, nil
}
