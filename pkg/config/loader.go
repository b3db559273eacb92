package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".depusage"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for depusage settings.
const envPrefix = "DEPUSAGE"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// FlagBindings maps config keys to the command-line flags that override them.
type FlagBindings map[string]*pflag.Flag

// LoadConfig loads configuration from file, env vars, flags, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string, flags FlagBindings) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	for key, flag := range flags {
		if flag == nil {
			continue
		}

		bindErr := viperCfg.BindPFlag(key, flag)
		if bindErr != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag.Name, bindErr)
		}
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("project.root", DefaultProjectRoot)
	viperCfg.SetDefault("project.source_dir", DefaultSourceDir)

	viperCfg.SetDefault("scan.extension", DefaultExtension)
	viperCfg.SetDefault("scan.skip_vendor", false)
	viperCfg.SetDefault("scan.table", "")

	viperCfg.SetDefault("output.format", DefaultFormat)
	viperCfg.SetDefault("output.no_color", false)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", false)
}
