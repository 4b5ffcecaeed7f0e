package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	ErrFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath          = errors.New("config path error")
)

// Load reads the configuration, layering defaults, an optional
// config.yaml from the given directories and TRACKER_-prefixed
// environment variables (highest precedence).
func Load(configFileDirs ...string) (*AppConfig, error) {
	appConfig := getDefaultAppConfig()

	err := setDefaults(appConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(configFileDirs...)
	if err != nil {
		return nil, err
	}

	viper.SetEnvPrefix("TRACKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.Unmarshal(appConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return appConfig, nil
}

func setDefaults(defaultConfig *AppConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		return errors.Join(ErrFailedToSetDefaults, err)
	}

	for key, value := range defaultsMap {
		viper.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, dir := range configFileDirs {
		stat, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("dir does not exist: %s", dir))
			}
			return errors.Join(ErrConfigPath, err)
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("not a directory: %s", dir))
		}

		configFile := path.Join(dir, "config.yaml")
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			continue
		}

		viper.SetConfigFile(configFile)
		if err := viper.MergeInConfig(); err != nil {
			return errors.Join(ErrConfigPath, err)
		}
	}

	return nil
}
