// Package config loads the docstream CLI configuration from the standard
// locations and environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	log "github.com/primestack/docstream/pkg/logger"
	"github.com/primestack/docstream/pkg/schema"
)

const (
	// CliConfigFileName is the base name of the config file, without extension.
	CliConfigFileName = "docstream"

	// SystemDirConfigFilePath is the system-wide config location on Unix.
	SystemDirConfigFilePath = "/usr/local/etc/docstream"

	// WindowsAppDataEnvVar locates the system config dir on Windows.
	WindowsAppDataEnvVar = "LOCALAPPDATA"

	// EnvConfigPathVar overrides the config search path.
	EnvConfigPathVar = "DOCSTREAM_CLI_CONFIG_PATH"

	envPrefix = "DOCSTREAM"
)

// LoadConfig reads configuration from the following locations, lower to
// higher priority:
// system dir (`/usr/local/etc/docstream` on Unix, `%LOCALAPPDATA%/docstream` on Windows),
// home dir (~/.docstream),
// current directory,
// the directory named by DOCSTREAM_CLI_CONFIG_PATH,
// explicit config files passed by the caller (e.g. from a --config flag),
// ENV vars (DOCSTREAM_*).
func LoadConfig(explicitPaths ...string) (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	if err := readSystemConfig(v); err != nil {
		return cfg, err
	}
	if err := readHomeConfig(v); err != nil {
		return cfg, err
	}
	if err := readWorkDirConfig(v); err != nil {
		return cfg, err
	}
	if err := readEnvConfigPath(v); err != nil {
		return cfg, err
	}
	if err := readExplicitConfigs(v, explicitPaths); err != nil {
		return cfg, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() == "" {
		log.Debug("'docstream.yaml' config not found", "paths", "system dir, home dir, current dir, ENV vars")
	} else {
		log.Debug("Loaded config", "file", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setDefaultConfiguration sets defaults for the viper instance.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", "/dev/stderr")
	v.SetDefault("logs.level", "Info")
	v.SetDefault("fetch.command", "")
	v.SetDefault("fetch.timeout_seconds", 0)
}

// readSystemConfig loads config from the system dir.
func readSystemConfig(v *viper.Viper) error {
	configFilePath := ""
	if runtime.GOOS == "windows" {
		appDataDir := os.Getenv(WindowsAppDataEnvVar)
		if len(appDataDir) > 0 {
			configFilePath = appDataDir
		}
	} else {
		configFilePath = SystemDirConfigFilePath
	}

	if len(configFilePath) > 0 {
		err := mergeConfig(v, configFilePath, CliConfigFileName)
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readHomeConfig loads config from the user's HOME dir.
func readHomeConfig(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	configFilePath := filepath.Join(home, ".docstream")
	err = mergeConfig(v, configFilePath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readWorkDirConfig loads config from the current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	err = mergeConfig(v, wd, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil
		default:
			return err
		}
	}
	return nil
}

// readEnvConfigPath loads config from the directory named by
// DOCSTREAM_CLI_CONFIG_PATH.
func readEnvConfigPath(v *viper.Viper) error {
	configPath := os.Getenv(EnvConfigPathVar)
	if configPath == "" {
		return nil
	}
	err := mergeConfig(v, configPath, CliConfigFileName)
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			log.Debug("config not found via ENV var", "var", EnvConfigPathVar, "path", configPath)
			return nil
		default:
			return err
		}
	}
	log.Debug("Found config via ENV", "var", EnvConfigPathVar, "path", configPath)
	return nil
}

// readExplicitConfigs merges config files the caller named directly. Unlike
// the search locations, a named file must exist.
func readExplicitConfigs(v *viper.Viper, paths []string) error {
	for _, path := range paths {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return err
		}
		log.Debug("Loaded config", "file", path)
	}
	return nil
}

// mergeConfig merges config from a specified path and file name.
func mergeConfig(v *viper.Viper, path string, fileName string) error {
	v.AddConfigPath(path)
	v.SetConfigName(fileName)
	return v.MergeInConfig()
}
