// Config loading for the jobdeck CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jobdeck/jobdeck/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyPort          = "port"
	cfgKeyAPIKey        = "api_key"
	cfgKeyRedisAddr     = "redis.addr"
	cfgKeyRedisPassword = "redis.password"
	cfgKeyRedisDB       = "redis.db"
	cfgKeyRedisKey      = "redis.key"

	defaultBackend = types.BackendFile
	defaultPort    = "8080"
)

// loadedConfig is the viper instance read by PersistentPreRunE, shared by
// all subcommands.
var loadedConfig *viper.Viper

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Jobdeck configuration

# Backend selection: file, redis, or sqlite
backend: file

# Data directory for the file and sqlite backends
# (optional; overridable by --data-dir flag)
# data_dir:

# HTTP server settings for "jobdeck serve"
port: "8080"
# api_key:

# Remote blob store settings for the redis backend
# redis:
#   addr: localhost:6379
#   password: ""
#   db: 0
#   key: jobdeck:applications
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyPort, defaultPort)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// backendConfig builds the typed backend config from the loaded viper
// instance and the resolved data directory.
func backendConfig() (types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: loadedConfig.GetString(cfgKeyBackend),
		DataDir: dataDir,
		Redis: types.RedisConfig{
			Addr:     loadedConfig.GetString(cfgKeyRedisAddr),
			Password: loadedConfig.GetString(cfgKeyRedisPassword),
			DB:       loadedConfig.GetInt(cfgKeyRedisDB),
			Key:      loadedConfig.GetString(cfgKeyRedisKey),
		},
	}
	return cfg, cfg.Validate()
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
