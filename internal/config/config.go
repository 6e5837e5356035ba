// Package config loads td settings from ~/.thinkday/config.toml and
// THINKDAY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DataDirName    = ".thinkday"
	configFileName = "config"
	configFileType = "toml"
	envPrefix      = "THINKDAY"

	BackendFile   = "file"
	BackendSQLite = "sqlite"

	FormatConsole = "console"
	FormatJSON    = "json"

	DefaultSlot = "thinkDaySanctuaryState"

	storageBackendKey = "storage.backend"
	storageDirKey     = "storage.dir"
	storageSlotKey    = "storage.slot"
	contentPathKey    = "content.path"
	logLevelKey       = "log.level"
	logFormatKey      = "log.format"
)

type Config struct {
	Storage StorageConfig
	Content ContentConfig
	Log     LogConfig
}

type StorageConfig struct {
	Backend string
	Dir     string
	Slot    string
}

type ContentConfig struct {
	// Path is empty when the built-in categories and prompts are used.
	Path string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads the config file under home, applying environment overrides and
// defaults. A missing file is not an error.
func Load(home string) (Config, error) {
	if home == "" {
		return Config{}, errors.New("home directory is empty")
	}
	dataDir := filepath.Join(home, DataDirName)

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dataDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(storageBackendKey, BackendFile)
	v.SetDefault(storageDirKey, dataDir)
	v.SetDefault(storageSlotKey, DefaultSlot)
	v.SetDefault(contentPathKey, "")
	v.SetDefault(logLevelKey, "warn")
	v.SetDefault(logFormatKey, FormatConsole)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Storage: StorageConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(storageBackendKey))),
			Dir:     expandHome(v.GetString(storageDirKey), home),
			Slot:    strings.TrimSpace(v.GetString(storageSlotKey)),
		},
		Content: ContentConfig{
			Path: expandHome(v.GetString(contentPathKey), home),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString(logLevelKey))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(logFormatKey))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported storage.backend %q", c.Storage.Backend))
	}
	if c.Storage.Slot == "" {
		errs = append(errs, errors.New("storage.slot is empty"))
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unsupported log.format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func expandHome(path, home string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}
