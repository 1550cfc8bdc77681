// Package config provides configuration types, defaults and loading for tasks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreYAML   = "yaml"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Themes.
const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

type Config struct {
	Store   string `mapstructure:"store"`
	Data    string `mapstructure:"data"`
	Theme   string `mapstructure:"theme"`
	NoColor bool   `mapstructure:"no_color"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
}

func Defaults() Config {
	return Config{
		Store:   StoreJSON,
		Theme:   ThemeClassic,
		LogFile: "tasks-debug.log",
	}
}

// DataPath returns the snapshot location, defaulting to a file named after
// the backend in the working directory.
func (c Config) DataPath() string {
	if c.Data != "" {
		return c.Data
	}
	switch c.Store {
	case StoreYAML:
		return "tasks.yaml"
	case StoreSQLite:
		return "tasks.db"
	default:
		return "tasks.json"
	}
}

func Validate(c Config) error {
	switch c.Store {
	case StoreJSON, StoreYAML, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("store: unknown backend %q (want json, yaml, sqlite or memory)", c.Store)
	}
	switch c.Theme {
	case ThemeClassic, ThemeNeon, ThemeMono:
	default:
		return fmt.Errorf("theme: unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	return nil
}

// Load resolves configuration from defaults, the config file, TASKS_*
// environment variables and flags, in increasing priority.
//
// Config lookup order when cfgFile is empty:
//  1. .tasks/config.yaml (current directory)
//  2. ~/.config/tasks/config.yaml (user config)
//
// A missing config file is not an error.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("store", d.Store)
	v.SetDefault("data", d.Data)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix("tasks")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"store":    "store",
			"data":     "data",
			"theme":    "theme",
			"no_color": "no-color",
			"debug":    "debug",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(filepath.Join(".tasks", "config.yaml")); err == nil {
		v.SetConfigFile(filepath.Join(".tasks", "config.yaml"))
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tasks"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Store = strings.ToLower(cfg.Store)
	cfg.Theme = strings.ToLower(cfg.Theme)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
