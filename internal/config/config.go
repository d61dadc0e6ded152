// Package config loads spark's user configuration with viper.
//
// Sources, lowest precedence first: built-in defaults, the config file
// (.spark.yaml in the working directory, then $HOME/.config/spark/spark.yaml,
// or an explicit --config path), and SPARK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/zjrosen/spark/internal/log"
	"github.com/zjrosen/spark/internal/ui/styles"
)

const envPrefix = "SPARK"

// Config is the decoded user configuration.
type Config struct {
	Debug      bool               `mapstructure:"debug"`
	LogPath    string             `mapstructure:"log_path"`
	LogLevel   string             `mapstructure:"log_level"`
	Theme      styles.ThemeConfig `mapstructure:"theme"`
	Playground PlaygroundConfig   `mapstructure:"playground"`
}

// PlaygroundConfig configures the playground mode.
type PlaygroundConfig struct {
	// Specs is a YAML file with the field list of the playground form.
	// Empty uses the built-in list.
	Specs string `mapstructure:"specs"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		LogPath:  "debug.log",
		LogLevel: "debug",
		Theme:    styles.ThemeConfig{Preset: styles.DefaultPreset.Name},
	}
}

// New returns a viper instance wired to spark's sources. path selects an
// explicit config file; empty searches the default locations.
func New(path string) *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_path", d.LogPath)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("theme.colors", map[string]any{})
	v.SetDefault("playground.specs", d.Playground.Specs)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".spark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "spark"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and decodes the merged sources. A
// missing file in the default locations is not an error; a missing
// explicit file is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file found, using defaults")
	} else {
		log.Info(log.CatConfig, "config loaded", "path", v.ConfigFileUsed())
	}
	return decode(v)
}

// decode unmarshals the merged sources. Theme color tokens contain dots,
// which viper reads as nesting, so nested maps decoded into a
// map[string]string are flattened back into "group.name" keys.
func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(dc.DecodeHook, flattenHook)
	})
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

var stringMapType = reflect.TypeOf(map[string]string{})

func flattenHook(from, to reflect.Type, data any) (any, error) {
	if to != stringMapType {
		return data, nil
	}
	m, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	out := make(map[string]string, len(m))
	if err := flatten("", m, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, m map[string]any, out map[string]string) error {
	for k, val := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := val.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s must be a string, got %T", key, val)
		}
	}
	return nil
}

// Watch re-decodes the config whenever the file changes and hands the
// result to apply. Decoding errors are logged and the change is skipped.
func Watch(v *viper.Viper, apply func(Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange(v, e, apply)
	})
	v.WatchConfig()
}

func onChange(v *viper.Viper, e fsnotify.Event, apply func(Config)) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	cfg, err := decode(v)
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err, "path", e.Name)
		return
	}
	log.Info(log.CatConfig, "config reloaded", "path", e.Name)
	apply(cfg)
}

// ApplyTheme applies the theme section to the global styles.
func ApplyTheme(cfg Config) error {
	if err := styles.ApplyTheme(cfg.Theme); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	return nil
}
