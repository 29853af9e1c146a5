// Package config loads the application configuration from an optional
// gurukul.yaml plus GURUKUL_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig                 `mapstructure:"app"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
	Storage   StorageConfig             `mapstructure:"storage"`
	Generator GeneratorConfig           `mapstructure:"generator"`
}

type AppConfig struct {
	Name   string `mapstructure:"name"`
	LogDir string `mapstructure:"log_dir"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
	Enabled bool   `mapstructure:"enabled"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
}

type GeneratorConfig struct {
	Language              string `mapstructure:"language"`
	AssessmentQuestions   int    `mapstructure:"assessment_questions"`
	ClassifyByOpeningLine bool   `mapstructure:"classify_by_opening_line"`
	Lenient               bool   `mapstructure:"lenient"`
	Workers               int    `mapstructure:"workers"`
	MaxRetries            int    `mapstructure:"max_retries"`
}

// Load reads the configuration. With an explicit path the file must
// exist; otherwise a missing config file just yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "gurukul")
	v.SetDefault("storage.path", "gurukul.db")
	v.SetDefault("generator.language", "English")
	v.SetDefault("generator.assessment_questions", 10)
	v.SetDefault("generator.workers", 1)
	v.SetDefault("generator.max_retries", 5)

	v.SetEnvPrefix("GURUKUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("gurukul")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gurukul")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// DefaultProvider returns the first enabled provider in name order, so
// the pick is stable when more than one provider is enabled.
func (c *Config) DefaultProvider() (string, ProviderConfig) {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if p := c.Providers[name]; p.Enabled {
			return name, p
		}
	}
	return "", ProviderConfig{}
}
