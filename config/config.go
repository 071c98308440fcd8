// Package config loads the badge service configuration from a file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/smartcontractkit/analyzer-badges/badge"
	"github.com/smartcontractkit/analyzer-badges/renderer/shields"
	"github.com/smartcontractkit/analyzer-badges/statistics"
)

// ColorsConfig holds the badge color per outcome.
type ColorsConfig struct {
	Error        string `mapstructure:"error" yaml:"error"`
	Warning      string `mapstructure:"warning" yaml:"warning"`
	Info         string `mapstructure:"info" yaml:"info"`
	Success      string `mapstructure:"success" yaml:"success"`
	Inaccessible string `mapstructure:"inaccessible" yaml:"inaccessible"`
}

// TemplatesConfig holds the status text templates. Templates take a single %d verb.
type TemplatesConfig struct {
	Error        string `mapstructure:"error" yaml:"error"`
	Warning      string `mapstructure:"warning" yaml:"warning"`
	Info         string `mapstructure:"info" yaml:"info"`
	Success      string `mapstructure:"success" yaml:"success"`
	Aggregate    string `mapstructure:"aggregate" yaml:"aggregate"`
	Pending      string `mapstructure:"pending" yaml:"pending"`
	Inaccessible string `mapstructure:"inaccessible" yaml:"inaccessible"`
}

// BadgeConfig is the presentation configuration of the badge.
type BadgeConfig struct {
	Label           string          `mapstructure:"label" yaml:"label"`
	Style           string          `mapstructure:"style" yaml:"style"`
	Format          string          `mapstructure:"format" yaml:"format"`
	AggregateValues bool            `mapstructure:"aggregate_values" yaml:"aggregate_values"`
	CountInfos      bool            `mapstructure:"count_infos" yaml:"count_infos"`
	Colors          ColorsConfig    `mapstructure:"colors" yaml:"colors"`
	Templates       TemplatesConfig `mapstructure:"templates" yaml:"templates"`
}

// Properties converts the configuration into badge builder properties.
func (c BadgeConfig) Properties() badge.BuilderProperties {
	return badge.BuilderProperties{
		Label:                      c.Label,
		Style:                      badge.Style(c.Style),
		Format:                     badge.Format(c.Format),
		ColorError:                 badge.Color(c.Colors.Error),
		ColorWarning:               badge.Color(c.Colors.Warning),
		ColorInfo:                  badge.Color(c.Colors.Info),
		ColorSuccess:               badge.Color(c.Colors.Success),
		ColorInaccessible:          badge.Color(c.Colors.Inaccessible),
		StatusTemplateError:        c.Templates.Error,
		StatusTemplateWarning:      c.Templates.Warning,
		StatusTemplateInfo:         c.Templates.Info,
		StatusTemplateSuccess:      c.Templates.Success,
		StatusTemplateAggregate:    c.Templates.Aggregate,
		StatusTemplatePending:      c.Templates.Pending,
		StatusTemplateInaccessible: c.Templates.Inaccessible,
		AggregateValues:            c.AggregateValues,
		CountInfos:                 c.CountInfos,
	}
}

// LogConfig configures the logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// Config wraps the entire configuration of the badge service.
type Config struct {
	Badge      BadgeConfig       `mapstructure:"badge" yaml:"badge"`
	Statistics statistics.Config `mapstructure:"statistics" yaml:"statistics"`
	Renderer   shields.Config    `mapstructure:"renderer" yaml:"renderer"`
	Log        LogConfig         `mapstructure:"log" yaml:"log"`
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := c.Badge.Properties().Validate(); err != nil {
		return fmt.Errorf("invalid badge config: %w", err)
	}

	return nil
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	// A missing file leaves the defaults and environment in place.
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return unmarshal(v)
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// LoadFile loads the config from a file.
func LoadFile(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newViper returns a viper instance with the defaults applied.
func newViper() *viper.Viper {
	v := viper.New()

	d := badge.DefaultBuilderProperties()
	defaults := map[string]any{
		"badge.label":                  d.Label,
		"badge.style":                  string(d.Style),
		"badge.format":                 string(d.Format),
		"badge.aggregate_values":       d.AggregateValues,
		"badge.count_infos":            d.CountInfos,
		"badge.colors.error":           string(d.ColorError),
		"badge.colors.warning":         string(d.ColorWarning),
		"badge.colors.info":            string(d.ColorInfo),
		"badge.colors.success":         string(d.ColorSuccess),
		"badge.colors.inaccessible":    string(d.ColorInaccessible),
		"badge.templates.error":        d.StatusTemplateError,
		"badge.templates.warning":      d.StatusTemplateWarning,
		"badge.templates.info":         d.StatusTemplateInfo,
		"badge.templates.success":      d.StatusTemplateSuccess,
		"badge.templates.aggregate":    d.StatusTemplateAggregate,
		"badge.templates.pending":      d.StatusTemplatePending,
		"badge.templates.inaccessible": d.StatusTemplateInaccessible,
		"statistics.driver":            statistics.DriverMemory,
		"renderer.base_url":            shields.DefaultBaseURL,
		"renderer.timeout":             10 * time.Second,
		"renderer.max_attempts":        3,
		"renderer.retry_delay":         200 * time.Millisecond,
		"log.level":                    "info",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return v
}

var (
	// envBindings defines how environment variables map to configuration keys used by Viper.
	// Each entry maps a config key (e.g. "statistics.dsn") to a list of environment variable names
	// that can provide its value. The first name is preferred; later names are accepted for
	// compatibility with common deployment conventions.
	envBindings = map[string][]string{
		"badge.label":                  {"BADGES_LABEL"},
		"badge.style":                  {"BADGES_STYLE"},
		"badge.format":                 {"BADGES_FORMAT"},
		"badge.aggregate_values":       {"BADGES_AGGREGATE_VALUES"},
		"badge.count_infos":            {"BADGES_COUNT_INFOS"},
		"badge.colors.error":           {"BADGES_COLORS_ERROR"},
		"badge.colors.warning":         {"BADGES_COLORS_WARNING"},
		"badge.colors.info":            {"BADGES_COLORS_INFO"},
		"badge.colors.success":         {"BADGES_COLORS_SUCCESS"},
		"badge.colors.inaccessible":    {"BADGES_COLORS_INACCESSIBLE"},
		"badge.templates.error":        {"BADGES_TEMPLATES_ERROR"},
		"badge.templates.warning":      {"BADGES_TEMPLATES_WARNING"},
		"badge.templates.info":         {"BADGES_TEMPLATES_INFO"},
		"badge.templates.success":      {"BADGES_TEMPLATES_SUCCESS"},
		"badge.templates.aggregate":    {"BADGES_TEMPLATES_AGGREGATE"},
		"badge.templates.pending":      {"BADGES_TEMPLATES_PENDING"},
		"badge.templates.inaccessible": {"BADGES_TEMPLATES_INACCESSIBLE"},
		"statistics.driver":            {"BADGES_STATISTICS_DRIVER"},
		"statistics.dsn":               {"BADGES_STATISTICS_DSN", "DATABASE_URL"},
		"renderer.base_url":            {"BADGES_RENDERER_BASE_URL"},
		"renderer.timeout":             {"BADGES_RENDERER_TIMEOUT"},
		"renderer.max_attempts":        {"BADGES_RENDERER_MAX_ATTEMPTS"},
		"renderer.retry_delay":         {"BADGES_RENDERER_RETRY_DELAY"},
		"log.level":                    {"BADGES_LOG_LEVEL", "LOG_LEVEL"},
		"log.development":              {"BADGES_LOG_DEVELOPMENT"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
