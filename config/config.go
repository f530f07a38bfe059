// Package config carries the environment driven configuration for binder
// hosts, together with typed context helpers and the small capability
// interfaces the binder options consume.
package config

import (
	"context"

	"github.com/caarlos0/env/v11"
)

type contextKey string

func (c contextKey) String() string {
	return "rosetta/config/" + string(c)
}

const ctxKeyConfiguration = contextKey("configurationKey")

// ToContext adds binder configuration to the current supplied context.
func ToContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, ctxKeyConfiguration, config)
}

// FromContext extracts binder configuration from the supplied context if any exist.
func FromContext[T any](ctx context.Context) T {
	if cfg, ok := ctx.Value(ctxKeyConfiguration).(T); ok {
		return cfg
	}
	var zero T
	return zero
}

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// ConfigurationLogLevel is implemented by configurations that tune logging.
type ConfigurationLogLevel interface {
	LoggingLevel() string
	LoggingTimeFormat() string
	LoggingColored() bool
}

// ConfigurationBinder is implemented by configurations that carry binder
// defaults.
type ConfigurationBinder interface {
	GetDefaultLanguage() string
	GetMarkerAttribute() string
	GetTranslationsFolder() string
}

type ConfigurationDefault struct {
	LogLevel      string `envDefault:"info"                      env:"LOG_LEVEL"       yaml:"log_level"`
	LogTimeFormat string `envDefault:"2006-01-02T15:04:05Z07:00" env:"LOG_TIME_FORMAT" yaml:"log_time_format"`
	LogColored    bool   `envDefault:"true"                      env:"LOG_COLORED"     yaml:"log_colored"`

	DefaultLanguage    string `envDefault:"en"           env:"DEFAULT_LANGUAGE"    yaml:"default_language"`
	MarkerAttribute    string `envDefault:"data-i18n"    env:"MARKER_ATTRIBUTE"    yaml:"marker_attribute"`
	TranslationsFolder string `envDefault:"localization" env:"TRANSLATIONS_FOLDER" yaml:"translations_folder"`
}

func (c *ConfigurationDefault) LoggingLevel() string {
	return c.LogLevel
}

func (c *ConfigurationDefault) LoggingTimeFormat() string {
	return c.LogTimeFormat
}

func (c *ConfigurationDefault) LoggingColored() bool {
	return c.LogColored
}

func (c *ConfigurationDefault) GetDefaultLanguage() string {
	return c.DefaultLanguage
}

func (c *ConfigurationDefault) GetMarkerAttribute() string {
	return c.MarkerAttribute
}

func (c *ConfigurationDefault) GetTranslationsFolder() string {
	return c.TranslationsFolder
}
