package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for components that cannot take injected config
var globalConfig *Config

// Config holds all environment backed configuration for fixster-server.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// PostgreSQL read replica (optional)
	DBPostgresqlReadDSN string `env:"DB_POSTGRESQL_READ_DSN"`

	// Identity provider (auth itself is delegated; we only verify tokens)
	JWKSURL  string `env:"JWKS_URL"`
	Issuer   string `env:"ISSUER"`
	Audience string `env:"AUDIENCE"`

	// Gemini
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`

	// Prompt templates (optional YAML override file)
	PromptConfigFile string         `env:"PROMPT_CONFIG_FILE"`
	Prompts          *PromptConfigs `env:"-"`

	// Support mail relay
	SupportEmail         string `env:"SUPPORT_EMAIL"`
	SupportEmailPassword string `env:"SUPPORT_EMAIL_PASSWORD"`
	SMTPHost             string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort             int    `env:"SMTP_PORT" envDefault:"587"`

	// Maintenance
	PurgeEnabled      bool `env:"PURGE_ENABLED" envDefault:"true"`
	PurgeRetentionDay int  `env:"PURGE_RETENTION_DAYS" envDefault:"30"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"fixster-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"fixster"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWKSURL != "" {
		if _, err := url.ParseRequestURI(cfg.JWKSURL); err != nil {
			return nil, fmt.Errorf("invalid JWKS_URL: %w", err)
		}
	}

	if _, err := url.ParseRequestURI(cfg.GeminiBaseURL); err != nil {
		return nil, fmt.Errorf("invalid GEMINI_BASE_URL: %w", err)
	}

	if cfg.SupportEmail != "" && cfg.SupportEmailPassword == "" {
		return nil, errors.New("SUPPORT_EMAIL_PASSWORD must be set when SUPPORT_EMAIL is configured")
	}

	prompts, err := LoadPromptConfigs(strings.TrimSpace(cfg.PromptConfigFile))
	if err != nil {
		return nil, fmt.Errorf("load prompt configs: %w", err)
	}
	cfg.Prompts = prompts

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GeminiConfigured reports whether an API credential is present.
func (c *Config) GeminiConfigured() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// SupportMailConfigured reports whether the support mail relay can be used.
func (c *Config) SupportMailConfigured() bool {
	return c.SupportEmail != "" && c.SupportEmailPassword != ""
}

// GetGlobal returns the global config instance.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

// GetEnvReloadedAt returns when the environment was last reloaded
func GetEnvReloadedAt() time.Time {
	if globalConfig != nil {
		return globalConfig.EnvReloadedAt
	}
	return time.Time{}
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
