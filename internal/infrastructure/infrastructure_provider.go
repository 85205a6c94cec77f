package infrastructure

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fixster-server/internal/config"
	"fixster-server/internal/domain/assist"
	"fixster-server/internal/infrastructure/auth"
	"fixster-server/internal/infrastructure/crontab"
	"fixster-server/internal/infrastructure/database"
	"fixster-server/internal/infrastructure/database/repository"
	"fixster-server/internal/infrastructure/gemini"
	"fixster-server/internal/infrastructure/logger"
	"fixster-server/internal/infrastructure/mailer"
)

const (
	jwksRefreshInterval = 15 * time.Minute
	jwtClockSkew        = 30 * time.Second
)

// ProvideConfig returns the process-wide configuration, loading it from the
// environment if it has not been loaded yet.
func ProvideConfig() (*config.Config, error) {
	if cfg := config.GetGlobal(); cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// ProvideDatabase connects to PostgreSQL and runs migrations when enabled.
func ProvideDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL, cfg.DBPostgresqlReadDSN)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// ProvideJWKSValidator builds the token validator. When no JWKS URL is
// configured it returns nil, which puts the auth middleware in development
// mode trusting the X-User-Id header.
func ProvideJWKSValidator(cfg *config.Config) (*auth.JWKSValidator, error) {
	if cfg.JWKSURL == "" {
		return nil, nil
	}

	return auth.NewJWKSValidator(
		context.Background(),
		cfg.JWKSURL,
		cfg.Issuer,
		cfg.Audience,
		jwksRefreshInterval,
		jwtClockSkew,
		logger.GetLogger(),
	)
}

// ProvideModelClient exposes the Gemini client behind the domain interface.
func ProvideModelClient(cfg *config.Config) assist.ModelClient {
	return gemini.NewClient(cfg)
}

// ProvideMailer exposes the SMTP relay behind the mailer interface.
func ProvideMailer(cfg *config.Config) mailer.Mailer {
	return mailer.NewSMTPMailer(cfg)
}

// Infrastructure bundles shared infrastructure handles for the HTTP layer.
type Infrastructure struct {
	DB            *gorm.DB
	JWKSValidator *auth.JWKSValidator
	Logger        zerolog.Logger
}

func NewInfrastructure(
	db *gorm.DB,
	validator *auth.JWKSValidator,
	log zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:            db,
		JWKSValidator: validator,
		Logger:        log,
	}
}

// InfrastructureProvider provides all infrastructure components.
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideDatabase,
	ProvideJWKSValidator,
	ProvideModelClient,
	ProvideMailer,
	logger.GetLogger,
	repository.RepositoryProvider,
	crontab.NewCrontab,
	NewInfrastructure,
)
