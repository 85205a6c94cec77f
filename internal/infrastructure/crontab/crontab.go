package crontab

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"fixster-server/internal/config"
	"fixster-server/internal/domain/project"
	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/infrastructure/logger"
	"fixster-server/internal/utils/platformerrors"
)

const (
	CronJobTimeout = 10 * time.Minute
)

type Crontab struct {
	ctab           *crontab.Crontab
	projectService *project.Service
	snippetService *snippet.Service
}

func NewCrontab(projectService *project.Service, snippetService *snippet.Service) *Crontab {
	return &Crontab{
		ctab:           crontab.New(),
		projectService: projectService,
		snippetService: snippetService,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg != nil && cfg.PurgeEnabled {
		retention := time.Duration(cfg.PurgeRetentionDay) * 24 * time.Hour

		// execute once on server start
		c.purgeDeletedProjects(ctx, retention)

		// then nightly
		if err := c.ctab.AddJob("0 3 * * *", func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.purgeDeletedProjects(jobCtx, retention)
			c.trimSnippets(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add purge job")
		}
		log.Info().Int("retention_days", cfg.PurgeRetentionDay).Msg("Deleted project purge scheduled")
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		if _, err := config.Load(); err != nil {
			log.Error().Err(err).Msg("Failed to reload environment")
		}
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) purgeDeletedProjects(ctx context.Context, retention time.Duration) {
	log := logger.GetLogger()

	purged, err := c.projectService.PurgeDeleted(ctx, retention)
	if err != nil {
		log.Error().Err(err).Msg("Failed to purge deleted projects")
		return
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("Purged soft deleted projects")
	}
}

// trimSnippets guards the per-user recents cap against rows written outside
// the service path.
func (c *Crontab) trimSnippets(ctx context.Context) {
	log := logger.GetLogger()

	if err := c.snippetService.TrimAll(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to trim snippet lists")
	}
}
