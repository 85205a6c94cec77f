package domain

import (
	"github.com/google/wire"

	"fixster-server/internal/config"
	"fixster-server/internal/domain/assist"
	"fixster-server/internal/domain/project"
	"fixster-server/internal/domain/snippet"
	"fixster-server/internal/domain/usersettings"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Project domain
	project.NewService,

	// Snippet domain
	snippet.NewService,

	// User settings
	usersettings.NewService,
	wire.Bind(new(project.ActiveProjectClearer), new(*usersettings.Service)),

	// Model-backed assistance
	ProvidePromptConfigs,
	assist.NewService,
)

func ProvidePromptConfigs(cfg *config.Config) *config.PromptConfigs {
	return cfg.Prompts
}
