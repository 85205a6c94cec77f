package routes

import (
	"github.com/google/wire"

	"fixster-server/internal/interfaces/httpserver/handlers/assisthandler"
	"fixster-server/internal/interfaces/httpserver/handlers/projecthandler"
	"fixster-server/internal/interfaces/httpserver/handlers/settingshandler"
	"fixster-server/internal/interfaces/httpserver/handlers/snippethandler"
	"fixster-server/internal/interfaces/httpserver/handlers/supporthandler"
	"fixster-server/internal/interfaces/httpserver/routes/assist"
	v1 "fixster-server/internal/interfaces/httpserver/routes/v1"
	"fixster-server/internal/interfaces/httpserver/routes/v1/projects"
	"fixster-server/internal/interfaces/httpserver/routes/v1/settings"
	"fixster-server/internal/interfaces/httpserver/routes/v1/snippets"
)

var RouteProvider = wire.NewSet(
	// Handlers
	assisthandler.NewAssistHandler,
	supporthandler.NewSupportHandler,
	projecthandler.NewProjectHandler,
	snippethandler.NewSnippetHandler,
	settingshandler.NewSettingsHandler,

	// Routes
	assist.NewAssistRoute,
	v1.NewV1Route,
	projects.NewProjectRoute,
	snippets.NewSnippetRoute,
	settings.NewSettingsRoute,
)
