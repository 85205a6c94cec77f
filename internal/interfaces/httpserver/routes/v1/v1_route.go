package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixster-server/internal/config"
	"fixster-server/internal/interfaces/httpserver/routes/v1/projects"
	"fixster-server/internal/interfaces/httpserver/routes/v1/settings"
	"fixster-server/internal/interfaces/httpserver/routes/v1/snippets"
)

type V1Route struct {
	project  *projects.ProjectRoute
	snippet  *snippets.SnippetRoute
	settings *settings.SettingsRoute
}

func NewV1Route(
	project *projects.ProjectRoute,
	snippet *snippets.SnippetRoute,
	settings *settings.SettingsRoute,
) *V1Route {
	return &V1Route{
		project,
		snippet,
		settings,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.project.RegisterRoutes(v1Router)
	v1Route.snippet.RegisterRoutes(v1Router)
	v1Route.settings.RegisterRoutes(v1Router)
}

// GetVersion returns the current build version of the API server and
// environment reload timestamp.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.GetEnvReloadedAt().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetHealthz returns the health status of the API server.
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz returns the readiness status of the API server.
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
