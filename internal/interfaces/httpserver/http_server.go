package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixster-server/internal/config"
	"fixster-server/internal/infrastructure"
	middleware "fixster-server/internal/interfaces/httpserver/middlewares"
	"fixster-server/internal/interfaces/httpserver/routes/assist"
	v1 "fixster-server/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine      *gin.Engine
	infra       *infrastructure.Infrastructure
	v1Route     *v1.V1Route
	assistRoute *assist.AssistRoute
	config      *config.Config
}

func NewHttpServer(
	v1Route *v1.V1Route,
	assistRoute *assist.AssistRoute,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		v1Route,
		assistRoute,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())

	// Root health check (for backwards compatibility)
	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, "ok")
	})

	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Public routes: the assist endpoints work without a token, but a
	// resolved identity enriches them (snippet recording).
	public := httpServer.engine.Group("/")
	public.Use(
		middleware.OptionalAuthMiddleware(httpServer.infra.JWKSValidator, httpServer.infra.Logger),
	)

	// Protected routes (auth middleware applied)
	protected := httpServer.engine.Group("/")
	protected.Use(
		middleware.AuthMiddleware(httpServer.infra.JWKSValidator, httpServer.infra.Logger),
		middleware.CORSMiddleware(),
	)

	// /api prefixed routes (mirror behaviour for ingress proxy paths)
	apiRoot := httpServer.engine.Group("/api")
	apiPublic := apiRoot.Group("/")
	apiPublic.Use(
		middleware.OptionalAuthMiddleware(httpServer.infra.JWKSValidator, httpServer.infra.Logger),
	)
	apiProtected := apiRoot.Group("/")
	apiProtected.Use(
		middleware.AuthMiddleware(httpServer.infra.JWKSValidator, httpServer.infra.Logger),
		middleware.CORSMiddleware(),
	)

	// Register assist routes on public routers
	httpServer.assistRoute.RegisterRouter(public)
	httpServer.assistRoute.RegisterRouter(apiPublic)

	// Register v1 routes (with auth middleware)
	httpServer.v1Route.RegisterRouter(protected)
	httpServer.v1Route.RegisterRouter(apiProtected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
