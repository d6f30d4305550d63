package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-sitegen/internal/infra/config"
	"github.com/yanqian/ai-sitegen/internal/infra/ratelimit"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, limiter ratelimit.Limiter, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	api := router.Group("/api/v1")
	api.GET("/healthz", handler.Health)

	limited := api.Group("", rateLimitMiddleware(limiter, logger))
	{
		limited.POST("/sites", handler.GenerateSite)
		limited.POST("/sites/render", handler.RenderSite)
		limited.GET("/sites/preview", handler.PreviewSite)
		limited.POST("/sites/export", handler.ExportSite)
		limited.POST("/sites/publish", handler.PublishSite)
		limited.GET("/sites/published/:id", handler.PublishedFile)
		limited.GET("/sites/published/:id/:file", handler.PublishedFile)
		limited.GET("/templates", handler.ListTemplates)
		limited.POST("/contact", handler.SubmitContact)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
