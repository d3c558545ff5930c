package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"newsguard/internal/config"
	"newsguard/internal/usecase"
)

// New builds the gin engine serving the dashboard API.
func New(cfg config.ServerConfig, service *usecase.Service, logger *slog.Logger) *gin.Engine {
	g := gin.New()
	g.Use(gin.Recovery())

	g.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	attachRoutes(g, cfg, service, logger)
	return g
}

func attachRoutes(g *gin.Engine, cfg config.ServerConfig, service *usecase.Service, logger *slog.Logger) {
	h := NewHandlers(service, cfg.PageSize, logger)

	api := g.Group("/api")
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/scrape", h.Scrape)
		api.GET("/articles", h.Articles)
		api.GET("/search", h.Search)
		api.GET("/stats", h.Stats)
		api.GET("/export", h.Export)
	}
}
