package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ridgelinesupply/pickup-scheduler/internal/config"
	"github.com/ridgelinesupply/pickup-scheduler/internal/logging"
	"github.com/ridgelinesupply/pickup-scheduler/internal/middleware"
	"github.com/ridgelinesupply/pickup-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
