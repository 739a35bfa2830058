package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/adapters/signal"
	"github.com/dkeye/Duel/internal/config"
)

func SetupRouter(ctx context.Context, cfg *config.Config, ctl *signal.Controller) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})
	r.GET("/page2", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/page2.html")
	})
	r.GET("/page3", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/page3.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	r.GET("/ws", func(c *gin.Context) {
		ctl.HandleSignal(ctx, c)
	})

	return r
}
