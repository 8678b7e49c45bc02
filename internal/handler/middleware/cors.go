package middleware

import (
	"log/slog"
	"slices"

	"venue-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware admits the configured browser origins, websocket
// upgrades included. A "*" entry opens the API to any origin and turns
// credentials off, since browsers refuse the combination.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:    cfg.AllowMethods,
		AllowHeaders:    cfg.AllowHeaders,
		ExposeHeaders:   slices.Concat(cfg.ExposeHeaders, []string{requestIDHeader, "Retry-After"}),
		AllowWebSockets: true,
		MaxAge:          cfg.MaxAge,
	}
	if cfg.AllowsOrigin("*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOriginFunc = cfg.AllowsOrigin
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}
	logger.Info("CORS configured", slog.Any("origins", cfg.AllowOrigins), slog.Bool("any_origin", corsCfg.AllowAllOrigins))
	return cors.New(corsCfg)
}
