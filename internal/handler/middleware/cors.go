package middleware

import (
	"log/slog"

	"lab-dashboard/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// the availability stream is opened by browsers with an Upgrade handshake
	corsCfg.AllowWebSockets = true
	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
