package bootstrap

import (
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk)
}
