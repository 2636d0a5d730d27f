package bootstrap

import (
	"log/slog"

	"lab-dashboard/internal/handler/middleware"
	"lab-dashboard/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewAppLogger,
		NewLogger,
	),
)

func NewAppLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
