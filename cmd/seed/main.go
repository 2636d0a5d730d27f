// Command seed creates the first admin account so the API can be used.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/handler/middleware"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/infra/uow"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase/commands"
)

func main() {
	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "admin email")
	name := flag.String("name", envOr("SEED_ADMIN_NAME", "Lab Admin"), "admin display name")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if err := run(*email, *name, *password); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(email, name, password string) error {
	if email == "" || password == "" {
		return errs.New("email and password are required (-email/-password or SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD)")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}

	users := commands.NewUserCommands(uow.NewPostgresUoW(pool, logger), clock.NewRealClock(), logger)
	view, err := users.Register(ctx, commands.RegisterUserInput{
		Email:       email,
		DisplayName: name,
		Password:    password,
		Role:        user.RoleAdmin.String(),
	})
	if errs.Is(err, errs.ErrEmailTaken) {
		logger.Info("admin already exists", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("admin created", "user_id", view.ID, "email", view.Email)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
