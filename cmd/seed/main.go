// Command seed writes the admin credential record from ADMIN_EMAIL and
// ADMIN_PASSWORD. Run once against a fresh database, or again to reset
// the password.
package main

import (
	"log/slog"
	"os"

	"github.com/innovelous/agency/internal/config"
	"github.com/innovelous/agency/internal/db"
	"github.com/innovelous/agency/internal/logger"
	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/service"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), "")

	if cfg.AdminPassword == "" {
		slog.Error("ADMIN_PASSWORD must be set to seed admin credentials")
		os.Exit(1)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	settingsRepository := repository.NewSettingsRepository(database)
	authService := service.NewAuthService(settingsRepository, cfg.JWTSecret, cfg.IsProduction(), cfg.SessionExpiry)

	err = authService.SetCredentials(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		slog.Error("failed to seed admin credentials", "error", err)
		os.Exit(1)
	}

	slog.Info("admin credentials seeded", "email", cfg.AdminEmail)
}
