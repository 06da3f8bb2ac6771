package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/services"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/platform/logging"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/platform/pdf"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/repositories/database/pgsql"
	"github.com/Alejandro-846/freelance-portfolio-manager/pkg/config"
	"github.com/Alejandro-846/freelance-portfolio-manager/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		if err := runMigrations(logger, cfg); err != nil {
			os.Exit(1)
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	docGen := pdf.NewGenerator(cfg.ContractsDir)
	container := services.NewServiceContainer(repos, docGen)

	// Readiness probe: a cheap aggregate read proves the schema and pool
	// are usable before any caller is wired in.
	ctx := logging.WithLogger(context.Background(), logger)
	balance, err := container.Financial.GetBalance(ctx)
	if err != nil {
		logger.Error("Startup readiness check failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Service container ready",
		slog.String("net_balance", balance.Net.String()))
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection. The pgx/v5 stdlib driver keeps it compatible
// with the main pool.
func runMigrations(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.MigrationsDir, "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
