package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	RunMigrations bool
	MigrationsDir string
	ContractsDir  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// A missing DATABASE_URL is a startup-fatal condition and returns an error.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("CONTRACTS_DIR", "contracts")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	cfg.MigrationsDir = viper.GetString("MIGRATIONS_DIR")
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
		log.Printf("Warning: MIGRATIONS_DIR not set. Defaulting to %s.\n", cfg.MigrationsDir)
	}

	cfg.ContractsDir = viper.GetString("CONTRACTS_DIR")
	if cfg.ContractsDir == "" {
		cfg.ContractsDir = "contracts"
		log.Printf("Warning: CONTRACTS_DIR not set. Defaulting to %s.\n", cfg.ContractsDir)
	}

	return cfg, nil
}
