// Package main is the one-shot database bootstrap: it creates the
// schema and refreshes the sample record chain, then exits.
package main

import (
	"context"

	"finvox/internal/config"
	"finvox/internal/repositories"
	"finvox/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.New()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	store, err := repositories.Open(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf("⚠️ Failed to close database connection: %v", err)
		}
	}()

	seeder := seed.NewSeeder(store, logger)
	if err := seeder.SetupDatabase(context.Background()); err != nil {
		logger.Fatalf("Database setup failed: %v", err)
	}
}
