package main

import (
	"fmt"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/config"
	"github.com/blaisecz/sleep-analysis/internal/logging"
	"github.com/blaisecz/sleep-analysis/internal/repository"
	"github.com/blaisecz/sleep-analysis/internal/seed"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample records",
	Long:  `Migrate the schema and import sample records for the seed users. Users that already have records are left alone.`,
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	healthRepo := repository.NewHealthRecordRepository(db)
	importService := service.NewImportService(healthRepo, repository.NewFeedbackRepository(db), log)

	return seed.Run(cmd.Context(), healthRepo, importService, log, time.Now())
}
