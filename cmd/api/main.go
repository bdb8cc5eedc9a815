// Sleep Analysis API
//
// REST API for analyzing sleep, activity, stress and feedback records.
//
//	@title			Sleep Analysis API
//	@version		1.0
//	@description	Sleep summaries, optimal schedule, trends and correlations over sleep, activity, stress and feedback records.
//
//	@BasePath	/v1
//
//	@tag.name			analysis
//	@tag.description	Sleep analysis over posted batches and stored records
//
//	@tag.name			feedback
//	@tag.description	Subjective sleep ratings
//
//	@tag.name			records
//	@tag.description	Record import
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/api"
	"github.com/blaisecz/sleep-analysis/internal/api/handler"
	"github.com/blaisecz/sleep-analysis/internal/config"
	"github.com/blaisecz/sleep-analysis/internal/langfuse"
	"github.com/blaisecz/sleep-analysis/internal/llm"
	"github.com/blaisecz/sleep-analysis/internal/logging"
	"github.com/blaisecz/sleep-analysis/internal/repository"
	"github.com/blaisecz/sleep-analysis/internal/seed"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/blaisecz/sleep-analysis/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Tracing is a no-op unless an OTLP endpoint or Langfuse keys are set
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.WithError(err).Warn("Failed to flush traces")
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Auto-migrate database schema
	if err := config.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}
	log.Info("Database migration completed")

	// Initialize repositories
	healthRepo := repository.NewHealthRecordRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Langfuse is a no-op client unless its keys are set
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, log)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAnalysisModel)
	if openaiClient == nil {
		log.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	} else if cfg.LangfusePromptName != "" {
		prompt, err := langfuseClient.LoadPrompt(ctx, cfg.LangfusePromptName, cfg.LangfusePromptLabel)
		if err != nil {
			log.WithError(err).WithField("prompt", cfg.LangfusePromptName).Warn("Using built-in insights prompt")
		}
		openaiClient.WithSystemPrompt(prompt)
	}

	// Initialize services
	analysisService := service.NewAnalysisService(healthRepo, feedbackRepo, openaiClient, log, service.AnalysisConfig{
		TrendWindowDays: cfg.TrendWindowDays,
		LookbackDays:    cfg.AnalysisLookbackDays,
	})
	feedbackService := service.NewFeedbackService(feedbackRepo)
	importService := service.NewImportService(healthRepo, feedbackRepo, log)

	if cfg.Seed {
		log.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, healthRepo, importService, log, time.Now()); err != nil {
			log.WithError(err).Fatal("Failed to seed database")
		}
	}

	// Initialize handlers
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	importHandler := handler.NewImportHandler(importService)
	ratingHandler := handler.NewRatingHandler(langfuseClient, log)

	// Setup router
	router := api.NewRouter(analysisHandler, feedbackHandler, importHandler, ratingHandler, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		log.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
}
