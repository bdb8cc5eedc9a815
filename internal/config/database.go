package config

import (
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	log.Info("Database connection established")
	return db, nil
}

// Migrate creates or updates every table the service stores.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.SleepNightModel{},
		&domain.ActivityDayModel{},
		&domain.StressDayModel{},
		&domain.FeedbackModel{},
	)
}
