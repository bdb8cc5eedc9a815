// Package provider defines where the analysis service gets its records from.
package provider

import (
	"context"
	"fmt"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/google/uuid"
)

// DataProvider supplies a user's health records for an inclusive date range.
// Records come back in wire shape; normalization happens in the engine.
type DataProvider interface {
	FetchSleep(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.SleepRecord, error)
	FetchActivity(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.ActivityRecord, error)
	FetchStress(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.StressRecord, error)
}

// FeedbackStore supplies a user's subjective feedback for an inclusive date range.
type FeedbackStore interface {
	FeedbackInRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.FeedbackRecord, error)
}

// Collect gathers everything the engine needs for one user and window.
func Collect(ctx context.Context, data DataProvider, feedback FeedbackStore, userID uuid.UUID, from, to domain.Date) (*domain.RecordBatch, error) {
	sleep, err := data.FetchSleep(ctx, userID, from, to)
	if err != nil {
		return nil, unavailable("sleep", err)
	}
	activity, err := data.FetchActivity(ctx, userID, from, to)
	if err != nil {
		return nil, unavailable("activity", err)
	}
	stress, err := data.FetchStress(ctx, userID, from, to)
	if err != nil {
		return nil, unavailable("stress", err)
	}

	batch := &domain.RecordBatch{
		Sleep:    sleep,
		Activity: activity,
		Stress:   stress,
	}
	if feedback != nil {
		entries, err := feedback.FeedbackInRange(ctx, userID, from, to)
		if err != nil {
			return nil, unavailable("feedback", err)
		}
		batch.Feedback = entries
	}
	return batch, nil
}

// unavailable marks a store failure so callers can answer 503.
func unavailable(collection string, err error) error {
	return fmt.Errorf("fetch %s: %w: %w", collection, domain.ErrProviderUnavailable, err)
}
