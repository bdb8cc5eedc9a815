package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/analysis"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ImportService stores a record batch for later stored-data analysis.
type ImportService interface {
	// Import validates batch and stores it for userID. timezone is the IANA
	// zone the nights were slept in; empty means UTC.
	Import(ctx context.Context, userID uuid.UUID, batch domain.RecordBatch, timezone string) (*domain.ImportResponse, error)
}

type importService struct {
	records  repository.HealthRecordRepository
	feedback repository.FeedbackRepository
	log      *logrus.Logger
}

func NewImportService(records repository.HealthRecordRepository, feedback repository.FeedbackRepository, log *logrus.Logger) ImportService {
	return &importService{records: records, feedback: feedback, log: log}
}

func (s *importService) Import(ctx context.Context, userID uuid.UUID, batch domain.RecordBatch, timezone string) (*domain.ImportResponse, error) {
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, timezone)
		}
	}

	// Load rejects malformed timestamps before anything is written
	ds, err := analysis.Load(batch)
	if err != nil {
		return nil, err
	}

	set := BuildImportSet(userID, ds, timezone)
	if err := s.records.Import(ctx, set); err != nil {
		return nil, err
	}

	for _, f := range ds.Feedback() {
		entry := &domain.FeedbackModel{
			UserID:            userID,
			Date:              f.Date.Time(),
			SleepSatisfaction: f.SleepSatisfaction,
			MorningCondition:  f.MorningCondition,
			Notes:             f.Notes,
		}
		if err := s.feedback.Upsert(ctx, entry); err != nil {
			return nil, err
		}
	}

	resp := &domain.ImportResponse{
		SleepNights:  len(set.Sleep),
		ActivityDays: len(set.Activity),
		StressDays:   len(set.Stress),
		FeedbackDays: len(ds.Feedback()),
	}
	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"nights":   resp.SleepNights,
		"activity": resp.ActivityDays,
		"stress":   resp.StressDays,
		"feedback": resp.FeedbackDays,
	}).Info("records imported")
	return resp, nil
}

// BuildImportSet converts a loaded dataset into storable rows for userID.
func BuildImportSet(userID uuid.UUID, ds *analysis.Dataset, timezone string) *domain.ImportSet {
	set := &domain.ImportSet{}
	for _, n := range ds.Sleep() {
		row := domain.SleepNightModel{
			ID:              uuid.New(),
			UserID:          userID,
			ExternalID:      n.ID,
			StartAt:         n.Start.UTC(),
			EndAt:           n.End.UTC(),
			DurationMinutes: n.DurationMinutes,
			Efficiency:      n.Efficiency,
			LocalTimezone:   timezone,
		}
		if n.Stages != nil {
			deep, light, rem, awake := n.Stages.Deep, n.Stages.Light, n.Stages.REM, n.Stages.Awake
			row.DeepMinutes, row.LightMinutes, row.REMMinutes, row.AwakeMinutes = &deep, &light, &rem, &awake
		}
		set.Sleep = append(set.Sleep, row)
	}
	for _, a := range ds.Activity() {
		set.Activity = append(set.Activity, domain.ActivityDayModel{
			ID:            uuid.New(),
			UserID:        userID,
			ExternalID:    a.ID,
			Date:          a.Date.Time(),
			Steps:         a.Steps,
			ActiveMinutes: a.ActiveMinutes,
			Calories:      a.Calories,
		})
	}
	for _, st := range ds.Stress() {
		set.Stress = append(set.Stress, domain.StressDayModel{
			ID:           uuid.New(),
			UserID:       userID,
			ExternalID:   st.ID,
			Date:         st.Date.Time(),
			AverageScore: st.AverageScore,
			MaxScore:     st.MaxScore,
			MinScore:     st.MinScore,
		})
	}
	return set
}
