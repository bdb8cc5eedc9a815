package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/google/uuid"
)

type stubProvider struct {
	sleepErr error
	from, to domain.Date
}

func (s *stubProvider) FetchSleep(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.SleepRecord, error) {
	s.from, s.to = from, to
	if s.sleepErr != nil {
		return nil, s.sleepErr
	}
	return []domain.SleepRecord{{ID: "n1", StartTime: "2024-01-15T23:00:00Z", EndTime: "2024-01-16T07:00:00Z"}}, nil
}

func (s *stubProvider) FetchActivity(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.ActivityRecord, error) {
	return []domain.ActivityRecord{{ID: "a1", Date: "2024-01-15"}}, nil
}

func (s *stubProvider) FetchStress(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.StressRecord, error) {
	return nil, nil
}

type stubFeedback struct {
	err error
}

func (s *stubFeedback) FeedbackInRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.FeedbackRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.FeedbackRecord{{Date: "2024-01-15"}}, nil
}

func TestCollect(t *testing.T) {
	from, _ := domain.ParseDate("2024-01-01")
	to, _ := domain.ParseDate("2024-01-31")
	data := &stubProvider{}

	batch, err := Collect(context.Background(), data, &stubFeedback{}, uuid.New(), from, to)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(batch.Sleep) != 1 || len(batch.Activity) != 1 || len(batch.Stress) != 0 || len(batch.Feedback) != 1 {
		t.Errorf("unexpected batch: %+v", batch)
	}
	if data.from != from || data.to != to {
		t.Errorf("range passed = %v..%v, want %v..%v", data.from, data.to, from, to)
	}
}

func TestCollect_NoFeedbackStore(t *testing.T) {
	batch, err := Collect(context.Background(), &stubProvider{}, nil, uuid.New(), domain.Date{}, domain.Date{})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if batch.Feedback != nil {
		t.Errorf("Feedback = %v, want nil", batch.Feedback)
	}
}

func TestCollect_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Collect(context.Background(), &stubProvider{sleepErr: boom}, nil, uuid.New(), domain.Date{}, domain.Date{})
	if !errors.Is(err, boom) {
		t.Errorf("sleep error = %v, want wrapped boom", err)
	}
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("sleep error = %v, want ErrProviderUnavailable", err)
	}
	if _, err := Collect(context.Background(), &stubProvider{}, &stubFeedback{err: boom}, uuid.New(), domain.Date{}, domain.Date{}); !errors.Is(err, boom) {
		t.Errorf("feedback error = %v, want wrapped boom", err)
	}
}
