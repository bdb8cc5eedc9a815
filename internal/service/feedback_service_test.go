package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/pkg/pagination"
	"github.com/google/uuid"
)

func TestFeedbackService_Record(t *testing.T) {
	userID := uuid.New()
	repo := NewMockFeedbackRepository()
	svc := NewFeedbackService(repo)

	first, err := svc.Record(context.Background(), userID, &domain.CreateFeedbackRequest{
		Date:              "2024-01-15",
		SleepSatisfaction: intPtr(3),
		MorningCondition:  intPtr(2),
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if !first.Date.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want midnight UTC", first.Date)
	}

	// Same date replaces the ratings and keeps the entry
	second, err := svc.Record(context.Background(), userID, &domain.CreateFeedbackRequest{
		Date:              "2024-01-15",
		SleepSatisfaction: intPtr(5),
		MorningCondition:  intPtr(4),
		Notes:             "much better",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new entry: %s != %s", second.ID, first.ID)
	}
	if len(repo.entries) != 1 {
		t.Errorf("stored entries = %d, want 1", len(repo.entries))
	}
	stored, _ := repo.GetByDate(context.Background(), userID, mustDate("2024-01-15"))
	if *stored.SleepSatisfaction != 5 || stored.Notes != "much better" {
		t.Errorf("stored entry not replaced: %+v", stored)
	}
}

func TestFeedbackService_Record_Errors(t *testing.T) {
	svc := NewFeedbackService(NewMockFeedbackRepository())
	_, err := svc.Record(context.Background(), uuid.New(), &domain.CreateFeedbackRequest{Date: "yesterday"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}

	repo := NewMockFeedbackRepository()
	repo.err = errors.New("db down")
	svc = NewFeedbackService(repo)
	_, err = svc.Record(context.Background(), uuid.New(), &domain.CreateFeedbackRequest{Date: "2024-01-15"})
	if err == nil || errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("error = %v, want repository error", err)
	}
}

func TestFeedbackService_List(t *testing.T) {
	userID := uuid.New()
	entries := []domain.FeedbackModel{
		{ID: uuid.New(), UserID: userID, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), SleepSatisfaction: intPtr(4)},
		{ID: uuid.New(), UserID: userID, Date: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), SleepSatisfaction: intPtr(3)},
		{ID: uuid.New(), UserID: userID, Date: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), SleepSatisfaction: intPtr(5)},
	}

	tests := []struct {
		name        string
		listResult  []domain.FeedbackModel
		limit       int
		wantLen     int
		wantHasMore bool
	}{
		{"more pages", entries, 2, 2, true},
		{"last page", entries[:2], 2, 2, false},
		{"empty", nil, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockFeedbackRepository()
			repo.listResult = tt.listResult
			svc := NewFeedbackService(repo)

			got, err := svc.List(context.Background(), userID, domain.FeedbackFilter{Limit: tt.limit})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got.Data) != tt.wantLen || got.Pagination.HasMore != tt.wantHasMore {
				t.Fatalf("got %d entries hasMore=%v, want %d/%v", len(got.Data), got.Pagination.HasMore, tt.wantLen, tt.wantHasMore)
			}
			if got.Data == nil {
				t.Errorf("Data should be an empty list, not null")
			}

			if !tt.wantHasMore {
				if got.Pagination.NextCursor != "" {
					t.Errorf("NextCursor = %q, want empty", got.Pagination.NextCursor)
				}
				return
			}
			cursor, err := pagination.DecodeCursor(got.Pagination.NextCursor)
			if err != nil || cursor == nil {
				t.Fatalf("NextCursor not decodable: %v", err)
			}
			last := tt.listResult[tt.limit-1]
			if cursor.ID != last.ID || !cursor.Date.Equal(last.Date) {
				t.Errorf("cursor = %+v, want last row of page", cursor)
			}
		})
	}
}

func TestFeedbackService_List_InvalidInput(t *testing.T) {
	svc := NewFeedbackService(NewMockFeedbackRepository())
	from, to := mustDate("2024-02-01"), mustDate("2024-01-01")

	if _, err := svc.List(context.Background(), uuid.New(), domain.FeedbackFilter{From: &from, To: &to}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("inverted range error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.List(context.Background(), uuid.New(), domain.FeedbackFilter{Cursor: "%%%"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad cursor error = %v, want ErrInvalidInput", err)
	}
}
