package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/repository"
	"github.com/blaisecz/sleep-analysis/pkg/pagination"
	"github.com/google/uuid"
)

// FeedbackService records and lists subjective sleep ratings.
type FeedbackService interface {
	// Record stores the feedback for req.Date, replacing any earlier entry for that date.
	Record(ctx context.Context, userID uuid.UUID, req *domain.CreateFeedbackRequest) (*domain.FeedbackModel, error)
	// List returns a page of feedback, newest date first.
	List(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) (*domain.FeedbackListResponse, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Record(ctx context.Context, userID uuid.UUID, req *domain.CreateFeedbackRequest) (*domain.FeedbackModel, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	entry := &domain.FeedbackModel{
		UserID:            userID,
		Date:              date.Time(),
		SleepSatisfaction: req.SleepSatisfaction,
		MorningCondition:  req.MorningCondition,
		Notes:             req.Notes,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *feedbackService) List(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) (*domain.FeedbackListResponse, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: from is after to", domain.ErrInvalidInput)
	}

	if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	page, hasMore := pagination.Page(entries, filter.Limit)

	response := &domain.FeedbackListResponse{
		Data: make([]domain.FeedbackResponse, 0, len(page)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range page {
		response.Data = append(response.Data, page[i].ToResponse())
	}
	if hasMore && len(page) > 0 {
		last := page[len(page)-1]
		cursor := &pagination.Cursor{ID: last.ID, Date: last.Date}
		response.Pagination.NextCursor = cursor.Encode()
	}
	return response, nil
}
