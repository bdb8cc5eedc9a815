package handler

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/analysis"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/langfuse"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/google/uuid"
)

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeBatchFunc        func(ctx context.Context, batch domain.RecordBatch, opts analysis.Options) (*domain.ComprehensiveAnalysis, error)
	analyzeBatchSectionFunc func(ctx context.Context, batch domain.RecordBatch, section analysis.Section, opts analysis.Options) (any, error)
	analyzeUserFunc         func(ctx context.Context, userID uuid.UUID, q service.UserQuery) (*domain.UserAnalysisResponse, error)
	analyzeUserSectionFunc  func(ctx context.Context, userID uuid.UUID, section analysis.Section, q service.UserQuery) (any, error)
	insightsFunc            func(ctx context.Context, userID uuid.UUID, q service.UserQuery) (*domain.InsightsResponse, error)
}

func (m *MockAnalysisService) AnalyzeBatch(ctx context.Context, batch domain.RecordBatch, opts analysis.Options) (*domain.ComprehensiveAnalysis, error) {
	if m.analyzeBatchFunc != nil {
		return m.analyzeBatchFunc(ctx, batch, opts)
	}
	return &domain.ComprehensiveAnalysis{}, nil
}

func (m *MockAnalysisService) AnalyzeBatchSection(ctx context.Context, batch domain.RecordBatch, section analysis.Section, opts analysis.Options) (any, error) {
	if m.analyzeBatchSectionFunc != nil {
		return m.analyzeBatchSectionFunc(ctx, batch, section, opts)
	}
	return domain.SleepSummary{}, nil
}

func (m *MockAnalysisService) AnalyzeUser(ctx context.Context, userID uuid.UUID, q service.UserQuery) (*domain.UserAnalysisResponse, error) {
	if m.analyzeUserFunc != nil {
		return m.analyzeUserFunc(ctx, userID, q)
	}
	return &domain.UserAnalysisResponse{}, nil
}

func (m *MockAnalysisService) AnalyzeUserSection(ctx context.Context, userID uuid.UUID, section analysis.Section, q service.UserQuery) (any, error) {
	if m.analyzeUserSectionFunc != nil {
		return m.analyzeUserSectionFunc(ctx, userID, section, q)
	}
	return domain.SleepSummary{}, nil
}

func (m *MockAnalysisService) Insights(ctx context.Context, userID uuid.UUID, q service.UserQuery) (*domain.InsightsResponse, error) {
	if m.insightsFunc != nil {
		return m.insightsFunc(ctx, userID, q)
	}
	return &domain.InsightsResponse{}, nil
}

// MockFeedbackService is a mock implementation of FeedbackService
type MockFeedbackService struct {
	recordFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateFeedbackRequest) (*domain.FeedbackModel, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) (*domain.FeedbackListResponse, error)
}

func (m *MockFeedbackService) Record(ctx context.Context, userID uuid.UUID, req *domain.CreateFeedbackRequest) (*domain.FeedbackModel, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, userID, req)
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)
	return &domain.FeedbackModel{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              date,
		SleepSatisfaction: req.SleepSatisfaction,
		MorningCondition:  req.MorningCondition,
		Notes:             req.Notes,
		UpdatedAt:         time.Now(),
	}, nil
}

func (m *MockFeedbackService) List(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) (*domain.FeedbackListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.FeedbackListResponse{
		Data:       []domain.FeedbackResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockImportService is a mock implementation of ImportService
type MockImportService struct {
	importFunc func(ctx context.Context, userID uuid.UUID, batch domain.RecordBatch, timezone string) (*domain.ImportResponse, error)
}

func (m *MockImportService) Import(ctx context.Context, userID uuid.UUID, batch domain.RecordBatch, timezone string) (*domain.ImportResponse, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, userID, batch, timezone)
	}
	return &domain.ImportResponse{SleepNights: len(batch.Sleep)}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	createScoreFunc func(ctx context.Context, in langfuse.ScoreInput) error
	scores          []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	if m.createScoreFunc != nil {
		return m.createScoreFunc(ctx, in)
	}
	return nil
}

func (m *MockLangfuseClient) LoadPrompt(ctx context.Context, name, label string) (string, error) {
	return "", langfuse.ErrDisabled
}
