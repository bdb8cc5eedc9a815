package service

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/google/uuid"
)

// MockHealthRecordRepository is a mock implementation of HealthRecordRepository
type MockHealthRecordRepository struct {
	sleep    []domain.SleepRecord
	activity []domain.ActivityRecord
	stress   []domain.StressRecord
	imported *domain.ImportSet
	err      error

	lastFrom, lastTo domain.Date
}

func NewMockHealthRecordRepository() *MockHealthRecordRepository {
	return &MockHealthRecordRepository{}
}

func (m *MockHealthRecordRepository) FetchSleep(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.SleepRecord, error) {
	m.lastFrom, m.lastTo = from, to
	if m.err != nil {
		return nil, m.err
	}
	return m.sleep, nil
}

func (m *MockHealthRecordRepository) FetchActivity(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.ActivityRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.activity, nil
}

func (m *MockHealthRecordRepository) FetchStress(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.StressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stress, nil
}

func (m *MockHealthRecordRepository) Import(ctx context.Context, set *domain.ImportSet) error {
	if m.err != nil {
		return m.err
	}
	m.imported = set
	return nil
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository
type MockFeedbackRepository struct {
	entries      map[string]*domain.FeedbackModel
	listResult   []domain.FeedbackModel
	rangeRecords []domain.FeedbackRecord
	lastFilter   domain.FeedbackFilter
	err          error
}

func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{
		entries: make(map[string]*domain.FeedbackModel),
	}
}

func feedbackKey(userID uuid.UUID, date domain.Date) string {
	return userID.String() + ":" + date.String()
}

func (m *MockFeedbackRepository) Upsert(ctx context.Context, entry *domain.FeedbackModel) error {
	if m.err != nil {
		return m.err
	}
	key := feedbackKey(entry.UserID, domain.DateOf(entry.Date))
	if existing, ok := m.entries[key]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	} else {
		entry.ID = uuid.New()
		entry.CreatedAt = time.Now()
	}
	entry.UpdatedAt = time.Now()
	stored := *entry
	m.entries[key] = &stored
	return nil
}

func (m *MockFeedbackRepository) GetByDate(ctx context.Context, userID uuid.UUID, date domain.Date) (*domain.FeedbackModel, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[feedbackKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockFeedbackRepository) List(ctx context.Context, userID uuid.UUID, filter domain.FeedbackFilter) ([]domain.FeedbackModel, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.FeedbackModel, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockFeedbackRepository) FeedbackInRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) ([]domain.FeedbackRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rangeRecords, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output *domain.NarrativeInsights
	err    error
	calls  int
	got    *domain.ComprehensiveAnalysis
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, window domain.AnalysisWindow, analysis *domain.ComprehensiveAnalysis) (*domain.NarrativeInsights, error) {
	m.calls++
	m.got = analysis
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func f64(v float64) *float64 {
	return &v
}

func intPtr(i int) *int {
	return &i
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleSleep() []domain.SleepRecord {
	return []domain.SleepRecord{
		{ID: "sleep_1", StartTime: "2024-01-15T23:00:00", EndTime: "2024-01-16T07:15:00", Duration: f64(495), Efficiency: f64(85),
			Stages: []byte(`{"deep":105,"light":250,"rem":80,"awake":50}`)},
		{ID: "sleep_2", StartTime: "2024-01-14T23:30:00", EndTime: "2024-01-15T06:45:00", Duration: f64(435), Efficiency: f64(82)},
		{ID: "sleep_3", StartTime: "2024-01-13T22:45:00", EndTime: "2024-01-14T06:30:00", Duration: f64(465), Efficiency: f64(88)},
	}
}
