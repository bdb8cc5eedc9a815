package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is a stored subjective rating, one per user and date.
type FeedbackModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_date" json:"user_id"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:idx_feedback_user_date" json:"date"`
	SleepSatisfaction *int      `gorm:"type:smallint" json:"sleep_satisfaction,omitempty"`
	MorningCondition  *int      `gorm:"type:smallint" json:"morning_condition,omitempty"`
	Notes             string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FeedbackModel) TableName() string {
	return "feedback_entries"
}

func (m *FeedbackModel) ToRecord() FeedbackRecord {
	return FeedbackRecord{
		Date:              DateOf(m.Date).String(),
		SleepSatisfaction: m.SleepSatisfaction,
		MorningCondition:  m.MorningCondition,
		Notes:             m.Notes,
	}
}

func (m *FeedbackModel) ToResponse() FeedbackResponse {
	return FeedbackResponse{
		ID:                m.ID,
		Date:              DateOf(m.Date).String(),
		SleepSatisfaction: m.SleepSatisfaction,
		MorningCondition:  m.MorningCondition,
		Notes:             m.Notes,
		UpdatedAt:         m.UpdatedAt,
	}
}

// CreateFeedbackRequest is the request body for recording feedback.
// @Description Subjective rating of a night's sleep.
type CreateFeedbackRequest struct {
	// Calendar date the feedback is for (YYYY-MM-DD)
	Date string `json:"date" validate:"required,isodate" example:"2024-01-15"`
	// Sleep satisfaction from 1 (poor) to 5 (excellent)
	SleepSatisfaction *int `json:"sleep_satisfaction" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Morning condition from 1 (poor) to 5 (excellent)
	MorningCondition *int `json:"morning_condition" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Free-text note
	Notes string `json:"notes,omitempty" validate:"max=1000" example:"Slept well"`
}

// FeedbackResponse is the response body for feedback endpoints.
// @Description Stored feedback entry.
type FeedbackResponse struct {
	ID                uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date              string    `json:"date" example:"2024-01-15"`
	SleepSatisfaction *int      `json:"sleep_satisfaction,omitempty" example:"4"`
	MorningCondition  *int      `json:"morning_condition,omitempty" example:"4"`
	Notes             string    `json:"notes,omitempty" example:"Slept well"`
	UpdatedAt         time.Time `json:"updated_at" example:"2024-01-16T07:05:00Z"`
}

// FeedbackListResponse is a page of feedback entries.
// @Description Paginated list of feedback entries, newest date first.
type FeedbackListResponse struct {
	Data       []FeedbackResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// FeedbackFilter contains filter parameters for listing feedback
type FeedbackFilter struct {
	From   *Date
	To     *Date
	Limit  int
	Cursor string
}
