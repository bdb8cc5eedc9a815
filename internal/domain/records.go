package domain

import (
	"encoding/json"
	"time"
)

// SleepRecord is one night as supplied by a data provider.
// @Description Raw sleep session with ISO-8601 start/end timestamps.
type SleepRecord struct {
	// Provider-side identifier
	ID string `json:"id,omitempty" example:"sleep_1"`
	// Sleep start (ISO-8601)
	StartTime string `json:"start_time" example:"2024-01-15T23:00:00"`
	// Sleep end (ISO-8601)
	EndTime string `json:"end_time" example:"2024-01-16T07:15:00"`
	// Duration in minutes; derived from start/end when omitted
	Duration *float64 `json:"duration,omitempty" example:"495"`
	// Sleep efficiency percent (0-100)
	Efficiency *float64 `json:"efficiency,omitempty" example:"85"`
	// Stage minutes object: {"deep":105,"light":250,"rem":80,"awake":50}
	Stages json.RawMessage `json:"stages,omitempty" swaggertype:"object"`
}

// ActivityRecord is one day of activity as supplied by a data provider.
type ActivityRecord struct {
	ID            string   `json:"id,omitempty" example:"activity_1"`
	Date          string   `json:"date" example:"2024-01-15"`
	Steps         *float64 `json:"steps,omitempty" example:"8750"`
	ActiveMinutes *float64 `json:"active_minutes,omitempty" example:"45"`
	Calories      *float64 `json:"calories,omitempty" example:"320"`
}

// StressRecord is one day of stress scores (0-100) as supplied by a data provider.
type StressRecord struct {
	ID           string   `json:"id,omitempty" example:"stress_1"`
	Date         string   `json:"date" example:"2024-01-15"`
	AverageScore *float64 `json:"average_score,omitempty" example:"45"`
	MaxScore     *float64 `json:"max_score,omitempty" example:"75"`
	MinScore     *float64 `json:"min_score,omitempty" example:"20"`
}

// FeedbackRecord is a user's subjective rating of one night.
type FeedbackRecord struct {
	Date              string `json:"date" example:"2024-01-15"`
	SleepSatisfaction *int   `json:"sleep_satisfaction,omitempty" example:"4"`
	MorningCondition  *int   `json:"morning_condition,omitempty" example:"4"`
	Notes             string `json:"notes,omitempty" example:"Slept well"`
}

// RecordBatch bundles the collections for one analysis call. Sleep is
// required; the other collections may be empty.
// @Description Record collections to analyze.
type RecordBatch struct {
	Sleep    []SleepRecord    `json:"sleep_data"`
	Activity []ActivityRecord `json:"activity_data,omitempty"`
	Stress   []StressRecord   `json:"stress_data,omitempty"`
	Feedback []FeedbackRecord `json:"feedback_data,omitempty"`
}

// StageMinutes holds per-stage minutes for a night. The stages are
// independent and need not sum to the night's duration.
type StageMinutes struct {
	Deep  float64 `json:"deep"`
	Light float64 `json:"light"`
	REM   float64 `json:"rem"`
	Awake float64 `json:"awake"`
}

// SleepNight is a normalized sleep session keyed by the date of its start.
type SleepNight struct {
	ID              string
	Start           time.Time
	End             time.Time
	Date            Date
	DurationMinutes float64
	Efficiency      *float64
	// nil when the record had no usable stage breakdown
	Stages *StageMinutes
}

// ActivityDay is a normalized activity record.
type ActivityDay struct {
	ID            string
	Date          Date
	Steps         *float64
	ActiveMinutes *float64
	Calories      *float64
}

// StressDay is a normalized stress record.
type StressDay struct {
	ID           string
	Date         Date
	AverageScore *float64
	MaxScore     *float64
	MinScore     *float64
}

// FeedbackEntry is a normalized feedback record.
type FeedbackEntry struct {
	Date              Date
	SleepSatisfaction *int
	MorningCondition  *int
	Notes             string
}

// GoodDayThreshold is the rating at or above which a day counts as good.
const GoodDayThreshold = 4

// IsGoodDay reports whether either rating reaches GoodDayThreshold.
func (f FeedbackEntry) IsGoodDay() bool {
	if f.SleepSatisfaction != nil && *f.SleepSatisfaction >= GoodDayThreshold {
		return true
	}
	return f.MorningCondition != nil && *f.MorningCondition >= GoodDayThreshold
}
