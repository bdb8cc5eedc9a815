package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SleepNightModel is the stored form of a sleep session. Instants are
// stored in UTC; LocalTimezone is the IANA zone the night was slept in,
// empty meaning UTC.
type SleepNightModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_nights_user_start" json:"user_id"`
	ExternalID      string    `gorm:"type:varchar(255)" json:"external_id,omitempty"`
	StartAt         time.Time `gorm:"not null;index:idx_sleep_nights_user_start,sort:desc" json:"start_at"`
	EndAt           time.Time `gorm:"not null" json:"end_at"`
	DurationMinutes float64   `gorm:"not null" json:"duration_minutes"`
	Efficiency      *float64  `json:"efficiency,omitempty"`
	DeepMinutes     *float64  `json:"deep_minutes,omitempty"`
	LightMinutes    *float64  `json:"light_minutes,omitempty"`
	REMMinutes      *float64  `gorm:"column:rem_minutes" json:"rem_minutes,omitempty"`
	AwakeMinutes    *float64  `json:"awake_minutes,omitempty"`
	LocalTimezone   string    `gorm:"type:varchar(64)" json:"local_timezone,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SleepNightModel) TableName() string {
	return "sleep_nights"
}

// ToRecord converts the stored night into the provider wire shape.
// Timestamps are rendered in the night's local zone so that clock-time
// analysis sees the wall clock the user slept by.
func (m *SleepNightModel) ToRecord() SleepRecord {
	loc := m.location()
	duration := m.DurationMinutes
	rec := SleepRecord{
		ID:         m.recordID(),
		StartTime:  m.StartAt.In(loc).Format(time.RFC3339),
		EndTime:    m.EndAt.In(loc).Format(time.RFC3339),
		Duration:   &duration,
		Efficiency: m.Efficiency,
	}

	stages := map[string]float64{}
	for key, v := range map[string]*float64{
		"deep":  m.DeepMinutes,
		"light": m.LightMinutes,
		"rem":   m.REMMinutes,
		"awake": m.AwakeMinutes,
	} {
		if v != nil {
			stages[key] = *v
		}
	}
	if len(stages) > 0 {
		if raw, err := json.Marshal(stages); err == nil {
			rec.Stages = raw
		}
	}
	return rec
}

func (m *SleepNightModel) location() *time.Location {
	if m.LocalTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(m.LocalTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (m *SleepNightModel) recordID() string {
	if m.ExternalID != "" {
		return m.ExternalID
	}
	return m.ID.String()
}

// ActivityDayModel is the stored form of a day of activity.
type ActivityDayModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_days_user_date" json:"user_id"`
	ExternalID    string    `gorm:"type:varchar(255)" json:"external_id,omitempty"`
	Date          time.Time `gorm:"type:date;not null;index:idx_activity_days_user_date" json:"date"`
	Steps         *float64  `json:"steps,omitempty"`
	ActiveMinutes *float64  `json:"active_minutes,omitempty"`
	Calories      *float64  `json:"calories,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityDayModel) TableName() string {
	return "activity_days"
}

func (m *ActivityDayModel) ToRecord() ActivityRecord {
	id := m.ExternalID
	if id == "" {
		id = m.ID.String()
	}
	return ActivityRecord{
		ID:            id,
		Date:          DateOf(m.Date).String(),
		Steps:         m.Steps,
		ActiveMinutes: m.ActiveMinutes,
		Calories:      m.Calories,
	}
}

// StressDayModel is the stored form of a day of stress scores.
type StressDayModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_stress_days_user_date" json:"user_id"`
	ExternalID   string    `gorm:"type:varchar(255)" json:"external_id,omitempty"`
	Date         time.Time `gorm:"type:date;not null;index:idx_stress_days_user_date" json:"date"`
	AverageScore *float64  `json:"average_score,omitempty"`
	MaxScore     *float64  `json:"max_score,omitempty"`
	MinScore     *float64  `json:"min_score,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (StressDayModel) TableName() string {
	return "stress_days"
}

func (m *StressDayModel) ToRecord() StressRecord {
	id := m.ExternalID
	if id == "" {
		id = m.ID.String()
	}
	return StressRecord{
		ID:           id,
		Date:         DateOf(m.Date).String(),
		AverageScore: m.AverageScore,
		MaxScore:     m.MaxScore,
		MinScore:     m.MinScore,
	}
}
