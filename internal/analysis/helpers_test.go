package analysis

import (
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
)

// refNow is the reference instant used by the windowed tests.
var refNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func f64(v float64) *float64 {
	return &v
}

func intPtr(i int) *int {
	return &i
}

// nightAt builds a night starting at the given wall-clock time in UTC.
func nightAt(year int, month time.Month, day, hour, minute int, durationMinutes float64) domain.SleepNight {
	start := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return domain.SleepNight{
		ID:              start.Format("20060102T1504"),
		Start:           start,
		End:             start.Add(time.Duration(durationMinutes) * time.Minute),
		Date:            domain.DateOf(start),
		DurationMinutes: durationMinutes,
	}
}

// nightBefore builds a night starting daysBack days and one hour before now.
func nightBefore(now time.Time, daysBack int, durationMinutes float64) domain.SleepNight {
	start := now.AddDate(0, 0, -daysBack).Add(-time.Hour)
	return domain.SleepNight{
		ID:              start.Format(time.RFC3339),
		Start:           start,
		End:             start.Add(time.Duration(durationMinutes) * time.Minute),
		Date:            domain.DateOf(start),
		DurationMinutes: durationMinutes,
	}
}

// sampleBatch mirrors a typical provider payload: three nights with stage
// breakdowns plus matching activity, stress and feedback days.
func sampleBatch() domain.RecordBatch {
	return domain.RecordBatch{
		Sleep: []domain.SleepRecord{
			{
				ID:         "sleep_1",
				StartTime:  "2024-01-15T23:00:00",
				EndTime:    "2024-01-16T07:15:00",
				Duration:   f64(495),
				Efficiency: f64(85),
				Stages:     []byte(`{"deep":105,"light":250,"rem":80,"awake":50}`),
			},
			{
				ID:         "sleep_2",
				StartTime:  "2024-01-14T23:30:00",
				EndTime:    "2024-01-15T06:45:00",
				Duration:   f64(435),
				Efficiency: f64(82),
				Stages:     []byte(`{"deep":95,"light":230,"rem":75,"awake":55}`),
			},
			{
				ID:         "sleep_3",
				StartTime:  "2024-01-13T22:45:00",
				EndTime:    "2024-01-14T06:30:00",
				Duration:   f64(465),
				Efficiency: f64(88),
				Stages:     []byte(`{"deep":110,"light":240,"rem":85,"awake":40}`),
			},
		},
		Activity: []domain.ActivityRecord{
			{ID: "activity_1", Date: "2024-01-15", Steps: f64(8750), ActiveMinutes: f64(45), Calories: f64(320)},
			{ID: "activity_2", Date: "2024-01-14", Steps: f64(10200), ActiveMinutes: f64(60), Calories: f64(380)},
			{ID: "activity_3", Date: "2024-01-13", Steps: f64(7500), ActiveMinutes: f64(35), Calories: f64(280)},
		},
		Stress: []domain.StressRecord{
			{ID: "stress_1", Date: "2024-01-15", AverageScore: f64(45), MaxScore: f64(75), MinScore: f64(20)},
			{ID: "stress_2", Date: "2024-01-14", AverageScore: f64(52), MaxScore: f64(80), MinScore: f64(25)},
			{ID: "stress_3", Date: "2024-01-13", AverageScore: f64(38), MaxScore: f64(65), MinScore: f64(15)},
		},
		Feedback: []domain.FeedbackRecord{
			{Date: "2024-01-15", SleepSatisfaction: intPtr(4), MorningCondition: intPtr(4), Notes: "slept well"},
			{Date: "2024-01-14", SleepSatisfaction: intPtr(3), MorningCondition: intPtr(3)},
			{Date: "2024-01-13", SleepSatisfaction: intPtr(5), MorningCondition: intPtr(4)},
		},
	}
}
