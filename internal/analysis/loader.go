package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/blaisecz/sleep-analysis/internal/domain"
)

// Load normalizes a record batch into a Dataset. Empty optional
// collections are simply absent. Unparseable timestamps or dates fail the
// whole load with an error wrapping domain.ErrMalformedInput; malformed
// stage breakdowns are dropped for that night only.
func Load(batch domain.RecordBatch) (*Dataset, error) {
	nights := make([]domain.SleepNight, 0, len(batch.Sleep))
	for i, rec := range batch.Sleep {
		night, err := loadSleep(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: sleep record %d (%s): %v", domain.ErrMalformedInput, i, rec.ID, err)
		}
		nights = append(nights, night)
	}

	activity := make([]domain.ActivityDay, 0, len(batch.Activity))
	for i, rec := range batch.Activity {
		date, err := parseRecordDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: activity record %d (%s): %v", domain.ErrMalformedInput, i, rec.ID, err)
		}
		activity = append(activity, domain.ActivityDay{
			ID:            rec.ID,
			Date:          date,
			Steps:         rec.Steps,
			ActiveMinutes: rec.ActiveMinutes,
			Calories:      rec.Calories,
		})
	}

	stress := make([]domain.StressDay, 0, len(batch.Stress))
	for i, rec := range batch.Stress {
		date, err := parseRecordDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: stress record %d (%s): %v", domain.ErrMalformedInput, i, rec.ID, err)
		}
		stress = append(stress, domain.StressDay{
			ID:           rec.ID,
			Date:         date,
			AverageScore: rec.AverageScore,
			MaxScore:     rec.MaxScore,
			MinScore:     rec.MinScore,
		})
	}

	feedback := make([]domain.FeedbackEntry, 0, len(batch.Feedback))
	for i, rec := range batch.Feedback {
		date, err := parseRecordDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: feedback record %d: %v", domain.ErrMalformedInput, i, err)
		}
		feedback = append(feedback, domain.FeedbackEntry{
			Date:              date,
			SleepSatisfaction: rec.SleepSatisfaction,
			MorningCondition:  rec.MorningCondition,
			Notes:             rec.Notes,
		})
	}

	return NewDataset(nights, activity, stress, feedback), nil
}

func loadSleep(rec domain.SleepRecord) (domain.SleepNight, error) {
	start, err := domain.ParseTimestamp(rec.StartTime)
	if err != nil {
		return domain.SleepNight{}, fmt.Errorf("start_time: %v", err)
	}
	end, err := domain.ParseTimestamp(rec.EndTime)
	if err != nil {
		return domain.SleepNight{}, fmt.Errorf("end_time: %v", err)
	}
	if end.Before(start) {
		return domain.SleepNight{}, fmt.Errorf("end_time %s precedes start_time %s", rec.EndTime, rec.StartTime)
	}

	duration := end.Sub(start).Minutes()
	if rec.Duration == nil && duration <= 0 {
		return domain.SleepNight{}, fmt.Errorf("end_time %s equals start_time and no duration is given", rec.EndTime)
	}
	if rec.Duration != nil {
		if *rec.Duration < 0 {
			return domain.SleepNight{}, fmt.Errorf("negative duration %v", *rec.Duration)
		}
		duration = *rec.Duration
	}

	return domain.SleepNight{
		ID:              rec.ID,
		Start:           start,
		End:             end,
		Date:            domain.DateOf(start),
		DurationMinutes: duration,
		Efficiency:      rec.Efficiency,
		Stages:          decodeStages(rec.Stages),
	}, nil
}

func parseRecordDate(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, fmt.Errorf("date is required")
	}
	return domain.ParseDate(s)
}

// decodeStages reads a {"deep":..,"light":..,"rem":..,"awake":..} object.
// Missing keys count as 0. Anything that is not an object of numbers
// yields nil so the night is left out of stage averages.
func decodeStages(raw json.RawMessage) *domain.StageMinutes {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	var stages domain.StageMinutes
	targets := map[string]*float64{
		"deep":  &stages.Deep,
		"light": &stages.Light,
		"rem":   &stages.REM,
		"awake": &stages.Awake,
	}
	for key, dst := range targets {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return nil
		}
	}
	return &stages
}
