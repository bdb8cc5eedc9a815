package analysis

import (
	"sort"

	"github.com/blaisecz/sleep-analysis/internal/domain"
)

// Dataset is the normalized, read-only input to every analyzer. Build one
// per call with Load or NewDataset; the analyzers never modify it, so a
// Dataset may be shared by concurrent readers.
type Dataset struct {
	sleep    []domain.SleepNight
	activity []domain.ActivityDay
	stress   []domain.StressDay
	feedback []domain.FeedbackEntry

	activityByDate map[domain.Date][]domain.ActivityDay
	stressByDate   map[domain.Date][]domain.StressDay
}

// NewDataset builds a Dataset from already-normalized records. Nights are
// ordered by start; the input slices are copied.
func NewDataset(sleep []domain.SleepNight, activity []domain.ActivityDay, stress []domain.StressDay, feedback []domain.FeedbackEntry) *Dataset {
	ds := &Dataset{
		sleep:          append([]domain.SleepNight(nil), sleep...),
		activity:       append([]domain.ActivityDay(nil), activity...),
		stress:         append([]domain.StressDay(nil), stress...),
		feedback:       append([]domain.FeedbackEntry(nil), feedback...),
		activityByDate: make(map[domain.Date][]domain.ActivityDay),
		stressByDate:   make(map[domain.Date][]domain.StressDay),
	}

	sort.SliceStable(ds.sleep, func(i, j int) bool {
		return ds.sleep[i].Start.Before(ds.sleep[j].Start)
	})
	for _, a := range ds.activity {
		ds.activityByDate[a.Date] = append(ds.activityByDate[a.Date], a)
	}
	for _, s := range ds.stress {
		ds.stressByDate[s.Date] = append(ds.stressByDate[s.Date], s)
	}

	return ds
}

// Sleep returns the nights ordered by start. Callers must not modify it.
func (d *Dataset) Sleep() []domain.SleepNight {
	if d == nil {
		return nil
	}
	return d.sleep
}

// Activity returns the activity days. Callers must not modify it.
func (d *Dataset) Activity() []domain.ActivityDay {
	if d == nil {
		return nil
	}
	return d.activity
}

// Stress returns the stress days. Callers must not modify it.
func (d *Dataset) Stress() []domain.StressDay {
	if d == nil {
		return nil
	}
	return d.stress
}

// Feedback returns the feedback entries. Callers must not modify it.
func (d *Dataset) Feedback() []domain.FeedbackEntry {
	if d == nil {
		return nil
	}
	return d.feedback
}
