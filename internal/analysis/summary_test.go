package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/stats"
)

func TestSummary_Empty(t *testing.T) {
	for _, ds := range []*Dataset{nil, NewDataset(nil, nil, nil, nil)} {
		got := Summary(ds)
		if got != (domain.SleepSummary{}) {
			t.Errorf("Summary(empty) = %+v, want zero value", got)
		}
	}
}

func TestSummary_ConstantDuration(t *testing.T) {
	nights := []domain.SleepNight{
		nightAt(2024, time.March, 1, 23, 0, 495),
		nightAt(2024, time.March, 2, 23, 0, 495),
		nightAt(2024, time.March, 3, 23, 0, 495),
	}

	got := Summary(NewDataset(nights, nil, nil, nil))

	if got.AverageDuration != 495 {
		t.Errorf("AverageDuration = %v, want 495", got.AverageDuration)
	}
	if got.AverageDurationHours != 8.25 {
		t.Errorf("AverageDurationHours = %v, want 8.25", got.AverageDurationHours)
	}
	if got.NightsAnalyzed != 3 {
		t.Errorf("NightsAnalyzed = %d, want 3", got.NightsAnalyzed)
	}
	if got.AverageEfficiency != 0 || got.AverageDeepSleep != 0 {
		t.Errorf("absent efficiency/stages should average to 0, got %+v", got)
	}
}

func TestSummary_SampleBatch(t *testing.T) {
	ds, err := Load(sampleBatch())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := Summary(ds)

	if got.AverageDuration != 465 {
		t.Errorf("AverageDuration = %v, want 465", got.AverageDuration)
	}
	if got.AverageDurationHours != 7.75 {
		t.Errorf("AverageDurationHours = %v, want 7.75", got.AverageDurationHours)
	}
	if got.AverageEfficiency != 85 {
		t.Errorf("AverageEfficiency = %v, want 85", got.AverageEfficiency)
	}
	if math.Abs(got.AverageDeepSleep-103.3333) > 0.001 {
		t.Errorf("AverageDeepSleep = %v, want ~103.33", got.AverageDeepSleep)
	}
	if got.AverageDeepSleepHours != 1.72 {
		t.Errorf("AverageDeepSleepHours = %v, want 1.72", got.AverageDeepSleepHours)
	}
	if got.AverageAwakeTimeHours != 0.81 {
		t.Errorf("AverageAwakeTimeHours = %v, want 0.81", got.AverageAwakeTimeHours)
	}
}

func TestSummary_StagesAveragedOverNightsThatHaveThem(t *testing.T) {
	withStages := func(n domain.SleepNight, deep float64) domain.SleepNight {
		n.Stages = &domain.StageMinutes{Deep: deep, Light: 200, REM: 90, Awake: 20}
		return n
	}
	nights := []domain.SleepNight{
		withStages(nightAt(2024, time.March, 1, 23, 0, 480), 100),
		withStages(nightAt(2024, time.March, 2, 23, 0, 480), 120),
		nightAt(2024, time.March, 3, 23, 0, 480),
	}
	nights[0].Efficiency = f64(90)

	got := Summary(NewDataset(nights, nil, nil, nil))

	if got.AverageDeepSleep != 110 {
		t.Errorf("AverageDeepSleep = %v, want 110", got.AverageDeepSleep)
	}
	if got.AverageEfficiency != 90 {
		t.Errorf("AverageEfficiency = %v, want 90", got.AverageEfficiency)
	}
	if got.NightsAnalyzed != 3 {
		t.Errorf("NightsAnalyzed = %d, want 3", got.NightsAnalyzed)
	}
}

func TestSummary_HoursMatchRoundedMinutes(t *testing.T) {
	sets := [][]float64{
		{420, 431, 447},
		{301.7, 289.2, 512.9, 388.4},
		{61},
		{479.99, 480.01},
	}

	for _, durations := range sets {
		var nights []domain.SleepNight
		for i, d := range durations {
			nights = append(nights, nightAt(2024, time.April, i+1, 22, 30, d))
		}
		got := Summary(NewDataset(nights, nil, nil, nil))
		if want := stats.Round(got.AverageDuration/60, 2); got.AverageDurationHours != want {
			t.Errorf("durations %v: hours = %v, want %v", durations, got.AverageDurationHours, want)
		}
	}
}
