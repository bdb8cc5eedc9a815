package analysis

import (
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/stats"
)

const (
	// MinCorrelationNights is the fewest nights correlations are attempted on.
	MinCorrelationNights = 5
	// MinJoinedRows is the fewest date-joined rows a series is correlated on.
	MinJoinedRows = 5
)

// Correlations relates activity and stress to sleep duration and efficiency
// by joining on calendar date. A series that was not supplied is left nil;
// a supplied series with too few joined rows gets a zero placeholder.
// Fewer than MinCorrelationNights nights zeroes both series.
func Correlations(ds *Dataset) domain.Correlations {
	nights := ds.Sleep()
	if len(nights) < MinCorrelationNights {
		return domain.Correlations{
			Activity: &domain.ActivityCorrelation{},
			Stress:   &domain.StressCorrelation{},
		}
	}

	var result domain.Correlations
	if len(ds.Activity()) > 0 {
		result.Activity = activityCorrelation(nights, ds.activityByDate)
	}
	if len(ds.Stress()) > 0 {
		result.Stress = stressCorrelation(nights, ds.stressByDate)
	}
	return result
}

// pairs accumulates (x, y) observations where both values are present.
type pairs struct {
	x, y []float64
}

func (p *pairs) add(x, y *float64) {
	if x == nil || y == nil {
		return
	}
	p.x = append(p.x, *x)
	p.y = append(p.y, *y)
}

// coefficient returns r and records its p-value under name.
func (p *pairs) coefficient(name string, pValues map[string]float64) float64 {
	r := stats.Pearson(p.x, p.y)
	pValues[name] = stats.PValue(r, len(p.x))
	return r
}

func activityCorrelation(nights []domain.SleepNight, byDate map[domain.Date][]domain.ActivityDay) *domain.ActivityCorrelation {
	var stepsDuration, activeDuration, stepsEfficiency, activeEfficiency pairs
	joined := 0
	for i := range nights {
		n := &nights[i]
		for _, a := range byDate[n.Date] {
			joined++
			duration := n.DurationMinutes
			stepsDuration.add(a.Steps, &duration)
			activeDuration.add(a.ActiveMinutes, &duration)
			stepsEfficiency.add(a.Steps, n.Efficiency)
			activeEfficiency.add(a.ActiveMinutes, n.Efficiency)
		}
	}

	result := &domain.ActivityCorrelation{JoinedDays: joined}
	if joined < MinJoinedRows {
		return result
	}

	result.PValues = make(map[string]float64, 4)
	result.StepsDuration = stepsDuration.coefficient("steps_duration", result.PValues)
	result.ActiveMinutesDuration = activeDuration.coefficient("active_minutes_duration", result.PValues)
	result.StepsEfficiency = stepsEfficiency.coefficient("steps_efficiency", result.PValues)
	result.ActiveMinutesEfficiency = activeEfficiency.coefficient("active_minutes_efficiency", result.PValues)
	return result
}

func stressCorrelation(nights []domain.SleepNight, byDate map[domain.Date][]domain.StressDay) *domain.StressCorrelation {
	var stressDuration, stressEfficiency pairs
	joined := 0
	for i := range nights {
		n := &nights[i]
		for _, s := range byDate[n.Date] {
			joined++
			duration := n.DurationMinutes
			stressDuration.add(s.AverageScore, &duration)
			stressEfficiency.add(s.AverageScore, n.Efficiency)
		}
	}

	result := &domain.StressCorrelation{JoinedDays: joined}
	if joined < MinJoinedRows {
		return result
	}

	result.PValues = make(map[string]float64, 2)
	result.StressDuration = stressDuration.coefficient("stress_duration", result.PValues)
	result.StressEfficiency = stressEfficiency.coefficient("stress_efficiency", result.PValues)
	return result
}
