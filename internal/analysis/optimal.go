package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/stats"
)

const (
	// MinOptimalNights is the fewest nights an estimate is inferred from.
	MinOptimalNights = 3

	DefaultBedtime         = "23:00"
	DefaultWaketime        = "07:00"
	DefaultDurationMinutes = 480
)

// OptimalSleep estimates a representative bedtime, wake time and duration.
//
// With feedback, only nights on good days are used, provided there are at
// least MinOptimalNights of them; otherwise every night is used. Clock
// times are plain means of fractional hour-of-day, so nights that straddle
// midnight inconsistently (23:30 next to 00:30) pull the mean toward midday.
// That bias is a known property of the estimate.
func OptimalSleep(ds *Dataset) domain.OptimalSleep {
	nights := ds.Sleep()
	if len(nights) < MinOptimalNights {
		return domain.OptimalSleep{
			OptimalBedtime:       DefaultBedtime,
			OptimalWaketime:      DefaultWaketime,
			OptimalDuration:      DefaultDurationMinutes,
			OptimalDurationHours: stats.MinutesToHours(DefaultDurationMinutes),
			Basis:                domain.OptimalBasisDefault,
		}
	}

	working, basis := workingSet(nights, ds.Feedback())

	bedtimes := make([]float64, 0, len(working))
	waketimes := make([]float64, 0, len(working))
	durations := make([]float64, 0, len(working))
	for _, n := range working {
		bedtimes = append(bedtimes, hourOfDay(n.Start))
		waketimes = append(waketimes, hourOfDay(n.End))
		durations = append(durations, n.DurationMinutes)
	}

	avgDuration := stats.Mean(durations)
	return domain.OptimalSleep{
		OptimalBedtime:       formatClock(stats.Mean(bedtimes)),
		OptimalWaketime:      formatClock(stats.Mean(waketimes)),
		OptimalDuration:      avgDuration,
		OptimalDurationHours: stats.MinutesToHours(avgDuration),
		NightsUsed:           len(working),
		Basis:                basis,
	}
}

// workingSet picks the nights on good feedback days when there are enough
// of them, and all nights otherwise.
func workingSet(nights []domain.SleepNight, feedback []domain.FeedbackEntry) ([]domain.SleepNight, domain.OptimalBasis) {
	if len(feedback) == 0 {
		return nights, domain.OptimalBasisAllNights
	}

	good := make(map[domain.Date]bool)
	for _, f := range feedback {
		if f.IsGoodDay() {
			good[f.Date] = true
		}
	}

	var selected []domain.SleepNight
	for _, n := range nights {
		if good[n.Date] {
			selected = append(selected, n)
		}
	}
	if len(selected) >= MinOptimalNights {
		return selected, domain.OptimalBasisFeedback
	}
	return nights, domain.OptimalBasisAllNights
}

// hourOfDay returns hour + minute/60 on t's own clock. Seconds are ignored.
func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// formatClock renders fractional hours as HH:MM, wrapping into 00:00-23:59.
func formatClock(hours float64) string {
	// the epsilon keeps 4.999999 minutes from truncating to 4
	minutes := int(math.Floor(hours*60 + 1e-6))
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
