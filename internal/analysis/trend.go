package analysis

import (
	"math"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/stats"
)

const (
	// DefaultTrendWindowDays is the trailing window used when none is given.
	DefaultTrendWindowDays = 30

	// MinTrendNights is the fewest in-window nights a trend is classified from.
	MinTrendNights = 7

	// StableThresholdMinutes: a weekly change strictly smaller in magnitude is stable.
	StableThresholdMinutes = 10.0

	weekDays = 7
)

// Trends classifies duration drift over the windowDays before now.
//
// Nights are bucketed by start instant. The weekly change compares
// [now-7d, now] with [now-14d, now-7d); the monthly change compares the
// whole window with the equal-length window preceding it. An empty bucket
// makes the corresponding change 0.
func Trends(ds *Dataset, windowDays int, now time.Time) domain.SleepTrends {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	result := domain.SleepTrends{
		Trend:         domain.TrendInsufficientData,
		WindowDays:    windowDays,
		ReferenceTime: now,
	}

	// Sleep() is ordered by start
	nights := ds.Sleep()
	window := startedIn(nights, cutoff, now, true)
	result.NightsInWindow = len(window)
	if len(window) < MinTrendNights {
		return result
	}

	weekAgo := now.AddDate(0, 0, -weekDays)
	twoWeeksAgo := now.AddDate(0, 0, -2*weekDays)
	lastWeek := startedIn(window, weekAgo, now, true)
	previousWeek := startedIn(window, twoWeeksAgo, weekAgo, false)
	previousWindow := startedIn(nights, cutoff.AddDate(0, 0, -windowDays), cutoff, false)

	weekly := meanDifference(lastWeek, previousWeek)
	monthly := meanDifference(window, previousWindow)

	result.Trend = classifyTrend(weekly)
	result.WeeklyChange = weekly
	result.WeeklyChangeHours = stats.MinutesToHours(weekly)
	result.MonthlyChange = monthly
	result.MonthlyChangeHours = stats.MinutesToHours(monthly)
	return result
}

// startedIn returns the nights whose start lies in [from, to], or in
// [from, to) when inclusiveEnd is false.
func startedIn(nights []domain.SleepNight, from, to time.Time, inclusiveEnd bool) []domain.SleepNight {
	var out []domain.SleepNight
	for _, n := range nights {
		if n.Start.Before(from) {
			continue
		}
		if n.Start.After(to) || (!inclusiveEnd && n.Start.Equal(to)) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// meanDifference is mean(a) - mean(b) of durations, or 0 if either is empty.
func meanDifference(a, b []domain.SleepNight) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return stats.Mean(durationsOf(a)) - stats.Mean(durationsOf(b))
}

func durationsOf(nights []domain.SleepNight) []float64 {
	out := make([]float64, len(nights))
	for i, n := range nights {
		out[i] = n.DurationMinutes
	}
	return out
}

func classifyTrend(weeklyChange float64) domain.TrendLabel {
	if math.Abs(weeklyChange) < StableThresholdMinutes {
		return domain.TrendStable
	}
	if weeklyChange > 0 {
		return domain.TrendImproving
	}
	return domain.TrendDeclining
}
