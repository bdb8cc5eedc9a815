package analysis

import (
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/stats"
)

// Summary averages duration, efficiency and stage minutes over all nights.
// An empty dataset yields an all-zero summary.
func Summary(ds *Dataset) domain.SleepSummary {
	nights := ds.Sleep()
	if len(nights) == 0 {
		return domain.SleepSummary{}
	}

	durations := make([]float64, 0, len(nights))
	var efficiencies, deep, light, rem, awake []float64
	for _, n := range nights {
		durations = append(durations, n.DurationMinutes)
		if n.Efficiency != nil {
			efficiencies = append(efficiencies, *n.Efficiency)
		}
		if n.Stages != nil {
			deep = append(deep, n.Stages.Deep)
			light = append(light, n.Stages.Light)
			rem = append(rem, n.Stages.REM)
			awake = append(awake, n.Stages.Awake)
		}
	}

	avgDuration := stats.Mean(durations)
	avgDeep := stats.Mean(deep)
	avgLight := stats.Mean(light)
	avgREM := stats.Mean(rem)
	avgAwake := stats.Mean(awake)

	return domain.SleepSummary{
		NightsAnalyzed:         len(nights),
		AverageDuration:        avgDuration,
		AverageDurationHours:   stats.MinutesToHours(avgDuration),
		AverageEfficiency:      stats.Mean(efficiencies),
		AverageDeepSleep:       avgDeep,
		AverageDeepSleepHours:  stats.MinutesToHours(avgDeep),
		AverageLightSleep:      avgLight,
		AverageLightSleepHours: stats.MinutesToHours(avgLight),
		AverageREMSleep:        avgREM,
		AverageREMSleepHours:   stats.MinutesToHours(avgREM),
		AverageAwakeTime:       avgAwake,
		AverageAwakeTimeHours:  stats.MinutesToHours(avgAwake),
	}
}
