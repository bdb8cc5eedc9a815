package domain

import "time"

// SleepSummary holds averages over all loaded nights.
// @Description Average duration, efficiency and stage minutes across nights.
type SleepSummary struct {
	// Number of nights averaged
	NightsAnalyzed int `json:"nights_analyzed" example:"3"`
	// Average duration in minutes
	AverageDuration float64 `json:"average_duration" example:"495"`
	// Average duration in hours (2 decimals)
	AverageDurationHours float64 `json:"average_duration_hours" example:"8.25"`
	// Average efficiency percent over nights that report one
	AverageEfficiency float64 `json:"average_efficiency" example:"85"`
	// Stage averages in minutes and hours, over nights with a stage breakdown
	AverageDeepSleep       float64 `json:"average_deep_sleep" example:"103.33"`
	AverageDeepSleepHours  float64 `json:"average_deep_sleep_hours" example:"1.72"`
	AverageLightSleep      float64 `json:"average_light_sleep" example:"240"`
	AverageLightSleepHours float64 `json:"average_light_sleep_hours" example:"4"`
	AverageREMSleep        float64 `json:"average_rem_sleep" example:"80"`
	AverageREMSleepHours   float64 `json:"average_rem_sleep_hours" example:"1.33"`
	AverageAwakeTime       float64 `json:"average_awake_time" example:"48.33"`
	AverageAwakeTimeHours  float64 `json:"average_awake_time_hours" example:"0.81"`
}

// OptimalBasis names which nights an OptimalSleep estimate came from.
type OptimalBasis string

const (
	// OptimalBasisDefault means too few nights; fixed fallback values.
	OptimalBasisDefault OptimalBasis = "default"
	// OptimalBasisFeedback means only nights on good feedback days were used.
	OptimalBasisFeedback OptimalBasis = "feedback"
	// OptimalBasisAllNights means every loaded night was used.
	OptimalBasisAllNights OptimalBasis = "all_nights"
)

// OptimalSleep is the inferred representative bedtime, wake time and duration.
// @Description Inferred optimal sleep schedule.
type OptimalSleep struct {
	// Bedtime (HH:MM, 00-23 hours)
	OptimalBedtime string `json:"optimal_bedtime" example:"23:05"`
	// Wake time (HH:MM)
	OptimalWaketime string `json:"optimal_waketime" example:"06:50"`
	// Duration in minutes
	OptimalDuration float64 `json:"optimal_duration" example:"465"`
	// Duration in hours (2 decimals)
	OptimalDurationHours float64 `json:"optimal_duration_hours" example:"7.75"`
	// Number of nights in the working set (0 for the fallback)
	NightsUsed int `json:"nights_used" example:"5"`
	// Which nights were used
	Basis OptimalBasis `json:"basis" example:"feedback" enums:"default,feedback,all_nights"`
}

// TrendLabel classifies short-term duration drift.
type TrendLabel string

const (
	TrendStable           TrendLabel = "stable"
	TrendImproving        TrendLabel = "improving"
	TrendDeclining        TrendLabel = "declining"
	TrendInsufficientData TrendLabel = "insufficient_data"
)

// SleepTrends reports duration drift inside a trailing window.
// @Description Weekly and window-over-window change in sleep duration.
type SleepTrends struct {
	Trend TrendLabel `json:"trend" example:"improving" enums:"stable,improving,declining,insufficient_data"`
	// Last 7 days minus the 7 days before, in minutes
	WeeklyChange      float64 `json:"weekly_change" example:"22.5"`
	WeeklyChangeHours float64 `json:"weekly_change_hours" example:"0.38"`
	// Window minus the preceding equal-length window, in minutes
	MonthlyChange      float64 `json:"monthly_change" example:"-4"`
	MonthlyChangeHours float64 `json:"monthly_change_hours" example:"-0.07"`
	// Window length in days
	WindowDays int `json:"window_days" example:"30"`
	// Nights whose start falls in the window
	NightsInWindow int `json:"nights_in_window" example:"28"`
	// Upper bound of the window
	ReferenceTime time.Time `json:"reference_time" example:"2024-01-31T08:00:00Z"`
}

// ActivityCorrelation holds Pearson coefficients between activity and sleep.
// @Description Correlation of steps / active minutes with sleep duration and efficiency.
type ActivityCorrelation struct {
	StepsDuration           float64 `json:"steps_duration" example:"0.42"`
	ActiveMinutesDuration   float64 `json:"active_minutes_duration" example:"0.35"`
	StepsEfficiency         float64 `json:"steps_efficiency" example:"0.12"`
	ActiveMinutesEfficiency float64 `json:"active_minutes_efficiency" example:"0.08"`
	// Sleep/activity rows matched by date
	JoinedDays int `json:"joined_days" example:"14"`
	// Two-sided p-value per coefficient; omitted for placeholders
	PValues map[string]float64 `json:"p_values,omitempty"`
}

// StressCorrelation holds Pearson coefficients between stress and sleep.
// @Description Correlation of average stress with sleep duration and efficiency.
type StressCorrelation struct {
	StressDuration   float64            `json:"stress_duration" example:"-0.51"`
	StressEfficiency float64            `json:"stress_efficiency" example:"-0.22"`
	JoinedDays       int                `json:"joined_days" example:"14"`
	PValues          map[string]float64 `json:"p_values,omitempty"`
}

// Correlations groups per-series results. A nil series was not supplied.
// @Description Cross-metric correlations keyed by series.
type Correlations struct {
	Activity *ActivityCorrelation `json:"activity_correlation,omitempty"`
	Stress   *StressCorrelation   `json:"stress_correlation,omitempty"`
}

// ComprehensiveAnalysis is the composite result of all analyzers.
// @Description Summary, optimal schedule, trends and correlations in one payload.
type ComprehensiveAnalysis struct {
	Summary      SleepSummary `json:"summary"`
	OptimalSleep OptimalSleep `json:"optimal_sleep"`
	Trends       SleepTrends  `json:"trends"`
	Correlations Correlations `json:"correlations"`
}

// NarrativeInsights is the structured output from the LLM.
// @Description LLM-generated explanation of an analysis.
type NarrativeInsights struct {
	Summary      string   `json:"summary" example:"Your sleep has lengthened over the last week..."`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsResponse pairs an analysis with its narrative.
// @Description Analysis plus LLM narrative.
type InsightsResponse struct {
	Window   AnalysisWindow        `json:"window"`
	Analysis ComprehensiveAnalysis `json:"analysis"`
	Insights NarrativeInsights     `json:"insights"`
	// Trace ID of the request, when tracing is enabled
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// AnalysisWindow is the inclusive date range records were fetched for.
type AnalysisWindow struct {
	From Date `json:"from" swaggertype:"string" example:"2024-01-01"`
	To   Date `json:"to" swaggertype:"string" example:"2024-01-31"`
}

// UserAnalysisResponse is a stored-data analysis with its fetch window.
// @Description Comprehensive analysis of a user's stored records.
type UserAnalysisResponse struct {
	Window AnalysisWindow `json:"window"`
	ComprehensiveAnalysis
}
