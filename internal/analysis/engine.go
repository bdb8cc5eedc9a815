// Package analysis derives summaries, an optimal schedule, trends and
// correlations from a batch of sleep, activity, stress and feedback records.
//
// Every analyzer is a pure function of a Dataset. Nothing is cached between
// calls and no wall clock is read: time-windowed analyzers take the
// reference instant explicitly.
package analysis

import (
	"fmt"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
)

// Options controls the time-windowed parts of a comprehensive analysis.
type Options struct {
	// WindowDays is the trend window; <= 0 means DefaultTrendWindowDays.
	WindowDays int
	// Now bounds the trend window. The zero value means the end of the
	// latest loaded night.
	Now time.Time
}

// Comprehensive runs every analyzer over ds.
func Comprehensive(ds *Dataset, opts Options) domain.ComprehensiveAnalysis {
	now := opts.Now
	if now.IsZero() {
		now = latestEnd(ds)
	}

	return domain.ComprehensiveAnalysis{
		Summary:      Summary(ds),
		OptimalSleep: OptimalSleep(ds),
		Trends:       Trends(ds, opts.WindowDays, now),
		Correlations: Correlations(ds),
	}
}

// Analyze loads batch and runs Comprehensive on it.
func Analyze(batch domain.RecordBatch, opts Options) (*domain.ComprehensiveAnalysis, error) {
	ds, err := Load(batch)
	if err != nil {
		return nil, err
	}
	result := Comprehensive(ds, opts)
	return &result, nil
}

func latestEnd(ds *Dataset) time.Time {
	var latest time.Time
	for _, n := range ds.Sleep() {
		if n.End.After(latest) {
			latest = n.End
		}
	}
	return latest
}

// Section names one analyzer.
type Section string

const (
	SectionSummary      Section = "summary"
	SectionOptimalSleep Section = "optimal-sleep"
	SectionTrends       Section = "trends"
	SectionCorrelations Section = "correlations"
)

// Sections lists every analyzer in output order.
var Sections = []Section{SectionSummary, SectionOptimalSleep, SectionTrends, SectionCorrelations}

// ParseSection accepts a section name; "optimal" is taken as optimal-sleep.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionSummary, SectionOptimalSleep, SectionTrends, SectionCorrelations:
		return Section(s), nil
	case "optimal":
		return SectionOptimalSleep, nil
	}
	return "", fmt.Errorf("%w: unknown analysis section %q", domain.ErrInvalidInput, s)
}

// Run executes a single analyzer over ds.
func Run(ds *Dataset, section Section, opts Options) (any, error) {
	switch section {
	case SectionSummary:
		return Summary(ds), nil
	case SectionOptimalSleep:
		return OptimalSleep(ds), nil
	case SectionTrends:
		now := opts.Now
		if now.IsZero() {
			now = latestEnd(ds)
		}
		return Trends(ds, opts.WindowDays, now), nil
	case SectionCorrelations:
		return Correlations(ds), nil
	}
	return nil, fmt.Errorf("%w: unknown analysis section %q", domain.ErrInvalidInput, section)
}
