// Package stats holds the small set of statistics the analyzers share.
// Degenerate inputs (empty, mismatched, zero variance) yield 0 rather than
// an error or NaN.
package stats

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mean returns the arithmetic mean, or 0 for no values.
func Mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil || math.IsNaN(m) {
		return 0
	}
	return m
}

// Variance returns the population variance, or 0 for no values.
func Variance(values []float64) float64 {
	v, err := stats.PopulationVariance(values)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// Pearson returns the Pearson correlation coefficient of x and y.
// It returns 0 when the series differ in length, have fewer than two
// points, or either has zero variance.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	if Variance(x) == 0 || Variance(y) == 0 {
		return 0
	}
	r, err := stats.Correlation(x, y)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	// clamp rounding overshoot
	return math.Max(-1, math.Min(1, r))
}

// PValue returns the two-sided p-value for a Pearson coefficient r over n
// pairs, using Student's t with n-2 degrees of freedom.
func PValue(r float64, n int) float64 {
	df := float64(n - 2)
	if df <= 0 || math.IsNaN(r) {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - tDist.CDF(math.Abs(t)))
	return math.Max(0, math.Min(1, p))
}

// Round rounds x half away from zero to the given decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// MinutesToHours converts minutes to hours rounded to 2 decimals.
func MinutesToHours(minutes float64) float64 {
	return Round(minutes/60, 2)
}
