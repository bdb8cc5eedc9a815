package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{7}, 7},
		{"several", []float64{495, 435, 465}, 465},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	if got := Variance(nil); got != 0 {
		t.Errorf("Variance(nil) = %v, want 0", got)
	}
	if got := Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-4) > 1e-9 {
		t.Errorf("Variance = %v, want 4", got)
	}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{
			name: "perfect positive",
			x:    []float64{1000, 2000, 3000, 4000, 5000, 6000},
			y:    []float64{400, 410, 420, 430, 440, 450},
			want: 1,
		},
		{
			name: "perfect negative",
			x:    []float64{1, 2, 3, 4, 5},
			y:    []float64{10, 8, 6, 4, 2},
			want: -1,
		},
		{
			name: "zero variance",
			x:    []float64{5, 5, 5, 5, 5},
			y:    []float64{1, 2, 3, 4, 5},
			want: 0,
		},
		{
			name: "length mismatch",
			x:    []float64{1, 2, 3},
			y:    []float64{1, 2},
			want: 0,
		},
		{
			name: "too few points",
			x:    []float64{1},
			y:    []float64{2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pearson(tt.x, tt.y)
			if math.IsNaN(got) {
				t.Fatalf("Pearson returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Pearson = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPValue(t *testing.T) {
	if got := PValue(0.5, 2); got != 1 {
		t.Errorf("PValue with no degrees of freedom = %v, want 1", got)
	}
	if got := PValue(1, 10); got != 0 {
		t.Errorf("PValue(1, 10) = %v, want 0", got)
	}
	if got := PValue(0, 10); math.Abs(got-1) > 1e-9 {
		t.Errorf("PValue(0, 10) = %v, want 1", got)
	}

	strong := PValue(0.9, 20)
	weak := PValue(0.1, 20)
	if !(strong < 0.001) {
		t.Errorf("PValue(0.9, 20) = %v, expected < 0.001", strong)
	}
	if !(weak > 0.5) {
		t.Errorf("PValue(0.1, 20) = %v, expected > 0.5", weak)
	}
}

func TestMinutesToHours(t *testing.T) {
	tests := []struct {
		minutes float64
		want    float64
	}{
		{495, 8.25},
		{480, 8},
		{103.3333, 1.72},
		{0, 0},
		{-22.5, -0.38},
	}

	for _, tt := range tests {
		if got := MinutesToHours(tt.minutes); got != tt.want {
			t.Errorf("MinutesToHours(%v) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}
