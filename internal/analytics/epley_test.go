package analytics

import (
	"math"
	"testing"
)

func TestEpley(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{name: "100x5", weight: 100, reps: 5, want: 116.6667},
		{name: "single rep is the weight plus a thirtieth", weight: 100, reps: 1, want: 103.3333},
		{name: "higher reps dominate lighter weight", weight: 90, reps: 8, want: 114.0},
		{name: "zero reps excluded", weight: 100, reps: 0, want: 0},
		{name: "negative reps excluded", weight: 100, reps: -3, want: 0},
		{name: "zero weight excluded", weight: 0, reps: 10, want: 0},
		{name: "negative weight excluded", weight: -60, reps: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Epley(tt.weight, tt.reps)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Epley(%v, %d) = %.4f, want %.4f", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}
