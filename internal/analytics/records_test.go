package analytics

import (
	"math"
	"reflect"
	"testing"

	"github.com/meltforce/ironlog/internal/models"
)

// TestProgressSeriesMonotone verifies the running-best series never
// decreases: a weaker later session keeps the earlier maximum.
func TestProgressSeriesMonotone(t *testing.T) {
	history := []models.SessionRecord{
		session(1, "barbell-bench-press", day(0), set(100, 5)),
		session(1, "barbell-bench-press", day(7), set(90, 8)),
	}

	points := ProgressSeries(history)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	want := 100 * (1 + 5.0/30)
	for i, p := range points {
		if math.Abs(p.Max1RM-want) > 0.001 {
			t.Errorf("point %d: Max1RM = %.4f, want %.4f", i, p.Max1RM, want)
		}
	}
	if !points[0].Date.Equal(day(0)) || !points[1].Date.Equal(day(7)) {
		t.Errorf("dates not taken from sessions: %v, %v", points[0].Date, points[1].Date)
	}
}

func TestProgressSeries(t *testing.T) {
	tests := []struct {
		name    string
		history []models.SessionRecord
		want    []float64
	}{
		{
			name: "increasing history steps up",
			history: []models.SessionRecord{
				session(1, "deadlift", day(0), set(100, 5)),
				session(1, "deadlift", day(7), set(120, 3)),
			},
			want: []float64{116.6667, 132.0},
		},
		{
			name: "warmups never move the series",
			history: []models.SessionRecord{
				session(1, "deadlift", day(0), set(100, 1)),
				session(1, "deadlift", day(7), warmup(200, 5), set(60, 5)),
			},
			want: []float64{103.3333, 103.3333},
		},
		{
			name: "all-warmup session holds the running max",
			history: []models.SessionRecord{
				session(1, "deadlift", day(0), set(100, 5)),
				session(1, "deadlift", day(3), warmup(60, 10)),
			},
			want: []float64{116.6667, 116.6667},
		},
		{
			name:    "empty history",
			history: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := ProgressSeries(tt.history)
			if len(points) != len(tt.want) {
				t.Fatalf("got %d points, want %d", len(points), len(tt.want))
			}
			for i, w := range tt.want {
				if math.Abs(points[i].Max1RM-w) > 0.001 {
					t.Errorf("point %d: Max1RM = %.4f, want %.4f", i, points[i].Max1RM, w)
				}
			}
		})
	}
}

func TestRecordPoints(t *testing.T) {
	history := []models.SessionRecord{
		session(1, "barbell-back-squat", day(0), set(100, 5), set(100, 8), set(110, 2)),
		session(1, "barbell-back-squat", day(7), set(100, 10), warmup(120, 5)),
	}

	points := RecordPoints(history)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3 (110@d0, 100@d7, 100@d0)", len(points))
	}

	// Heaviest first, newest first within a weight.
	if points[0].WeightKg != 110 || points[0].MaxReps != 2 {
		t.Errorf("points[0] = %+v, want 110kg x2", points[0])
	}
	if points[1].WeightKg != 100 || points[1].MaxReps != 10 {
		t.Errorf("points[1] = %+v, want 100kg x10 (newer day)", points[1])
	}
	if points[2].WeightKg != 100 || points[2].MaxReps != 8 {
		t.Errorf("points[2] = %+v, want 100kg x8 (best of day 0)", points[2])
	}

	want1RM := Epley(100, 10)
	if math.Abs(points[1].Estimated1RM-want1RM) > 0.001 {
		t.Errorf("points[1].Estimated1RM = %.4f, want %.4f", points[1].Estimated1RM, want1RM)
	}
}

func TestComputeBests(t *testing.T) {
	history := []models.SessionRecord{
		// Session volume 100*5 + 90*10 = 1400; set volume best 900.
		session(1, "barbell-bench-press", day(0), set(100, 5), set(90, 10)),
		// Heavier single but smaller session volume (605).
		session(1, "barbell-bench-press", day(7), set(110, 1), set(90, 5), warmup(60, 12)),
	}

	bests := ComputeBests(history)

	if bests.HeaviestWeightKg != 110 {
		t.Errorf("HeaviestWeightKg = %v, want 110", bests.HeaviestWeightKg)
	}
	want1RM := Epley(90, 10)
	if math.Abs(bests.Best1RM-want1RM) > 0.001 {
		t.Errorf("Best1RM = %.4f, want %.4f (90x10)", bests.Best1RM, want1RM)
	}
	if bests.BestReps != 10 {
		t.Errorf("BestReps = %d, want 10", bests.BestReps)
	}
	if bests.BestSetVolume == nil || bests.BestSetVolume.Volume != 900 {
		t.Errorf("BestSetVolume = %+v, want 900 (90x10)", bests.BestSetVolume)
	}
	if bests.BestSessionVolume != 1400 {
		t.Errorf("BestSessionVolume = %v, want 1400", bests.BestSessionVolume)
	}
}

// TestComputeBestsIdempotent verifies recomputation over identical history
// yields identical results: no hidden incremental state.
func TestComputeBestsIdempotent(t *testing.T) {
	history := []models.SessionRecord{
		session(1, "deadlift", day(0), set(140, 5), set(150, 3)),
		session(1, "deadlift", day(7), set(160, 1), bodyweightSet(12)),
	}

	first := ComputeBests(history)
	second := ComputeBests(history)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("recomputation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestComputeBestsTieBreak verifies the earliest set wins a volume tie.
func TestComputeBestsTieBreak(t *testing.T) {
	history := []models.SessionRecord{
		session(1, "barbell-row", day(0), set(80, 10)),  // volume 800
		session(1, "barbell-row", day(7), set(100, 8)), // volume 800 again
	}

	bests := ComputeBests(history)
	if bests.BestSetVolume == nil {
		t.Fatal("BestSetVolume is nil")
	}
	if bests.BestSetVolume.WeightKg != 80 || bests.BestSetVolume.Reps != 10 {
		t.Errorf("BestSetVolume = %+v, want earliest occurrence 80x10", bests.BestSetVolume)
	}
}

func TestComputeBestsEmptyAndMalformed(t *testing.T) {
	zero := 0.0
	negReps := -4
	history := []models.SessionRecord{
		session(1, "dip", day(0),
			models.SetEntry{WeightKg: &zero, Reps: intPtr(10)},
			models.SetEntry{WeightKg: nil, Reps: nil},
			models.SetEntry{WeightKg: intFloatPtr(50), Reps: &negReps},
		),
	}

	bests := ComputeBests(history)
	if bests.Best1RM != 0 || bests.HeaviestWeightKg != 0 || bests.BestSetVolume != nil {
		t.Errorf("malformed sets leaked into bests: %+v", bests)
	}
}

func intFloatPtr(v float64) *float64 { return &v }
