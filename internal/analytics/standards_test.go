package analytics

import (
	"math"
	"testing"

	"github.com/meltforce/ironlog/internal/models"
)

// TestLadderShape verifies every published ladder has exactly six tiers with
// strictly increasing thresholds, for both genders.
func TestLadderShape(t *testing.T) {
	s := NewStandards()
	for exerciseID := range s.index {
		for _, gender := range []models.Gender{models.GenderMale, models.GenderFemale} {
			ladder := s.Ladder(exerciseID, gender)
			if ladder == nil {
				t.Errorf("%s/%s: no ladder", exerciseID, gender)
				continue
			}
			if len(ladder.Standards) != tierCount {
				t.Errorf("%s/%s: %d tiers, want %d", exerciseID, gender, len(ladder.Standards), tierCount)
				continue
			}
			for i := 1; i < len(ladder.Standards); i++ {
				if ladder.Standards[i].Multiplier <= ladder.Standards[i-1].Multiplier {
					t.Errorf("%s/%s: tier %s (%v) not above %s (%v)",
						exerciseID, gender,
						ladder.Standards[i].Level, ladder.Standards[i].Multiplier,
						ladder.Standards[i-1].Level, ladder.Standards[i-1].Multiplier)
				}
			}
			for _, std := range ladder.Standards {
				if std.Description == "" || std.Recommendation == "" {
					t.Errorf("%s/%s/%s: missing description or recommendation", exerciseID, gender, std.Level)
				}
			}
		}
	}
}

func TestClassifyWeightBased(t *testing.T) {
	s := NewStandards()

	tests := []struct {
		name         string
		gender       models.Gender
		bodyWeightKg float64
		best1RM      float64
		wantLevel    Tier
		wantNext     *Tier
		wantPct      float64
	}{
		{
			// 80kg male, squat 1RM 140: Intermediate at 120, Advanced at 160.
			name: "between intermediate and advanced", gender: models.GenderMale,
			bodyWeightKg: 80, best1RM: 140,
			wantLevel: TierIntermediate, wantNext: tierPtr(TierAdvanced), wantPct: 50,
		},
		{
			name: "exactly on a threshold", gender: models.GenderMale,
			bodyWeightKg: 80, best1RM: 160,
			wantLevel: TierAdvanced, wantNext: tierPtr(TierElite), wantPct: 0,
		},
		{
			name: "top tier has no next level", gender: models.GenderMale,
			bodyWeightKg: 80, best1RM: 300,
			wantLevel: TierWorldClass, wantNext: nil, wantPct: 100,
		},
		{
			name: "below beginner still classifies", gender: models.GenderFemale,
			bodyWeightKg: 60, best1RM: 20,
			wantLevel: TierBeginner, wantNext: tierPtr(TierNovice), wantPct: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := s.Classify("barbell-back-squat", metrics(tt.gender, tt.bodyWeightKg), tt.best1RM)
			if c == nil {
				t.Fatal("Classify returned nil")
			}
			if c.Level != tt.wantLevel {
				t.Errorf("Level = %s, want %s", c.Level, tt.wantLevel)
			}
			switch {
			case tt.wantNext == nil && c.NextLevel != nil:
				t.Errorf("NextLevel = %s, want none", *c.NextLevel)
			case tt.wantNext != nil && (c.NextLevel == nil || *c.NextLevel != *tt.wantNext):
				t.Errorf("NextLevel = %v, want %s", c.NextLevel, *tt.wantNext)
			}
			if math.Abs(c.ProgressPct-tt.wantPct) > 0.001 {
				t.Errorf("ProgressPct = %.2f, want %.2f", c.ProgressPct, tt.wantPct)
			}
			if c.ProgressPct < 0 || c.ProgressPct > 100 {
				t.Errorf("ProgressPct %v outside [0,100]", c.ProgressPct)
			}
		})
	}
}

func TestClassifyRepBased(t *testing.T) {
	s := NewStandards()

	// 10 pull-ups, male: Intermediate threshold is exactly 10, Advanced 15.
	c := s.Classify("pull-up", metrics(models.GenderMale, 82), 10)
	if c == nil {
		t.Fatal("Classify returned nil")
	}
	if c.Level != TierIntermediate {
		t.Errorf("Level = %s, want %s", c.Level, TierIntermediate)
	}
	if !c.RepBased {
		t.Error("RepBased = false, want true")
	}
	if c.NextLevel == nil || *c.NextLevel != TierAdvanced {
		t.Errorf("NextLevel = %v, want %s", c.NextLevel, TierAdvanced)
	}
	if math.Abs(c.ProgressPct-0) > 0.001 {
		t.Errorf("ProgressPct = %.2f, want 0", c.ProgressPct)
	}

	// Rep thresholds are absolute: bodyweight must not scale them.
	heavier := s.Classify("pull-up", metrics(models.GenderMale, 120), 10)
	if heavier == nil || heavier.Level != c.Level {
		t.Errorf("bodyweight changed rep-based level: %+v vs %+v", heavier, c)
	}
}

func TestClassifyCannotClassify(t *testing.T) {
	s := NewStandards()
	gender := models.GenderMale
	weight := 80.0

	tests := []struct {
		name       string
		exerciseID string
		metrics    models.BodyMetrics
	}{
		{name: "missing gender", exerciseID: "deadlift", metrics: models.BodyMetrics{BodyWeightKg: &weight}},
		{name: "missing bodyweight", exerciseID: "deadlift", metrics: models.BodyMetrics{Gender: &gender}},
		{name: "no published table", exerciseID: "seated-cable-row", metrics: metrics(gender, weight)},
		{name: "unknown exercise", exerciseID: "cossack-squat", metrics: metrics(gender, weight)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := s.Classify(tt.exerciseID, tt.metrics, 180); c != nil {
				t.Errorf("Classify = %+v, want nil", c)
			}
		})
	}
}

func TestHasStandards(t *testing.T) {
	s := NewStandards()
	if !s.HasStandards("barbell-bench-press") {
		t.Error("HasStandards(barbell-bench-press) = false")
	}
	if s.HasStandards("leg-press") {
		t.Error("HasStandards(leg-press) = true, no table is published for it")
	}
	if s.Ladder("leg-press", models.GenderMale) != nil {
		t.Error("Ladder for exercise without standards should be nil")
	}
}

func tierPtr(t Tier) *Tier { return &t }
