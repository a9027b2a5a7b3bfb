package analytics

import (
	"fmt"

	"github.com/meltforce/ironlog/internal/models"
)

// StrengthStandard is one rung of a ladder with its absolute threshold
// resolved where applicable (bodyweight * multiplier for weight-based
// exercises, rep count for rep-based ones).
type StrengthStandard struct {
	Level          Tier    `json:"level"`
	Multiplier     float64 `json:"multiplier"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}

// StandardsLadder is the full ordered six-tier table for one
// (exercise, gender), independent of any specific user.
type StandardsLadder struct {
	ExerciseID string             `json:"exercise_id"`
	Gender     models.Gender      `json:"gender"`
	RepBased   bool               `json:"rep_based"`
	Standards  []StrengthStandard `json:"standards"`
}

// Classification is the user-specific result: current tier, the next tier to
// chase (absent at the top), and progress toward it in percent.
type Classification struct {
	Level       Tier    `json:"level"`
	NextLevel   *Tier   `json:"next_level,omitempty"`
	ProgressPct float64 `json:"progress_pct"`
	RepBased    bool    `json:"rep_based"`
	Value       float64 `json:"value"`
}

// Standards is the startup-built lookup over the published threshold tables:
// ladders live in one arena slice and an index maps (exerciseID, gender) to
// an arena offset. Lookups after construction are read-only, so a single
// Standards value is safe for concurrent use.
type Standards struct {
	arena []standardsTable
	index map[string]map[models.Gender]int
}

// NewStandards builds the arena and index from the published tables. It
// panics on a malformed corpus (thresholds not strictly increasing or a
// duplicate table) since that is a programming error, not runtime input.
func NewStandards() *Standards {
	s := &Standards{
		arena: make([]standardsTable, 0, len(standardsData)),
		index: make(map[string]map[models.Gender]int),
	}
	for _, table := range standardsData {
		for i := 1; i < tierCount; i++ {
			if table.thresholds[i] <= table.thresholds[i-1] {
				panic(fmt.Sprintf("standards table %s/%s: thresholds not strictly increasing", table.exerciseID, table.gender))
			}
		}
		genders, ok := s.index[table.exerciseID]
		if !ok {
			genders = make(map[models.Gender]int, 2)
			s.index[table.exerciseID] = genders
		}
		if _, dup := genders[table.gender]; dup {
			panic(fmt.Sprintf("duplicate standards table %s/%s", table.exerciseID, table.gender))
		}
		genders[table.gender] = len(s.arena)
		s.arena = append(s.arena, table)
	}
	return s
}

// HasStandards reports whether the exercise has a published standards table.
func (s *Standards) HasStandards(exerciseID string) bool {
	_, ok := s.index[exerciseID]
	return ok
}

// RepBased reports whether the exercise's standards compare rep counts
// instead of estimated 1RM. False for exercises without standards.
func (s *Standards) RepBased(exerciseID string) bool {
	genders, ok := s.index[exerciseID]
	if !ok {
		return false
	}
	for _, off := range genders {
		return s.arena[off].repBased
	}
	return false
}

func (s *Standards) lookup(exerciseID string, gender models.Gender) (standardsTable, bool) {
	genders, ok := s.index[exerciseID]
	if !ok {
		return standardsTable{}, false
	}
	off, ok := genders[gender]
	if !ok {
		return standardsTable{}, false
	}
	return s.arena[off], true
}

// Ladder returns the ordered six-tier table for (exercise, gender), or nil
// when no table is published.
func (s *Standards) Ladder(exerciseID string, gender models.Gender) *StandardsLadder {
	table, ok := s.lookup(exerciseID, gender)
	if !ok {
		return nil
	}
	ladder := &StandardsLadder{
		ExerciseID: exerciseID,
		Gender:     gender,
		RepBased:   table.repBased,
		Standards:  make([]StrengthStandard, 0, tierCount),
	}
	for i, tier := range tiersAscending {
		ladder.Standards = append(ladder.Standards, StrengthStandard{
			Level:          tier,
			Multiplier:     table.thresholds[i],
			Description:    tierDescriptions[tier],
			Recommendation: tierRecommendations[tier],
		})
	}
	return ladder
}

// Classify maps a performance value onto the ladder for (exercise, gender,
// bodyweight). For weight-based exercises value is the best estimated 1RM and
// thresholds scale with bodyweight; for rep-based ones value is the best rep
// count against absolute thresholds. Returns nil when gender or bodyweight is
// missing or the exercise has no table: "cannot classify" is a defined
// result, not an error.
func (s *Standards) Classify(exerciseID string, metrics models.BodyMetrics, value float64) *Classification {
	if metrics.Gender == nil || !metrics.Gender.Valid() || metrics.BodyWeightKg == nil || *metrics.BodyWeightKg <= 0 {
		return nil
	}
	table, ok := s.lookup(exerciseID, *metrics.Gender)
	if !ok {
		return nil
	}

	threshold := func(i int) float64 {
		if table.repBased {
			return table.thresholds[i]
		}
		return *metrics.BodyWeightKg * table.thresholds[i]
	}

	// The user's level is the highest tier whose threshold is <= value.
	// Below the first threshold the user still classifies as Beginner; the
	// clamp pins their progress toward Novice at 0.
	level := 0
	for i := 0; i < tierCount; i++ {
		if value >= threshold(i) {
			level = i
		}
	}

	c := &Classification{
		Level:    tiersAscending[level],
		RepBased: table.repBased,
		Value:    value,
	}
	if level == tierCount-1 {
		c.ProgressPct = 100
		return c
	}
	next := tiersAscending[level+1]
	c.NextLevel = &next
	cur, nxt := threshold(level), threshold(level+1)
	c.ProgressPct = clampPct((value - cur) / (nxt - cur) * 100)
	return c
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
