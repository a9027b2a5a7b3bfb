package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meltforce/ironlog/internal/models"
)

// PR labels for the fixed record dimensions. Rep PRs carry the weight in the
// label itself ("Rep PR at 100kg").
const (
	LabelHeaviestWeight = "Heaviest Weight"
	LabelBest1RM        = "Best 1RM"
	LabelBestSetVolume  = "Best Set Volume"
	LabelSessionVolume  = "Session Volume"
)

// exerciseBaseline holds the record state a new session is diffed against.
type exerciseBaseline struct {
	heaviestKg        float64
	heaviestReps      int // best reps at the heaviest weight
	best1RM           float64
	bestSetVolume     float64
	bestSessionVolume float64
	// bestRepsAtOrAbove[w] is the max reps over sets with weight >= w,
	// for every weight w that appears in the history.
	bestRepsAtOrAbove map[float64]int
}

func buildBaseline(history []models.SessionRecord) exerciseBaseline {
	b := exerciseBaseline{bestRepsAtOrAbove: make(map[float64]int)}
	repsAt := make(map[float64]int)
	for _, session := range history {
		var sessionVolume float64
		for _, set := range session.Sets {
			if !set.Counts() {
				continue
			}
			w, r := *set.WeightKg, *set.Reps
			if w > b.heaviestKg {
				b.heaviestKg = w
				b.heaviestReps = r
			} else if w == b.heaviestKg && r > b.heaviestReps {
				b.heaviestReps = r
			}
			if est := Epley(w, r); est > b.best1RM {
				b.best1RM = est
			}
			if v := set.Volume(); v > b.bestSetVolume {
				b.bestSetVolume = v
			}
			sessionVolume += set.Volume()
			if r > repsAt[w] {
				repsAt[w] = r
			}
		}
		if sessionVolume > b.bestSessionVolume {
			b.bestSessionVolume = sessionVolume
		}
	}

	// Fold per-weight bests into at-or-above maxima: the rep baseline for
	// weight w is the best rep count ever done at w or heavier.
	for w := range repsAt {
		best := 0
		for other, reps := range repsAt {
			if other >= w && reps > best {
				best = reps
			}
		}
		b.bestRepsAtOrAbove[w] = best
	}
	return b
}

// EvaluateExercisePrs diffs one exercise block of a new session against that
// exercise's prior history (the session under evaluation must already be
// excluded from history). Each record dimension a new non-warmup set strictly
// exceeds yields one PR entry; a block with no qualifying sets yields none.
func EvaluateExercisePrs(history []models.SessionRecord, exercise models.NewSessionExercise) []models.PrEntry {
	baseline := buildBaseline(history)

	type candidate struct {
		value   float64
		weight  float64
		reps    int
		indices []int
	}
	var heaviest, best1RM, bestSetVolume candidate
	var sessionVolume float64
	var countingIndices []int
	newRepsAt := make(map[float64]candidate)

	for i, set := range exercise.Sets {
		if !set.Counts() {
			continue
		}
		w, r := *set.WeightKg, *set.Reps
		countingIndices = append(countingIndices, i)
		sessionVolume += set.Volume()

		consider := func(c *candidate, value float64) {
			switch {
			case value > c.value:
				*c = candidate{value: value, weight: w, reps: r, indices: []int{i}}
			case value == c.value && value > 0:
				c.indices = append(c.indices, i)
			}
		}
		consider(&heaviest, w)
		consider(&best1RM, Epley(w, r))
		consider(&bestSetVolume, set.Volume())

		rc := newRepsAt[w]
		consider(&rc, float64(r))
		newRepsAt[w] = rc
	}

	var prs []models.PrEntry

	if heaviest.value > baseline.heaviestKg && heaviest.value > 0 {
		entry := models.PrEntry{
			Label:       LabelHeaviestWeight,
			WeightKg:    heaviest.weight,
			CurrentReps: intPtr(heaviest.reps),
			IsCurrent:   true,
			SetIndices:  heaviest.indices,
		}
		if baseline.heaviestKg > 0 {
			entry.PreviousReps = intPtr(baseline.heaviestReps)
		}
		prs = append(prs, entry)
	}

	if best1RM.value > baseline.best1RM && best1RM.value > 0 {
		prs = append(prs, models.PrEntry{
			Label:       LabelBest1RM,
			WeightKg:    best1RM.weight,
			CurrentReps: intPtr(best1RM.reps),
			IsCurrent:   true,
			SetIndices:  best1RM.indices,
		})
	}

	if bestSetVolume.value > baseline.bestSetVolume && bestSetVolume.value > 0 {
		prs = append(prs, models.PrEntry{
			Label:       LabelBestSetVolume,
			WeightKg:    bestSetVolume.weight,
			CurrentReps: intPtr(bestSetVolume.reps),
			IsCurrent:   true,
			SetIndices:  bestSetVolume.indices,
		})
	}

	if sessionVolume > baseline.bestSessionVolume && sessionVolume > 0 {
		prs = append(prs, models.PrEntry{
			Label:      LabelSessionVolume,
			WeightKg:   sessionVolume,
			IsCurrent:  true,
			SetIndices: countingIndices,
		})
	}

	// Rep PRs: at each weight logged in this session, beating the best rep
	// count ever done at that weight or heavier. A brand-new heaviest weight
	// has no rep baseline and is already covered by the heaviest-weight
	// entry, so it does not double as a rep PR.
	for w, c := range newRepsAt {
		prev := bestRepsAtOrAbove(baseline, w)
		if prev > 0 && c.reps > prev {
			prs = append(prs, models.PrEntry{
				Label:        fmt.Sprintf("Rep PR at %skg", formatWeight(w)),
				WeightKg:     w,
				PreviousReps: intPtr(prev),
				CurrentReps:  intPtr(c.reps),
				IsCurrent:    true,
				SetIndices:   c.indices,
			})
		}
	}

	return prs
}

// EvaluateSessionPrs diffs a whole session against history. The history must
// exclude the session under evaluation but may contain sessions logged after
// it, as when a client re-opens an old workout: baselines come from sessions
// before CreatedAt, and an entry keeps IsCurrent only while no later session
// has matched or beaten it.
func EvaluateSessionPrs(history map[string][]models.SessionRecord, session models.NewSession) models.PrResult {
	result := models.PrResult{}
	for _, exercise := range session.Exercises {
		var prior, later []models.SessionRecord
		for _, rec := range history[exercise.ExerciseID] {
			if rec.SessionID == session.SessionID {
				continue
			}
			if rec.LoggedAt.Before(session.CreatedAt) {
				prior = append(prior, rec)
			} else {
				later = append(later, rec)
			}
		}

		prs := EvaluateExercisePrs(prior, exercise)
		if len(later) > 0 {
			demoteSuperseded(prs, later)
		}
		if len(prs) == 0 {
			continue
		}
		result.TotalPrs += len(prs)
		result.PerExercise = append(result.PerExercise, models.ExercisePrs{
			ExerciseID:   exercise.ExerciseID,
			ExerciseName: exercise.ExerciseName,
			Prs:          prs,
		})
	}
	return result
}

// demoteSuperseded clears IsCurrent on entries that a later session has
// matched or beaten. Only the single best-ever record per label stays
// current; a tie goes to the later holder matching the original product.
func demoteSuperseded(prs []models.PrEntry, later []models.SessionRecord) {
	b := buildBaseline(later)
	for i := range prs {
		entry := &prs[i]
		reps := 0
		if entry.CurrentReps != nil {
			reps = *entry.CurrentReps
		}
		switch {
		case entry.Label == LabelHeaviestWeight:
			entry.IsCurrent = b.heaviestKg < entry.WeightKg
		case entry.Label == LabelBest1RM:
			entry.IsCurrent = b.best1RM < Epley(entry.WeightKg, reps)
		case entry.Label == LabelBestSetVolume:
			entry.IsCurrent = b.bestSetVolume < entry.WeightKg*float64(reps)
		case entry.Label == LabelSessionVolume:
			entry.IsCurrent = b.bestSessionVolume < entry.WeightKg
		default: // rep PR
			entry.IsCurrent = bestRepsAtOrAbove(b, entry.WeightKg) < reps
		}
	}
}

// bestRepsAtOrAbove resolves the rep baseline for weight w: the exact
// at-or-above entry when w was logged before, otherwise the best over all
// strictly heavier historical weights.
func bestRepsAtOrAbove(b exerciseBaseline, w float64) int {
	if reps, ok := b.bestRepsAtOrAbove[w]; ok {
		return reps
	}
	best := 0
	for other, reps := range b.bestRepsAtOrAbove {
		if other >= w && reps > best {
			best = reps
		}
	}
	return best
}

func intPtr(v int) *int { return &v }

// formatWeight renders 102.5 as "102.5" and 100.0 as "100".
func formatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	return strings.TrimSuffix(s, ".0")
}
