package analytics

import (
	"sort"
	"time"

	"github.com/meltforce/ironlog/internal/models"
)

// ProgressSeries folds a chronologically ordered history into the running
// best estimated 1RM: one point per session, each point the maximum of the
// session's best non-warmup 1RM and everything before it. The output is a
// monotone non-decreasing step function of time. Sessions whose sets all
// drop out of 1RM math still emit a point at the running maximum so the
// series stays aligned with the session list.
func ProgressSeries(history []models.SessionRecord) []models.ProgressPoint {
	if len(history) == 0 {
		return nil
	}
	points := make([]models.ProgressPoint, 0, len(history))
	var runningMax float64
	for _, session := range history {
		var sessionMax float64
		for _, set := range session.Sets {
			if !set.Counts() {
				continue
			}
			if est := Epley(*set.WeightKg, *set.Reps); est > sessionMax {
				sessionMax = est
			}
		}
		if sessionMax > runningMax {
			runningMax = sessionMax
		}
		points = append(points, models.ProgressPoint{
			Date:   session.LoggedAt,
			Max1RM: runningMax,
		})
	}
	return points
}

// RecordPoints builds the "all records" list: for each distinct (weight, day)
// observation the best rep count at that weight on that day, with its
// estimated 1RM. Sorted heaviest weight first, newest first within a weight.
func RecordPoints(history []models.SessionRecord) []models.ExerciseRecordPoint {
	type key struct {
		weight float64
		day    time.Time
	}
	best := make(map[key]int)
	for _, session := range history {
		day := session.LoggedAt.Truncate(24 * time.Hour)
		for _, set := range session.Sets {
			if !set.Counts() {
				continue
			}
			k := key{weight: *set.WeightKg, day: day}
			if *set.Reps > best[k] {
				best[k] = *set.Reps
			}
		}
	}

	points := make([]models.ExerciseRecordPoint, 0, len(best))
	for k, reps := range best {
		points = append(points, models.ExerciseRecordPoint{
			WeightKg:     k.weight,
			MaxReps:      reps,
			Date:         k.day,
			Estimated1RM: Epley(k.weight, reps),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].WeightKg != points[j].WeightKg {
			return points[i].WeightKg > points[j].WeightKg
		}
		return points[i].Date.After(points[j].Date)
	})
	return points
}

// ComputeBests recomputes global maxima over the full history: heaviest
// weight, best estimated 1RM, best single-set rep count, best single-set
// volume (earliest occurrence wins ties), and best single-session volume.
// These are fresh global maxima, not running series; identical history always
// yields identical results.
func ComputeBests(history []models.SessionRecord) models.PersonalBests {
	var bests models.PersonalBests
	for _, session := range history {
		var sessionVolume float64
		for _, set := range session.Sets {
			if set.CountsReps() && *set.Reps > bests.BestReps {
				bests.BestReps = *set.Reps
			}
			if !set.Counts() {
				continue
			}
			if *set.WeightKg > bests.HeaviestWeightKg {
				bests.HeaviestWeightKg = *set.WeightKg
			}
			if est := Epley(*set.WeightKg, *set.Reps); est > bests.Best1RM {
				bests.Best1RM = est
			}
			volume := set.Volume()
			sessionVolume += volume
			// Strict comparison keeps the earliest occurrence on ties.
			if bests.BestSetVolume == nil || volume > bests.BestSetVolume.Volume {
				bests.BestSetVolume = &models.SetVolume{
					WeightKg: *set.WeightKg,
					Reps:     *set.Reps,
					Volume:   volume,
				}
			}
		}
		if sessionVolume > bests.BestSessionVolume {
			bests.BestSessionVolume = sessionVolume
		}
	}
	return bests
}
