package analytics

import (
	"math"
	"sort"

	"github.com/meltforce/ironlog/internal/models"
)

// AllUsersMax1RM reduces cross-user history for one exercise into the
// population of each user's all-time best estimated 1RM. Only values leave
// this function; user identities stay behind it.
func AllUsersMax1RM(crossUserHistory []models.SessionRecord) []float64 {
	bestByUser := make(map[int]float64)
	for _, session := range crossUserHistory {
		for _, set := range session.Sets {
			if !set.Counts() {
				continue
			}
			if est := Epley(*set.WeightKg, *set.Reps); est > bestByUser[session.UserID] {
				bestByUser[session.UserID] = est
			}
		}
	}

	population := make([]float64, 0, len(bestByUser))
	for _, best := range bestByUser {
		if best > 0 {
			population = append(population, best)
		}
	}
	sort.Float64s(population)
	return population
}

// Percentile places userBest within the population: the share of members
// performing at or below it, rounded, always within [0, 100]. An empty or
// singleton population is defined as 100 — the original product behavior,
// kept deliberately (see DESIGN.md) even though it overstates a new user's
// standing.
func Percentile(userBest float64, population []float64) int {
	if len(population) <= 1 {
		return 100
	}
	var atOrBelow int
	for _, v := range population {
		if v <= userBest {
			atOrBelow++
		}
	}
	return int(math.Round(100 * float64(atOrBelow) / float64(len(population))))
}
