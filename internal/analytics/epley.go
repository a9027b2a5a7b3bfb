// Package analytics turns raw set history into estimated one-rep-max values,
// personal records, strength-standard classifications, and population
// percentiles. Everything here is a pure function of logged history, body
// metrics, and exercise metadata; the Engine wires those functions to the
// backing stores.
package analytics

// Epley estimates a one-rep-max from a (weight, reps) set using the Epley
// formula: weight * (1 + reps/30). Non-positive weight or reps return 0 so
// malformed and bodyweight sets drop out of 1RM math instead of erroring.
func Epley(weightKg float64, reps int) float64 {
	if weightKg <= 0 || reps <= 0 {
		return 0
	}
	return weightKg * (1 + float64(reps)/30)
}
