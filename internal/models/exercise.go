package models

import "strings"

// Exercise is catalog metadata for one exercise. Analytics lookups are keyed
// by the stable ID; the display name is presentation-only and safe to rename.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RepBased bool   `json:"rep_based"`
	KeyLift  bool   `json:"key_lift"`
}

// Catalog lists every exercise the analytics engine knows about. Order is the
// display order for the catalog endpoint.
var Catalog = []Exercise{
	{ID: "barbell-back-squat", Name: "Barbell Back Squat", KeyLift: true},
	{ID: "barbell-bench-press", Name: "Barbell Bench Press", KeyLift: true},
	{ID: "deadlift", Name: "Deadlift", KeyLift: true},
	{ID: "overhead-press", Name: "Overhead Press", KeyLift: true},
	{ID: "barbell-row", Name: "Barbell Row", KeyLift: true},
	{ID: "pull-up", Name: "Pull Up", RepBased: true, KeyLift: true},
	{ID: "front-squat", Name: "Front Squat"},
	{ID: "incline-bench-press", Name: "Incline Bench Press"},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift"},
	{ID: "hip-thrust", Name: "Hip Thrust"},
	{ID: "chin-up", Name: "Chin Up", RepBased: true},
	{ID: "dip", Name: "Dip", RepBased: true},
	{ID: "push-up", Name: "Push Up", RepBased: true},
	{ID: "dumbbell-bench-press", Name: "Dumbbell Bench Press"},
	{ID: "dumbbell-row", Name: "Dumbbell Row"},
	{ID: "lat-pulldown", Name: "Lat Pulldown"},
	{ID: "leg-press", Name: "Leg Press"},
	{ID: "seated-cable-row", Name: "Seated Cable Row"},
}

var byID = func() map[string]Exercise {
	m := make(map[string]Exercise, len(Catalog))
	for _, ex := range Catalog {
		m[ex.ID] = ex
	}
	return m
}()

// nameAliases maps normalized display-name variants seen in app exports to
// catalog IDs. Keys must be Slugify output.
var nameAliases = map[string]string{
	"squat":                "barbell-back-squat",
	"back-squat":           "barbell-back-squat",
	"barbell-squat":        "barbell-back-squat",
	"bench-press":          "barbell-bench-press",
	"flat-barbell-bench":   "barbell-bench-press",
	"conventional-deadlift": "deadlift",
	"military-press":       "overhead-press",
	"shoulder-press":       "overhead-press",
	"bent-over-row":        "barbell-row",
	"bent-over-barbell-row": "barbell-row",
	"pullup":               "pull-up",
	"pullups":              "pull-up",
	"chinup":               "chin-up",
	"dips":                 "dip",
	"pushup":               "push-up",
	"pushups":              "push-up",
	"rdl":                  "romanian-deadlift",
}

// ExerciseByID looks up catalog metadata for a stable exercise ID.
func ExerciseByID(id string) (Exercise, bool) {
	ex, ok := byID[id]
	return ex, ok
}

// ExerciseName resolves an ID to its display name, falling back to the ID
// itself for exercises outside the catalog (user-created ones still get
// record tracking, just no standards or leaderboard).
func ExerciseName(id string) string {
	if ex, ok := byID[id]; ok {
		return ex.Name
	}
	return id
}

// KeyLifts returns the fixed whitelist of compound exercises used for
// population-wide leaderboard comparison, in catalog order.
func KeyLifts() []Exercise {
	var lifts []Exercise
	for _, ex := range Catalog {
		if ex.KeyLift {
			lifts = append(lifts, ex)
		}
	}
	return lifts
}

// Slugify normalizes a display name to catalog-ID form: lowercase with
// single dashes, punctuation dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ResolveExerciseID maps an exercise display name from an import or client
// payload to a catalog ID. Unknown names pass through slugified so history
// stays queryable under a stable key.
func ResolveExerciseID(name string) string {
	slug := Slugify(name)
	if _, ok := byID[slug]; ok {
		return slug
	}
	if id, ok := nameAliases[slug]; ok {
		return id
	}
	return slug
}
