package analytics

import "github.com/meltforce/ironlog/internal/models"

// Tier is one of the six ordered strength classifications.
type Tier string

const (
	TierBeginner     Tier = "Beginner"
	TierNovice       Tier = "Novice"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
	TierElite        Tier = "Elite"
	TierWorldClass   Tier = "World Class"
)

// tierCount is fixed: every published ladder has exactly six rungs.
const tierCount = 6

// tiersAscending orders tiers weakest to strongest.
var tiersAscending = [tierCount]Tier{
	TierBeginner, TierNovice, TierIntermediate, TierAdvanced, TierElite, TierWorldClass,
}

// tierDescriptions and tierRecommendations are shared across exercises; the
// per-exercise part of a ladder is only the threshold column.
var tierDescriptions = map[Tier]string{
	TierBeginner:     "Stronger than an untrained lifter. Usually reached within the first month of training.",
	TierNovice:       "Stronger than most gym newcomers. Typically reached after a few months of consistent training.",
	TierIntermediate: "Stronger than the average dedicated lifter. Usually takes one to two years of structured training.",
	TierAdvanced:     "Among the strongest lifters in a typical gym. Usually takes several years of focused training.",
	TierElite:        "Competitive strength-sport territory. Takes many years of serious, well-programmed training.",
	TierWorldClass:   "National and international competition level. Very few lifters ever reach this tier.",
}

var tierRecommendations = map[Tier]string{
	TierBeginner:     "Focus on learning movement technique with light loads and add weight every session.",
	TierNovice:       "Run a linear progression program and prioritize consistency over intensity.",
	TierIntermediate: "Move to weekly progression with planned volume and intensity variation.",
	TierAdvanced:     "Use block periodization and track recovery closely; progress now comes in months, not weeks.",
	TierElite:        "Individualized programming and competition peaking cycles make the difference at this level.",
	TierWorldClass:   "Maintain what works. At this tier programming is fully individual and recovery is the limiter.",
}

// standardsTable is one (exercise, gender) threshold column. For weight-based
// exercises the values are bodyweight multipliers; for rep-based exercises
// they are absolute rep counts. Values must be strictly increasing.
type standardsTable struct {
	exerciseID string
	gender     models.Gender
	repBased   bool
	thresholds [tierCount]float64
}

// standardsData is the published threshold corpus, keyed by stable exercise
// ID per the catalog. Built into the lookup arena once at startup.
var standardsData = []standardsTable{
	// Barbell back squat, 1RM as bodyweight multiple.
	{exerciseID: "barbell-back-squat", gender: models.GenderMale, thresholds: [tierCount]float64{0.75, 1.00, 1.50, 2.00, 2.50, 3.00}},
	{exerciseID: "barbell-back-squat", gender: models.GenderFemale, thresholds: [tierCount]float64{0.50, 0.75, 1.00, 1.50, 2.00, 2.50}},

	// Barbell bench press.
	{exerciseID: "barbell-bench-press", gender: models.GenderMale, thresholds: [tierCount]float64{0.50, 0.75, 1.00, 1.50, 2.00, 2.25}},
	{exerciseID: "barbell-bench-press", gender: models.GenderFemale, thresholds: [tierCount]float64{0.25, 0.50, 0.75, 1.00, 1.25, 1.50}},

	// Deadlift.
	{exerciseID: "deadlift", gender: models.GenderMale, thresholds: [tierCount]float64{1.00, 1.50, 2.00, 2.50, 3.00, 3.50}},
	{exerciseID: "deadlift", gender: models.GenderFemale, thresholds: [tierCount]float64{0.50, 1.00, 1.25, 1.75, 2.25, 2.75}},

	// Overhead press.
	{exerciseID: "overhead-press", gender: models.GenderMale, thresholds: [tierCount]float64{0.35, 0.55, 0.80, 1.10, 1.40, 1.70}},
	{exerciseID: "overhead-press", gender: models.GenderFemale, thresholds: [tierCount]float64{0.20, 0.35, 0.50, 0.75, 1.00, 1.20}},

	// Barbell row.
	{exerciseID: "barbell-row", gender: models.GenderMale, thresholds: [tierCount]float64{0.50, 0.75, 1.00, 1.50, 1.75, 2.00}},
	{exerciseID: "barbell-row", gender: models.GenderFemale, thresholds: [tierCount]float64{0.25, 0.40, 0.65, 0.90, 1.20, 1.50}},

	// Front squat.
	{exerciseID: "front-squat", gender: models.GenderMale, thresholds: [tierCount]float64{0.60, 0.85, 1.25, 1.70, 2.10, 2.50}},
	{exerciseID: "front-squat", gender: models.GenderFemale, thresholds: [tierCount]float64{0.40, 0.60, 0.85, 1.25, 1.60, 2.00}},

	// Incline bench press.
	{exerciseID: "incline-bench-press", gender: models.GenderMale, thresholds: [tierCount]float64{0.45, 0.65, 0.90, 1.30, 1.70, 2.00}},
	{exerciseID: "incline-bench-press", gender: models.GenderFemale, thresholds: [tierCount]float64{0.20, 0.40, 0.60, 0.85, 1.10, 1.35}},

	// Romanian deadlift.
	{exerciseID: "romanian-deadlift", gender: models.GenderMale, thresholds: [tierCount]float64{0.70, 1.05, 1.50, 2.00, 2.50, 2.95}},
	{exerciseID: "romanian-deadlift", gender: models.GenderFemale, thresholds: [tierCount]float64{0.40, 0.70, 1.00, 1.45, 1.90, 2.30}},

	// Hip thrust.
	{exerciseID: "hip-thrust", gender: models.GenderMale, thresholds: [tierCount]float64{0.75, 1.20, 1.75, 2.40, 3.05, 3.65}},
	{exerciseID: "hip-thrust", gender: models.GenderFemale, thresholds: [tierCount]float64{0.60, 1.00, 1.50, 2.10, 2.75, 3.30}},

	// Pull-up, absolute reps.
	{exerciseID: "pull-up", gender: models.GenderMale, repBased: true, thresholds: [tierCount]float64{1, 5, 10, 15, 25, 35}},
	{exerciseID: "pull-up", gender: models.GenderFemale, repBased: true, thresholds: [tierCount]float64{1, 3, 6, 10, 15, 25}},

	// Chin-up, absolute reps.
	{exerciseID: "chin-up", gender: models.GenderMale, repBased: true, thresholds: [tierCount]float64{1, 6, 12, 18, 27, 38}},
	{exerciseID: "chin-up", gender: models.GenderFemale, repBased: true, thresholds: [tierCount]float64{1, 3, 7, 12, 18, 28}},

	// Dip, absolute reps.
	{exerciseID: "dip", gender: models.GenderMale, repBased: true, thresholds: [tierCount]float64{2, 8, 15, 25, 35, 50}},
	{exerciseID: "dip", gender: models.GenderFemale, repBased: true, thresholds: [tierCount]float64{1, 4, 8, 14, 20, 30}},

	// Push-up, absolute reps.
	{exerciseID: "push-up", gender: models.GenderMale, repBased: true, thresholds: [tierCount]float64{10, 25, 40, 60, 80, 100}},
	{exerciseID: "push-up", gender: models.GenderFemale, repBased: true, thresholds: [tierCount]float64{5, 15, 25, 40, 60, 80}},
}
