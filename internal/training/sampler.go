package training

import (
	"math"
	"strconv"
	"time"

	"github.com/medinafit/fixturegen/pkg"
)

// Outcome is the category drawn for one performed set.
type Outcome string

const (
	OutcomeHit        Outcome = "hit"
	OutcomeExceeded   Outcome = "exceeded"
	OutcomeStruggled  Outcome = "struggled"
	OutcomeWeightDrop Outcome = "weight_drop"
	OutcomeSkipped    Outcome = "skipped"
)

var (
	outcomes       = []Outcome{OutcomeHit, OutcomeExceeded, OutcomeStruggled, OutcomeWeightDrop, OutcomeSkipped}
	outcomeWeights = []int{60, 15, 15, 5, 5}
)

// SetResult is the sampled actual performance for one set. Weight and Reps
// are nil for a skipped set.
type SetResult struct {
	Outcome    Outcome
	Weight     *float64
	Reps       *int
	Completion Status
}

const dayKeyFormat = "2006-01-02"

// SampleSetResult draws the actual performance of a set against its target.
// The draw is a pure function of the workout day and the set ordinal within
// the workout, so repeated runs produce identical histories.
func SampleSetResult(targetWeight float64, targetReps int, workoutDay time.Time, ordinal int) SetResult {
	rng := pkg.NewKeyedRand("set-outcome", workoutDay.Format(dayKeyFormat), strconv.Itoa(ordinal))
	outcome := outcomes[pkg.WeightedIndex(rng, outcomeWeights)]

	switch outcome {
	case OutcomeHit:
		return completedResult(outcome, targetWeight, targetReps)
	case OutcomeExceeded:
		return completedResult(outcome, targetWeight, targetReps+1+rng.Intn(3))
	case OutcomeStruggled:
		maxFewer := targetReps - 1
		if maxFewer > 2 {
			maxFewer = 2
		}
		if maxFewer < 1 {
			maxFewer = 1
		}
		reps := targetReps - (1 + rng.Intn(maxFewer))
		if reps < 1 {
			reps = 1
		}
		return completedResult(outcome, targetWeight, reps)
	case OutcomeWeightDrop:
		// dropped the weight by 10%, still hit target reps
		return completedResult(outcome, Round1(targetWeight*0.9), targetReps)
	default:
		return SetResult{Outcome: OutcomeSkipped, Completion: StatusSkipped}
	}
}

func completedResult(outcome Outcome, weight float64, reps int) SetResult {
	return SetResult{
		Outcome:    outcome,
		Weight:     &weight,
		Reps:       &reps,
		Completion: StatusCompleted,
	}
}

// SkipWorkout reports whether the whole workout on the given day was missed,
// at a ~10% rate keyed by the day alone.
func SkipWorkout(workoutDay time.Time) bool {
	return pkg.KeyedChance(0.10, "workout-skip", workoutDay.Format(dayKeyFormat))
}

// SkipExercise reports whether a single exercise within the day's workout was
// missed, at a ~5% rate keyed by day and exercise position. Independent of
// SkipWorkout: a completed workout can still have skipped exercises.
func SkipExercise(workoutDay time.Time, exerciseIdx int) bool {
	return pkg.KeyedChance(0.05, "exercise-skip", workoutDay.Format(dayKeyFormat), strconv.Itoa(exerciseIdx))
}

// Round1 rounds to one decimal, the resolution the app stores weights in.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
