package training_test

import (
	"strings"
	"testing"
	"time"

	"github.com/medinafit/fixturegen/internal/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now falls inside Q4 2025, the last generated quarter
var testNow = time.Date(2025, time.November, 15, 9, 30, 0, 0, time.UTC)

func newTestGenerator() *training.Generator {
	return training.NewGenerator("bobby", "nick_vargas", testNow)
}

func TestGenerator_Plans(t *testing.T) {
	plans := newTestGenerator().Plans()
	require.Len(t, plans, 5)

	q4 := plans["plan_bobby_q4_2024"]
	assert.Equal(t, "Q4 2024 Strength", q4.Name)
	assert.Equal(t, "strength", q4.Goal)
	assert.Equal(t, "bobby", q4.MemberID)
	assert.Equal(t, "nick_vargas", q4.TrainerID)
	assert.Equal(t, training.StatusCompleted, q4.Status)
	assert.Equal(t, date(2024, time.October, 1), q4.StartDate)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC), q4.EndDate)
	assert.Equal(t, "full_body", q4.SplitType)
	assert.Equal(t, 3, q4.WeightliftingDays)
	assert.Equal(t, 2, q4.CardioDays)

	// only the current quarter's plan is active
	for id, plan := range plans {
		if id == "plan_bobby_q4_2025" {
			assert.Equal(t, training.StatusActive, plan.Status, id)
		} else {
			assert.Equal(t, training.StatusCompleted, plan.Status, id)
		}
	}
}

func TestGenerator_Programs(t *testing.T) {
	gen := newTestGenerator()
	plans := gen.Plans()
	programs := gen.Programs()
	require.Len(t, programs, 15)

	for id, prog := range programs {
		assert.Contains(t, plans, prog.PlanID, "program %s references unknown plan", id)
		assert.Equal(t, "linear", prog.ProgressionType)
		assert.True(t, prog.StartDate.Before(prog.EndDate))
	}

	acc := programs["prog_bobby_q4_2024_accumulation"]
	assert.Equal(t, "Accumulation", acc.Name)
	assert.Equal(t, "foundation", acc.Focus)
	assert.Equal(t, 0.60, acc.StartingIntensity)
	assert.Equal(t, 0.70, acc.EndingIntensity)
	assert.Equal(t, date(2024, time.October, 1), acc.StartDate)
	// 4 whole weeks from the quarter start
	assert.Equal(t, time.Date(2024, time.October, 28, 23, 59, 59, 0, time.UTC), acc.EndDate)
	assert.Equal(t, training.StatusCompleted, acc.Status)
}

func TestGenerator_Programs_CurrentQuarterOverride(t *testing.T) {
	programs := newTestGenerator().Programs()

	// mid-November the date ranges would make Intensification the active
	// phase, but the current quarter always reports Realization as active
	assert.Equal(t, training.StatusCompleted, programs["prog_bobby_q4_2025_accumulation"].Status)
	assert.Equal(t, training.StatusCompleted, programs["prog_bobby_q4_2025_intensification"].Status)
	assert.Equal(t, training.StatusActive, programs["prog_bobby_q4_2025_realization"].Status)
}

func TestGenerator_Workouts_FirstStrengthWorkout(t *testing.T) {
	gen := newTestGenerator()
	workouts, instances, sets, _ := gen.Workouts()
	require.NotEmpty(t, workouts)

	// Q4 2024 starts on a Tuesday; the walk begins at the first Monday
	first := workouts[0]
	assert.Equal(t, "bobby_20241007_strength", first.ID)
	assert.Equal(t, "Week 1 Full Body A", first.Name)
	assert.Equal(t, training.WorkoutTypeStrength, first.Type)
	assert.Equal(t, "prog_bobby_q4_2024_accumulation", first.ProgramID)
	assert.Equal(t, time.Date(2024, time.October, 7, 10, 0, 0, 0, time.UTC), first.ScheduledDate)

	if first.Status == training.StatusSkipped {
		assert.Empty(t, first.ExerciseIDs)
		return
	}

	// week 1 of Accumulation runs at 60% intensity; squat 1RM is 170,
	// so the first slot's target weight must be 102.0
	require.NotEmpty(t, first.ExerciseIDs)
	assert.Equal(t, "barbell_back_squat", first.ExerciseIDs[0])

	inst, ok := instances["bobby_20241007_strength_ex0"]
	require.True(t, ok)
	assert.Equal(t, "barbell_back_squat", inst.ExerciseID)
	// Accumulation protocol is 3x10
	require.Len(t, inst.SetIDs, 3)

	set, ok := sets[inst.SetIDs[0]]
	require.True(t, ok)
	require.NotNil(t, set.TargetWeight)
	assert.Equal(t, 102.0, *set.TargetWeight)
	assert.Equal(t, 10, set.TargetReps)
}

func TestGenerator_Workouts_ReferentialIntegrity(t *testing.T) {
	gen := newTestGenerator()
	programs := gen.Programs()
	workouts, instances, sets, _ := gen.Workouts()

	workoutIDs := make(map[string]training.Workout, len(workouts))
	for _, w := range workouts {
		workoutIDs[w.ID] = w
		assert.Contains(t, programs, w.ProgramID, "workout %s references unknown program", w.ID)
	}

	for id, inst := range instances {
		assert.Contains(t, workoutIDs, inst.WorkoutID, "instance %s references unknown workout", id)
		for _, setID := range inst.SetIDs {
			assert.Contains(t, sets, setID, "instance %s references unknown set", id)
		}
	}

	for id, set := range sets {
		inst, ok := instances[set.ExerciseInstanceID]
		require.True(t, ok, "set %s references unknown instance", id)
		assert.Contains(t, inst.SetIDs, id)
	}
}

func TestGenerator_Workouts_StatusRules(t *testing.T) {
	workouts, instances, sets, stats := newTestGenerator().Workouts()

	today := date(2025, time.November, 15)
	for _, w := range workouts {
		workoutDay := w.ScheduledDate.Truncate(24 * time.Hour)
		if workoutDay.Before(today) {
			assert.Contains(t, []training.Status{training.StatusCompleted, training.StatusSkipped}, w.Status, w.ID)
			if w.Status == training.StatusCompleted {
				assert.NotNil(t, w.CompletedDate, w.ID)
			} else {
				assert.Empty(t, w.ExerciseIDs, "skipped workout %s keeps exercise data", w.ID)
			}
		} else {
			assert.Equal(t, training.StatusScheduled, w.Status, w.ID)
			assert.Nil(t, w.CompletedDate, w.ID)
		}
	}

	for id, set := range sets {
		inst := instances[set.ExerciseInstanceID]
		switch inst.Status {
		case training.StatusScheduled:
			assert.Equal(t, training.StatusScheduled, set.Completion, id)
			assert.Nil(t, set.ActualWeight, id)
			assert.Nil(t, set.ActualReps, id)
			assert.Nil(t, set.RecordedDate, id)
		case training.StatusSkipped:
			assert.Equal(t, training.StatusSkipped, set.Completion, id)
			assert.Nil(t, set.ActualWeight, id)
			assert.Nil(t, set.ActualReps, id)
		case training.StatusCompleted:
			if set.Completion == training.StatusCompleted {
				assert.NotNil(t, set.ActualReps, id)
				assert.NotNil(t, set.RecordedDate, id)
			}
		}
	}

	// roughly 14 months of history lie in the past, both gates must have fired
	assert.NotZero(t, stats.WorkoutsCompleted)
	assert.NotZero(t, stats.WorkoutsSkipped)
	assert.NotZero(t, stats.ExercisesSkipped)
	assert.NotZero(t, stats.SetsCompleted)
}

func TestGenerator_Workouts_Cardio(t *testing.T) {
	workouts, instances, sets, _ := newTestGenerator().Workouts()

	var cardio *training.Workout
	for i := range workouts {
		if workouts[i].Type == training.WorkoutTypeCardio && workouts[i].Status != training.StatusSkipped {
			cardio = &workouts[i]
			break
		}
	}
	require.NotNil(t, cardio)

	assert.Equal(t, "not_applicable", cardio.SplitDay)
	assert.True(t, strings.HasSuffix(cardio.ID, "_cardio"))
	require.Equal(t, []string{training.CardioExercise}, cardio.ExerciseIDs)

	inst := instances[cardio.ID+"_ex0"]
	assert.Equal(t, training.CardioProtocolID, inst.ProtocolVariantID)
	require.Len(t, inst.SetIDs, 1)

	set := sets[inst.SetIDs[0]]
	assert.Nil(t, set.TargetWeight, "cardio sets carry no target weight")
	assert.Equal(t, 1, set.TargetReps)
}

func TestGenerator_Workouts_Deterministic(t *testing.T) {
	w1, i1, s1, st1 := newTestGenerator().Workouts()
	w2, i2, s2, st2 := newTestGenerator().Workouts()

	assert.Equal(t, w1, w2)
	assert.Equal(t, i1, i2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, st1, st2)
}

func TestGenerator_Targets(t *testing.T) {
	targets := newTestGenerator().Targets()
	require.Len(t, targets, len(training.OneRMProgression))

	squat, ok := targets["bobby-barbell_back_squat"]
	require.True(t, ok)
	assert.Equal(t, "bobby", squat.MemberID)
	assert.Equal(t, "barbell_back_squat", squat.ExerciseID)
	assert.Equal(t, 195.0, squat.CurrentTarget)
	assert.Equal(t, "max", squat.TargetType)

	require.Len(t, squat.TargetHistory, 5)
	assert.Equal(t, date(2024, time.October, 1), squat.TargetHistory[0].Date)
	assert.Equal(t, 170.0, squat.TargetHistory[0].Target)
	assert.Equal(t, "quarterly_test", squat.TargetHistory[0].CalibrationSource)
	assert.Equal(t, 195.0, squat.TargetHistory[4].Target)
}

func TestGenerator_Prefixes(t *testing.T) {
	gen := newTestGenerator()
	assert.Equal(t, "plan_bobby", gen.PlanPrefix())
	assert.Equal(t, "prog_bobby", gen.ProgramPrefix())
	assert.Equal(t, "bobby_", gen.RecordPrefix())
}
