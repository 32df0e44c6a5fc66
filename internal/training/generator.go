package training

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Generator builds the full training history for one member: quarterly
// plans, phased programs, daily workouts with exercise instances and sets,
// and 1RM targets. All output is a deterministic function of the tables,
// the member/trainer ids and the injected current time.
type Generator struct {
	memberID  string
	trainerID string
	today     time.Time
}

// NewGenerator returns a generator evaluating past/future against now.
// Only the date part of now is used.
func NewGenerator(memberID, trainerID string, now time.Time) *Generator {
	n := now.UTC()
	return &Generator{
		memberID:  memberID,
		trainerID: trainerID,
		today:     time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func (g *Generator) planID(q Quarter) string {
	return fmt.Sprintf("plan_%s_%s", g.memberID, q.ID())
}

func (g *Generator) programID(q Quarter, p Phase) string {
	return fmt.Sprintf("prog_%s_%s_%s", g.memberID, q.ID(), strings.ToLower(p.Name))
}

// PlanPrefix is the reserved id prefix of generated plan records.
func (g *Generator) PlanPrefix() string { return "plan_" + g.memberID }

// ProgramPrefix is the reserved id prefix of generated program records.
func (g *Generator) ProgramPrefix() string { return "prog_" + g.memberID }

// RecordPrefix is the reserved id prefix of generated workouts, instances and sets.
func (g *Generator) RecordPrefix() string { return g.memberID + "_" }

// Plans generates one plan per quarter. Only the last (current) quarter's
// plan is active, all earlier ones are completed.
func (g *Generator) Plans() map[string]Plan {
	plans := make(map[string]Plan, len(Quarters))
	for i, q := range Quarters {
		status := StatusCompleted
		if i == len(Quarters)-1 {
			status = StatusActive
		}

		id := g.planID(q)
		plans[id] = Plan{
			ID:                     id,
			Name:                   q.Name + " Strength",
			Description:            fmt.Sprintf("Quarterly strength program %s", q.Name),
			Goal:                   "strength",
			MemberID:               g.memberID,
			TrainerID:              g.trainerID,
			StartDate:              q.Start,
			EndDate:                endOfDay(q.End),
			Status:                 status,
			SplitType:              "full_body",
			PreferredDays:          []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			CompoundTimeAllocation: 0.6,
			IsolationApproach:      "volume_accumulation",
			EmphasizedMuscleGroups: []string{},
			ExcludedMuscleGroups:   []string{},
			TargetSessionDuration:  45,
			TrainingLocation:       "gym",
			CardioDays:             2,
			WeightliftingDays:      3,
			IsSingleWorkout:        false,
			ExperienceLevel:        "intermediate",
		}
	}
	return plans
}

// Programs generates one program per (quarter, phase) pair. Status follows
// the program date range against today, except for the current quarter:
// there only the final (Realization) phase is active and the earlier phases
// report completed, regardless of literal date overlap.
func (g *Generator) Programs() map[string]Program {
	programs := make(map[string]Program, len(Quarters)*len(Phases))

	for i, q := range Quarters {
		for phaseIdx, phase := range Phases {
			// phase date range: whole weeks from the quarter start, clipped
			// to the quarter end
			phaseStart := q.Start.AddDate(0, 0, (phase.WeekStart-1)*7)
			phaseEnd := q.Start.AddDate(0, 0, phase.WeekEnd*7-1)
			if phaseEnd.After(q.End) {
				phaseEnd = q.End
			}

			var status Status
			switch {
			case phaseEnd.Before(g.today):
				status = StatusCompleted
			case !phaseStart.After(g.today) && !g.today.After(phaseEnd):
				status = StatusActive
			default:
				status = StatusScheduled
			}
			if i == len(Quarters)-1 {
				if phaseIdx == len(Phases)-1 {
					status = StatusActive
				} else {
					status = StatusCompleted
				}
			}

			id := g.programID(q, phase)
			programs[id] = Program{
				ID:                id,
				PlanID:            g.planID(q),
				Name:              phase.Name,
				Focus:             phase.Focus,
				Status:            status,
				StartDate:         phaseStart,
				EndDate:           endOfDay(phaseEnd),
				StartingIntensity: phase.IntensityStart,
				EndingIntensity:   phase.IntensityEnd,
				ProgressionType:   "linear",
				Rationale:         phase.Rationale,
			}
		}
	}
	return programs
}

// Stats counts generated record outcomes for run reporting. Only past
// records are counted, future ones are merely scheduled.
type Stats struct {
	WorkoutsCompleted  int
	WorkoutsSkipped    int
	ExercisesCompleted int
	ExercisesSkipped   int
	SetsCompleted      int
	SetsSkipped        int
}

// Workouts walks every calendar day of every quarter and generates the
// workouts with their exercise instances and sets. Strength on Mon/Wed/Fri,
// cardio on Tue/Thu, rest otherwise. The week counter starts at the first
// Monday of the quarter and increments on Sundays; the week number, not the
// program's stored date range, decides which program a workout belongs to.
func (g *Generator) Workouts() ([]Workout, map[string]ExerciseInstance, map[string]Set, Stats) {
	var workouts []Workout
	instances := make(map[string]ExerciseInstance)
	sets := make(map[string]Set)
	var stats Stats

	for _, q := range Quarters {
		current := q.Start
		for current.Weekday() != time.Monday {
			current = current.AddDate(0, 0, 1)
		}

		week := 1
		for ; !current.After(q.End); current = current.AddDate(0, 0, 1) {
			var (
				workoutType WorkoutType
				variant     string
			)
			switch current.Weekday() {
			case time.Monday:
				workoutType, variant = WorkoutTypeStrength, "A"
			case time.Wednesday:
				workoutType, variant = WorkoutTypeStrength, "B"
			case time.Friday:
				workoutType, variant = WorkoutTypeStrength, "C"
			case time.Tuesday:
				workoutType, variant = WorkoutTypeCardio, "A"
			case time.Thursday:
				workoutType, variant = WorkoutTypeCardio, "B"
			case time.Saturday:
				continue
			case time.Sunday:
				week++
				continue
			}

			phase := PhaseForWeek(week)
			w := g.buildWorkout(q, phase, current, week, workoutType, variant, instances, sets, &stats)
			workouts = append(workouts, w)
		}
	}

	return workouts, instances, sets, stats
}

func (g *Generator) buildWorkout(
	q Quarter,
	phase Phase,
	workoutDay time.Time,
	week int,
	workoutType WorkoutType,
	variant string,
	instances map[string]ExerciseInstance,
	sets map[string]Set,
	stats *Stats,
) Workout {
	isPast := workoutDay.Before(g.today)

	var workoutID, workoutName, splitDay, protocolID string
	if workoutType == WorkoutTypeStrength {
		workoutID = fmt.Sprintf("%s_%s_strength", g.memberID, workoutDay.Format("20060102"))
		workoutName = fmt.Sprintf("Week %d Full Body %s", week, variant)
		splitDay = "full_body"
		protocolID = phase.Protocol
	} else {
		workoutID = fmt.Sprintf("%s_%s_cardio", g.memberID, workoutDay.Format("20060102"))
		workoutName = fmt.Sprintf("Week %d Cardio %s", week, variant)
		splitDay = "not_applicable"
		protocolID = CardioProtocolID
	}

	workoutSkipped := isPast && SkipWorkout(workoutDay)

	var status Status
	switch {
	case workoutSkipped:
		status = StatusSkipped
		stats.WorkoutsSkipped++
	case isPast:
		status = StatusCompleted
		stats.WorkoutsCompleted++
	default:
		status = StatusScheduled
	}

	exerciseIDs := SelectExercises(workoutDay, workoutType)

	workout := Workout{
		ID:                 workoutID,
		ProgramID:          g.programID(q, phase),
		Name:               workoutName,
		ScheduledDate:      workoutDay.Add(10 * time.Hour),
		Type:               workoutType,
		SplitDay:           splitDay,
		Status:             status,
		ExerciseIDs:        exerciseIDs,
		ProtocolVariantIDs: map[string]string{},
	}
	if status == StatusCompleted {
		completed := workoutDay.Add(11*time.Hour + 30*time.Minute)
		workout.CompletedDate = &completed
	}
	if workoutSkipped {
		// a skipped workout keeps no exercise data
		workout.ExerciseIDs = []string{}
		return workout
	}

	for exIdx, exerciseID := range exerciseIDs {
		instanceID := fmt.Sprintf("%s_ex%d", workoutID, exIdx)

		exerciseSkipped := isPast && SkipExercise(workoutDay, exIdx)

		var instanceStatus Status
		switch {
		case exerciseSkipped:
			instanceStatus = StatusSkipped
			stats.ExercisesSkipped++
		case isPast:
			instanceStatus = StatusCompleted
			stats.ExercisesCompleted++
		default:
			instanceStatus = StatusScheduled
		}

		var (
			protocol       Protocol
			phaseIntensity float64
		)
		if workoutType == WorkoutTypeCardio {
			protocol = Protocol{Reps: []int{1}, Intensity: 0.5}
			protocolID = CardioProtocolID
			phaseIntensity = 0.5
		} else {
			var ok bool
			if protocol, ok = Protocols[protocolID]; !ok {
				protocol = Protocols[fallbackProtocolID]
			}
			phaseIntensity = IntensityForWeek(week, phase)
		}

		oneRM := OneRMForDate(exerciseID, workoutDay)
		targetWeight := Round1(oneRM * phaseIntensity)

		setIDs := make([]string, 0, len(protocol.Reps))
		for setIdx, targetReps := range protocol.Reps {
			setID := fmt.Sprintf("%s_s%d", instanceID, setIdx+1)
			setIDs = append(setIDs, setID)

			set := Set{
				ID:                 setID,
				ExerciseInstanceID: instanceID,
				SetNumber:          setIdx + 1,
				TargetReps:         targetReps,
				Completion:         StatusScheduled,
			}
			if workoutType == WorkoutTypeStrength {
				tw := targetWeight
				set.TargetWeight = &tw
			}

			switch {
			case isPast && instanceStatus == StatusCompleted:
				res := SampleSetResult(targetWeight, targetReps, workoutDay, exIdx*10+setIdx)
				set.ActualWeight = res.Weight
				set.ActualReps = res.Reps
				set.Completion = res.Completion
				if res.Completion == StatusSkipped {
					stats.SetsSkipped++
				} else {
					stats.SetsCompleted++
					recorded := workoutDay.Add(time.Duration(10+exIdx)*time.Hour + time.Duration(30+setIdx*3)*time.Minute)
					set.RecordedDate = &recorded
				}
			case isPast && instanceStatus == StatusSkipped:
				set.Completion = StatusSkipped
				stats.SetsSkipped++
			}

			sets[setID] = set
		}

		workout.ProtocolVariantIDs[strconv.Itoa(exIdx)] = protocolID

		instances[instanceID] = ExerciseInstance{
			ID:                instanceID,
			ExerciseID:        exerciseID,
			WorkoutID:         workoutID,
			ProtocolVariantID: protocolID,
			SetIDs:            setIDs,
			Status:            instanceStatus,
			OrderIndex:        exIdx,
		}
	}

	return workout
}

// Targets generates the 1RM target records with their quarterly history.
func (g *Generator) Targets() map[string]Target {
	exerciseIDs := make([]string, 0, len(OneRMProgression))
	for id := range OneRMProgression {
		exerciseIDs = append(exerciseIDs, id)
	}
	sort.Strings(exerciseIDs)

	targets := make(map[string]Target, len(exerciseIDs))
	for _, exerciseID := range exerciseIDs {
		values := OneRMProgression[exerciseID]

		history := make([]TargetEntry, 0, len(values))
		for i, q := range Quarters {
			if i >= len(values) {
				break
			}
			history = append(history, TargetEntry{
				Date:              q.Start,
				Target:            values[i],
				CalibrationSource: "quarterly_test",
			})
		}

		id := fmt.Sprintf("%s-%s", g.memberID, exerciseID)
		targets[id] = Target{
			ID:            id,
			MemberID:      g.memberID,
			ExerciseID:    exerciseID,
			CurrentTarget: values[len(values)-1],
			TargetHistory: history,
			LastUpdated:   targetsLastUpdated,
			TargetType:    "max",
		}
	}
	return targets
}

func endOfDay(day time.Time) time.Time {
	return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
