package training

import "time"

// dayOrdinal counts days in the proleptic Gregorian calendar, with
// 0001-01-01 as day 1. Used only for rotation arithmetic, so the same date
// always maps to the same slot picks.
func dayOrdinal(date time.Time) int {
	y := date.Year() - 1
	return y*365 + y/4 - y/100 + y/400 + date.YearDay()
}

// SelectExercises picks one exercise per rotation slot for the given day.
// The pick is (day ordinal + slot index) modulo the slot's option count:
// deterministic per date, yet varying across consecutive training days.
func SelectExercises(workoutDay time.Time, workoutType WorkoutType) []string {
	if workoutType == WorkoutTypeCardio {
		return []string{CardioExercise}
	}

	ord := dayOrdinal(workoutDay)
	exercises := make([]string, 0, len(FullBodyRotation))
	for i, group := range FullBodyRotation {
		exercises = append(exercises, group[(ord+i)%len(group)])
	}
	return exercises
}
