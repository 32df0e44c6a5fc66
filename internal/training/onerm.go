package training

import "time"

// DefaultOneRM is used for exercises without progression data, e.g. cardio.
const DefaultOneRM = 100

// OneRMForDate returns the one-rep max for an exercise at the given date.
// The progression is stepwise, the value jumps at quarter boundaries rather
// than interpolating between them. Dates outside all quarters get the most
// recent value.
func OneRMForDate(exerciseID string, date time.Time) float64 {
	values, ok := OneRMProgression[exerciseID]
	if !ok {
		return DefaultOneRM
	}
	for i, q := range Quarters {
		if q.Contains(date) {
			return values[i]
		}
	}
	return values[len(values)-1]
}
