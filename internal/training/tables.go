package training

import (
	"strings"
	"time"
)

// Quarter is one calendar quarter of the training history, with the member
// bodyweight measured at its start.
type Quarter struct {
	Name       string
	Start      time.Time
	End        time.Time
	Bodyweight int
}

// Contains reports whether the given day (UTC midnight) falls inside the quarter.
func (q Quarter) Contains(day time.Time) bool {
	return !day.Before(q.Start) && !day.After(q.End)
}

// ID is the quarter name in id form, e.g. "q4_2024".
func (q Quarter) ID() string {
	return strings.ReplaceAll(strings.ToLower(q.Name), " ", "_")
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Quarters covers the full generated history, chronological, contiguous and
// non-overlapping. OneRMProgression below indexes into this slice.
var Quarters = []Quarter{
	{Name: "Q4 2024", Start: day(2024, time.October, 1), End: day(2024, time.December, 31), Bodyweight: 144},
	{Name: "Q1 2025", Start: day(2025, time.January, 1), End: day(2025, time.March, 31), Bodyweight: 148},
	{Name: "Q2 2025", Start: day(2025, time.April, 1), End: day(2025, time.June, 30), Bodyweight: 152},
	{Name: "Q3 2025", Start: day(2025, time.July, 1), End: day(2025, time.September, 30), Bodyweight: 149},
	{Name: "Q4 2025", Start: day(2025, time.October, 1), End: day(2025, time.December, 31), Bodyweight: 150},
}

// OneRMProgression holds the one-rep max per exercise at the start of each
// quarter, one value per entry in Quarters. Pull-up values are bodyweight
// plus added weight, dumbbell values are per hand.
var OneRMProgression = map[string][]float64{
	"barbell_back_squat":     {170, 180, 215, 220, 195},
	"conventional_deadlift":  {130, 155, 200, 240, 260},
	"barbell_bench_press":    {135, 165, 185, 200, 195},
	"overhead_press":         {60, 80, 100, 105, 100},
	"pull_up":                {144, 168, 192, 214, 215},
	"pendlay_row":            {75, 105, 135, 150, 125},
	"dumbbell_bench_press":   {50, 60, 70, 75, 70},
	"barbell_row":            {95, 115, 140, 155, 130},
	"lat_pulldown":           {100, 120, 140, 150, 145},
	"dumbbell_lateral_raise": {15, 20, 25, 27, 25},
	"tricep_extension":       {40, 50, 60, 65, 60},
	"barbell_curl":           {50, 60, 75, 80, 75},
}

// FullBodyRotation defines the five exercise slots of a full body workout.
// Slot order: primary compound, upper push, upper pull, two accessories.
// The selector rotates through each slot's options by calendar day.
var FullBodyRotation = [][]string{
	{"barbell_back_squat", "conventional_deadlift"},
	{"barbell_bench_press", "overhead_press"},
	{"pull_up", "barbell_row", "lat_pulldown"},
	{"dumbbell_lateral_raise", "tricep_extension"},
	{"barbell_curl", "pendlay_row"},
}

const (
	CardioExercise   = "treadmill_run"
	CardioProtocolID = "cardio_30min_steady"
)

// Protocol describes a repetition scheme. IDs must match the app's
// protocol_configs.json.
type Protocol struct {
	Reps      []int
	Intensity float64
	RestSec   int
}

var Protocols = map[string]Protocol{
	"strength_3x5_moderate":  {Reps: []int{5, 5, 5}, Intensity: 0.75, RestSec: 180},
	"strength_5x5_straight":  {Reps: []int{5, 5, 5, 5, 5}, Intensity: 0.70, RestSec: 180},
	"strength_3x8_moderate":  {Reps: []int{8, 8, 8}, Intensity: 0.65, RestSec: 90},
	"strength_3x10_moderate": {Reps: []int{10, 10, 10}, Intensity: 0.60, RestSec: 90},
	"strength_3x12_light":    {Reps: []int{12, 12, 12}, Intensity: 0.55, RestSec: 60},
}

const fallbackProtocolID = "strength_3x5_moderate"

// Phase is one periodization stage of a 12-week quarter. The three phases
// must partition weeks 1-12 without gaps or overlap.
type Phase struct {
	Name           string
	WeekStart      int
	WeekEnd        int
	IntensityStart float64
	IntensityEnd   float64
	Protocol       string
	Focus          string
	Rationale      string
}

var Phases = []Phase{
	{
		Name:           "Accumulation",
		WeekStart:      1,
		WeekEnd:        4,
		IntensityStart: 0.60,
		IntensityEnd:   0.70,
		Protocol:       "strength_3x10_moderate",
		Focus:          "foundation",
		Rationale:      "Build work capacity with moderate intensity, higher volume",
	},
	{
		Name:           "Intensification",
		WeekStart:      5,
		WeekEnd:        8,
		IntensityStart: 0.70,
		IntensityEnd:   0.80,
		Protocol:       "strength_5x5_straight",
		Focus:          "development",
		Rationale:      "Increase intensity, reduce volume for strength adaptation",
	},
	{
		Name:           "Realization",
		WeekStart:      9,
		WeekEnd:        12,
		IntensityStart: 0.80,
		IntensityEnd:   0.90,
		Protocol:       "strength_3x5_moderate",
		Focus:          "peak",
		Rationale:      "Peak strength with high intensity, low volume",
	},
}

// targetsLastUpdated is the lastUpdated stamp on generated 1RM targets,
// matching the most recent quarterly calibration.
var targetsLastUpdated = time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)
