package training

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

type WorkoutType string

const (
	WorkoutTypeStrength WorkoutType = "strength"
	WorkoutTypeCardio   WorkoutType = "cardio"
)

// Plan is one quarterly training plan. Field names and enum values follow the
// app datastore schema, they must not change without a matching app release.
type Plan struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Description            string    `json:"description"`
	Goal                   string    `json:"goal"`
	MemberID               string    `json:"memberId"`
	TrainerID              string    `json:"trainerId"`
	StartDate              time.Time `json:"startDate"`
	EndDate                time.Time `json:"endDate"`
	Status                 Status    `json:"status"`
	SplitType              string    `json:"splitType"`
	PreferredDays          []string  `json:"preferredDays"`
	CompoundTimeAllocation float64   `json:"compoundTimeAllocation"`
	IsolationApproach      string    `json:"isolationApproach"`
	EmphasizedMuscleGroups []string  `json:"emphasizedMuscleGroups"`
	ExcludedMuscleGroups   []string  `json:"excludedMuscleGroups"`
	TargetSessionDuration  int       `json:"targetSessionDuration"`
	TrainingLocation       string    `json:"trainingLocation"`
	CardioDays             int       `json:"cardioDays"`
	WeightliftingDays      int       `json:"weightliftingDays"`
	IsSingleWorkout        bool      `json:"isSingleWorkout"`
	ExperienceLevel        string    `json:"experienceLevel"`
}

// Program is one periodization phase of a plan, three per quarter.
type Program struct {
	ID                string    `json:"id"`
	PlanID            string    `json:"planId"`
	Name              string    `json:"name"`
	Focus             string    `json:"focus"`
	Status            Status    `json:"status"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	StartingIntensity float64   `json:"startingIntensity"`
	EndingIntensity   float64   `json:"endingIntensity"`
	ProgressionType   string    `json:"progressionType"`
	Rationale         string    `json:"rationale"`
}

type Workout struct {
	ID                 string            `json:"id"`
	ProgramID          string            `json:"programId"`
	Name               string            `json:"name"`
	ScheduledDate      time.Time         `json:"scheduledDate"`
	Type               WorkoutType       `json:"type"`
	SplitDay           string            `json:"splitDay"`
	Status             Status            `json:"status"`
	CompletedDate      *time.Time        `json:"completedDate"`
	ExerciseIDs        []string          `json:"exerciseIds"`
	ProtocolVariantIDs map[string]string `json:"protocolVariantIds"`
}

type ExerciseInstance struct {
	ID                string   `json:"id"`
	ExerciseID        string   `json:"exerciseId"`
	WorkoutID         string   `json:"workoutId"`
	ProtocolVariantID string   `json:"protocolVariantId"`
	SetIDs            []string `json:"setIds"`
	Status            Status   `json:"status"`
	OrderIndex        int      `json:"orderIndex"`
}

type Set struct {
	ID                 string     `json:"id"`
	ExerciseInstanceID string     `json:"exerciseInstanceId"`
	SetNumber          int        `json:"setNumber"`
	TargetWeight       *float64   `json:"targetWeight"`
	TargetReps         int        `json:"targetReps"`
	ActualWeight       *float64   `json:"actualWeight"`
	ActualReps         *int       `json:"actualReps"`
	Completion         Status     `json:"completion"`
	RecordedDate       *time.Time `json:"recordedDate"`
}

// Target holds the current one-rep max for an exercise and its history.
type Target struct {
	ID            string        `json:"id"`
	MemberID      string        `json:"memberId"`
	ExerciseID    string        `json:"exerciseId"`
	CurrentTarget float64       `json:"currentTarget"`
	TargetHistory []TargetEntry `json:"targetHistory"`
	LastUpdated   time.Time     `json:"lastUpdated"`
	TargetType    string        `json:"targetType"`
}

type TargetEntry struct {
	Date              time.Time `json:"date"`
	Target            float64   `json:"target"`
	CalibrationSource string    `json:"calibrationSource"`
}
