package classes

import "time"

// GymClass is the read-only input record from gym_classes.json. Only the
// fields the generator needs are decoded.
type GymClass struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	LocationName string `json:"locationName"`
	Address      string `json:"address"`
}

const (
	defaultCapacity     = 20
	defaultLocationName = "Class Studio + Spa"
	defaultAddress      = "389 Court St"
)

// withDefaults fills the optional fields the source data sometimes omits.
func (c GymClass) withDefaults() GymClass {
	if c.Capacity == 0 {
		c.Capacity = defaultCapacity
	}
	if c.LocationName == "" {
		c.LocationName = defaultLocationName
	}
	if c.Address == "" {
		c.Address = defaultAddress
	}
	return c
}

// ClassInstance is one occurrence of a gym class on the schedule.
type ClassInstance struct {
	ID            string    `json:"id"`
	GymClassID    string    `json:"gymClassId"`
	GymID         string    `json:"gymId"`
	ScheduledDate time.Time `json:"scheduledDate"`
	InstructorID  string    `json:"instructorId"`
	LocationName  string    `json:"locationName"`
	Capacity      int       `json:"capacity"`
	BookedCount   int       `json:"bookedCount"`
	WaitlistCount int       `json:"waitlistCount"`
	Status        string    `json:"status"`
	Address       string    `json:"address"`
}

// ClassBooking is the member's booking of one class instance.
type ClassBooking struct {
	ID               string     `json:"id"`
	MemberID         string     `json:"memberId"`
	ClassInstanceID  string     `json:"classInstanceId"`
	GymClassID       string     `json:"gymClassId"`
	GymID            string     `json:"gymId"`
	Status           string     `json:"status"`
	WaitlistPosition *int       `json:"waitlistPosition"`
	CreditUsed       int        `json:"creditUsed"`
	BookedAt         time.Time  `json:"bookedAt"`
	CancelledAt      *time.Time `json:"cancelledAt"`
	CheckedInAt      *time.Time `json:"checkedInAt"`
	BookingSource    string     `json:"bookingSource"`
}

const (
	InstanceStatusScheduled = "scheduled"
	InstanceStatusCompleted = "completed"

	// past bookings are attended, not completed, per the app's booking model
	BookingStatusAttended  = "attended"
	BookingStatusConfirmed = "confirmed"
)
