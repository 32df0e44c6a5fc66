package classes

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/medinafit/fixturegen/pkg"
)

// Generator builds the class schedule history: every timetable slot becomes
// a class instance with synthesized attendance, and the member gets a
// realistic booking history on top. All draws are keyed by instance id, so
// reruns reproduce the same schedule.
type Generator struct {
	memberID  string
	gymID     string
	classes   map[string]GymClass
	favorites map[string]bool
	now       time.Time
}

func NewGenerator(memberID, gymID string, gymClasses map[string]GymClass, now time.Time) *Generator {
	favorites := make(map[string]bool, len(FavoriteClasses))
	for _, id := range FavoriteClasses {
		favorites[id] = true
	}
	return &Generator{
		memberID:  memberID,
		gymID:     gymID,
		classes:   gymClasses,
		favorites: favorites,
		now:       now,
	}
}

// Stats summarizes one generation run for reporting.
type Stats struct {
	Instances        int
	InstancesByMonth map[string]int
	BookingsPast     int
	BookingsFuture   int
}

// Generate walks every day from ScheduleStart to ScheduleEnd and emits the
// class instances plus the member's bookings, capped at 3 per week.
func (g *Generator) Generate() (map[string]ClassInstance, map[string]ClassBooking, Stats) {
	instances := make(map[string]ClassInstance)
	bookings := make(map[string]ClassBooking)
	stats := Stats{InstancesByMonth: make(map[string]int)}

	weeklyBookings := make(map[string]int)

	for day := ScheduleStart; !day.After(ScheduleEnd); day = day.AddDate(0, 0, 1) {
		type dayClass struct {
			instanceID string
			classID    string
			at         time.Time
		}
		var dayClasses []dayClass

		for _, slot := range WeeklySchedule[day.Weekday()] {
			gymClass, ok := g.classes[slot.ClassID]
			if !ok {
				continue
			}
			gymClass = gymClass.withDefaults()

			at := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour, slot.Minute, 0, 0, StudioTimezone)
			instanceID := InstanceID(slot.ClassID, at)

			booked, waitlist := g.bookingPattern(instanceID, at, slot.ClassID, gymClass.Capacity)

			status := InstanceStatusScheduled
			if at.Before(g.now) {
				status = InstanceStatusCompleted
			}

			instances[instanceID] = ClassInstance{
				ID:            instanceID,
				GymClassID:    slot.ClassID,
				GymID:         g.gymID,
				ScheduledDate: at,
				InstructorID:  slot.InstructorID,
				LocationName:  gymClass.LocationName,
				Capacity:      gymClass.Capacity,
				BookedCount:   booked,
				WaitlistCount: waitlist,
				Status:        status,
				Address:       gymClass.Address,
			}
			stats.Instances++
			stats.InstancesByMonth[at.Format("2006-01")]++

			dayClasses = append(dayClasses, dayClass{instanceID: instanceID, classID: slot.ClassID, at: at})
		}

		year, week := day.ISOWeek()
		weekKey := fmt.Sprintf("%d-W%02d", year, week)

		for _, dc := range dayClasses {
			if weeklyBookings[weekKey] >= 3 {
				break
			}
			if !g.shouldBook(dc.instanceID, dc.classID) {
				continue
			}

			booking := g.buildBooking(dc.instanceID, dc.classID, dc.at)
			bookings[booking.ID] = booking
			weeklyBookings[weekKey]++
			if booking.Status == BookingStatusAttended {
				stats.BookingsPast++
			} else {
				stats.BookingsFuture++
			}
		}
	}

	return instances, bookings, stats
}

// bookingPattern synthesizes how full a class got. Past classes run fuller
// than future ones, mornings and weekends fuller than weekday off-hours,
// favorites get a boost; full classes sometimes carry a small waitlist.
func (g *Generator) bookingPattern(instanceID string, at time.Time, classID string, capacity int) (booked, waitlist int) {
	rng := pkg.NewKeyedRand("class-attendance", instanceID)

	isPast := at.Before(g.now)
	isWeekend := at.Weekday() == time.Saturday || at.Weekday() == time.Sunday
	isMorning := at.Hour() < 10

	var baseRate float64
	switch {
	case isPast:
		baseRate = uniform(rng, 0.6, 0.95)
	case isWeekend:
		baseRate = uniform(rng, 0.5, 0.85)
	case isMorning:
		baseRate = uniform(rng, 0.4, 0.8)
	default:
		baseRate = uniform(rng, 0.3, 0.7)
	}

	if g.favorites[classID] {
		baseRate += 0.15
		if baseRate > 1.0 {
			baseRate = 1.0
		}
	}

	booked = int(float64(capacity) * baseRate)
	if booked >= capacity {
		booked = capacity
		if rng.Float64() < 0.3 {
			waitlist = 1 + rng.Intn(4)
		}
	}
	return booked, waitlist
}

// shouldBook decides whether the member books this instance: favorites at
// 25%, everything else at 8%, keyed by member and instance.
func (g *Generator) shouldBook(instanceID, classID string) bool {
	p := 0.08
	if g.favorites[classID] {
		p = 0.25
	}
	return pkg.KeyedChance(p, "member-booking", g.memberID, instanceID)
}

func (g *Generator) buildBooking(instanceID, classID string, at time.Time) ClassBooking {
	rng := pkg.NewKeyedRand("booking-details", g.memberID, instanceID)

	isPast := at.Before(g.now)
	status := BookingStatusConfirmed
	if isPast {
		status = BookingStatusAttended
	}

	sources := []string{"app", "app", "app", "ai"}

	booking := ClassBooking{
		ID:              BookingID(g.memberID, classID, at),
		MemberID:        g.memberID,
		ClassInstanceID: instanceID,
		GymClassID:      classID,
		GymID:           g.gymID,
		Status:          status,
		CreditUsed:      1,
		BookedAt:        at.AddDate(0, 0, -(1 + rng.Intn(7))),
		BookingSource:   sources[rng.Intn(len(sources))],
	}
	if isPast {
		checkedIn := at
		booking.CheckedInAt = &checkedIn
	}
	return booking
}

// InstanceID builds a class instance id, e.g.
// instance_full_body_bu_20251006_0630.
func InstanceID(classID string, at time.Time) string {
	return fmt.Sprintf("instance_%s_%s", trimClassPrefix(classID, 12), at.Format("20060102_1504"))
}

// BookingID builds a booking id, e.g. booking_bobby_full_body__20251006.
func BookingID(memberID, classID string, at time.Time) string {
	return fmt.Sprintf("booking_%s_%s_%s", memberID, trimClassPrefix(classID, 10), at.Format("20060102"))
}

func trimClassPrefix(classID string, maxLen int) string {
	trimmed := strings.TrimPrefix(classID, "class_")
	if len(trimmed) > maxLen {
		trimmed = trimmed[:maxLen]
	}
	return trimmed
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
