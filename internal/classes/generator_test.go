package classes_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/medinafit/fixturegen/internal/classes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now falls mid-range, so the generator produces both past and future records
var testNow = time.Date(2025, time.November, 10, 12, 0, 0, 0, classes.StudioTimezone)

func testGymClasses() map[string]classes.GymClass {
	ids := []string{
		"class_full_body_burn_cellar",
		"class_red_light_district",
		"class_power_abs_express",
		"class_lunch_break_hiit",
		"class_flow_flexibility",
		"class_build_burn_hiit",
		"class_dynamic_morning_flow",
		"class_sweat_lab",
		"class_yoga_sculpt_burn",
		"class_full_body_circuit",
		"class_60_plus_womens",
		"class_full_body_burn",
		"class_level_up_power_yoga",
		"class_lit_pilates_fusion",
		"class_prenatal_postnatal",
		"class_glutes_abs",
		"class_all_level_flow_yoga",
		"class_yin_yoga_glow",
	}
	gymClasses := make(map[string]classes.GymClass, len(ids))
	for _, id := range ids {
		gymClasses[id] = classes.GymClass{
			ID:           id,
			Name:         strings.ReplaceAll(strings.TrimPrefix(id, "class_"), "_", " "),
			Capacity:     20,
			LocationName: "Class Studio + Spa",
			Address:      "389 Court St",
		}
	}
	return gymClasses
}

func newTestGenerator() *classes.Generator {
	return classes.NewGenerator("bobby", "district_brooklyn", testGymClasses(), testNow)
}

func TestGenerator_Deterministic(t *testing.T) {
	i1, b1, s1 := newTestGenerator().Generate()
	i2, b2, s2 := newTestGenerator().Generate()

	assert.Equal(t, i1, i2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, s1, s2)
}

func TestGenerator_Instances(t *testing.T) {
	instances, _, stats := newTestGenerator().Generate()
	require.NotEmpty(t, instances)
	assert.Equal(t, len(instances), stats.Instances)

	for id, inst := range instances {
		assert.Equal(t, id, inst.ID)
		assert.True(t, strings.HasPrefix(id, "instance_"), id)
		assert.Equal(t, "district_brooklyn", inst.GymID)
		assert.NotEmpty(t, inst.InstructorID)

		assert.LessOrEqual(t, inst.BookedCount, inst.Capacity, id)
		if inst.WaitlistCount > 0 {
			assert.Equal(t, inst.Capacity, inst.BookedCount, "waitlist on a class that is not full: %s", id)
			assert.LessOrEqual(t, inst.WaitlistCount, 4, id)
		}

		if inst.ScheduledDate.Before(testNow) {
			assert.Equal(t, classes.InstanceStatusCompleted, inst.Status, id)
		} else {
			assert.Equal(t, classes.InstanceStatusScheduled, inst.Status, id)
		}
	}

	// schedule runs Oct through Dec
	assert.Len(t, stats.InstancesByMonth, 3)
	for _, month := range []string{"2025-10", "2025-11", "2025-12"} {
		assert.NotZero(t, stats.InstancesByMonth[month], month)
	}
}

func TestGenerator_InstanceIDFormat(t *testing.T) {
	at := time.Date(2025, time.October, 6, 6, 30, 0, 0, classes.StudioTimezone)
	assert.Equal(t, "instance_full_body_bu_20251006_0630", classes.InstanceID("class_full_body_burn_cellar", at))
	assert.Equal(t, "booking_bobby_full_body__20251006", classes.BookingID("bobby", "class_full_body_burn_cellar", at))
}

func TestGenerator_SkipsUnknownClasses(t *testing.T) {
	gymClasses := testGymClasses()
	delete(gymClasses, "class_red_light_district")

	gen := classes.NewGenerator("bobby", "district_brooklyn", gymClasses, testNow)
	instances, _, _ := gen.Generate()

	for id, inst := range instances {
		assert.NotEqual(t, "class_red_light_district", inst.GymClassID, id)
	}
}

func TestGenerator_CapacityDefaults(t *testing.T) {
	gymClasses := testGymClasses()
	cls := gymClasses["class_sweat_lab"]
	cls.Capacity = 0
	cls.LocationName = ""
	cls.Address = ""
	gymClasses["class_sweat_lab"] = cls

	gen := classes.NewGenerator("bobby", "district_brooklyn", gymClasses, testNow)
	instances, _, _ := gen.Generate()

	found := false
	for _, inst := range instances {
		if inst.GymClassID != "class_sweat_lab" {
			continue
		}
		found = true
		assert.Equal(t, 20, inst.Capacity)
		assert.Equal(t, "Class Studio + Spa", inst.LocationName)
		assert.Equal(t, "389 Court St", inst.Address)
	}
	assert.True(t, found)
}

func TestGenerator_Bookings(t *testing.T) {
	instances, bookings, stats := newTestGenerator().Generate()
	require.NotEmpty(t, bookings)
	assert.Equal(t, len(bookings), stats.BookingsPast+stats.BookingsFuture)

	for id, b := range bookings {
		assert.Equal(t, id, b.ID)
		assert.Equal(t, "bobby", b.MemberID)
		assert.Equal(t, 1, b.CreditUsed)
		assert.Nil(t, b.CancelledAt)
		assert.Nil(t, b.WaitlistPosition)
		assert.Contains(t, []string{"app", "ai"}, b.BookingSource)

		inst, ok := instances[b.ClassInstanceID]
		require.True(t, ok, "booking %s references unknown instance", id)
		assert.Equal(t, inst.GymClassID, b.GymClassID)

		assert.True(t, b.BookedAt.Before(inst.ScheduledDate), id)

		if inst.ScheduledDate.Before(testNow) {
			assert.Equal(t, classes.BookingStatusAttended, b.Status, id)
			require.NotNil(t, b.CheckedInAt, id)
			assert.Equal(t, inst.ScheduledDate, *b.CheckedInAt, id)
		} else {
			assert.Equal(t, classes.BookingStatusConfirmed, b.Status, id)
			assert.Nil(t, b.CheckedInAt, id)
		}
	}
}

func TestGenerator_WeeklyBookingCap(t *testing.T) {
	instances, bookings, _ := newTestGenerator().Generate()

	perWeek := make(map[string]int)
	for _, b := range bookings {
		inst := instances[b.ClassInstanceID]
		year, week := inst.ScheduledDate.ISOWeek()
		perWeek[fmt.Sprintf("%d-W%02d", year, week)]++
	}

	for week, count := range perWeek {
		assert.LessOrEqual(t, count, 3, "week %s", week)
	}
}
