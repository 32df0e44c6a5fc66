package classes

import "time"

// Slot is one entry of the weekly studio timetable.
type Slot struct {
	ClassID      string
	Hour         int
	Minute       int
	InstructorID string
}

// WeeklySchedule is the boutique studio timetable the instances are stamped
// from. Slots whose class id is missing from gym_classes.json are skipped.
var WeeklySchedule = map[time.Weekday][]Slot{
	time.Monday: {
		{"class_full_body_burn_cellar", 6, 30, "jazmin_scotto"},
		{"class_red_light_district", 8, 0, "nick_vargas"},
		{"class_full_body_burn_cellar", 9, 0, "jazmin_scotto"},
		{"class_power_abs_express", 10, 0, "nissa_ellison_walsh"},
		{"class_lunch_break_hiit", 12, 30, "carolyn_tallents"},
		{"class_flow_flexibility", 17, 30, "jazmin_scotto"},
		{"class_build_burn_hiit", 18, 30, "nissa_ellison_walsh"},
	},
	time.Tuesday: {
		{"class_dynamic_morning_flow", 6, 45, "rachael_stark_egolf"},
		{"class_sweat_lab", 8, 0, "andres_riggi"},
		{"class_yoga_sculpt_burn", 9, 0, "laura_lane"},
		{"class_full_body_circuit", 10, 0, "carolyn_tallents"},
		{"class_60_plus_womens", 11, 30, "lady_velez"},
		{"class_full_body_burn", 17, 30, "jazmin_scotto"},
		{"class_level_up_power_yoga", 18, 30, "anna_lee"},
	},
	time.Wednesday: {
		{"class_full_body_burn_cellar", 6, 30, "jazmin_scotto"},
		{"class_red_light_district", 8, 0, "nick_vargas"},
		{"class_lit_pilates_fusion", 9, 0, "stevie_barbieri"},
		{"class_prenatal_postnatal", 10, 30, "carolyn_tallents"},
		{"class_lunch_break_hiit", 12, 30, "carolyn_tallents"},
		{"class_flow_flexibility", 17, 30, "jazmin_scotto"},
		{"class_glutes_abs", 18, 30, "andres_riggi"},
	},
	time.Thursday: {
		{"class_dynamic_morning_flow", 6, 45, "rachael_stark_egolf"},
		{"class_full_body_burn", 8, 0, "jazmin_scotto"},
		{"class_yoga_sculpt_burn", 9, 0, "laura_lane"},
		{"class_power_abs_express", 10, 0, "nissa_ellison_walsh"},
		{"class_full_body_circuit", 17, 30, "carolyn_tallents"},
		{"class_all_level_flow_yoga", 18, 30, "anna_lee"},
		{"class_build_burn_hiit", 19, 0, "nissa_ellison_walsh"},
	},
	time.Friday: {
		{"class_full_body_burn_cellar", 6, 30, "jazmin_scotto"},
		{"class_red_light_district", 8, 0, "nick_vargas"},
		{"class_full_body_burn_cellar", 9, 0, "jazmin_scotto"},
		{"class_power_abs_express", 10, 0, "nissa_ellison_walsh"},
		{"class_prenatal_postnatal", 10, 30, "carolyn_tallents"},
		{"class_full_body_burn", 17, 30, "jazmin_scotto"},
	},
	time.Saturday: {
		{"class_lit_pilates_fusion", 8, 0, "stevie_barbieri"},
		{"class_all_level_flow_yoga", 9, 0, "anna_lee"},
		{"class_full_body_burn_cellar", 10, 0, "jazmin_scotto"},
		{"class_red_light_district", 11, 0, "nick_vargas"},
		{"class_glutes_abs", 12, 0, "andres_riggi"},
	},
	time.Sunday: {
		{"class_lit_pilates_fusion", 8, 0, "stevie_barbieri"},
		{"class_level_up_power_yoga", 9, 0, "anna_lee"},
		{"class_red_light_district", 10, 0, "nick_vargas"},
		{"class_full_body_burn_cellar", 10, 0, "jazmin_scotto"},
		{"class_flow_flexibility", 11, 0, "jazmin_scotto"},
		{"class_yin_yoga_glow", 16, 0, "anna_lee"},
	},
}

// FavoriteClasses are the member's preferred classes, booked more often and
// busier overall.
var FavoriteClasses = []string{
	"class_full_body_burn_cellar",
	"class_red_light_district",
	"class_build_burn_hiit",
	"class_sweat_lab",
}

// ScheduleStart and ScheduleEnd bound the generated instance range.
var (
	ScheduleStart = time.Date(2025, time.October, 1, 0, 0, 0, 0, StudioTimezone)
	ScheduleEnd   = time.Date(2025, time.December, 31, 0, 0, 0, 0, StudioTimezone)
)

// StudioTimezone is the fixed UTC-5 offset the app stores class times in.
var StudioTimezone = time.FixedZone("EST", -5*60*60)
