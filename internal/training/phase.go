package training

// PhaseForWeek returns the periodization phase covering the given 1-based
// training week. Weeks past the last phase map to the last phase: a quarter
// does not always split into whole weeks and scheduling can run into a 13th
// calendar week, which still belongs to the peaking block.
func PhaseForWeek(week int) Phase {
	for _, p := range Phases {
		if week >= p.WeekStart && week <= p.WeekEnd {
			return p
		}
	}
	return Phases[len(Phases)-1]
}

// IntensityForWeek linearly interpolates training intensity between the
// phase start and end values across the phase week span. Week 1 of a phase
// gets the start intensity, the last week the end intensity.
func IntensityForWeek(week int, phase Phase) float64 {
	span := phase.WeekEnd - phase.WeekStart + 1
	if span <= 1 {
		return phase.IntensityStart
	}
	progress := float64(week-phase.WeekStart) / float64(span-1)
	return phase.IntensityStart + (phase.IntensityEnd-phase.IntensityStart)*progress
}
