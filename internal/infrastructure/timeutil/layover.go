package timeutil

import (
	"regexp"
	"strconv"
)

// minutesPerDay is the wraparound period for across-midnight layovers.
const minutesPerDay = 24 * 60

// clockPattern matches 12-hour clock strings with an AM/PM suffix,
// with or without seconds: "8:55 AM", "11:25:00 PM".
var clockPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::\d{2})?\s*([APap])[Mm]\s*$`)

// ClockMinutes parses a 12-hour clock string into minutes since midnight.
// Returns false for input it cannot parse.
func ClockMinutes(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, false
	}

	// 12 AM is midnight, 12 PM is noon.
	pm := m[3] == "P" || m[3] == "p"
	if pm && hour != 12 {
		hour += 12
	}
	if !pm && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, true
}

// LayoverMinutes derives the layover duration in minutes between the arrival
// time of one segment and the departure time of the next. The inputs are
// localized clock strings with no date component; a departure earlier on the
// clock than the arrival means the departure is on the following day, so the
// gap wraps around midnight. Identical times yield 0, not a full day.
//
// Malformed input yields 0: this sits behind an interactive booking flow
// and a bad time string must not abort it.
func LayoverMinutes(arrivalTime, departureTime string) int {
	arrival, ok := ClockMinutes(arrivalTime)
	if !ok {
		return 0
	}
	departure, ok := ClockMinutes(departureTime)
	if !ok {
		return 0
	}

	diff := departure - arrival
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}
