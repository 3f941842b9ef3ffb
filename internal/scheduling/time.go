package scheduling

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const invalidTimeMessage = "Please provide a valid time, for example 2pm, 2:30 pm or 14:00."

// timeMatcher recognizes one surface syntax. It returns ok=false when the
// input is not in its syntax; range checks happen afterwards.
type timeMatcher func(text string) (ClockTime, bool)

var (
	bareHourPattern   = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)?$`)
	hourMinutePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?$`)
)

// timeMatchers are tried in order until one matches.
var timeMatchers = []timeMatcher{
	matchBareHour,
	matchHourMinute,
}

// matchBareHour handles "3", "3pm", "3 pm". No meridiem keeps the hour as written.
func matchBareHour(text string) (ClockTime, bool) {
	m := bareHourPattern.FindStringSubmatch(text)
	if m == nil {
		return ClockTime{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	return ClockTime{Hour: applyMeridiem(hour, m[2]), Minute: 0}, true
}

// matchHourMinute handles "3:30", "03:30pm", "14:30".
func matchHourMinute(text string) (ClockTime, bool) {
	m := hourMinutePattern.FindStringSubmatch(text)
	if m == nil {
		return ClockTime{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return ClockTime{Hour: applyMeridiem(hour, m[3]), Minute: minute}, true
}

// applyMeridiem converts a 12-hour clock reading. With am or pm the hour must
// be 1-12; anything else yields -1 so the range check rejects it.
func applyMeridiem(hour int, meridiem string) int {
	if meridiem == "" {
		return hour
	}
	if hour < 1 || hour > 12 {
		return -1
	}
	switch {
	case meridiem == "pm" && hour != 12:
		return hour + 12
	case meridiem == "am" && hour == 12:
		return 0
	}
	return hour
}

// ParseClockTime runs the matchers and range-checks the result.
func ParseClockTime(text string) (ClockTime, error) {
	value := strings.ToLower(strings.TrimSpace(text))
	for _, match := range timeMatchers {
		ct, ok := match(value)
		if !ok {
			continue
		}
		if ct.Hour < 0 || ct.Hour > 23 || ct.Minute < 0 || ct.Minute > 59 {
			return ClockTime{}, newFieldError(ErrInvalidTime, FieldTime, invalidTimeMessage)
		}
		return ct, nil
	}
	return ClockTime{}, newFieldError(ErrInvalidTime, FieldTime, invalidTimeMessage)
}

// NormalizeTime returns the canonical HH:MM time. When date is given the time
// must also fall inside the working-hours window of that day.
func NormalizeTime(text string, date *time.Time) (string, error) {
	ct, err := ParseClockTime(text)
	if err != nil {
		return "", err
	}
	if date != nil {
		if err := ClinicHours.Check(*date, ct); err != nil {
			return "", err
		}
	}
	return ct.String(), nil
}
