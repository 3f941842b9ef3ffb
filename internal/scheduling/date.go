package scheduling

import (
	"fmt"
	"strings"
	"time"
)

const invalidDateMessage = "Please provide a valid date, for example today, tomorrow, a weekday like Friday, or a date such as 2025-03-14."

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type dateForm int

const (
	formToday dateForm = iota
	formTomorrow
	formWeekday
	formISO
)

// ResolveDate applies the recognized date forms without the clinic rules
// (past dates and Sundays are returned as is). It is meant for filters.
func ResolveDate(text string, today time.Time) (time.Time, error) {
	d, _, err := resolveDate(text, today)
	return d, err
}

// NormalizeDate returns the canonical YYYY-MM-DD date for a free-text
// expression, rejecting past dates and days the clinic is closed.
func NormalizeDate(text string, today time.Time) (string, error) {
	today = truncateDay(today)

	d, form, err := resolveDate(text, today)
	if err != nil {
		return "", err
	}

	if form == formISO && d.Before(today) {
		return "", newFieldError(ErrInvalidDate, FieldDate,
			fmt.Sprintf("%s is in the past. Please choose today or a later date.", d.Format(DateLayout)))
	}

	if isClosedDay(d.Weekday()) {
		return "", newFieldError(ErrInvalidDate, FieldDate,
			fmt.Sprintf("Sorry, the clinic is closed on Sundays (%s). Please choose another day.", d.Format(DateLayout)))
	}

	return d.Format(DateLayout), nil
}

func resolveDate(text string, today time.Time) (time.Time, dateForm, error) {
	today = truncateDay(today)
	value := strings.ToLower(strings.TrimSpace(text))

	switch value {
	case "":
		return time.Time{}, 0, newFieldError(ErrInvalidDate, FieldDate, invalidDateMessage)
	case "today":
		return today, formToday, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), formTomorrow, nil
	}

	if wd, ok := weekdays[value]; ok {
		return nextWeekday(today, wd), formWeekday, nil
	}

	if d, err := time.ParseInLocation(DateLayout, value, today.Location()); err == nil {
		return d, formISO, nil
	}

	return time.Time{}, 0, newFieldError(ErrInvalidDate, FieldDate, invalidDateMessage)
}

// nextWeekday returns the first wd strictly after today (1 to 7 days ahead).
func nextWeekday(today time.Time, wd time.Weekday) time.Time {
	ahead := (int(wd) - int(today.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return today.AddDate(0, 0, ahead)
}

// ParseCanonicalDate parses a stored YYYY-MM-DD value.
func ParseCanonicalDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, value, loc)
}
