package scheduling

import (
	"fmt"
	"time"
)

// lastSlotLead is the gap between the last bookable slot and the advertised closing time.
const lastSlotLead = 30 * time.Minute

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) add(d time.Duration) ClockTime {
	m := c.minutes() + int(d/time.Minute)
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// Window is the bookable range of one day. Both ends are inclusive.
type Window struct {
	Open     ClockTime
	LastSlot ClockTime
}

// Closes is the closing time advertised to patients.
func (w Window) Closes() ClockTime {
	return w.LastSlot.add(lastSlotLead)
}

func (w Window) contains(t ClockTime) bool {
	return t.minutes() >= w.Open.minutes() && t.minutes() <= w.LastSlot.minutes()
}

// WeeklyHours maps a weekday to its window. A missing entry means closed.
type WeeklyHours map[time.Weekday]Window

var (
	weekdayWindow  = Window{Open: ClockTime{8, 0}, LastSlot: ClockTime{17, 30}}
	saturdayWindow = Window{Open: ClockTime{9, 0}, LastSlot: ClockTime{13, 30}}
)

// ClinicHours is the clinic's working-hours table.
var ClinicHours = WeeklyHours{
	time.Monday:    weekdayWindow,
	time.Tuesday:   weekdayWindow,
	time.Wednesday: weekdayWindow,
	time.Thursday:  weekdayWindow,
	time.Friday:    weekdayWindow,
	time.Saturday:  saturdayWindow,
}

// WindowFor returns the window for a weekday and whether the clinic is open.
func (h WeeklyHours) WindowFor(wd time.Weekday) (Window, bool) {
	w, ok := h[wd]
	return w, ok
}

// Check validates t against the window of date's weekday.
func (h WeeklyHours) Check(date time.Time, t ClockTime) error {
	w, open := h.WindowFor(date.Weekday())
	if !open {
		return newFieldError(ErrInvalidTime, FieldTime,
			fmt.Sprintf("Sorry, the clinic is closed on %ss.", date.Weekday()))
	}
	if !w.contains(t) {
		return newFieldError(ErrInvalidTime, FieldTime,
			fmt.Sprintf("On %ss the clinic is open from %s to %s. Please choose a time between %s and %s.",
				date.Weekday(), w.Open, w.Closes(), w.Open, w.LastSlot))
	}
	return nil
}

func isClosedDay(wd time.Weekday) bool {
	_, open := ClinicHours.WindowFor(wd)
	return !open
}
