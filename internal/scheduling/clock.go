package scheduling

import "time"

// DateLayout and TimeLayout are the canonical storage formats.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Clock supplies the current date for relative expressions like "tomorrow".
type Clock interface {
	Now() time.Time
	Today() time.Time
}

// SystemClock reads the wall clock in the clinic's location.
type SystemClock struct {
	Location *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{Location: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Location)
}

func (c SystemClock) Today() time.Time {
	return truncateDay(c.Now())
}

// FixedClock always reports the same instant. Used by tests and replays.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Today() time.Time {
	return truncateDay(c.At)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
