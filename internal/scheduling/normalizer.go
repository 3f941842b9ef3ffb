package scheduling

import (
	"context"
	"time"
)

// Normalizer binds the normalization rules to a clock and a doctor roster.
// It is what the dialogue and HTTP layers talk to.
type Normalizer struct {
	clock   Clock
	doctors *DoctorResolver
}

func NewNormalizer(clock Clock, directory DoctorDirectory) *Normalizer {
	return &Normalizer{
		clock:   clock,
		doctors: NewDoctorResolver(directory),
	}
}

func (n *Normalizer) Clock() Clock {
	return n.clock
}

func (n *Normalizer) Today() time.Time {
	return n.clock.Today()
}

func (n *Normalizer) NormalizeDate(text string) (string, error) {
	return NormalizeDate(text, n.clock.Today())
}

// NormalizeTime checks the syntax of text and, when date is a canonical
// YYYY-MM-DD value, the working hours of that day. An empty date skips the
// working-hours check.
func (n *Normalizer) NormalizeTime(text, date string) (string, error) {
	if date == "" {
		return NormalizeTime(text, nil)
	}
	d, err := ParseCanonicalDate(date, n.clock.Today().Location())
	if err != nil {
		return "", newFieldError(ErrInvalidDate, FieldDate, invalidDateMessage)
	}
	return NormalizeTime(text, &d)
}

func (n *Normalizer) ResolveDoctor(ctx context.Context, text string) (ResolvedDoctor, error) {
	return n.doctors.Resolve(ctx, text)
}

// ResolveFilterDate resolves a date used to filter listings, where past days
// and Sundays are allowed.
func (n *Normalizer) ResolveFilterDate(text string) (string, error) {
	d, err := ResolveDate(text, n.clock.Today())
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}
