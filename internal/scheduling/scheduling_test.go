package scheduling

import (
	"context"
	"errors"
	"strings"
	"time"

	"medical-appointment-assistant/internal/domain/entity"
)

// Wednesday 2025-03-12, 10:00 in the clinic's zone.
var wednesday = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

type stubDirectory struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (d *stubDirectory) FindDoctor(_ context.Context, fragment string) (*entity.Doctor, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	for i := range d.doctors {
		if strings.Contains(strings.ToLower(d.doctors[i].Name), strings.ToLower(fragment)) {
			doc := d.doctors[i]
			return &doc, nil
		}
	}
	return nil, nil
}

func newRoster() *stubDirectory {
	return &stubDirectory{doctors: []entity.Doctor{
		{ID: 1, Name: "Andrei Popescu", Specialty: entity.SpecialtyAdultCardiology},
		{ID: 2, Name: "Dr. Elena Ionescu", Specialty: entity.SpecialtyPediatricCardiology},
		{ID: 3, Name: "Mihai Georgescu", Specialty: entity.SpecialtyCardiovascularSurgery},
	}}
}

func newTestNormalizer(dir DoctorDirectory) *Normalizer {
	return NewNormalizer(FixedClock{At: wednesday}, dir)
}

var errStoreDown = errors.New("connection refused")

func day(s string) time.Time {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}
