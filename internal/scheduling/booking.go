package scheduling

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"medical-appointment-assistant/internal/domain/entity"
)

const defaultTitle = "Medical Appointment"

var durationPattern = regexp.MustCompile(`^(\d{1,3})\s*(?:m|min|mins|minute|minutes)?$`)

// BookingSlots is the raw, possibly partial, input of a booking.
type BookingSlots struct {
	PatientID  uint
	Date       string
	Time       string
	DoctorName string
	Reason     string

	// Optional extras
	AppointmentType string
	Duration        string
	Location        string
	Phone           string
}

// BookingAssessment is the outcome of assembling a booking. Exactly one of
// Missing, Invalid and Draft is populated.
type BookingAssessment struct {
	Date   DateSlot
	Time   TimeSlot
	Doctor DoctorSlot
	Reason ReasonSlot

	Missing []string
	Invalid []FieldError
	Draft   *entity.Appointment

	errs []*ValidationError
}

// Ready reports whether Draft can be persisted.
func (a *BookingAssessment) Ready() bool {
	return a.Draft != nil
}

// Err returns nil for a ready assessment and a *ValidationError otherwise.
func (a *BookingAssessment) Err() error {
	if len(a.Missing) > 0 {
		return NewIncompleteError(a.Missing)
	}
	if len(a.errs) == 0 {
		return nil
	}
	first := *a.errs[0]
	first.Fields = a.Invalid
	return &first
}

// Assembler turns slots into a persistable appointment draft.
type Assembler struct {
	normalizer *Normalizer
}

func NewAssembler(normalizer *Normalizer) *Assembler {
	return &Assembler{normalizer: normalizer}
}

// Assemble reports missing slots before attempting any normalization. The
// returned error is only set for infrastructure failures.
func (a *Assembler) Assemble(ctx context.Context, slots BookingSlots) (*BookingAssessment, error) {
	as := &BookingAssessment{
		Date:   DateSlot{Raw: slots.Date},
		Time:   TimeSlot{Raw: slots.Time},
		Doctor: DoctorSlot{Raw: slots.DoctorName},
		Reason: ReasonSlot{Raw: slots.Reason},
	}

	as.Missing = missingSlots(as)
	if len(as.Missing) > 0 {
		return as, nil
	}

	if err := a.normalize(ctx, as); err != nil {
		return nil, err
	}

	for _, ve := range []*ValidationError{as.Date.Err, as.Time.Err, as.Doctor.Err, as.Reason.Err} {
		if ve != nil {
			as.errs = append(as.errs, ve)
			as.Invalid = append(as.Invalid, ve.fieldError())
		}
	}
	if len(as.errs) > 0 {
		return as, nil
	}

	as.Draft = &entity.Appointment{
		PatientID:       slots.PatientID,
		DoctorID:        as.Doctor.Doctor.ID,
		DoctorName:      as.Doctor.Doctor.Name,
		Title:           bookingTitle(slots.AppointmentType, as.Reason.Value),
		Date:            as.Date.Value,
		Time:            as.Time.Value,
		DurationMinutes: ParseDuration(slots.Duration),
		Reason:          as.Reason.Value,
		Location:        strings.TrimSpace(slots.Location),
		Phone:           strings.TrimSpace(slots.Phone),
		Status:          entity.AppointmentStatusScheduled,
	}
	return as, nil
}

func (a *Assembler) normalize(ctx context.Context, as *BookingAssessment) error {
	n := a.normalizer

	value, err := n.NormalizeDate(as.Date.Raw)
	as.Date.Value, as.Date.Err = value, mustValidation(err)

	// The window check needs a valid date; otherwise only the syntax is checked.
	value, err = n.NormalizeTime(as.Time.Raw, as.Date.Value)
	as.Time.Value, as.Time.Err = value, mustValidation(err)

	doctor, err := n.ResolveDoctor(ctx, as.Doctor.Raw)
	ve, infra := asValidation(err)
	if infra != nil {
		return infra
	}
	as.Doctor.Doctor, as.Doctor.Err = doctor, ve

	value, err = ValidateReason(as.Reason.Raw)
	as.Reason.Value, as.Reason.Err = value, mustValidation(err)

	return nil
}

func missingSlots(as *BookingAssessment) []string {
	var missing []string
	if as.Date.Missing() {
		missing = append(missing, FieldDate)
	}
	if as.Time.Missing() {
		missing = append(missing, FieldTime)
	}
	if as.Doctor.Missing() {
		missing = append(missing, FieldDoctorName)
	}
	if as.Reason.Missing() {
		missing = append(missing, FieldReason)
	}
	return missing
}

// mustValidation is for the pure normalizers, which only ever fail with a
// *ValidationError.
func mustValidation(err error) *ValidationError {
	if err == nil {
		return nil
	}
	ve, _ := AsValidation(err)
	return ve
}

func bookingTitle(appointmentType, reason string) string {
	if t := strings.TrimSpace(appointmentType); t != "" {
		return t
	}
	if reason != "" {
		return reason
	}
	return defaultTitle
}

// ParseDuration reads "45", "45 min" or "45 minutes". Anything else, including
// zero, yields the default duration.
func ParseDuration(text string) int {
	m := durationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return entity.DefaultAppointmentDuration
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil || minutes <= 0 {
		return entity.DefaultAppointmentDuration
	}
	return minutes
}
