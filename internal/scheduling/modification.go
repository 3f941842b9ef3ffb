package scheduling

import (
	"context"
	"strings"

	"medical-appointment-assistant/internal/domain/entity"
)

// ModificationRequest lists the fields to change. Nil means "leave as is".
type ModificationRequest struct {
	Date       *string
	Time       *string
	DoctorName *string
	Reason     *string
	Location   *string
}

// Empty reports whether nothing was supplied.
func (r ModificationRequest) Empty() bool {
	return r.Date == nil && r.Time == nil && r.DoctorName == nil && r.Reason == nil && r.Location == nil
}

// Changes is a validated partial update: the column map for the store and the
// appointment as it will look once applied.
type Changes struct {
	Columns map[string]any
	Result  entity.Appointment
}

// PlanModification validates the supplied fields against existing. Either
// every field passes and the returned Changes carry all of them, or nothing
// is returned and the error lists each failing field.
func (n *Normalizer) PlanModification(ctx context.Context, existing *entity.Appointment, req ModificationRequest) (*Changes, error) {
	switch {
	case existing.IsCancelled():
		return nil, NewAlreadyCancelledError()
	case existing.IsCompleted():
		return nil, NewAlreadyCompletedError()
	}

	if req.Empty() {
		err := NewIncompleteError([]string{FieldDate, FieldTime, FieldDoctorName, FieldReason})
		err.Message = "Please tell me what you would like to change: the date, time, doctor or reason."
		return nil, err
	}

	result := *existing
	result.Doctor = nil
	columns := map[string]any{}
	var errs []*ValidationError

	if req.Date != nil || req.Time != nil {
		date, clock, dateErr, timeErr := n.revalidateSlot(existing, req)
		if dateErr != nil {
			errs = append(errs, dateErr)
		}
		if timeErr != nil {
			errs = append(errs, timeErr)
		}
		if dateErr == nil && timeErr == nil {
			if date != existing.Date {
				result.Date = date
				columns[entity.AppointmentColumnDate] = date
			}
			if clock != existing.Time {
				result.Time = clock
				columns[entity.AppointmentColumnTime] = clock
			}
		}
	}

	if req.DoctorName != nil {
		doctor, err := n.ResolveDoctor(ctx, *req.DoctorName)
		ve, infra := asValidation(err)
		switch {
		case infra != nil:
			return nil, infra
		case ve != nil:
			errs = append(errs, ve)
		default:
			result.DoctorID = doctor.ID
			result.DoctorName = doctor.Name
			columns[entity.AppointmentColumnDoctorID] = doctor.ID
			columns[entity.AppointmentColumnDoctorName] = doctor.Name
		}
	}

	if req.Reason != nil {
		reason, err := ValidateReason(*req.Reason)
		if ve := mustValidation(err); ve != nil {
			errs = append(errs, ve)
		} else {
			// A title that only mirrored the old reason follows the new one.
			if existing.Title == existing.Reason || existing.Title == defaultTitle {
				result.Title = reason
				columns[entity.AppointmentColumnTitle] = reason
			}
			result.Reason = reason
			columns[entity.AppointmentColumnReason] = reason
		}
	}

	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		result.Location = location
		columns[entity.AppointmentColumnLocation] = location
	}

	if len(errs) > 0 {
		return nil, joinFieldErrors(errs)
	}

	now := n.clock.Now()
	result.UpdatedAt = now
	columns[entity.AppointmentColumnUpdatedAt] = now

	return &Changes{Columns: columns, Result: result}, nil
}

// revalidateSlot checks the date/time pair, taking the stored value for
// whichever half was not supplied.
func (n *Normalizer) revalidateSlot(existing *entity.Appointment, req ModificationRequest) (string, string, *ValidationError, *ValidationError) {
	date := existing.Date
	if req.Date != nil {
		value, err := n.NormalizeDate(*req.Date)
		if ve := mustValidation(err); ve != nil {
			if req.Time != nil {
				// Still report a malformed time alongside the bad date.
				if _, terr := NormalizeTime(*req.Time, nil); terr != nil {
					return "", "", ve, mustValidation(terr)
				}
			}
			return "", "", ve, nil
		}
		date = value
	}

	clock := existing.Time
	if req.Time != nil {
		clock = *req.Time
	}

	value, err := n.NormalizeTime(clock, date)
	if ve := mustValidation(err); ve != nil {
		if ve.Kind == ErrInvalidDate {
			return "", "", ve, nil
		}
		return "", "", nil, ve
	}
	return date, value, nil, nil
}

func joinFieldErrors(errs []*ValidationError) *ValidationError {
	first := *errs[0]
	first.Fields = make([]FieldError, 0, len(errs))
	for _, ve := range errs {
		first.Fields = append(first.Fields, ve.fieldError())
	}
	return &first
}
