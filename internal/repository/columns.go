package repository

import (
	"fmt"
	"time"

	"medical-appointment-assistant/internal/domain/entity"
)

// applyColumns applies a partial update expressed with gorm column names.
// It validates every column before touching a, so a failed call leaves a unchanged.
func applyColumns(a *entity.Appointment, columns map[string]any) error {
	next := *a
	for column, value := range columns {
		var ok bool
		switch column {
		case entity.AppointmentColumnDate:
			next.Date, ok = value.(string)
		case entity.AppointmentColumnTime:
			next.Time, ok = value.(string)
		case entity.AppointmentColumnDoctorID:
			next.DoctorID, ok = value.(uint)
		case entity.AppointmentColumnDoctorName:
			next.DoctorName, ok = value.(string)
		case entity.AppointmentColumnReason:
			next.Reason, ok = value.(string)
		case entity.AppointmentColumnTitle:
			next.Title, ok = value.(string)
		case entity.AppointmentColumnLocation:
			next.Location, ok = value.(string)
		case entity.AppointmentColumnStatus:
			var status entity.AppointmentStatus
			status, ok = value.(entity.AppointmentStatus)
			next.Status = status
		case entity.AppointmentColumnCancelledAt:
			var at time.Time
			at, ok = value.(time.Time)
			next.CancelledAt = &at
		case entity.AppointmentColumnUpdatedAt:
			next.UpdatedAt, ok = value.(time.Time)
		default:
			return fmt.Errorf("unknown appointment column %q", column)
		}
		if !ok {
			return fmt.Errorf("column %q: unexpected value type %T", column, value)
		}
	}
	*a = next
	return nil
}
