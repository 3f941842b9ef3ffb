package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
)

// AppointmentRepository is the appointment store. Lookups are scoped to the
// owner and return nil, nil when the appointment is absent or not owned.
type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *entity.Appointment) (uint, error)
	Update(ctx context.Context, id uint, columns map[string]any) error
	FindByID(ctx context.Context, id, ownerID uint) (*entity.Appointment, error)
	ListByOwner(ctx context.Context, ownerID uint, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	LatestByOwner(ctx context.Context, ownerID uint) (*entity.Appointment, error)
	// CompletePast marks scheduled appointments before date+time as completed.
	CompletePast(ctx context.Context, date, time string) (int64, error)
}
