package repository

import (
	"context"
	"errors"

	"medical-appointment-assistant/internal/domain/entity"
	domainRepo "medical-appointment-assistant/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Insert(ctx context.Context, appointment *entity.Appointment) (uint, error) {
	if err := r.db.WithContext(ctx).Omit("Doctor").Create(appointment).Error; err != nil {
		return 0, err
	}
	return appointment.ID, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uint, columns map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(columns).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id, ownerID uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", id, ownerID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// ListByOwner supports optional filters: exact date, doctor name substring and status.
func (r *appointmentRepository) ListByOwner(ctx context.Context, ownerID uint, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := r.db.WithContext(ctx).Where("patient_id = ?", ownerID)

	if filter.Date != "" {
		query = query.Where("appointment_date = ?", filter.Date)
	}
	if filter.DoctorName != "" {
		query = query.Where("LOWER(doctor_name)"+containsClause, containsPattern(filter.DoctorName))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("appointment_date ASC, appointment_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// LatestByOwner returns the most recently booked appointment that is still scheduled.
func (r *appointmentRepository) LatestByOwner(ctx context.Context, ownerID uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND status = ?", ownerID, entity.AppointmentStatusScheduled).
		Order("created_at DESC, id DESC").
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CompletePast(ctx context.Context, date, time string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("status = ?", entity.AppointmentStatusScheduled).
		Where("appointment_date < ? OR (appointment_date = ? AND appointment_time < ?)", date, date, time).
		Update(entity.AppointmentColumnStatus, entity.AppointmentStatusCompleted)
	return result.RowsAffected, result.Error
}
