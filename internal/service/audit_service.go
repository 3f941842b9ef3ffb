package service

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Metadata keys of appointment entries
const (
	AuditKeyAppointmentID = "appointment_id"
	AuditKeyBefore        = "before"
	AuditKeyAfter         = "after"
)

// AuditService writes the activity trail. A failed write is logged and
// returned; callers never fail the request on it.
type AuditService interface {
	RecordAppointment(ctx context.Context, ownerID uint, action string, appointmentID uint, before, after interface{}) error
	RecordSession(ctx context.Context, userID uint, action string, details entity.JSON) error
	RecordSystem(ctx context.Context, action string, details entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// RecordAppointment stores a change to one appointment. A nil before marks a
// new booking.
func (s *auditService) RecordAppointment(ctx context.Context, ownerID uint, action string, appointmentID uint, before, after interface{}) error {
	metadata := entity.JSON{AuditKeyAppointmentID: appointmentID}
	if before != nil {
		metadata[AuditKeyBefore] = before
	}
	if after != nil {
		metadata[AuditKeyAfter] = after
	}
	return s.write(ctx, &ownerID, action, metadata)
}

func (s *auditService) RecordSession(ctx context.Context, userID uint, action string, details entity.JSON) error {
	return s.write(ctx, &userID, action, details)
}

// RecordSystem stores an entry that belongs to no user, such as a completion sweep.
func (s *auditService) RecordSystem(ctx context.Context, action string, details entity.JSON) error {
	return s.write(ctx, nil, action, details)
}

func (s *auditService) write(ctx context.Context, userID *uint, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.WithField("action", action).Warnf("Failed to write audit log: %+v", err)
		return err
	}

	return nil
}
