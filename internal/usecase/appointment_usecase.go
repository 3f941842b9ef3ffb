package usecase

import (
	"context"
	"errors"
	"strings"

	"medical-appointment-assistant/internal/converter"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"
	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidStatusFilter   = errors.New("status must be one of scheduled, cancelled or completed")
	ErrNoUpcomingAppointment = errors.New("no upcoming appointment")
)

// AppointmentUsecase books and manages the appointments of one owner.
// Expected failures are *scheduling.ValidationError values.
type AppointmentUsecase interface {
	Book(ctx context.Context, ownerID uint, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id, ownerID uint) (*dto.AppointmentResponse, error)
	List(ctx context.Context, ownerID uint, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error)
	Latest(ctx context.Context, ownerID uint) (*dto.AppointmentResponse, error)
	Modify(ctx context.Context, id, ownerID uint, req *dto.ModifyAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id, ownerID uint) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	normalizer      *scheduling.Normalizer
	assembler       *scheduling.Assembler
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	normalizer *scheduling.Normalizer,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		normalizer:      normalizer,
		assembler:       scheduling.NewAssembler(normalizer),
		auditService:    auditService,
	}
}

// Book validates every slot and stores the appointment only when all of them pass.
func (u *appointmentUsecase) Book(ctx context.Context, ownerID uint, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	assessment, err := u.assembler.Assemble(ctx, scheduling.BookingSlots{
		PatientID:       ownerID,
		Date:            req.Date,
		Time:            req.Time,
		DoctorName:      req.DoctorName,
		Reason:          req.Reason,
		AppointmentType: req.AppointmentType,
		Duration:        req.Duration,
		Location:        req.Location,
		Phone:           req.Phone,
	})
	if err != nil {
		u.log.Warnf("Failed to assemble booking for user %d: %+v", ownerID, err)
		return nil, err
	}
	if !assessment.Ready() {
		return nil, assessment.Err()
	}

	appointment := assessment.Draft
	if _, err := u.appointmentRepo.Insert(ctx, appointment); err != nil {
		u.log.Warnf("Failed to insert appointment for user %d: %+v", ownerID, err)
		return nil, err
	}

	u.log.Infof("Booked appointment %d for user %d with %s on %s at %s",
		appointment.ID, ownerID, appointment.DoctorName, appointment.Date, appointment.Time)
	// Audit failures are logged by the service and never fail the booking.
	_ = u.auditService.RecordAppointment(ctx, ownerID, entity.AuditActionAppointmentBook,
		appointment.ID, nil, converter.AppointmentToResponse(appointment))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id, ownerID uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.find(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// List returns the owner's appointments ordered by date and time. The date
// filter accepts the same relative forms as booking, including past days.
func (u *appointmentUsecase) List(ctx context.Context, ownerID uint, req *dto.AppointmentFilterRequest) (*dto.AppointmentListResponse, error) {
	filter, err := u.buildFilter(req)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %d: %+v", ownerID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Latest returns the most recently booked appointment that is still scheduled.
func (u *appointmentUsecase) Latest(ctx context.Context, ownerID uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.LatestByOwner(ctx, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find latest appointment for user %d: %+v", ownerID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNoUpcomingAppointment
	}
	return converter.AppointmentToResponse(appointment), nil
}

// Modify re-validates only the supplied fields and writes them in one update.
func (u *appointmentUsecase) Modify(ctx context.Context, id, ownerID uint, req *dto.ModifyAppointmentRequest) (*dto.AppointmentResponse, error) {
	existing, err := u.find(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	changes, err := u.normalizer.PlanModification(ctx, existing, scheduling.ModificationRequest{
		Date:       req.Date,
		Time:       req.Time,
		DoctorName: req.DoctorName,
		Reason:     req.Reason,
		Location:   req.Location,
	})
	if err != nil {
		if !scheduling.IsValidation(err) {
			u.log.Warnf("Failed to plan modification of appointment %d: %+v", id, err)
		}
		return nil, err
	}

	if err := u.appointmentRepo.Update(ctx, id, changes.Columns); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Modified appointment %d for user %d", id, ownerID)
	_ = u.auditService.RecordAppointment(ctx, ownerID, entity.AuditActionAppointmentModify,
		id, converter.AppointmentToResponse(existing), converter.AppointmentToResponse(&changes.Result))

	return converter.AppointmentToResponse(&changes.Result), nil
}

// Cancel marks an owned, scheduled appointment as cancelled. Cancelling twice
// is reported as ErrAlreadyCancelled without touching the store.
func (u *appointmentUsecase) Cancel(ctx context.Context, id, ownerID uint) (*dto.AppointmentResponse, error) {
	existing, err := u.find(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	switch {
	case existing.IsCancelled():
		return nil, scheduling.NewAlreadyCancelledError()
	case existing.IsCompleted():
		return nil, scheduling.NewAlreadyCompletedError()
	}

	now := u.normalizer.Clock().Now()
	columns := map[string]any{
		entity.AppointmentColumnStatus:      entity.AppointmentStatusCancelled,
		entity.AppointmentColumnCancelledAt: now,
		entity.AppointmentColumnUpdatedAt:   now,
	}
	if err := u.appointmentRepo.Update(ctx, id, columns); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", id, err)
		return nil, err
	}

	cancelled := *existing
	cancelled.Status = entity.AppointmentStatusCancelled
	cancelled.CancelledAt = &now
	cancelled.UpdatedAt = now

	u.log.Infof("Cancelled appointment %d for user %d", id, ownerID)
	_ = u.auditService.RecordAppointment(ctx, ownerID, entity.AuditActionAppointmentCancel,
		id, string(existing.Status), string(cancelled.Status))

	return converter.AppointmentToResponse(&cancelled), nil
}

func (u *appointmentUsecase) find(ctx context.Context, id, ownerID uint) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, scheduling.NewNotFoundError()
	}
	return appointment, nil
}

func (u *appointmentUsecase) buildFilter(req *dto.AppointmentFilterRequest) (entity.AppointmentFilter, error) {
	var filter entity.AppointmentFilter
	if req == nil {
		return filter, nil
	}

	if strings.TrimSpace(req.Date) != "" {
		date, err := u.normalizer.ResolveFilterDate(req.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = date
	}

	filter.DoctorName = scheduling.StripDoctorPrefix(req.DoctorName)

	status, err := ParseStatusFilter(req.Status)
	if err != nil {
		return filter, err
	}
	filter.Status = status

	return filter, nil
}

// ParseStatusFilter accepts the stored status names and a few spoken synonyms.
func ParseStatusFilter(text string) (entity.AppointmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return "", nil
	case "scheduled", "upcoming", "active":
		return entity.AppointmentStatusScheduled, nil
	case "cancelled", "canceled":
		return entity.AppointmentStatusCancelled, nil
	case "completed", "past", "done":
		return entity.AppointmentStatusCompleted, nil
	default:
		return "", ErrInvalidStatusFilter
	}
}
