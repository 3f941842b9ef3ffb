package usecase

import (
	"context"

	"medical-appointment-assistant/internal/converter"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const activityLimit = 50

// AuditLogUsecase exposes a patient's own activity trail, newest first
type AuditLogUsecase interface {
	GetMyActivity(ctx context.Context, userID uint) (*dto.ActivityListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetMyActivity(ctx context.Context, userID uint) (*dto.ActivityListResponse, error) {
	logs, err := u.auditLogRepo.FindByUser(ctx, userID, activityLimit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for user %d: %+v", userID, err)
		return nil, err
	}

	return &dto.ActivityListResponse{
		Activity: converter.AuditLogsToActivity(logs),
		Total:    len(logs),
	}, nil
}
