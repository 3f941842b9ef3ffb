package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindByUser(ctx context.Context, userID uint, limit int) ([]entity.AuditLog, error)
}
