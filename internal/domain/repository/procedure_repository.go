package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
)

type ProcedureRepository interface {
	FindByKind(ctx context.Context, kind entity.ProcedureKind) ([]entity.Procedure, error)
	FindPriced(ctx context.Context) ([]entity.Procedure, error)
}
