package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
	domainRepo "medical-appointment-assistant/internal/domain/repository"

	"gorm.io/gorm"
)

type procedureRepository struct {
	db *gorm.DB
}

func NewProcedureRepository(db *gorm.DB) domainRepo.ProcedureRepository {
	return &procedureRepository{db: db}
}

func (r *procedureRepository) FindByKind(ctx context.Context, kind entity.ProcedureKind) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("sort_order ASC, id ASC").
		Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *procedureRepository) FindPriced(ctx context.Context) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := r.db.WithContext(ctx).
		Where("max_price > ?", 0).
		Order("sort_order ASC, id ASC").
		Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	return procedures, nil
}
