package usecase

import (
	"context"

	"medical-appointment-assistant/internal/converter"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// CatalogUsecase serves the clinic's procedures, lab tests and price list.
type CatalogUsecase interface {
	GetProcedures(ctx context.Context) (*dto.ProcedureListResponse, error)
	GetTests(ctx context.Context) (*dto.ProcedureListResponse, error)
	GetPrices(ctx context.Context) (*dto.ProcedureListResponse, error)
}

type catalogUsecase struct {
	log           *logrus.Logger
	procedureRepo repository.ProcedureRepository
}

func NewCatalogUsecase(log *logrus.Logger, procedureRepo repository.ProcedureRepository) CatalogUsecase {
	return &catalogUsecase{
		log:           log,
		procedureRepo: procedureRepo,
	}
}

func (u *catalogUsecase) GetProcedures(ctx context.Context) (*dto.ProcedureListResponse, error) {
	return u.byKind(ctx, entity.ProcedureKindProcedure)
}

func (u *catalogUsecase) GetTests(ctx context.Context) (*dto.ProcedureListResponse, error) {
	return u.byKind(ctx, entity.ProcedureKindTest)
}

func (u *catalogUsecase) GetPrices(ctx context.Context) (*dto.ProcedureListResponse, error) {
	procedures, err := u.procedureRepo.FindPriced(ctx)
	if err != nil {
		u.log.Warnf("Failed to find price list: %+v", err)
		return nil, err
	}
	return toProcedureList(procedures), nil
}

func (u *catalogUsecase) byKind(ctx context.Context, kind entity.ProcedureKind) (*dto.ProcedureListResponse, error) {
	procedures, err := u.procedureRepo.FindByKind(ctx, kind)
	if err != nil {
		u.log.Warnf("Failed to find %s catalog: %+v", kind, err)
		return nil, err
	}
	return toProcedureList(procedures), nil
}

func toProcedureList(procedures []entity.Procedure) *dto.ProcedureListResponse {
	return &dto.ProcedureListResponse{
		Categories: converter.ProceduresToCategories(procedures),
		Total:      len(procedures),
	}
}
