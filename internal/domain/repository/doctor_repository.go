package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
)

type DoctorRepository interface {
	FindDoctor(ctx context.Context, fragment string) (*entity.Doctor, error)
	FindByID(ctx context.Context, id uint) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]entity.Doctor, error)
}
