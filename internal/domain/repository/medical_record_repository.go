package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
)

type MedicalRecordRepository interface {
	FindRecentByPatient(ctx context.Context, patientID uint, limit int) ([]entity.MedicalRecord, error)
}
