package repository

import (
	"context"

	"medical-appointment-assistant/internal/domain/entity"
	domainRepo "medical-appointment-assistant/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) FindRecentByPatient(ctx context.Context, patientID uint, limit int) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("record_date DESC, created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
