package usecase

import (
	"context"

	"medical-appointment-assistant/internal/converter"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type MedicalRecordUsecase interface {
	GetRecentRecords(ctx context.Context, patientID uint) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	recordRepo repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	recordRepo repository.MedicalRecordRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:        log,
		userRepo:   userRepo,
		recordRepo: recordRepo,
	}
}

// GetRecentRecords returns the newest records of the patient, newest first
func (u *medicalRecordUsecase) GetRecentRecords(ctx context.Context, patientID uint) (*dto.MedicalRecordListResponse, error) {
	user, err := u.userRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", patientID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	records, err := u.recordRepo.FindRecentByPatient(ctx, patientID, entity.RecentRecordsLimit)
	if err != nil {
		u.log.Warnf("Failed to find medical records for user %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		PatientName: user.FullName(),
		Records:     converter.MedicalRecordsToResponses(records),
		Total:       len(records),
	}, nil
}
