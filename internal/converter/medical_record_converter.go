package converter

import (
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/scheduling"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:          record.ID,
		Title:       record.Title,
		RecordType:  record.RecordType,
		RecordDate:  record.RecordDate,
		Description: record.Description,
	}

	// Include the author if preloaded
	if record.Doctor != nil {
		response.DoctorName = scheduling.CanonicalDoctorName(record.Doctor.Name)
	}

	return response
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
