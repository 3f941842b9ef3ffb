package converter

import (
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		Title:           appointment.Title,
		Date:            appointment.Date,
		Time:            appointment.Time,
		DurationMinutes: appointment.DurationMinutes,
		Reason:          appointment.Reason,
		Location:        appointment.Location,
		Phone:           appointment.Phone,
		Status:          string(appointment.Status),
		CancelledAt:     appointment.CancelledAt,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
