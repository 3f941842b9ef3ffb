package converter

import (
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/service"
)

var activitySummaries = map[string]string{
	entity.AuditActionUserLogin:         "Signed in",
	entity.AuditActionUserLogout:        "Signed out",
	entity.AuditActionAppointmentBook:   "Booked an appointment",
	entity.AuditActionAppointmentModify: "Changed an appointment",
	entity.AuditActionAppointmentCancel: "Cancelled an appointment",
	entity.AuditActionAppointmentSweep:  "Appointments marked as completed",
}

func AuditLogToActivity(log *entity.AuditLog) *dto.ActivityResponse {
	if log == nil {
		return nil
	}

	summary, ok := activitySummaries[log.Action]
	if !ok {
		summary = log.Action
	}

	return &dto.ActivityResponse{
		ID:            log.ID,
		Action:        log.Action,
		Summary:       summary,
		AppointmentID: appointmentID(log.Metadata),
		Details:       log.Metadata,
		CreatedAt:     log.CreatedAt,
	}
}

func AuditLogsToActivity(logs []entity.AuditLog) []dto.ActivityResponse {
	responses := make([]dto.ActivityResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToActivity(&logs[i])
	}
	return responses
}

// appointmentID reads the id back from metadata. Stored entries decode as
// float64, fresh ones still hold a uint.
func appointmentID(metadata entity.JSON) *uint {
	var id uint
	switch v := metadata[service.AuditKeyAppointmentID].(type) {
	case uint:
		id = v
	case float64:
		if v <= 0 {
			return nil
		}
		id = uint(v)
	default:
		return nil
	}
	return &id
}
