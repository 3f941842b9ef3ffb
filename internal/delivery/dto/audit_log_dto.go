package dto

import (
	"time"

	"medical-appointment-assistant/internal/domain/entity"
)

// ActivityResponse is one line of a patient's activity trail
type ActivityResponse struct {
	ID            int64       `json:"id"`
	Action        string      `json:"action"`
	Summary       string      `json:"summary"`
	AppointmentID *uint       `json:"appointment_id,omitempty"`
	Details       entity.JSON `json:"details,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

type ActivityListResponse struct {
	Activity []ActivityResponse `json:"activity"`
	Total    int                `json:"total"`
}
