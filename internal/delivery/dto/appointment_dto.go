package dto

import "time"

// Request DTOs

// BookAppointmentRequest carries raw slot text; the scheduler normalizes it.
type BookAppointmentRequest struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	DoctorName      string `json:"doctor_name"`
	Reason          string `json:"reason"`
	AppointmentType string `json:"appointment_type" validate:"omitempty,max=255"`
	Duration        string `json:"duration" validate:"omitempty,max=20"`
	Location        string `json:"location" validate:"omitempty,max=255"`
	Phone           string `json:"phone_number" validate:"omitempty,max=30"`
}

// ModifyAppointmentRequest changes only the fields that are present.
type ModifyAppointmentRequest struct {
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	DoctorName *string `json:"doctor_name"`
	Reason     *string `json:"reason"`
	Location   *string `json:"location" validate:"omitempty,max=255"`
}

type AppointmentFilterRequest struct {
	Date       string `json:"date"`
	DoctorName string `json:"doctor_name"`
	Status     string `json:"status"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uint       `json:"id"`
	PatientID       uint       `json:"patient_id"`
	DoctorID        uint       `json:"doctor_id"`
	DoctorName      string     `json:"doctor_name"`
	Title           string     `json:"title"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	DurationMinutes int        `json:"duration_minutes"`
	Reason          string     `json:"reason"`
	Location        string     `json:"location,omitempty"`
	Phone           string     `json:"phone_number,omitempty"`
	Status          string     `json:"status"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
