package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// DefaultAppointmentDuration is used when the patient doesn't say how long the visit takes
const DefaultAppointmentDuration = 30

// Appointment represents one scheduled visit.
// Date and Time hold the canonical YYYY-MM-DD and HH:MM forms.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID        uint              `gorm:"not null;index" json:"doctor_id"`
	DoctorName      string            `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Title           string            `gorm:"type:text;not null" json:"title"`
	Date            string            `gorm:"column:appointment_date;type:char(10);not null;index" json:"date"`
	Time            string            `gorm:"column:appointment_time;type:char(5);not null" json:"time"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	Location        string            `gorm:"type:varchar(255)" json:"location,omitempty"`
	Phone           string            `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if appointment is still upcoming
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if appointment has already taken place
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Column names used for partial updates
const (
	AppointmentColumnDate        = "appointment_date"
	AppointmentColumnTime        = "appointment_time"
	AppointmentColumnDoctorID    = "doctor_id"
	AppointmentColumnDoctorName  = "doctor_name"
	AppointmentColumnReason      = "reason"
	AppointmentColumnTitle       = "title"
	AppointmentColumnLocation    = "location"
	AppointmentColumnStatus      = "status"
	AppointmentColumnCancelledAt = "cancelled_at"
	AppointmentColumnUpdatedAt   = "updated_at"
)
