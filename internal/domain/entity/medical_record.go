package entity

import "time"

// MedicalRecord is an entry of a patient's file written after a visit
type MedicalRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID    *uint     `gorm:"index" json:"doctor_id,omitempty"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	RecordType  string    `gorm:"type:varchar(50);not null" json:"record_type"`
	RecordDate  string    `gorm:"type:char(10);not null;index" json:"record_date"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// Record types
const (
	RecordTypeConsultation = "consultation"
	RecordTypeLabResult    = "lab_result"
	RecordTypeImaging      = "imaging"
	RecordTypePrescription = "prescription"
)

// RecentRecordsLimit is how many records a patient sees in one listing
const RecentRecordsLimit = 5
