package dto

// Response DTOs

type MedicalRecordResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	RecordType  string `json:"record_type"`
	RecordDate  string `json:"record_date"`
	Description string `json:"description,omitempty"`
	DoctorName  string `json:"doctor_name,omitempty"`
}

type MedicalRecordListResponse struct {
	PatientName string                  `json:"patient_name"`
	Records     []MedicalRecordResponse `json:"records"`
	Total       int                     `json:"total"`
}
