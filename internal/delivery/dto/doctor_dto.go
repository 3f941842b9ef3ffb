package dto

// Response DTOs

type DoctorResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// SpecialtyGroup lists the doctors of one specialty.
type SpecialtyGroup struct {
	Specialty string           `json:"specialty"`
	Doctors   []DoctorResponse `json:"doctors"`
}

type DoctorListResponse struct {
	Specialties []SpecialtyGroup `json:"specialties"`
	Total       int              `json:"total"`
}
