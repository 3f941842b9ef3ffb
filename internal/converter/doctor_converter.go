package converter

import (
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/scheduling"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO with the canonical "Dr. " name
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      scheduling.CanonicalDoctorName(doctor.Name),
		Specialty: doctor.Specialty,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorsToSpecialtyGroups groups doctors by specialty, keeping first-seen order
func DoctorsToSpecialtyGroups(doctors []entity.Doctor) []dto.SpecialtyGroup {
	groups := []dto.SpecialtyGroup{}
	index := make(map[string]int)
	for i := range doctors {
		d := &doctors[i]
		pos, ok := index[d.Specialty]
		if !ok {
			pos = len(groups)
			index[d.Specialty] = pos
			groups = append(groups, dto.SpecialtyGroup{Specialty: d.Specialty})
		}
		groups[pos].Doctors = append(groups[pos].Doctors, *DoctorToResponse(d))
	}
	return groups
}
