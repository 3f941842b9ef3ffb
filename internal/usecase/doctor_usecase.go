package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medical-appointment-assistant/internal/converter"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownSpecialty = errors.New("please specify which specialty you're interested in: Adult Cardiology, Pediatric Cardiology, or Cardiovascular Surgery")
)

// specialtyAliases maps lower-case spoken forms onto stored specialties.
var specialtyAliases = map[string]string{
	"adult cardiology":        entity.SpecialtyAdultCardiology,
	"pediatric cardiology":    entity.SpecialtyPediatricCardiology,
	"cardiovascular surgery":  entity.SpecialtyCardiovascularSurgery,
	"adult":                   entity.SpecialtyAdultCardiology,
	"pediatric":               entity.SpecialtyPediatricCardiology,
	"cardiovascular":          entity.SpecialtyCardiovascularSurgery,
	"adult cardiologist":      entity.SpecialtyAdultCardiology,
	"adult cardiologists":     entity.SpecialtyAdultCardiology,
	"pediatric cardiologist":  entity.SpecialtyPediatricCardiology,
	"pediatric cardiologists": entity.SpecialtyPediatricCardiology,
	"cardiovascular surgeon":  entity.SpecialtyCardiovascularSurgery,
	"cardiovascular surgeons": entity.SpecialtyCardiovascularSurgery,
	"cardiologist":            entity.SpecialtyAdultCardiology,
	"cardiologists":           entity.SpecialtyAdultCardiology,
	"surgeon":                 entity.SpecialtyCardiovascularSurgery,
	"surgeons":                entity.SpecialtyCardiovascularSurgery,
}

// aliasesByLength holds the alias keys longest first, so scanning a sentence
// prefers "pediatric cardiologist" over "cardiologist".
var aliasesByLength = func() []string {
	keys := make([]string, 0, len(specialtyAliases))
	for k := range specialtyAliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// ResolveSpecialty maps an extracted specialty onto a stored one. When the
// slot is empty or unrecognized, message is scanned for any known alias.
func ResolveSpecialty(slot, message string) (string, bool) {
	if specialty, ok := specialtyAliases[strings.ToLower(strings.TrimSpace(slot))]; ok {
		return specialty, true
	}

	text := strings.ToLower(message)
	for _, alias := range aliasesByLength {
		if strings.Contains(text, alias) {
			return specialtyAliases[alias], true
		}
	}
	return "", false
}

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorsBySpecialty(ctx context.Context, slot, message string) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// GetAllDoctors returns the roster grouped by specialty
func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Specialties: converter.DoctorsToSpecialtyGroups(sortBySpecialty(doctors)),
		Total:       len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctorsBySpecialty(ctx context.Context, slot, message string) (*dto.DoctorListResponse, error) {
	specialty, ok := ResolveSpecialty(slot, message)
	if !ok {
		return nil, ErrUnknownSpecialty
	}

	doctors, err := u.doctorRepo.FindBySpecialty(ctx, specialty)
	if err != nil {
		u.log.Warnf("Failed to find %s doctors: %+v", specialty, err)
		return nil, err
	}

	groups := converter.DoctorsToSpecialtyGroups(doctors)
	if len(groups) == 0 {
		groups = []dto.SpecialtyGroup{{Specialty: specialty, Doctors: []dto.DoctorResponse{}}}
	}

	return &dto.DoctorListResponse{
		Specialties: groups,
		Total:       len(doctors),
	}, nil
}

func sortBySpecialty(doctors []entity.Doctor) []entity.Doctor {
	sorted := make([]entity.Doctor, len(doctors))
	copy(sorted, doctors)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Specialty != sorted[j].Specialty {
			return sorted[i].Specialty < sorted[j].Specialty
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
