// Package action implements the custom actions of the dialogue engine: the
// slot-filling booking flow and the informational answers of the clinic.
package action

import (
	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/internal/usecase"

	"github.com/sirupsen/logrus"
)

// DefaultMinConfidence is the intent confidence below which a booking is not attempted.
const DefaultMinConfidence = 0.6

type Dependencies struct {
	Appointments   usecase.AppointmentUsecase
	Doctors        usecase.DoctorUsecase
	Catalog        usecase.CatalogUsecase
	MedicalRecords usecase.MedicalRecordUsecase
	Normalizer     *scheduling.Normalizer
	MinConfidence  float64
}

// NewDefaultRegistry registers every action of the assistant.
func NewDefaultRegistry(log *logrus.Logger, deps Dependencies) *Registry {
	minConfidence := deps.MinConfidence
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}

	return NewRegistry(log,
		&bookAppointment{appointments: deps.Appointments, minConfidence: minConfidence},
		&validateAppointmentForm{normalizer: deps.Normalizer},
		&submitAppointmentForm{appointments: deps.Appointments},
		&viewAppointments{appointments: deps.Appointments},
		&modifyAppointment{appointments: deps.Appointments},
		&cancelAppointment{appointments: deps.Appointments},
		&listDoctors{doctors: deps.Doctors},
		&listDoctorsBySpecialty{doctors: deps.Doctors},
		&catalogListing{
			name:    "action_list_procedures",
			heading: "🏥 CARDIOLOGY PROCEDURES",
			fetch:   deps.Catalog.GetProcedures,
		},
		&catalogListing{
			name:    "action_list_tests",
			heading: "🔬 CARDIAC BLOOD TESTS & ANALYSES",
			fetch:   deps.Catalog.GetTests,
		},
		&catalogListing{
			name:    "action_list_prices",
			heading: "💰 CARDIOLOGY PRICING LIST",
			prices:  true,
			fetch:   deps.Catalog.GetPrices,
		},
		&viewMedicalRecords{records: deps.MedicalRecords},
		greetUser{},
	)
}
