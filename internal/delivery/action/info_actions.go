package action

import (
	"context"
	"errors"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/usecase"
)

type listDoctors struct {
	doctors usecase.DoctorUsecase
}

func (a *listDoctors) Name() string { return "action_list_doctors" }

func (a *listDoctors) Run(ctx context.Context, turn *Turn) error {
	list, err := a.doctors.GetAllDoctors(ctx)
	if err != nil {
		return err
	}
	turn.Utter(doctorsMessage(list))
	return nil
}

type listDoctorsBySpecialty struct {
	doctors usecase.DoctorUsecase
}

func (a *listDoctorsBySpecialty) Name() string { return "action_list_doctors_by_specialty" }

func (a *listDoctorsBySpecialty) Run(ctx context.Context, turn *Turn) error {
	list, err := a.doctors.GetDoctorsBySpecialty(ctx, turn.Value(SlotSpecialty), turn.Text())
	if errors.Is(err, usecase.ErrUnknownSpecialty) {
		turn.Utter(msgAskSpecialty)
		return nil
	}
	if err != nil {
		return err
	}
	turn.Utter(specialtyMessage(list))
	return nil
}

// catalogListing renders one view of the procedure catalog.
type catalogListing struct {
	name    string
	heading string
	prices  bool
	fetch   func(ctx context.Context) (*dto.ProcedureListResponse, error)
}

func (a *catalogListing) Name() string { return a.name }

func (a *catalogListing) Run(ctx context.Context, turn *Turn) error {
	list, err := a.fetch(ctx)
	if err != nil {
		return err
	}
	turn.Utter(catalogMessage(a.heading, list, a.prices))
	return nil
}

type viewMedicalRecords struct {
	records usecase.MedicalRecordUsecase
}

func (a *viewMedicalRecords) Name() string { return "action_view_medical_records" }

func (a *viewMedicalRecords) Run(ctx context.Context, turn *Turn) error {
	patientID, ok := turn.UserID()
	if !ok {
		turn.Utter("Please log in so I can access your medical records.")
		return nil
	}

	list, err := a.records.GetRecentRecords(ctx, patientID)
	if errors.Is(err, usecase.ErrUserNotFound) {
		turn.Utter("No user account found. Please create an account first to view medical records.")
		return nil
	}
	if err != nil {
		return err
	}
	turn.Utter(recordsMessage(list))
	return nil
}

type greetUser struct{}

func (greetUser) Name() string { return "action_greet_user" }

func (greetUser) Run(_ context.Context, turn *Turn) error {
	turn.Utter(msgGreeting)
	turn.UtterImage(greetingImage)
	return nil
}
