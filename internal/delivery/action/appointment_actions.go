package action

import (
	"context"
	"errors"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/internal/usecase"
)

var bookingSlots = []string{SlotDate, SlotTime, SlotDoctorName, SlotReason}

var extraSlots = []string{SlotAppointmentType, SlotDuration, SlotLocation, SlotPhone}

// bookAppointment books straight from the message when every slot is known
// and hands over to the appointment form otherwise.
type bookAppointment struct {
	appointments  usecase.AppointmentUsecase
	minConfidence float64
}

func (a *bookAppointment) Name() string { return "action_book_appointment" }

func (a *bookAppointment) Run(ctx context.Context, turn *Turn) error {
	if turn.Intent().Confidence < a.minConfidence {
		turn.Utter(msgRephrase)
		turn.ResetSlots()
		return nil
	}
	return book(ctx, a.appointments, turn)
}

// submitAppointmentForm books once the form has collected the slots.
type submitAppointmentForm struct {
	appointments usecase.AppointmentUsecase
}

func (a *submitAppointmentForm) Name() string { return "action_submit_appointment_form" }

func (a *submitAppointmentForm) Run(ctx context.Context, turn *Turn) error {
	return book(ctx, a.appointments, turn)
}

func book(ctx context.Context, appointments usecase.AppointmentUsecase, turn *Turn) error {
	ownerID, ok := turn.UserID()
	if !ok {
		turn.Utter(msgLogin)
		return nil
	}

	req := &dto.BookAppointmentRequest{
		Date:            turn.Value(SlotDate),
		Time:            turn.Value(SlotTime),
		DoctorName:      turn.Value(SlotDoctorName),
		Reason:          turn.Value(SlotReason),
		AppointmentType: turn.Value(SlotAppointmentType),
		Duration:        turn.Value(SlotDuration),
		Location:        turn.Value(SlotLocation),
		Phone:           turn.Value(SlotPhone),
	}

	appointment, err := appointments.Book(ctx, ownerID, req)
	if err != nil {
		ve, ok := scheduling.AsValidation(err)
		if !ok {
			turn.ResetSlots()
			return err
		}
		keepSlots(turn, ve)
		turn.Followup(FormAppointment)
		turn.Utter(describe(ve))
		return nil
	}

	turn.Utter(bookedMessage(appointment))
	// Reset first so the new id survives for a follow-up "cancel it".
	turn.ResetSlots()
	turn.SetSlot(SlotAppointmentID, appointment.ID)
	return nil
}

// keepSlots echoes the known slots back to the tracker and clears the ones
// that failed validation, so the form asks only for those.
func keepSlots(turn *Turn, ve *scheduling.ValidationError) {
	invalid := make(map[string]bool, len(ve.Fields))
	for _, fe := range ve.Fields {
		invalid[fe.Field] = true
	}

	for _, name := range append(append([]string{}, bookingSlots...), extraSlots...) {
		value := turn.Value(name)
		switch {
		case invalid[name]:
			turn.SetSlot(name, nil)
		case value != "":
			turn.SetSlot(name, value)
		}
	}
}

// validateAppointmentForm normalizes each slot the form has filled so far.
type validateAppointmentForm struct {
	normalizer *scheduling.Normalizer
}

func (a *validateAppointmentForm) Name() string { return "validate_appointment_form" }

func (a *validateAppointmentForm) Run(ctx context.Context, turn *Turn) error {
	var validDate string

	if raw := turn.Value(SlotDate); raw != "" {
		date, err := a.normalizer.NormalizeDate(raw)
		if !reject(turn, SlotDate, err) {
			validDate = date
			turn.SetSlot(SlotDate, date)
		}
	}

	if raw := turn.Value(SlotTime); raw != "" {
		clock, err := a.normalizer.NormalizeTime(raw, validDate)
		if !reject(turn, SlotTime, err) {
			turn.SetSlot(SlotTime, clock)
		}
	}

	if raw := turn.Value(SlotDoctorName); raw != "" {
		doctor, err := a.normalizer.ResolveDoctor(ctx, raw)
		if err != nil && !scheduling.IsValidation(err) {
			return err
		}
		if !reject(turn, SlotDoctorName, err) {
			turn.SetSlot(SlotDoctorName, doctor.Name)
		}
	}

	if raw := turn.Value(SlotReason); raw != "" {
		reason, err := scheduling.ValidateReason(raw)
		if !reject(turn, SlotReason, err) {
			turn.SetSlot(SlotReason, reason)
		}
	}

	return nil
}

// reject clears slot and utters the problem when err is set.
func reject(turn *Turn, slot string, err error) bool {
	if err == nil {
		return false
	}
	turn.SetSlot(slot, nil)
	if ve, ok := scheduling.AsValidation(err); ok {
		turn.Utter(ve.Message)
	} else {
		turn.Utter(msgSomethingWentWrong)
	}
	return true
}

type viewAppointments struct {
	appointments usecase.AppointmentUsecase
}

func (a *viewAppointments) Name() string { return "action_view_appointments" }

func (a *viewAppointments) Run(ctx context.Context, turn *Turn) error {
	ownerID, ok := turn.UserID()
	if !ok {
		turn.Utter(msgLogin)
		return nil
	}

	filter := &dto.AppointmentFilterRequest{
		Date:       turn.Value(SlotDate),
		DoctorName: turn.Value(SlotDoctorName),
		Status:     turn.Value(SlotStatus),
	}
	list, err := a.appointments.List(ctx, ownerID, filter)
	switch {
	case errors.Is(err, usecase.ErrInvalidStatusFilter):
		turn.Utter("Please ask for scheduled, cancelled or completed appointments.")
		return nil
	case err != nil:
		if ve, ok := scheduling.AsValidation(err); ok {
			turn.Utter(ve.Message)
			return nil
		}
		return err
	}

	filtered := filter.Date != "" || filter.DoctorName != "" || filter.Status != ""
	turn.Utter(appointmentsMessage(list, filtered))
	return nil
}

type modifyAppointment struct {
	appointments usecase.AppointmentUsecase
}

func (a *modifyAppointment) Name() string { return "action_modify_appointment" }

func (a *modifyAppointment) Run(ctx context.Context, turn *Turn) error {
	ownerID, ok := turn.UserID()
	if !ok {
		turn.Utter(msgLogin)
		return nil
	}
	id, ok, err := target(ctx, a.appointments, turn, ownerID)
	if err != nil || !ok {
		return err
	}

	req := &dto.ModifyAppointmentRequest{
		Date:       optional(turn, SlotDate),
		Time:       optional(turn, SlotTime),
		DoctorName: optional(turn, SlotDoctorName),
		Reason:     optional(turn, SlotReason),
		Location:   optional(turn, SlotLocation),
	}
	appointment, err := a.appointments.Modify(ctx, id, ownerID, req)
	if err != nil {
		if ve, ok := scheduling.AsValidation(err); ok {
			turn.Utter(describe(ve))
			return nil
		}
		return err
	}

	turn.Utter(modifiedMessage(appointment))
	turn.ResetSlots()
	turn.SetSlot(SlotAppointmentID, appointment.ID)
	return nil
}

type cancelAppointment struct {
	appointments usecase.AppointmentUsecase
}

func (a *cancelAppointment) Name() string { return "action_cancel_appointment" }

func (a *cancelAppointment) Run(ctx context.Context, turn *Turn) error {
	ownerID, ok := turn.UserID()
	if !ok {
		turn.Utter(msgLogin)
		return nil
	}
	id, ok, err := target(ctx, a.appointments, turn, ownerID)
	if err != nil || !ok {
		return err
	}

	appointment, err := a.appointments.Cancel(ctx, id, ownerID)
	if err != nil {
		if ve, ok := scheduling.AsValidation(err); ok {
			turn.Utter(ve.Message)
			return nil
		}
		return err
	}

	turn.Utter(cancelledMessage(appointment))
	turn.ResetSlots()
	return nil
}

// target picks the appointment named by the appointment_id slot or, when
// there is none, the user's most recent upcoming booking. ok is false when
// the user has already been told there is nothing to act on.
func target(ctx context.Context, appointments usecase.AppointmentUsecase, turn *Turn, ownerID uint) (uint, bool, error) {
	if id, ok := parseID(turn.Value(SlotAppointmentID)); ok {
		return id, true, nil
	}

	latest, err := appointments.Latest(ctx, ownerID)
	if errors.Is(err, usecase.ErrNoUpcomingAppointment) {
		turn.Utter(msgNoUpcoming)
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return latest.ID, true, nil
}

func optional(turn *Turn, slot string) *string {
	if v := turn.Value(slot); v != "" {
		return &v
	}
	return nil
}
