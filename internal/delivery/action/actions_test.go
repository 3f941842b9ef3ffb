package action

import (
	"context"
	"testing"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownAction(t *testing.T) {
	f := newFixture(t)

	_, err := f.registry.Run(context.Background(), request("action_sing_a_song", nil))

	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestRegistry_RegistersEveryAction(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{
		"action_book_appointment",
		"action_cancel_appointment",
		"action_greet_user",
		"action_list_doctors",
		"action_list_doctors_by_specialty",
		"action_list_prices",
		"action_list_procedures",
		"action_list_tests",
		"action_modify_appointment",
		"action_submit_appointment_form",
		"action_view_appointments",
		"action_view_medical_records",
		"validate_appointment_form",
	}, f.registry.Names())
}

func TestRegistry_InfrastructureFailureIsApologized(t *testing.T) {
	f := newFixture(t)
	f.roster.err = assert.AnError

	resp := f.run(t, request("action_list_doctors", nil))

	assert.Equal(t, msgSomethingWentWrong, texts(resp))
	assert.NotEmpty(t, f.hook.Entries)
}

func TestBookAppointment_LowConfidence(t *testing.T) {
	f := newFixture(t)
	req := request("action_book_appointment", fullBookingSlots())
	req.Tracker.LatestMessage.Intent.Confidence = 0.4

	resp := f.run(t, req)

	assert.Equal(t, msgRephrase, texts(resp))
	assert.Equal(t, []string{"reset_slots"}, eventNames(resp))
	list, _ := f.store.ListByOwner(context.Background(), patient, entity.AppointmentFilter{})
	assert.Empty(t, list)
}

func TestBookAppointment_RequiresUser(t *testing.T) {
	f := newFixture(t)
	req := request("action_book_appointment", fullBookingSlots())
	req.Tracker.LatestMessage.Metadata = nil

	resp := f.run(t, req)

	assert.Equal(t, msgLogin, texts(resp))
}

func TestBookAppointment_Books(t *testing.T) {
	f := newFixture(t)
	req := request("action_book_appointment", map[string]any{
		SlotDate:       "friday",
		SlotDoctorName: "popescu",
		SlotReason:     "palpitations at night",
	}, dto.Entity{Entity: SlotDate, Value: "tomorrow"}, dto.Entity{Entity: SlotTime, Value: "2 pm"})

	resp := f.run(t, req)

	assert.Contains(t, texts(resp), "Appointment booked!")
	assert.Contains(t, texts(resp), "Dr. Andrei Popescu")
	assert.Equal(t, []string{"reset_slots", "slot"}, eventNames(resp))
	assert.Equal(t, uint(1), slotEvents(resp)[SlotAppointmentID])

	stored, err := f.store.FindByID(context.Background(), 1, patient)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "2025-03-13", stored.Date)
	assert.Equal(t, "14:00", stored.Time)
}

func TestBookAppointment_MissingSlotsStartForm(t *testing.T) {
	f := newFixture(t)
	req := request("action_book_appointment", nil,
		dto.Entity{Entity: SlotDate, Value: "tomorrow"},
		dto.Entity{Entity: SlotDoctorName, Value: "Ionescu"})

	resp := f.run(t, req)

	assert.Equal(t, "I need more information. Please provide: time, reason", texts(resp))
	assert.Equal(t, map[string]any{SlotDate: "tomorrow", SlotDoctorName: "Ionescu"}, slotEvents(resp))
	assert.Contains(t, resp.Events, dto.Event{Event: "followup", Name: FormAppointment})
}

func TestBookAppointment_InvalidSlotsAreCleared(t *testing.T) {
	f := newFixture(t)
	slots := fullBookingSlots()
	slots[SlotDoctorName] = "Dr. House"
	slots[SlotTime] = "8pm"

	resp := f.run(t, request("action_book_appointment", slots))

	set := slotEvents(resp)
	assert.Nil(t, set[SlotDoctorName])
	assert.Nil(t, set[SlotTime])
	assert.Contains(t, set, SlotTime)
	assert.Equal(t, "tomorrow", set[SlotDate])
	assert.Equal(t, "palpitations at night", set[SlotReason])
	assert.Contains(t, texts(resp), "There were some problems with your request:")
	assert.Contains(t, texts(resp), "House")
}

func TestValidateAppointmentForm(t *testing.T) {
	f := newFixture(t)
	req := request("validate_appointment_form", map[string]any{
		SlotDate:       "sunday",
		SlotTime:       "2pm",
		SlotDoctorName: "georgescu",
		SlotReason:     "?!",
	})

	resp := f.run(t, req)

	set := slotEvents(resp)
	assert.Nil(t, set[SlotDate])
	assert.Equal(t, "14:00", set[SlotTime])
	assert.Equal(t, "Dr. Mihai Georgescu", set[SlotDoctorName])
	assert.Nil(t, set[SlotReason])
	assert.Len(t, resp.Responses, 2)
}

func TestValidateAppointmentForm_ChecksWorkingHoursOfValidDate(t *testing.T) {
	f := newFixture(t)

	resp := f.run(t, request("validate_appointment_form", map[string]any{
		SlotDate: "saturday",
		SlotTime: "15:00",
	}))

	set := slotEvents(resp)
	assert.Equal(t, "2025-03-15", set[SlotDate])
	assert.Nil(t, set[SlotTime])
	assert.Contains(t, texts(resp), "09:00")
}

func TestSubmitAppointmentForm(t *testing.T) {
	f := newFixture(t)
	req := request("action_submit_appointment_form", fullBookingSlots())
	req.Tracker.LatestMessage.Intent.Confidence = 0.1

	resp := f.run(t, req)

	assert.Contains(t, texts(resp), "Appointment booked!")
}

func TestViewAppointments(t *testing.T) {
	f := newFixture(t)
	f.run(t, request("action_book_appointment", fullBookingSlots()))
	slots := fullBookingSlots()
	slots[SlotDate] = "friday"
	f.run(t, request("action_book_appointment", slots))
	f.run(t, request("action_cancel_appointment", map[string]any{SlotAppointmentID: float64(1)}))

	resp := f.run(t, request("action_view_appointments", nil))
	assert.Equal(t, "📅 Your Appointments:\n"+
		"❌ #1 2025-03-13 at 10:30 - Dr. Andrei Popescu\n   Reason: palpitations at night\n"+
		"✅ #2 2025-03-14 at 10:30 - Dr. Andrei Popescu\n   Reason: palpitations at night", texts(resp))

	resp = f.run(t, request("action_view_appointments", map[string]any{SlotStatus: "cancelled"}))
	assert.NotContains(t, texts(resp), "#2")

	resp = f.run(t, request("action_view_appointments", map[string]any{SlotDate: "monday"}))
	assert.Equal(t, msgNoMatches, texts(resp))
}

func TestViewAppointments_Empty(t *testing.T) {
	f := newFixture(t)

	resp := f.run(t, request("action_view_appointments", nil))

	assert.Equal(t, msgNoAppointments, texts(resp))
}

func TestModifyAppointment_TargetsLatest(t *testing.T) {
	f := newFixture(t)
	f.run(t, request("action_book_appointment", fullBookingSlots()))

	resp := f.run(t, request("action_modify_appointment", nil, dto.Entity{Entity: SlotTime, Value: "4pm"}))

	assert.Contains(t, texts(resp), "Appointment 1 updated!")
	assert.Contains(t, texts(resp), "2025-03-13 at 16:00")
	stored, _ := f.store.FindByID(context.Background(), 1, patient)
	assert.Equal(t, "16:00", stored.Time)
}

func TestModifyAppointment_InvalidChangeKeepsAppointment(t *testing.T) {
	f := newFixture(t)
	f.run(t, request("action_book_appointment", fullBookingSlots()))

	resp := f.run(t, request("action_modify_appointment", map[string]any{SlotAppointmentID: "1", SlotDate: "sunday"}))

	assert.Contains(t, texts(resp), "closed")
	stored, _ := f.store.FindByID(context.Background(), 1, patient)
	assert.Equal(t, "2025-03-13", stored.Date)
}

func TestCancelAppointment(t *testing.T) {
	f := newFixture(t)
	f.run(t, request("action_book_appointment", fullBookingSlots()))

	resp := f.run(t, request("action_cancel_appointment", map[string]any{SlotAppointmentID: float64(1)}))
	assert.Contains(t, texts(resp), "Appointment 1 cancelled")
	assert.Equal(t, []string{"reset_slots"}, eventNames(resp))

	resp = f.run(t, request("action_cancel_appointment", map[string]any{SlotAppointmentID: float64(1)}))
	assert.Equal(t, "That appointment has already been cancelled.", texts(resp))

	resp = f.run(t, request("action_cancel_appointment", nil))
	assert.Equal(t, msgNoUpcoming, texts(resp))
}

func TestCancelAppointment_NotOwned(t *testing.T) {
	f := newFixture(t)
	f.run(t, request("action_book_appointment", fullBookingSlots()))
	req := request("action_cancel_appointment", map[string]any{SlotAppointmentID: float64(1)})
	req.Tracker.LatestMessage.Metadata["user_id"] = float64(99)

	resp := f.run(t, req)

	assert.Equal(t, "I couldn't find that appointment among your bookings.", texts(resp))
	stored, _ := f.store.FindByID(context.Background(), 1, patient)
	assert.Equal(t, entity.AppointmentStatusScheduled, stored.Status)
}

func TestListDoctors(t *testing.T) {
	f := newFixture(t)

	resp := f.run(t, request("action_list_doctors", nil))

	assert.Equal(t, "**Adult Cardiology:**\n• Dr. Andrei Popescu\n\n"+
		"**Cardiovascular Surgery:**\n• Dr. Mihai Georgescu\n\n"+
		"**Pediatric Cardiology:**\n• Dr. Elena Ionescu", texts(resp))
}

func TestListDoctorsBySpecialty(t *testing.T) {
	f := newFixture(t)

	req := request("action_list_doctors_by_specialty", nil)
	req.Tracker.LatestMessage.Text = "Do you have pediatric cardiologists?"
	resp := f.run(t, req)
	assert.Equal(t, "Pediatric Cardiology Doctors:\n• Dr. Elena Ionescu", texts(resp))

	req = request("action_list_doctors_by_specialty", nil)
	req.Tracker.LatestMessage.Text = "who works there?"
	resp = f.run(t, req)
	assert.Equal(t, msgAskSpecialty, texts(resp))
}

func TestCatalogActions(t *testing.T) {
	f := newFixture(t)

	resp := f.run(t, request("action_list_prices", nil))
	assert.Contains(t, texts(resp), "💰 CARDIOLOGY PRICING LIST")
	assert.Contains(t, texts(resp), "Initial Consultation: 150 - 250 RON")
	assert.Contains(t, texts(resp), contactFooter)

	resp = f.run(t, request("action_list_procedures", nil))
	assert.Contains(t, texts(resp), "CONSULTATION & CONTROL\n• Initial Consultation - comprehensive cardiac evaluation")

	resp = f.run(t, request("action_list_tests", nil))
	assert.Contains(t, texts(resp), "• Troponin I/T - heart muscle injury test")
}

func TestViewMedicalRecords(t *testing.T) {
	f := newFixture(t)

	resp := f.run(t, request("action_view_medical_records", nil))

	text := texts(resp)
	assert.Contains(t, text, "Here are the recent medical records for Ioana Marin:")
	assert.Contains(t, text, "📋 **Lipid panel** (Dr. Andrei Popescu)")
	assert.Contains(t, text, "📝 Type: Lab Result")
	assert.Contains(t, text, "...")
}

func TestGreetUser(t *testing.T) {
	f := newFixture(t)

	resp := f.run(t, request("action_greet_user", nil))

	require.Len(t, resp.Responses, 2)
	assert.Equal(t, msgGreeting, resp.Responses[0].Text)
	assert.Equal(t, greetingImage, resp.Responses[1].Image)
}
