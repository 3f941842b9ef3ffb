package action

import (
	"fmt"
	"strconv"
	"strings"

	"medical-appointment-assistant/internal/delivery/dto"
)

// Slot names shared with the dialogue domain.
const (
	SlotDate            = "date"
	SlotTime            = "time"
	SlotDoctorName      = "doctor_name"
	SlotReason          = "reason"
	SlotAppointmentID   = "appointment_id"
	SlotAppointmentType = "appointment_type"
	SlotDuration        = "duration"
	SlotLocation        = "location"
	SlotPhone           = "phone_number"
	SlotSpecialty       = "specialty"
	SlotStatus          = "status"

	FormAppointment = "appointment_form"
)

// Turn is one action run: the incoming tracker and the events and messages
// produced for it.
type Turn struct {
	req      *dto.ActionRequest
	events   []dto.Event
	messages []dto.BotMessage
}

func NewTurn(req *dto.ActionRequest) *Turn {
	return &Turn{req: req}
}

func (t *Turn) ActionName() string {
	return t.req.NextAction
}

func (t *Turn) Intent() dto.Intent {
	return t.req.Tracker.LatestMessage.Intent
}

func (t *Turn) Text() string {
	return t.req.Tracker.LatestMessage.Text
}

// Slot returns the tracker slot as trimmed text, "" when unset.
func (t *Turn) Slot(name string) string {
	return stringify(t.req.Tracker.Slots[name])
}

// Entity returns the last value extracted for name from the latest message.
func (t *Turn) Entity(name string) string {
	var value string
	for _, e := range t.req.Tracker.LatestMessage.Entities {
		if e.Entity == name {
			if v := stringify(e.Value); v != "" {
				value = v
			}
		}
	}
	return value
}

// Value merges the two sources: an entity of the latest message overrides the slot.
func (t *Turn) Value(name string) string {
	if v := t.Entity(name); v != "" {
		return v
	}
	return t.Slot(name)
}

// UserID identifies the patient from the message metadata, falling back to a
// numeric sender id.
func (t *Turn) UserID() (uint, bool) {
	if raw, ok := t.req.Tracker.LatestMessage.Metadata["user_id"]; ok {
		if id, ok := parseID(stringify(raw)); ok {
			return id, true
		}
	}
	sender := t.req.SenderID
	if sender == "" {
		sender = t.req.Tracker.SenderID
	}
	return parseID(sender)
}

func (t *Turn) Utter(text string) {
	t.messages = append(t.messages, dto.BotMessage{Text: text})
}

func (t *Turn) Utterf(format string, args ...any) {
	t.Utter(fmt.Sprintf(format, args...))
}

func (t *Turn) UtterImage(url string) {
	t.messages = append(t.messages, dto.BotMessage{Image: url})
}

// SetSlot sets a slot; a nil value clears it.
func (t *Turn) SetSlot(name string, value any) {
	t.events = append(t.events, dto.Event{Event: "slot", Name: name, Value: value})
}

func (t *Turn) ResetSlots() {
	t.events = append(t.events, dto.Event{Event: "reset_slots"})
}

func (t *Turn) Followup(action string) {
	t.events = append(t.events, dto.Event{Event: "followup", Name: action})
}

func (t *Turn) Response() *dto.ActionResponse {
	resp := &dto.ActionResponse{Events: t.events, Responses: t.messages}
	if resp.Events == nil {
		resp.Events = []dto.Event{}
	}
	if resp.Responses == nil {
		resp.Responses = []dto.BotMessage{}
	}
	return resp
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
