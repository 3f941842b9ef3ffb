package handler

import (
	"errors"
	"net/http"

	"medical-appointment-assistant/internal/scheduling"
	"medical-appointment-assistant/pkg/response"
)

// validationDetail is the error payload of a failed appointment validation
type validationDetail struct {
	Kind    string                  `json:"kind"`
	Field   string                  `json:"field,omitempty"`
	Missing []string                `json:"missing,omitempty"`
	Fields  []scheduling.FieldError `json:"fields,omitempty"`
}

// writeAppointmentError maps scheduling outcomes onto HTTP statuses. Anything
// that is not a validation outcome is reported as a generic failure.
func writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	ve, ok := scheduling.AsValidation(err)
	if !ok {
		response.InternalServerError(w, fallback)
		return
	}

	switch {
	case errors.Is(ve, scheduling.ErrNotFoundOrNotOwned):
		response.NotFound(w, ve.Message)
	case errors.Is(ve, scheduling.ErrAlreadyCancelled), errors.Is(ve, scheduling.ErrAlreadyCompleted):
		response.Conflict(w, ve.Message)
	default:
		response.Unprocessable(w, ve.Message, validationDetail{
			Kind:    ve.KindName(),
			Field:   ve.Field,
			Missing: ve.Missing,
			Fields:  ve.Fields,
		})
	}
}
