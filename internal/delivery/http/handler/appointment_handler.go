package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/delivery/http/middleware"
	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/response"
	"medical-appointment-assistant/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	query := r.URL.Query()
	filter := &dto.AppointmentFilterRequest{
		Date:       query.Get("date"),
		DoctorName: query.Get("doctor_name"),
		Status:     query.Get("status"),
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatusFilter) {
			response.Error(w, http.StatusBadRequest, "Status must be scheduled, cancelled or completed", nil)
			return
		}
		writeAppointmentError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), userID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	userID, appointmentID, ok := h.target(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), appointmentID, userID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetLatestAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointment, err := h.appointmentUsecase.Latest(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoUpcomingAppointment) {
			response.NotFound(w, "No upcoming appointment")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) ModifyAppointment(w http.ResponseWriter, r *http.Request) {
	userID, appointmentID, ok := h.target(w, r)
	if !ok {
		return
	}

	var req dto.ModifyAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Modify(r.Context(), appointmentID, userID, &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to modify appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	userID, appointmentID, ok := h.target(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), appointmentID, userID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

// target reads the caller and the {id} path variable, answering the request itself on failure
func (h *AppointmentHandler) target(w http.ResponseWriter, r *http.Request) (uint, uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return 0, 0, false
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return 0, 0, false
	}

	return userID, uint(id), true
}
