package handler

import (
	"net/http"

	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// GetDoctors lists the roster, optionally narrowed with ?specialty=
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")
	if specialty == "" {
		doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to get doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	doctors, err := h.doctorUsecase.GetDoctorsBySpecialty(r.Context(), specialty, "")
	if err != nil {
		switch err {
		case usecase.ErrUnknownSpecialty:
			response.Error(w, http.StatusBadRequest, "Unknown specialty", nil)
		default:
			response.InternalServerError(w, "Failed to get doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
