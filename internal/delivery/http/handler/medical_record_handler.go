package handler

import (
	"net/http"

	"medical-appointment-assistant/internal/delivery/http/middleware"
	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/response"
)

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
	}
}

func (h *MedicalRecordHandler) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records, err := h.medicalRecordUsecase.GetRecentRecords(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
