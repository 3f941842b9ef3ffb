package handler

import (
	"net/http"

	"medical-appointment-assistant/internal/delivery/http/middleware"
	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetMyActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	activity, err := h.auditLogUsecase.GetMyActivity(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}
