package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-appointment-assistant/internal/delivery/action"
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/pkg/response"

	"github.com/sirupsen/logrus"
)

// WebhookHandler serves the action-server endpoint of the dialogue engine.
// It answers in the engine's own wire format, not the API envelope.
type WebhookHandler struct {
	registry *action.Registry
	log      *logrus.Logger
}

func NewWebhookHandler(registry *action.Registry, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{
		registry: registry,
		log:      log,
	}
}

func (h *WebhookHandler) RunAction(w http.ResponseWriter, r *http.Request) {
	var req dto.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, dto.UnknownActionResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.registry.Run(r.Context(), &req)
	if err != nil {
		if errors.Is(err, action.ErrUnknownAction) {
			h.log.Warnf("Unknown action requested: %s", req.NextAction)
			response.JSON(w, http.StatusNotFound, dto.UnknownActionResponse{
				Error:      "No registered action found for name '" + req.NextAction + "'.",
				ActionName: req.NextAction,
			})
			return
		}
		response.JSON(w, http.StatusInternalServerError, dto.UnknownActionResponse{Error: "internal error", ActionName: req.NextAction})
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// ListActions reports the registered action names
func (h *WebhookHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.registry.Names())
}
