package handler

import (
	"net/http"

	"medical-appointment-assistant/internal/usecase"
	"medical-appointment-assistant/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

func (h *CatalogHandler) GetProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.catalogUsecase.GetProcedures(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get procedures")
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}

func (h *CatalogHandler) GetTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.catalogUsecase.GetTests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get tests")
		return
	}

	response.Success(w, http.StatusOK, "Tests retrieved successfully", tests)
}

func (h *CatalogHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.catalogUsecase.GetPrices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get prices")
		return
	}

	response.Success(w, http.StatusOK, "Prices retrieved successfully", prices)
}
