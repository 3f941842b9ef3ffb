package converter

import (
	"medical-appointment-assistant/internal/delivery/dto"
	"medical-appointment-assistant/internal/domain/entity"
)

// ProcedureToResponse converts a Procedure entity to ProcedureResponse DTO.
// Prices are omitted for unpriced entries.
func ProcedureToResponse(procedure *entity.Procedure) *dto.ProcedureResponse {
	if procedure == nil {
		return nil
	}

	response := &dto.ProcedureResponse{
		ID:          procedure.ID,
		Kind:        string(procedure.Kind),
		Name:        procedure.Name,
		Description: procedure.Description,
	}

	if procedure.Priced() {
		minPrice, maxPrice := procedure.MinPrice, procedure.MaxPrice
		response.MinPrice = &minPrice
		response.MaxPrice = &maxPrice
		response.Currency = procedure.Currency
		if response.Currency == "" {
			response.Currency = entity.DefaultCurrency
		}
	}

	return response
}

// ProceduresToCategories groups catalog entries by category in catalog order
func ProceduresToCategories(procedures []entity.Procedure) []dto.ProcedureCategory {
	categories := []dto.ProcedureCategory{}
	index := make(map[string]int)
	for i := range procedures {
		p := &procedures[i]
		pos, ok := index[p.Category]
		if !ok {
			pos = len(categories)
			index[p.Category] = pos
			categories = append(categories, dto.ProcedureCategory{Category: p.Category})
		}
		categories[pos].Procedures = append(categories[pos].Procedures, *ProcedureToResponse(p))
	}
	return categories
}
