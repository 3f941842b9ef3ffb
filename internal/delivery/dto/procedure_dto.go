package dto

import "github.com/shopspring/decimal"

// Response DTOs

type ProcedureResponse struct {
	ID          uint             `json:"id"`
	Kind        string           `json:"kind"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	MinPrice    *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice    *decimal.Decimal `json:"max_price,omitempty"`
	Currency    string           `json:"currency,omitempty"`
}

// ProcedureCategory keeps the catalog order of one category.
type ProcedureCategory struct {
	Category   string              `json:"category"`
	Procedures []ProcedureResponse `json:"procedures"`
}

type ProcedureListResponse struct {
	Categories []ProcedureCategory `json:"categories"`
	Total      int                 `json:"total"`
}
