package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcedureKind separates clinical procedures from lab tests
type ProcedureKind string

const (
	ProcedureKindProcedure ProcedureKind = "procedure"
	ProcedureKindTest      ProcedureKind = "test"
)

// DefaultCurrency of the price list
const DefaultCurrency = "RON"

// Procedure is an entry of the clinic's catalog. Unpriced entries carry zero prices.
type Procedure struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind        ProcedureKind   `gorm:"type:varchar(20);not null;index" json:"kind"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	MinPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"min_price"`
	MaxPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"max_price"`
	Currency    string          `gorm:"type:char(3);not null;default:'RON'" json:"currency"`
	SortOrder   int             `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Procedure) TableName() string {
	return "procedures"
}

// Priced reports whether the entry appears on the price list
func (p *Procedure) Priced() bool {
	return p.MaxPrice.IsPositive()
}
