package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServicePlan is a catalog entry offered to prospects (speed tier + fee).
type ServicePlan struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	MonthlyFee decimal.Decimal `json:"monthly_fee"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}
