package entities

import (
	"fmt"
	"time"

	"isp_backoffice/internal/domain/proration"

	"github.com/shopspring/decimal"
)

type ChargeStatus string

const (
	ChargeStatusPending ChargeStatus = "pending"
	ChargeStatusPaid    ChargeStatus = "paid"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// MonthlyChargeDescription is the description of the monthly fee charge for
// the given month. It doubles as the dedup key of monthly charge generation.
func MonthlyChargeDescription(year int, month time.Month) string {
	return fmt.Sprintf("Mensualidad %s %d", MonthName(month), year)
}

// Charge is a single receivable of a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (description-index): description
type Charge struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      ChargeStatus    `json:"status"`
	DueDate     proration.Date  `json:"due_date"`
	PaymentID   string          `json:"payment_id,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
