package entities

import (
	"encoding/json"
	"time"

	"isp_backoffice/internal/domain/proration"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

const PaymentTypeMercadoPago = "mercadopago"

// Payment is money received from a client, either captured by staff
// (cash, transfer, deposit) or processed online through Mercado Pago.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Mercado Pago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for traceability/audit.
//   - MPPayload is a parsed representation, useful for querying/debugging.
type Payment struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	ChargeID      string          `json:"charge_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   string          `json:"payment_type"`
	BankType      string          `json:"bank_type,omitempty"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
	PeriodMonth   int             `json:"period_month,omitempty"`
	PeriodYear    int             `json:"period_year,omitempty"`
	PayerName     string          `json:"payer_name,omitempty"`
	PayerPhone    string          `json:"payer_phone,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PaymentDate   proration.Date  `json:"payment_date"`
	Status        PaymentStatus   `json:"status"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`

	ProviderPaymentID string                 `json:"provider_payment_id,omitempty"`
	MPPayloadRaw      json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload         map[string]interface{} `json:"mp_payload,omitempty"`
}
