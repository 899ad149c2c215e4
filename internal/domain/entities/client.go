package entities

import (
	"time"

	"isp_backoffice/internal/domain/proration"

	"github.com/shopspring/decimal"
)

type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusCancelled ClientStatus = "cancelled"
)

// Client is an active (or cancelled) subscriber.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type Client struct {
	ID string `json:"id"`
	Contact

	ProspectID         string       `json:"prospect_id,omitempty"`
	Status             ClientStatus `json:"status"`
	CancellationReason string       `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	CreatedBy          string       `json:"created_by,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// ClientBilling is the billing ledger of a client. It is created once at
// finalization; afterwards only Balance moves (monthly charges, ad-hoc
// charges and payments).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type ClientBilling struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	ServicePlanID     string          `json:"service_plan_id,omitempty"`
	MonthlyFee        decimal.Decimal `json:"monthly_fee"`
	InstallationCost  decimal.Decimal `json:"installation_cost"`
	InstallationDate  proration.Date  `json:"installation_date"`
	FirstBillingDate  proration.Date  `json:"first_billing_date"`
	BillingDay        int             `json:"billing_day"`
	ProratedAmount    decimal.Decimal `json:"prorated_amount"`
	DaysCharged       int             `json:"days_charged"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	Balance           decimal.Decimal `json:"balance"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Equipment is the customer premises equipment installed for a client.
type Equipment struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	AntennaSSID string    `json:"antenna_ssid,omitempty"`
	AntennaIP   string    `json:"antenna_ip,omitempty"`
	AntennaMAC  string    `json:"antenna_mac,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
