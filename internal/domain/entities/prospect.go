package entities

import "time"

// ProspectStatus represents the lifecycle of a prospect.
//
//   - pending: captured, waiting for installation
//   - finalized: converted into a client (terminal)
//   - cancelled: dropped; may be reactivated back to pending

type ProspectStatus string

const (
	ProspectStatusPending   ProspectStatus = "pending"
	ProspectStatusFinalized ProspectStatus = "finalized"
	ProspectStatusCancelled ProspectStatus = "cancelled"
)

// Contact holds the personal and address data shared by prospects and clients.
type Contact struct {
	FirstName       string `json:"first_name"`
	LastNamePaterno string `json:"last_name_paterno"`
	LastNameMaterno string `json:"last_name_materno,omitempty"`
	Phone1          string `json:"phone1"`
	Phone1Country   string `json:"phone1_country"`
	Phone2          string `json:"phone2,omitempty"`
	Phone2Country   string `json:"phone2_country"`
	Phone3          string `json:"phone3,omitempty"`
	Phone3Country   string `json:"phone3_country"`
	Street          string `json:"street"`
	ExteriorNumber  string `json:"exterior_number"`
	InteriorNumber  string `json:"interior_number,omitempty"`
	Neighborhood    string `json:"neighborhood"`
	City            string `json:"city"`
	CityID          string `json:"city_id,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
}

func (c Contact) FullName() string {
	name := c.FirstName + " " + c.LastNamePaterno
	if c.LastNameMaterno != "" {
		name += " " + c.LastNameMaterno
	}
	return name
}

// Prospect is a potential client captured before installation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type Prospect struct {
	ID string `json:"id"`
	Contact

	SSID      string `json:"ssid,omitempty"`
	AntennaIP string `json:"antenna_ip,omitempty"`
	Notes     string `json:"notes,omitempty"`

	Status             ProspectStatus `json:"status"`
	CancellationReason string         `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time     `json:"cancelled_at,omitempty"`
	FinalizedAt        *time.Time     `json:"finalized_at,omitempty"`
	CreatedBy          string         `json:"created_by,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ProspectChange records a single field edited while finalizing a prospect.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (prospect_id-index): prospect_id
type ProspectChange struct {
	ID         string    `json:"id"`
	ProspectID string    `json:"prospect_id"`
	ClientID   string    `json:"client_id"`
	FieldName  string    `json:"field_name"`
	OldValue   string    `json:"old_value,omitempty"`
	NewValue   string    `json:"new_value,omitempty"`
	ChangedBy  string    `json:"changed_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
