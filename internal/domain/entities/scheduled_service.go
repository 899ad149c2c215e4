package entities

import (
	"time"

	"isp_backoffice/internal/domain/proration"

	"github.com/shopspring/decimal"
)

type ServiceType string

const (
	ServiceTypeInstallation    ServiceType = "installation"
	ServiceTypeMaintenance     ServiceType = "maintenance"
	ServiceTypeEquipmentChange ServiceType = "equipment_change"
	ServiceTypeRelocation      ServiceType = "relocation"
	ServiceTypeRepair          ServiceType = "repair"
	ServiceTypeDisconnection   ServiceType = "disconnection"
	ServiceTypeOther           ServiceType = "other"
)

var serviceTypeLabels = map[ServiceType]string{
	ServiceTypeInstallation:    "Instalación",
	ServiceTypeMaintenance:     "Mantenimiento",
	ServiceTypeEquipmentChange: "Cambio de Equipo",
	ServiceTypeRelocation:      "Reubicación",
	ServiceTypeRepair:          "Reparación",
	ServiceTypeDisconnection:   "Desconexión",
	ServiceTypeOther:           "Otro",
}

func (t ServiceType) Valid() bool {
	_, ok := serviceTypeLabels[t]
	return ok
}

// Label is the Spanish name shown to staff and used in visit charge descriptions.
func (t ServiceType) Label() string {
	if l, ok := serviceTypeLabels[t]; ok {
		return l
	}
	return serviceTypeLabels[ServiceTypeOther]
}

// ServiceStatus is the lifecycle of a field visit.
//
//   - scheduled: on the calendar, not started
//   - in_progress: the technician is on site
//   - completed, cancelled: terminal
type ServiceStatus string

const (
	ServiceStatusScheduled  ServiceStatus = "scheduled"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

// NoOneHomeMarker prefixes the completion notes of a visit where nobody answered.
const NoOneHomeMarker = "[No había nadie en casa]"

// ScheduledService is a field-service visit for a client or a prospect.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assigned_to-index): assigned_to, sort key scheduled_date
type ScheduledService struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id,omitempty"`
	ProspectID  string        `json:"prospect_id,omitempty"`
	AssignedTo  string        `json:"assigned_to"`
	ServiceType ServiceType   `json:"service_type"`
	Status      ServiceStatus `json:"status"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`

	ScheduledDate proration.Date `json:"scheduled_date"`
	// ScheduledTime is the local "HH:MM" start, empty when only the day is set.
	ScheduledTime     string          `json:"scheduled_time,omitempty"`
	EstimatedDuration int             `json:"estimated_duration,omitempty"`
	ChargeAmount      decimal.Decimal `json:"charge_amount"`
	ChargeID          string          `json:"charge_id,omitempty"`

	VisitStartedAt *time.Time `json:"visit_started_at,omitempty"`
	VisitLatitude  *float64   `json:"visit_latitude,omitempty"`
	VisitLongitude *float64   `json:"visit_longitude,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CompletedNotes string     `json:"completed_notes,omitempty"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (s ScheduledService) HasGPS() bool {
	return s.VisitLatitude != nil && s.VisitLongitude != nil
}

// VisitMinutes is the time spent on site, or -1 when the visit has no start or end.
func (s ScheduledService) VisitMinutes() int {
	if s.VisitStartedAt == nil || s.CompletedAt == nil {
		return -1
	}
	return int(s.CompletedAt.Sub(*s.VisitStartedAt).Minutes())
}
