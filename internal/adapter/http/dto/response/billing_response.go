package response

import (
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/usecase"

	"github.com/samber/lo"
)

// Money is rendered as fixed two-decimal strings throughout.

type ProrationResponse struct {
	ProratedAmount   string `json:"prorated_amount"`
	DaysCharged      int    `json:"days_charged"`
	FirstBillingDate string `json:"first_billing_date"`
}

func FromProration(r proration.Result) ProrationResponse {
	return ProrationResponse{
		ProratedAmount:   r.ProratedAmount.StringFixed(2),
		DaysCharged:      r.DaysCharged,
		FirstBillingDate: r.FirstBillingDate.String(),
	}
}

type ProrationPreviewResponse struct {
	Proration         ProrationResponse `json:"proration"`
	MonthlyFee        string            `json:"monthly_fee"`
	InstallationCost  string            `json:"installation_cost"`
	AdditionalCharges string            `json:"additional_charges"`
	InitialBalance    string            `json:"initial_balance"`
}

func FromProrationPreview(p usecase.ProrationPreview) ProrationPreviewResponse {
	return ProrationPreviewResponse{
		Proration:         FromProration(p.Proration),
		MonthlyFee:        p.MonthlyFee.StringFixed(2),
		InstallationCost:  p.InstallationCost.StringFixed(2),
		AdditionalCharges: p.AdditionalCharges.StringFixed(2),
		InitialBalance:    p.InitialBalance.StringFixed(2),
	}
}

type BillingResponse struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	ServicePlanID     string    `json:"service_plan_id,omitempty"`
	MonthlyFee        string    `json:"monthly_fee"`
	InstallationCost  string    `json:"installation_cost"`
	InstallationDate  string    `json:"installation_date"`
	FirstBillingDate  string    `json:"first_billing_date"`
	BillingDay        int       `json:"billing_day"`
	ProratedAmount    string    `json:"prorated_amount"`
	DaysCharged       int       `json:"days_charged"`
	AdditionalCharges string    `json:"additional_charges"`
	Balance           string    `json:"balance"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FromBilling maps a billing ledger; a zero ledger (not written) maps to nil.
func FromBilling(b entities.ClientBilling) *BillingResponse {
	if b.ID == "" {
		return nil
	}
	return &BillingResponse{
		ID:                b.ID,
		ClientID:          b.ClientID,
		ServicePlanID:     b.ServicePlanID,
		MonthlyFee:        b.MonthlyFee.StringFixed(2),
		InstallationCost:  b.InstallationCost.StringFixed(2),
		InstallationDate:  b.InstallationDate.String(),
		FirstBillingDate:  b.FirstBillingDate.String(),
		BillingDay:        b.BillingDay,
		ProratedAmount:    b.ProratedAmount.StringFixed(2),
		DaysCharged:       b.DaysCharged,
		AdditionalCharges: b.AdditionalCharges.StringFixed(2),
		Balance:           b.Balance.StringFixed(2),
		UpdatedAt:         b.UpdatedAt,
	}
}

type FinalizeResponse struct {
	Client          entities.Client   `json:"client"`
	Billing         *BillingResponse  `json:"billing"`
	Proration       ProrationResponse `json:"proration"`
	ChangesRecorded int               `json:"changes_recorded"`
	Warnings        []string          `json:"warnings"`
}

func FromFinalizeResult(r usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		Client:          r.Client,
		Billing:         FromBilling(r.Billing),
		Proration:       FromProration(r.Proration),
		ChangesRecorded: r.ChangesRecorded,
		Warnings:        r.Warnings,
	}
}

type ChargeResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Description string     `json:"description"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	DueDate     string     `json:"due_date"`
	PaymentID   string     `json:"payment_id,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:          c.ID,
		ClientID:    c.ClientID,
		Description: c.Description,
		Amount:      c.Amount.StringFixed(2),
		Status:      string(c.Status),
		DueDate:     c.DueDate.String(),
		PaymentID:   c.PaymentID,
		PaidAt:      c.PaidAt,
		CreatedAt:   c.CreatedAt,
	}
}

func FromCharges(cs []entities.Charge) []ChargeResponse {
	return lo.Map(cs, func(c entities.Charge, _ int) ChargeResponse { return FromCharge(c) })
}

type ServicePlanResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MonthlyFee string `json:"monthly_fee"`
	IsActive   bool   `json:"is_active"`
}

func FromServicePlan(p entities.ServicePlan) ServicePlanResponse {
	return ServicePlanResponse{ID: p.ID, Name: p.Name, MonthlyFee: p.MonthlyFee.StringFixed(2), IsActive: p.IsActive}
}

func FromServicePlans(ps []entities.ServicePlan) []ServicePlanResponse {
	return lo.Map(ps, func(p entities.ServicePlan, _ int) ServicePlanResponse { return FromServicePlan(p) })
}
