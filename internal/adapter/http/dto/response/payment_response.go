package response

import (
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase"

	"github.com/samber/lo"
)

type PaymentResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	ChargeID      string    `json:"charge_id,omitempty"`
	Amount        string    `json:"amount"`
	PaymentType   string    `json:"payment_type"`
	BankType      string    `json:"bank_type,omitempty"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	PeriodMonth   int       `json:"period_month,omitempty"`
	PeriodYear    int       `json:"period_year,omitempty"`
	PayerName     string    `json:"payer_name,omitempty"`
	PayerPhone    string    `json:"payer_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PaymentDate   string    `json:"payment_date"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	ProviderPaymentID string                 `json:"provider_payment_id,omitempty"`
	MPPayloadRaw      string                 `json:"mp_payload_raw,omitempty"`
	MPPayload         map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		ClientID:          p.ClientID,
		ChargeID:          p.ChargeID,
		Amount:            p.Amount.StringFixed(2),
		PaymentType:       p.PaymentType,
		BankType:          p.BankType,
		ReceiptNumber:     p.ReceiptNumber,
		PeriodMonth:       p.PeriodMonth,
		PeriodYear:        p.PeriodYear,
		PayerName:         p.PayerName,
		PayerPhone:        p.PayerPhone,
		Notes:             p.Notes,
		PaymentDate:       p.PaymentDate.String(),
		Status:            string(p.Status),
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt,
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayloadRaw:      string(p.MPPayloadRaw),
		MPPayload:         p.MPPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	return lo.Map(ps, func(p entities.Payment, _ int) PaymentResponse { return FromPayment(p) })
}

type PaymentListItem struct {
	PaymentResponse
	ClientName string `json:"client_name"`
	CityID     string `json:"city_id,omitempty"`
}

type PaymentStatsResponse struct {
	MonthTotal     string `json:"month_total"`
	MonthCount     int    `json:"month_count"`
	AveragePayment string `json:"average_payment"`
}

type PaymentListResponse struct {
	Payments []PaymentListItem    `json:"payments"`
	Stats    PaymentStatsResponse `json:"stats"`
}

func FromPaymentList(l usecase.PaymentList) PaymentListResponse {
	return PaymentListResponse{
		Payments: lo.Map(l.Payments, func(v usecase.PaymentView, _ int) PaymentListItem {
			return PaymentListItem{PaymentResponse: FromPayment(v.Payment), ClientName: v.ClientName, CityID: v.CityID}
		}),
		Stats: PaymentStatsResponse{
			MonthTotal:     l.Stats.MonthTotal.StringFixed(2),
			MonthCount:     l.Stats.MonthCount,
			AveragePayment: l.Stats.AveragePayment.StringFixed(2),
		},
	}
}
