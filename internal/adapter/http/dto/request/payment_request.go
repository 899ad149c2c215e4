package request

import (
	"encoding/json"

	"isp_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

// ChargePaymentRequest is the optional envelope for paying a charge online.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type ChargePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// RecordPaymentRequest is a payment captured by staff.
type RecordPaymentRequest struct {
	ClientID      string          `json:"client_id" binding:"required"`
	ChargeID      string          `json:"charge_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   string          `json:"payment_type" binding:"required"`
	BankType      string          `json:"bank_type"`
	ReceiptNumber string          `json:"receipt_number"`
	PeriodMonth   int             `json:"period_month" binding:"omitempty,min=1,max=12"`
	PeriodYear    int             `json:"period_year" binding:"omitempty,min=2000,max=2100"`
	PayerName     string          `json:"payer_name"`
	PayerPhone    string          `json:"payer_phone" binding:"omitempty,phone10"`
	Notes         string          `json:"notes"`
	PaymentDate   string          `json:"payment_date"`
}

func (r RecordPaymentRequest) ToInput(createdBy string) (usecase.RecordPaymentInput, error) {
	date, err := ParseOptionalDate(r.PaymentDate)
	if err != nil {
		return usecase.RecordPaymentInput{}, err
	}
	return usecase.RecordPaymentInput{
		ClientID:      r.ClientID,
		ChargeID:      r.ChargeID,
		Amount:        r.Amount,
		PaymentType:   r.PaymentType,
		BankType:      r.BankType,
		ReceiptNumber: r.ReceiptNumber,
		PeriodMonth:   r.PeriodMonth,
		PeriodYear:    r.PeriodYear,
		PayerName:     r.PayerName,
		PayerPhone:    r.PayerPhone,
		Notes:         r.Notes,
		PaymentDate:   date,
		CreatedBy:     createdBy,
	}, nil
}

// PaymentListQuery binds the query string of the payments report.
type PaymentListQuery struct {
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	ClientID string `form:"client_id"`
	CityID   string `form:"city_id"`
	Search   string `form:"search"`
}

func (q PaymentListQuery) ToFilter() (usecase.PaymentFilter, error) {
	from, err := ParseOptionalDate(q.DateFrom)
	if err != nil {
		return usecase.PaymentFilter{}, err
	}
	to, err := ParseOptionalDate(q.DateTo)
	if err != nil {
		return usecase.PaymentFilter{}, err
	}
	return usecase.PaymentFilter{DateFrom: from, DateTo: to, ClientID: q.ClientID, CityID: q.CityID, Search: q.Search}, nil
}
