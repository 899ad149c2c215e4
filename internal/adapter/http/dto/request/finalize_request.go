package request

import (
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type AdditionalChargeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillingTermsRequest is the body of the proration preview and the billing
// part of a finalization. Money fields accept JSON numbers or strings.
type BillingTermsRequest struct {
	InstallationDate  string                    `json:"installation_date" binding:"required"`
	BillingDay        int                       `json:"billing_day" binding:"required,min=1,max=28"`
	ServicePlanID     string                    `json:"service_plan_id"`
	MonthlyFee        decimal.Decimal           `json:"monthly_fee"`
	InstallationCost  decimal.Decimal           `json:"installation_cost"`
	AdditionalCharges []AdditionalChargeRequest `json:"additional_charges" binding:"dive"`
}

func (r BillingTermsRequest) ToTerms() (usecase.BillingTerms, error) {
	date, err := proration.ParseDate(r.InstallationDate)
	if err != nil {
		return usecase.BillingTerms{}, errors.Mark(err, ErrInvalidDate)
	}
	return usecase.BillingTerms{
		InstallationDate: date,
		BillingDay:       r.BillingDay,
		ServicePlanID:    r.ServicePlanID,
		MonthlyFee:       r.MonthlyFee,
		InstallationCost: r.InstallationCost,
		AdditionalCharges: lo.Map(r.AdditionalCharges, func(c AdditionalChargeRequest, _ int) usecase.AdditionalCharge {
			return usecase.AdditionalCharge{Description: c.Description, Amount: c.Amount}
		}),
	}, nil
}

// FinalizeRequest carries the edited prospect data plus the commercial terms.
type FinalizeRequest struct {
	ContactRequest
	SSID       string `json:"ssid"`
	AntennaIP  string `json:"antenna_ip" binding:"ipv4opt"`
	AntennaMAC string `json:"antenna_mac" binding:"mac12"`
	Notes      string `json:"notes"`
	BillingTermsRequest
}

func (r FinalizeRequest) ToInput(prospectID, finalizedBy string) (usecase.FinalizeInput, error) {
	terms, err := r.ToTerms()
	if err != nil {
		return usecase.FinalizeInput{}, err
	}
	return usecase.FinalizeInput{
		ProspectID:   prospectID,
		Contact:      r.ToContact(),
		AntennaSSID:  r.SSID,
		AntennaIP:    r.AntennaIP,
		AntennaMAC:   r.AntennaMAC,
		Notes:        r.Notes,
		BillingTerms: terms,
		FinalizedBy:  finalizedBy,
	}, nil
}

// ParseOptionalDate parses YYYY-MM-DD, returning the zero Date for "".
func ParseOptionalDate(s string) (proration.Date, error) {
	if s == "" {
		return proration.Date{}, nil
	}
	d, err := proration.ParseDate(s)
	if err != nil {
		return proration.Date{}, errors.Mark(err, ErrInvalidDate)
	}
	return d, nil
}
