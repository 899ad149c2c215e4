package request

import (
	"isp_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

type ChargeCreateRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"`
}

func (r ChargeCreateRequest) ToInput(clientID string) (usecase.ChargeInput, error) {
	due, err := ParseOptionalDate(r.DueDate)
	if err != nil {
		return usecase.ChargeInput{}, err
	}
	return usecase.ChargeInput{ClientID: clientID, Description: r.Description, Amount: r.Amount, DueDate: due}, nil
}

type ServicePlanCreateRequest struct {
	Name       string          `json:"name" binding:"required"`
	MonthlyFee decimal.Decimal `json:"monthly_fee"`
}
