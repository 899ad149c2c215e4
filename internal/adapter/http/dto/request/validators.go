package request

import (
	"isp_backoffice/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the phone10, ipv4opt and mac12 binding tags used by
// the request DTOs. The use cases validate with the same rules.
func RegisterValidators(v *validator.Validate) error {
	return usecase.RegisterValidators(v)
}
