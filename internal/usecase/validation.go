package usecase

import (
	"net"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	fieldValidator = newFieldValidator()
	macHex         = regexp.MustCompile(`^[0-9a-fA-F]{12}$`)
)

// RegisterValidators adds the custom tags shared by the request DTOs and the
// use cases:
//
//	phone10  exactly ten digits
//	ipv4opt  empty or a dotted-quad IPv4 address
//	mac12    empty or twelve hex digits, ':' or '-' separators allowed
func RegisterValidators(v *validator.Validate) error {
	v.RegisterAlias("phone10", "len=10,number")
	for tag, fn := range map[string]validator.Func{
		"ipv4opt": func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || isDottedIPv4(s)
		},
		"mac12": func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || macHex.MatchString(strings.NewReplacer(":", "", "-", "").Replace(s))
		},
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func newFieldValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

func isDottedIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ".") == 3
}

type fieldRule struct {
	name  string
	value string
	tags  string
}

// validateFields checks each value against its tags and reports the first
// failing field by name.
func validateFields(fields []fieldRule) error {
	for _, f := range fields {
		err := fieldValidator.Var(f.value, f.tags)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if verrs[0].Tag() == "required" {
				return errors.Newf("%s is required", f.name)
			}
			return errors.Newf("%s %q failed %s", f.name, f.value, verrs[0].Tag())
		}
		return err
	}
	return nil
}
