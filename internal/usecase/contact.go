package usecase

import (
	"strings"

	"isp_backoffice/internal/domain/entities"
)

const defaultPhoneCountry = "MX"

func normalizeContact(c entities.Contact) entities.Contact {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastNamePaterno = strings.TrimSpace(c.LastNamePaterno)
	c.LastNameMaterno = strings.TrimSpace(c.LastNameMaterno)
	c.Phone1 = strings.TrimSpace(c.Phone1)
	c.Phone2 = strings.TrimSpace(c.Phone2)
	c.Phone3 = strings.TrimSpace(c.Phone3)
	c.Phone1Country = orDefault(c.Phone1Country, defaultPhoneCountry)
	c.Phone2Country = orDefault(c.Phone2Country, defaultPhoneCountry)
	c.Phone3Country = orDefault(c.Phone3Country, defaultPhoneCountry)
	c.Street = strings.TrimSpace(c.Street)
	c.ExteriorNumber = strings.TrimSpace(c.ExteriorNumber)
	c.InteriorNumber = strings.TrimSpace(c.InteriorNumber)
	c.Neighborhood = strings.TrimSpace(c.Neighborhood)
	c.City = strings.TrimSpace(c.City)
	c.CityID = strings.TrimSpace(c.CityID)
	c.PostalCode = strings.TrimSpace(c.PostalCode)
	return c
}

func validateContact(c entities.Contact) error {
	return validateFields([]fieldRule{
		{"first_name", c.FirstName, "required"},
		{"last_name_paterno", c.LastNamePaterno, "required"},
		{"phone1", c.Phone1, "required,phone10"},
		{"phone2", c.Phone2, "omitempty,phone10"},
		{"phone3", c.Phone3, "omitempty,phone10"},
		{"street", c.Street, "required"},
		{"exterior_number", c.ExteriorNumber, "required"},
		{"neighborhood", c.Neighborhood, "required"},
		{"city", c.City, "required"},
	})
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
