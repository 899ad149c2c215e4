package request

import (
	"strings"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase"
)

type ContactRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=100"`
	LastNamePaterno string `json:"last_name_paterno" binding:"required,max=100"`
	LastNameMaterno string `json:"last_name_materno" binding:"max=100"`
	Phone1          string `json:"phone1" binding:"required,phone10"`
	Phone1Country   string `json:"phone1_country"`
	Phone2          string `json:"phone2" binding:"omitempty,phone10"`
	Phone2Country   string `json:"phone2_country"`
	Phone3          string `json:"phone3" binding:"omitempty,phone10"`
	Phone3Country   string `json:"phone3_country"`
	Street          string `json:"street" binding:"required"`
	ExteriorNumber  string `json:"exterior_number" binding:"required"`
	InteriorNumber  string `json:"interior_number"`
	Neighborhood    string `json:"neighborhood" binding:"required"`
	City            string `json:"city" binding:"required"`
	CityID          string `json:"city_id"`
	PostalCode      string `json:"postal_code"`
}

func (r ContactRequest) ToContact() entities.Contact {
	return entities.Contact{
		FirstName:       r.FirstName,
		LastNamePaterno: r.LastNamePaterno,
		LastNameMaterno: r.LastNameMaterno,
		Phone1:          r.Phone1,
		Phone1Country:   r.Phone1Country,
		Phone2:          r.Phone2,
		Phone2Country:   r.Phone2Country,
		Phone3:          r.Phone3,
		Phone3Country:   r.Phone3Country,
		Street:          r.Street,
		ExteriorNumber:  r.ExteriorNumber,
		InteriorNumber:  r.InteriorNumber,
		Neighborhood:    r.Neighborhood,
		City:            r.City,
		CityID:          r.CityID,
		PostalCode:      r.PostalCode,
	}
}

type ProspectCreateRequest struct {
	ContactRequest
	SSID      string `json:"ssid"`
	AntennaIP string `json:"antenna_ip" binding:"ipv4opt"`
	Notes     string `json:"notes"`
}

func (r ProspectCreateRequest) ToInput(createdBy string) usecase.ProspectInput {
	return usecase.ProspectInput{
		Contact:   r.ToContact(),
		SSID:      r.SSID,
		AntennaIP: r.AntennaIP,
		Notes:     r.Notes,
		CreatedBy: createdBy,
	}
}

// CancelRequest is shared by prospect and client cancellation.
type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r CancelRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}
