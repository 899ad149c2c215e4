package request

import (
	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

// ScheduleServiceRequest books a field visit for a client or a prospect.
type ScheduleServiceRequest struct {
	ClientID          string          `json:"client_id"`
	ProspectID        string          `json:"prospect_id"`
	AssignedTo        string          `json:"assigned_to" binding:"required"`
	ServiceType       string          `json:"service_type" binding:"required"`
	Title             string          `json:"title" binding:"required,max=200"`
	Description       string          `json:"description"`
	ScheduledDate     string          `json:"scheduled_date" binding:"required"`
	ScheduledTime     string          `json:"scheduled_time" binding:"omitempty,datetime=15:04"`
	EstimatedDuration int             `json:"estimated_duration" binding:"omitempty,min=0,max=1440"`
	ChargeAmount      decimal.Decimal `json:"charge_amount"`
}

func (r ScheduleServiceRequest) ToInput(createdBy string) (usecase.ScheduleServiceInput, error) {
	date, err := ParseOptionalDate(r.ScheduledDate)
	if err != nil {
		return usecase.ScheduleServiceInput{}, err
	}
	return usecase.ScheduleServiceInput{
		ClientID:          r.ClientID,
		ProspectID:        r.ProspectID,
		AssignedTo:        r.AssignedTo,
		ServiceType:       entities.ServiceType(r.ServiceType),
		Title:             r.Title,
		Description:       r.Description,
		ScheduledDate:     date,
		ScheduledTime:     r.ScheduledTime,
		EstimatedDuration: r.EstimatedDuration,
		ChargeAmount:      r.ChargeAmount,
		CreatedBy:         createdBy,
	}, nil
}

type RescheduleServiceRequest struct {
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ScheduledTime string `json:"scheduled_time" binding:"omitempty,datetime=15:04"`
	AssignedTo    string `json:"assigned_to"`
}

func (r RescheduleServiceRequest) ToInput() (usecase.RescheduleInput, error) {
	date, err := ParseOptionalDate(r.ScheduledDate)
	if err != nil {
		return usecase.RescheduleInput{}, err
	}
	return usecase.RescheduleInput{ScheduledDate: date, ScheduledTime: r.ScheduledTime, AssignedTo: r.AssignedTo}, nil
}

// StartVisitRequest is the technician's check-in. The body is optional.
type StartVisitRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

func (r StartVisitRequest) ToLocation() usecase.VisitLocation {
	return usecase.VisitLocation{Latitude: r.Latitude, Longitude: r.Longitude}
}

type CompleteVisitRequest struct {
	Notes     string `json:"notes"`
	NoOneHome bool   `json:"no_one_home"`
}

func (r CompleteVisitRequest) ToInput() usecase.CompleteVisitInput {
	return usecase.CompleteVisitInput{Notes: r.Notes, NoOneHome: r.NoOneHome}
}

// ServiceListQuery binds the calendar and visits report query strings.
type ServiceListQuery struct {
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
	AssignedTo  string `form:"assigned_to"`
	Status      string `form:"status"`
	ServiceType string `form:"service_type"`
	Search      string `form:"search"`
}

func (q ServiceListQuery) ToFilter() (usecase.ServiceFilter, error) {
	from, err := ParseOptionalDate(q.DateFrom)
	if err != nil {
		return usecase.ServiceFilter{}, err
	}
	to, err := ParseOptionalDate(q.DateTo)
	if err != nil {
		return usecase.ServiceFilter{}, err
	}
	return usecase.ServiceFilter{
		DateFrom:    from,
		DateTo:      to,
		AssignedTo:  q.AssignedTo,
		Status:      entities.ServiceStatus(q.Status),
		ServiceType: entities.ServiceType(q.ServiceType),
	}, nil
}

func (q ServiceListQuery) ToReportFilter() (usecase.VisitReportFilter, error) {
	f, err := q.ToFilter()
	if err != nil {
		return usecase.VisitReportFilter{}, err
	}
	return usecase.VisitReportFilter{ServiceFilter: f, Search: q.Search}, nil
}
