package handlers

import (
	"net/http"

	request "isp_backoffice/internal/adapter/http/dto/request"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// ScheduledServiceHandler handles the field-service calendar and visits.
type ScheduledServiceHandler struct {
	usecase usecase.IScheduledServiceUseCase
}

func NewScheduledServiceHandler(uc usecase.IScheduledServiceUseCase) *ScheduledServiceHandler {
	return &ScheduledServiceHandler{usecase: uc}
}

// ScheduleService godoc
// @Summary      Schedule a field visit
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        request body request.ScheduleServiceRequest true "Visit"
// @Success      201 {object} entities.ScheduledService
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /services [post]
func (h *ScheduledServiceHandler) ScheduleService(c *gin.Context) {
	var payload request.ScheduleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.L.Debugf("[service][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput(actingUser(c))
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}

	created, err := h.usecase.Schedule(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListServices godoc
// @Summary      Field-service calendar
// @Tags         services
// @Produce      json
// @Param        date_from    query string false "YYYY-MM-DD"
// @Param        date_to      query string false "YYYY-MM-DD"
// @Param        assigned_to  query string false "Technician ID"
// @Param        status       query string false "scheduled | in_progress | completed | cancelled"
// @Param        service_type query string false "Service type"
// @Success      200 {array} entities.ScheduledService
// @Failure      400 {object} pkg.HTTPError
// @Router       /services [get]
func (h *ScheduledServiceHandler) ListServices(c *gin.Context) {
	var q request.ServiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}

	services, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, services)
}

// VisitsReport godoc
// @Summary      Visits carried out in a date range with their stats
// @Tags         services
// @Produce      json
// @Param        date_from    query string false "YYYY-MM-DD, defaults to a week before date_to"
// @Param        date_to      query string false "YYYY-MM-DD, defaults to today"
// @Param        assigned_to  query string false "Technician ID"
// @Param        status       query string false "in_progress | completed | cancelled"
// @Param        service_type query string false "Service type"
// @Param        search       query string false "Title, client or prospect name, technician"
// @Success      200 {object} usecase.VisitReport
// @Failure      400 {object} pkg.HTTPError
// @Router       /services/report [get]
func (h *ScheduledServiceHandler) VisitsReport(c *gin.Context) {
	var q request.ServiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	filter, err := q.ToReportFilter()
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}

	report, err := h.usecase.Report(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetService godoc
// @Summary      Get a scheduled visit
// @Tags         services
// @Produce      json
// @Param        id path string true "Service ID"
// @Success      200 {object} entities.ScheduledService
// @Failure      404 {object} pkg.HTTPError
// @Router       /services/{id} [get]
func (h *ScheduledServiceHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// RescheduleService godoc
// @Summary      Move a scheduled visit to another date or technician
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body request.RescheduleServiceRequest true "New slot"
// @Success      200 {object} entities.ScheduledService
// @Failure      409 {object} pkg.HTTPError
// @Router       /services/{id}/reschedule [patch]
func (h *ScheduledServiceHandler) RescheduleService(c *gin.Context) {
	var payload request.RescheduleServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}

	s, err := h.usecase.Reschedule(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// StartVisit godoc
// @Summary      Technician check-in, optionally with GPS
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body request.StartVisitRequest false "Location"
// @Success      200 {object} entities.ScheduledService
// @Failure      409 {object} pkg.HTTPError
// @Router       /services/{id}/start [patch]
func (h *ScheduledServiceHandler) StartVisit(c *gin.Context) {
	var payload request.StartVisitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
	}

	s, err := h.usecase.StartVisit(c.Request.Context(), c.Param("id"), payload.ToLocation())
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// CompleteVisit godoc
// @Summary      Close a visit in progress
// @Description  Client visits with a charge amount open a pending charge unless nobody was home.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body request.CompleteVisitRequest true "Outcome"
// @Success      200 {object} entities.ScheduledService
// @Failure      409 {object} pkg.HTTPError
// @Router       /services/{id}/complete [patch]
func (h *ScheduledServiceHandler) CompleteVisit(c *gin.Context) {
	var payload request.CompleteVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

// CancelService godoc
// @Summary      Cancel a visit
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body request.CancelRequest true "Reason"
// @Success      200 {object} entities.ScheduledService
// @Failure      409 {object} pkg.HTTPError
// @Router       /services/{id}/cancel [patch]
func (h *ScheduledServiceHandler) CancelService(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.TrimmedReason())
	if err != nil {
		writeError(c, mapScheduledServiceError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func mapScheduledServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, usecase.ErrInvalidScheduledService):
		return pkg.NewDomainError("INVALID_SERVICE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduledServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Scheduled service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProspectNotFound):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_FOUND", "Prospect not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTransition):
		return pkg.NewDomainError("INVALID_SERVICE_TRANSITION", err.Error(), err, http.StatusConflict)
	default:
		logger.L.Errorf("[service][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
