package handlers

import (
	"net/http"
	"strconv"

	request "isp_backoffice/internal/adapter/http/dto/request"
	response "isp_backoffice/internal/adapter/http/dto/response"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type ServicePlanHandler struct {
	usecase usecase.IServicePlanUseCase
}

func NewServicePlanHandler(uc usecase.IServicePlanUseCase) *ServicePlanHandler {
	return &ServicePlanHandler{usecase: uc}
}

// CreateServicePlan godoc
// @Summary      Create service plan
// @Tags         service-plans
// @Accept       json
// @Produce      json
// @Param        request body request.ServicePlanCreateRequest true "Plan"
// @Success      201 {object} response.ServicePlanResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /service-plans [post]
func (h *ServicePlanHandler) CreateServicePlan(c *gin.Context) {
	var payload request.ServicePlanCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	plan, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.MonthlyFee)
	if err != nil {
		writeError(c, mapServicePlanError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServicePlan(plan))
}

// ListServicePlans godoc
// @Summary      List service plans
// @Tags         service-plans
// @Produce      json
// @Param        active query bool false "Only active plans"
// @Success      200 {array} response.ServicePlanResponse
// @Router       /service-plans [get]
func (h *ServicePlanHandler) ListServicePlans(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))
	plans, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		writeError(c, mapServicePlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServicePlans(plans))
}

// GetServicePlan godoc
// @Summary      Get service plan
// @Tags         service-plans
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200 {object} response.ServicePlanResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /service-plans/{id} [get]
func (h *ServicePlanHandler) GetServicePlan(c *gin.Context) {
	plan, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServicePlanError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServicePlan(plan))
}

func mapServicePlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServicePlan):
		return pkg.NewDomainError("INVALID_SERVICE_PLAN", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServicePlanNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_PLAN_NOT_FOUND", "Service plan not found", http.StatusNotFound)
	default:
		logger.L.Errorf("[service_plan][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
