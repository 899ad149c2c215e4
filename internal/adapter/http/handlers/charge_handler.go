package handlers

import (
	"net/http"

	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type ChargeHandler struct {
	usecase usecase.IChargeUseCase
}

func NewChargeHandler(uc usecase.IChargeUseCase) *ChargeHandler {
	return &ChargeHandler{usecase: uc}
}

// GenerateMonthlyCharges godoc
// @Summary      Generate the monthly fee charges of the current month
// @Description  Idempotent per month. Clients that already have the month's charge are skipped.
// @Tags         charges
// @Produce      json
// @Success      200 {object} usecase.MonthlyChargeSummary
// @Failure      500 {object} pkg.HTTPError
// @Router       /charges/generate-monthly [post]
func (h *ChargeHandler) GenerateMonthlyCharges(c *gin.Context) {
	summary, err := h.usecase.GenerateMonthlyCharges(c.Request.Context())
	if err != nil {
		logger.L.Errorf("[charge][handler] generate monthly failed err=%v", err)
		appErr := pkg.NewDomainError("CHARGE_GENERATION_FAILED", "Monthly charge generation failed", err, http.StatusInternalServerError)
		writeError(c, appErr)
		return
	}
	logger.L.Infof("[charge][handler] generate monthly by=%s generated=%d failed=%d", actingUser(c), summary.Generated, summary.Failed)
	c.JSON(http.StatusOK, summary)
}
