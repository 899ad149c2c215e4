package handlers

import (
	"net/http"

	request "isp_backoffice/internal/adapter/http/dto/request"
	response "isp_backoffice/internal/adapter/http/dto/response"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// FinalizeHandler converts prospects into clients and previews proration.
type FinalizeHandler struct {
	usecase usecase.IFinalizeUseCase
}

func NewFinalizeHandler(uc usecase.IFinalizeUseCase) *FinalizeHandler {
	return &FinalizeHandler{usecase: uc}
}

// FinalizeProspect godoc
// @Summary      Finalize prospect into client
// @Description  Creates the client, its equipment, billing ledger and initial charges. Steps after the client insert are best effort and surface as warnings.
// @Tags         prospects
// @Accept       json
// @Produce      json
// @Param        id path string true "Prospect ID"
// @Param        request body request.FinalizeRequest true "Edited data and billing terms"
// @Success      201 {object} response.FinalizeResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /prospects/{id}/finalize [post]
func (h *FinalizeHandler) FinalizeProspect(c *gin.Context) {
	prospectID := c.Param("id")
	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.L.Infof("[finalize][handler] invalid payload prospect_id=%s err=%v", prospectID, err)
		writeError(c, pkg.NewDomainError("INVALID_FINALIZE", err.Error(), err, http.StatusBadRequest))
		return
	}

	in, err := payload.ToInput(prospectID, actingUser(c))
	if err != nil {
		writeError(c, mapFinalizeError(err))
		return
	}

	result, err := h.usecase.Finalize(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapFinalizeError(err))
		return
	}
	if len(result.Warnings) > 0 {
		logger.L.Warnf("[finalize][handler] finalized with warnings prospect_id=%s client_id=%s warnings=%v",
			prospectID, result.Client.ID, result.Warnings)
	}

	c.JSON(http.StatusCreated, response.FromFinalizeResult(result))
}

// PreviewProration godoc
// @Summary      Preview proration
// @Description  Computes proration and the initial balance without writing anything.
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        request body request.BillingTermsRequest true "Billing terms"
// @Success      200 {object} response.ProrationPreviewResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /billing/preview [post]
func (h *FinalizeHandler) PreviewProration(c *gin.Context) {
	var payload request.BillingTermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewDomainError("INVALID_FINALIZE", err.Error(), err, http.StatusBadRequest))
		return
	}

	terms, err := payload.ToTerms()
	if err != nil {
		writeError(c, mapFinalizeError(err))
		return
	}

	preview, err := h.usecase.PreviewProration(c.Request.Context(), terms)
	if err != nil {
		writeError(c, mapFinalizeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProrationPreview(preview))
}

func mapFinalizeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, usecase.ErrInvalidFinalize):
		return pkg.NewDomainError("INVALID_FINALIZE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProspectNotFound):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_FOUND", "Prospect not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProspectNotPending):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_PENDING", "Only pending prospects can be finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrServicePlanNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_PLAN_NOT_FOUND", "Service plan not found", http.StatusBadRequest)
	default:
		logger.L.Errorf("[finalize][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
