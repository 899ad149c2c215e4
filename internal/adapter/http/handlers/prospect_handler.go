package handlers

import (
	"net/http"

	request "isp_backoffice/internal/adapter/http/dto/request"
	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// ProspectHandler handles HTTP requests for prospects.
type ProspectHandler struct {
	usecase usecase.IProspectUseCase
}

func NewProspectHandler(uc usecase.IProspectUseCase) *ProspectHandler {
	return &ProspectHandler{usecase: uc}
}

// CreateProspect godoc
// @Summary      Create prospect
// @Tags         prospects
// @Accept       json
// @Produce      json
// @Param        request body request.ProspectCreateRequest true "Prospect"
// @Success      201 {object} entities.Prospect
// @Failure      400 {object} pkg.HTTPError
// @Router       /prospects [post]
func (h *ProspectHandler) CreateProspect(c *gin.Context) {
	var payload request.ProspectCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.L.Debugf("[prospect][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput(actingUser(c)))
	if err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProspect godoc
// @Summary      Get prospect
// @Tags         prospects
// @Produce      json
// @Param        id path string true "Prospect ID"
// @Success      200 {object} entities.Prospect
// @Failure      404 {object} pkg.HTTPError
// @Router       /prospects/{id} [get]
func (h *ProspectHandler) GetProspect(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProspects godoc
// @Summary      List prospects
// @Tags         prospects
// @Produce      json
// @Param        status query string false "pending | finalized | cancelled"
// @Success      200 {array} entities.Prospect
// @Router       /prospects [get]
func (h *ProspectHandler) ListProspects(c *gin.Context) {
	prospects, err := h.usecase.List(c.Request.Context(), entities.ProspectStatus(c.Query("status")))
	if err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.JSON(http.StatusOK, prospects)
}

// CancelProspect godoc
// @Summary      Cancel prospect
// @Tags         prospects
// @Accept       json
// @Produce      json
// @Param        id path string true "Prospect ID"
// @Param        request body request.CancelRequest true "Reason"
// @Success      200 {object} entities.Prospect
// @Failure      409 {object} pkg.HTTPError
// @Router       /prospects/{id}/cancel [patch]
func (h *ProspectHandler) CancelProspect(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.TrimmedReason())
	if err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// ReactivateProspect godoc
// @Summary      Reactivate a cancelled prospect
// @Tags         prospects
// @Produce      json
// @Param        id path string true "Prospect ID"
// @Success      200 {object} entities.Prospect
// @Failure      409 {object} pkg.HTTPError
// @Router       /prospects/{id}/reactivate [patch]
func (h *ProspectHandler) ReactivateProspect(c *gin.Context) {
	p, err := h.usecase.Reactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProspect godoc
// @Summary      Delete prospect and its change history
// @Tags         prospects
// @Param        id path string true "Prospect ID"
// @Success      204
// @Failure      409 {object} pkg.HTTPError
// @Router       /prospects/{id} [delete]
func (h *ProspectHandler) DeleteProspect(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ProspectHistory godoc
// @Summary      Field changes recorded at finalization
// @Tags         prospects
// @Produce      json
// @Param        id path string true "Prospect ID"
// @Success      200 {array} entities.ProspectChange
// @Router       /prospects/{id}/history [get]
func (h *ProspectHandler) ProspectHistory(c *gin.Context) {
	changes, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProspectError(err))
		return
	}
	c.JSON(http.StatusOK, changes)
}

func mapProspectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProspect):
		return pkg.NewDomainError("INVALID_PROSPECT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProspectNotFound):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_FOUND", "Prospect not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProspectNotPending):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_PENDING", "Prospect is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrProspectNotCancelled):
		return pkg.NewDomainErrorSimple("PROSPECT_NOT_CANCELLED", "Prospect is not cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrProspectFinalized):
		return pkg.NewDomainErrorSimple("PROSPECT_FINALIZED", "Finalized prospects cannot be deleted", http.StatusConflict)
	default:
		logger.L.Errorf("[prospect][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
