package handlers

import (
	"net/http"

	request "isp_backoffice/internal/adapter/http/dto/request"
	response "isp_backoffice/internal/adapter/http/dto/response"
	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for clients, their billing ledger and charges.
type ClientHandler struct {
	usecase  usecase.IClientUseCase
	payments usecase.IPaymentUseCase
}

func NewClientHandler(uc usecase.IClientUseCase, payments usecase.IPaymentUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc, payments: payments}
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        status query string false "active | cancelled"
// @Param        city   query string false "City id or name"
// @Success      200 {array} entities.Client
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	filter := usecase.ClientFilter{
		Status: entities.ClientStatus(c.Query("status")),
		City:   c.Query("city"),
	}
	clients, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient godoc
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {object} entities.Client
// @Failure      404 {object} pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

// CancelClient godoc
// @Summary      Cancel client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID"
// @Param        request body request.CancelRequest true "Reason"
// @Success      200 {object} entities.Client
// @Failure      409 {object} pkg.HTTPError
// @Router       /clients/{id}/cancel [patch]
func (h *ClientHandler) CancelClient(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	client, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.TrimmedReason())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	logger.L.Infof("[client][handler] cancelled client_id=%s by=%s", client.ID, actingUser(c))
	c.JSON(http.StatusOK, client)
}

// GetBilling godoc
// @Summary      Client billing ledger
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {object} response.BillingResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /clients/{id}/billing [get]
func (h *ClientHandler) GetBilling(c *gin.Context) {
	billing, err := h.usecase.GetBilling(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBilling(billing))
}

// AddCharge godoc
// @Summary      Add an ad-hoc charge
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client ID"
// @Param        request body request.ChargeCreateRequest true "Charge"
// @Success      201 {object} response.ChargeResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /clients/{id}/charges [post]
func (h *ClientHandler) AddCharge(c *gin.Context) {
	var payload request.ChargeCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	in, err := payload.ToInput(c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}

	charge, err := h.usecase.AddCharge(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCharge(charge))
}

// ListCharges godoc
// @Summary      List client charges
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {array} response.ChargeResponse
// @Router       /clients/{id}/charges [get]
func (h *ClientHandler) ListCharges(c *gin.Context) {
	charges, err := h.usecase.ListCharges(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCharges(charges))
}

// ListPayments godoc
// @Summary      List client payments
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {array} response.PaymentResponse
// @Router       /clients/{id}/payments [get]
func (h *ClientHandler) ListPayments(c *gin.Context) {
	payments, err := h.payments.ListByClientID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, usecase.ErrInvalidClient), errors.Is(err, usecase.ErrInvalidCharge):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientBillingNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_BILLING_NOT_FOUND", "Client billing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotActive):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_ACTIVE", "Client is not active", http.StatusConflict)
	default:
		logger.L.Errorf("[client][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
