package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	request "isp_backoffice/internal/adapter/http/dto/request"
	response "isp_backoffice/internal/adapter/http/dto/response"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase"
	"isp_backoffice/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PayCharge godoc
// @Summary      Pay a charge through Mercado Pago
// @Description  The body is the Mercado Pago payload, either bare or wrapped in {"mp_payload": ...}. External reference, description and amount are always taken from the stored charge.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        charge_id path string true "Charge ID"
// @Param        request body request.ChargePaymentRequest false "Mercado Pago payload"
// @Success      200 {object} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /charges/{charge_id}/pay [post]
func (h *PaymentHandler) PayCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")
	logger.L.Infof("[payment][handler] pay start charge_id=%s", chargeID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		logger.L.Infof("[payment][handler] invalid payload charge_id=%s err=%v", chargeID, err)
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.PayCharge(c.Request.Context(), chargeID, mpPayload, actingUser(c))
	if err != nil {
		logger.L.Infof("[payment][handler] pay failed charge_id=%s err=%v", chargeID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	logger.L.Infof("[payment][handler] pay success charge_id=%s payment_id=%s status=%s", chargeID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// RecordPayment godoc
// @Summary      Record a manual payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body request.RecordPaymentRequest true "Payment"
// @Success      201 {object} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewDomainError("INVALID_PAYMENT", err.Error(), err, http.StatusBadRequest))
		return
	}

	in, err := payload.ToInput(actingUser(c))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	created, err := h.usecase.Record(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPayments godoc
// @Summary      Payments report
// @Description  Sorted by payment date, newest first, and capped at 500 rows. Stats cover the current month.
// @Tags         payments
// @Produce      json
// @Param        date_from query string false "YYYY-MM-DD"
// @Param        date_to   query string false "YYYY-MM-DD"
// @Param        client_id query string false "Client ID"
// @Param        city_id   query string false "City ID"
// @Param        search    query string false "Client name, receipt number or payment type"
// @Success      200 {object} response.PaymentListResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var query request.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentList(list))
}

// GetPayment godoc
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID"
// @Success      200 {object} response.PaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, usecase.ErrInvalidPayment):
		return pkg.NewDomainError("INVALID_PAYMENT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentChargeID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeAlreadyPaid):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_PAID", "Charge already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		logger.L.Errorf("[payment][handler] unexpected error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
