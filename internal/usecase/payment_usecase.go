package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/infrastructure/config"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/infrastructure/metrics"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PaymentListLimit caps the payments returned by List.
const PaymentListLimit = 500

const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPayment                 = errors.New("invalid payment")
	ErrInvalidPaymentChargeID         = errors.New("invalid charge_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrChargeNotFound                 = errors.New("charge not found")
	ErrChargeAlreadyPaid              = errors.New("charge already paid")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// RecordPaymentInput is a payment captured by staff (cash, transfer, deposit).
type RecordPaymentInput struct {
	ClientID      string
	ChargeID      string
	Amount        decimal.Decimal
	PaymentType   string
	BankType      string
	ReceiptNumber string
	PeriodMonth   int
	PeriodYear    int
	PayerName     string
	PayerPhone    string
	Notes         string
	PaymentDate   proration.Date
	CreatedBy     string
}

type PaymentFilter struct {
	DateFrom proration.Date
	DateTo   proration.Date
	ClientID string
	CityID   string
	// Search matches the client name, the receipt number or the payment type.
	Search string
}

type PaymentView struct {
	entities.Payment
	ClientName string `json:"client_name"`
	CityID     string `json:"city_id,omitempty"`
}

type PaymentStats struct {
	MonthTotal     decimal.Decimal `json:"month_total"`
	MonthCount     int             `json:"month_count"`
	AveragePayment decimal.Decimal `json:"average_payment"`
}

type PaymentList struct {
	Payments []PaymentView `json:"payments"`
	Stats    PaymentStats  `json:"stats"`
}

// IPaymentUseCase covers manual payments, online charge payments through
// Mercado Pago, and the payments report.
type IPaymentUseCase interface {
	Record(ctx context.Context, in RecordPaymentInput) (entities.Payment, error)
	PayCharge(ctx context.Context, chargeID string, mpPayload json.RawMessage, paidBy string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Payment, error)
	List(ctx context.Context, filter PaymentFilter) (PaymentList, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	charges  interfaces.IChargeRepository
	clients  interfaces.IClientRepository
	gateway  interfaces.IPaymentGateway
	balances balanceAdjuster
	mp       config.MercadoPagoConfig
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	charges interfaces.IChargeRepository,
	clients interfaces.IClientRepository,
	billing interfaces.IClientBillingRepository,
	gateway interfaces.IPaymentGateway,
	mp config.MercadoPagoConfig,
	balanceRetries uint64,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:     repo,
		charges:  charges,
		clients:  clients,
		gateway:  gateway,
		balances: newBalanceAdjuster(billing, balanceRetries),
		mp:       mp,
		now:      time.Now,
	}
}

func (u *PaymentUseCase) Record(ctx context.Context, in RecordPaymentInput) (entities.Payment, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.PaymentType = strings.TrimSpace(in.PaymentType)
	if in.ClientID == "" {
		return entities.Payment{}, errors.Wrap(ErrInvalidPayment, "client_id is required")
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, errors.Wrap(ErrInvalidPayment, "amount must be positive")
	}
	if in.PaymentType == "" {
		return entities.Payment{}, errors.Wrap(ErrInvalidPayment, "payment_type is required")
	}
	if in.PeriodMonth < 0 || in.PeriodMonth > 12 {
		return entities.Payment{}, errors.Wrapf(ErrInvalidPayment, "period_month %d out of range", in.PeriodMonth)
	}

	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Payment{}, err
	}
	if client.ID == "" {
		return entities.Payment{}, ErrClientNotFound
	}
	amount := in.Amount.Round(2)
	chargeID := strings.TrimSpace(in.ChargeID)
	if chargeID != "" {
		if err := u.checkChargeForPayment(ctx, chargeID, client.ID, amount); err != nil {
			return entities.Payment{}, err
		}
	}

	now := u.now().UTC()
	date := in.PaymentDate
	if date.IsZero() {
		date = proration.DateOf(now)
	}
	p := entities.Payment{
		ID:            uuid.NewString(),
		ClientID:      client.ID,
		ChargeID:      chargeID,
		Amount:        amount,
		PaymentType:   in.PaymentType,
		BankType:      strings.TrimSpace(in.BankType),
		ReceiptNumber: strings.TrimSpace(in.ReceiptNumber),
		PeriodMonth:   in.PeriodMonth,
		PeriodYear:    in.PeriodYear,
		PayerName:     strings.TrimSpace(in.PayerName),
		PayerPhone:    strings.TrimSpace(in.PayerPhone),
		Notes:         strings.TrimSpace(in.Notes),
		PaymentDate:   date,
		Status:        entities.PaymentStatusApproved,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.L.Errorf("[payment][usecase] record failed client_id=%s err=%v", client.ID, err)
		return entities.Payment{}, err
	}
	metrics.PaymentsRecorded.WithLabelValues(created.PaymentType).Inc()
	logger.L.Infof("[payment][usecase] recorded payment_id=%s client_id=%s amount=%s type=%s",
		created.ID, client.ID, created.Amount.StringFixed(2), created.PaymentType)

	if created.ChargeID != "" {
		if err := u.settleCharge(ctx, created); err != nil {
			return created, err
		}
	}
	if _, err := u.balances.adjust(ctx, client.ID, created.Amount.Neg()); err != nil {
		return created, err
	}
	return created, nil
}

// checkChargeForPayment accepts a manual payment against chargeID only when the
// charge belongs to the paying client, is still pending and is paid in full.
// Partial payments are recorded without a charge.
func (u *PaymentUseCase) checkChargeForPayment(ctx context.Context, chargeID, clientID string, amount decimal.Decimal) error {
	charge, err := u.charges.GetByID(ctx, chargeID)
	if err != nil {
		logger.L.Errorf("[payment][usecase] failed loading charge charge_id=%s err=%v", chargeID, err)
		return err
	}
	if charge.ID == "" {
		return ErrChargeNotFound
	}
	if charge.ClientID != clientID {
		logger.L.Warnf("[payment][usecase] charge of another client charge_id=%s charge_client_id=%s client_id=%s", chargeID, charge.ClientID, clientID)
		return errors.Wrapf(ErrInvalidPayment, "charge %s does not belong to client %s", chargeID, clientID)
	}
	if charge.Status != entities.ChargeStatusPending {
		return ErrChargeAlreadyPaid
	}
	if !amount.Equal(charge.Amount.Round(2)) {
		return errors.Wrapf(ErrInvalidPayment, "amount %s does not match charge amount %s",
			amount.StringFixed(2), charge.Amount.StringFixed(2))
	}
	return nil
}

// PayCharge pays a pending charge online through Mercado Pago. The stored
// charge is the source of truth for the amount.
func (u *PaymentUseCase) PayCharge(ctx context.Context, chargeID string, mpPayload json.RawMessage, paidBy string) (entities.Payment, error) {
	logger.L.Infof("[payment][usecase] pay-charge start raw_charge_id=%q payload_len=%d", chargeID, len(mpPayload))
	mockMode := u.mp.Mock
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		logger.L.Warnf("[payment][usecase] invalid charge_id (empty)")
		return entities.Payment{}, ErrInvalidPaymentChargeID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			logger.L.Warnf("[payment][usecase] invalid payload charge_id=%s", chargeID)
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		logger.L.Errorf("[payment][usecase] gateway not configured charge_id=%s", chargeID)
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	charge, err := u.charges.GetByID(ctx, chargeID)
	if err != nil {
		logger.L.Errorf("[payment][usecase] failed loading charge charge_id=%s err=%v", chargeID, err)
		return entities.Payment{}, err
	}
	if charge.ID == "" {
		return entities.Payment{}, ErrChargeNotFound
	}
	if charge.Status != entities.ChargeStatusPending {
		return entities.Payment{}, ErrChargeAlreadyPaid
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		logger.L.Warnf("[payment][usecase] payload is not an object charge_id=%s", chargeID)
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.L.Warnf("[payment][usecase] missing payment_method_id charge_id=%s", chargeID)
			return entities.Payment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			logger.L.Warnf("[payment][usecase] missing/invalid payer charge_id=%s", chargeID)
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = charge.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = charge.Description
	}
	reqMap["transaction_amount"] = charge.Amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		logger.L.Errorf("[payment][usecase] payment gateway failed charge_id=%s err=%v", chargeID, err)
		return entities.Payment{}, classifyGatewayError(err)
	}
	logger.L.Infof("[payment][usecase] payment gateway success charge_id=%s provider_payment_id=%s provider_status=%s", chargeID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.L.Warnf("[payment][usecase] provider response unmarshal failed charge_id=%s err=%v", chargeID, err)
	}

	now := u.now().UTC()
	p := entities.Payment{
		ID:                uuid.NewString(),
		ClientID:          charge.ClientID,
		ChargeID:          charge.ID,
		Amount:            charge.Amount,
		PaymentType:       entities.PaymentTypeMercadoPago,
		PeriodMonth:       int(charge.DueDate.Month),
		PeriodYear:        charge.DueDate.Year,
		PaymentDate:       proration.DateOf(now),
		Status:            paymentStatusFromProvider(providerStatus),
		CreatedBy:         paidBy,
		CreatedAt:         now,
		ProviderPaymentID: providerPaymentID,
		MPPayloadRaw:      providerResp,
		MPPayload:         parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.L.Errorf("[payment][usecase] payment repository create failed charge_id=%s payment_id=%s err=%v", chargeID, p.ID, err)
		return entities.Payment{}, err
	}
	metrics.PaymentsRecorded.WithLabelValues(created.PaymentType).Inc()

	if created.Status != entities.PaymentStatusApproved {
		logger.L.Warnf("[payment][usecase] payment not approved charge_id=%s payment_id=%s status=%s", chargeID, created.ID, providerStatus)
		return created, nil
	}
	if err := u.settleCharge(ctx, created); err != nil {
		return created, err
	}
	if _, err := u.balances.adjust(ctx, charge.ClientID, created.Amount.Neg()); err != nil {
		return created, err
	}
	logger.L.Infof("[payment][usecase] pay-charge success charge_id=%s payment_id=%s", chargeID, created.ID)
	return created, nil
}

// settleCharge marks the charge of a persisted payment as paid. When another
// payment settled it first the payment stays recorded, the balance is left
// alone and ErrChargeAlreadyPaid is returned so staff can refund it.
func (u *PaymentUseCase) settleCharge(ctx context.Context, p entities.Payment) error {
	paid, err := u.charges.MarkPaid(ctx, p.ChargeID, p.ID, p.CreatedAt)
	if err != nil {
		logger.L.Errorf("[payment][usecase] mark charge paid failed charge_id=%s payment_id=%s err=%v", p.ChargeID, p.ID, err)
		return errors.Wrapf(err, "payment %s recorded but charge %s not settled", p.ID, p.ChargeID)
	}
	if paid.ID == "" {
		metrics.SettlementConflicts.WithLabelValues(p.PaymentType).Inc()
		logger.L.Errorf("[payment][usecase] charge settled by another payment charge_id=%s payment_id=%s amount=%s",
			p.ChargeID, p.ID, p.Amount.StringFixed(2))
		return errors.Wrapf(ErrChargeAlreadyPaid, "payment %s recorded but charge %s was settled by another payment", p.ID, p.ChargeID)
	}
	return nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.Wrap(ErrInvalidPayment, "invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Payment, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, errors.Wrap(ErrInvalidPayment, "client_id is required")
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// List returns the most recent payments (newest payment date first, capped at
// PaymentListLimit) narrowed by filter. Stats cover the current month of the
// whole capped set, regardless of filter.
func (u *PaymentUseCase) List(ctx context.Context, filter PaymentFilter) (PaymentList, error) {
	payments, err := u.repo.List(ctx, 0)
	if err != nil {
		return PaymentList{}, err
	}
	clients, err := u.clients.List(ctx, "")
	if err != nil {
		return PaymentList{}, err
	}
	byID := lo.KeyBy(clients, func(c entities.Client) string { return c.ID })

	slices.SortStableFunc(payments, func(a, b entities.Payment) int {
		if c := b.PaymentDate.Time().Compare(a.PaymentDate.Time()); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(payments) > PaymentListLimit {
		payments = payments[:PaymentListLimit]
	}

	views := lo.Map(payments, func(p entities.Payment, _ int) PaymentView {
		v := PaymentView{Payment: p}
		if c, ok := byID[p.ClientID]; ok {
			v.ClientName = c.FirstName + " " + c.LastNamePaterno
			v.CityID = c.CityID
		}
		return v
	})

	out := PaymentList{Stats: monthStats(views, u.now().UTC())}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out.Payments = lo.Filter(views, func(v PaymentView, _ int) bool {
		if !filter.DateFrom.IsZero() && v.PaymentDate.Before(filter.DateFrom) {
			return false
		}
		if !filter.DateTo.IsZero() && v.PaymentDate.After(filter.DateTo) {
			return false
		}
		if filter.ClientID != "" && v.ClientID != filter.ClientID {
			return false
		}
		if filter.CityID != "" && v.CityID != filter.CityID {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(v.ClientName), search) ||
			strings.Contains(strings.ToLower(v.ReceiptNumber), search) ||
			strings.Contains(strings.ToLower(v.PaymentType), search)
	})
	return out, nil
}

func monthStats(views []PaymentView, now time.Time) PaymentStats {
	month := lo.Filter(views, func(v PaymentView, _ int) bool {
		return v.PaymentDate.Year == now.Year() && v.PaymentDate.Month == now.Month()
	})
	total := decimal.Sum(decimal.Zero, lo.Map(month, func(v PaymentView, _ int) decimal.Decimal { return v.Amount })...)
	stats := PaymentStats{MonthTotal: total, MonthCount: len(month), AveragePayment: decimal.Zero}
	if len(month) > 0 {
		stats.AveragePayment = total.DivRound(decimal.NewFromInt(int64(len(month))), 2)
	}
	return stats
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.mp.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.mp.Sandbox() {
			payer["email"] = sandboxFallbackPayerEmail
		}
	}
}

// normalizeSandboxPayerFromUserID swaps a configured sandbox test user id for
// its email, which is what the sandbox expects.
func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.mp.Sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.mp.TestPayerUserID)
	email := strings.TrimSpace(u.mp.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	logger.L.Infof("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
