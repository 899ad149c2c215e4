package usecase

import (
	"context"
	"strings"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrClientNotFound        = errors.New("client not found")
	ErrClientNotActive       = errors.New("client is not active")
	ErrClientBillingNotFound = errors.New("client billing not found")
	ErrInvalidCharge         = errors.New("invalid charge")
	ErrInvalidClient         = errors.New("invalid client")
)

// ClientFilter narrows client listings. Empty fields match everything.
type ClientFilter struct {
	Status entities.ClientStatus
	// City matches either the city id or the city name, case-insensitively.
	City string
}

type ChargeInput struct {
	ClientID    string
	Description string
	Amount      decimal.Decimal
	DueDate     proration.Date
}

type IClientUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]entities.Client, error)
	Cancel(ctx context.Context, id, reason string) (entities.Client, error)
	GetBilling(ctx context.Context, clientID string) (entities.ClientBilling, error)
	AddCharge(ctx context.Context, in ChargeInput) (entities.Charge, error)
	ListCharges(ctx context.Context, clientID string) ([]entities.Charge, error)
}

type ClientUseCase struct {
	clients  interfaces.IClientRepository
	billing  interfaces.IClientBillingRepository
	charges  interfaces.IChargeRepository
	balances balanceAdjuster
	now      func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, billing interfaces.IClientBillingRepository, charges interfaces.IChargeRepository, balanceRetries uint64) *ClientUseCase {
	return &ClientUseCase{
		clients:  clients,
		billing:  billing,
		charges:  charges,
		balances: newBalanceAdjuster(billing, balanceRetries),
		now:      time.Now,
	}
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, filter ClientFilter) ([]entities.Client, error) {
	switch filter.Status {
	case "", entities.ClientStatusActive, entities.ClientStatusCancelled:
	default:
		return nil, errors.Wrapf(ErrInvalidClient, "unknown status %q", filter.Status)
	}
	clients, err := u.clients.List(ctx, filter.Status)
	if err != nil {
		return nil, err
	}
	city := strings.TrimSpace(filter.City)
	if city == "" {
		return clients, nil
	}
	return lo.Filter(clients, func(c entities.Client, _ int) bool {
		return c.CityID == city || strings.EqualFold(c.City, city)
	}), nil
}

func (u *ClientUseCase) Cancel(ctx context.Context, id, reason string) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.Status != entities.ClientStatusActive {
		return entities.Client{}, ErrClientNotActive
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Client{}, errors.Wrap(ErrInvalidClient, "cancellation reason is required")
	}

	now := u.now().UTC()
	c.Status = entities.ClientStatusCancelled
	c.CancellationReason = reason
	c.CancelledAt = &now
	c.UpdatedAt = now
	updated, err := u.clients.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	logger.L.Infof("[client][usecase] cancelled client_id=%s", c.ID)
	return updated, nil
}

func (u *ClientUseCase) GetBilling(ctx context.Context, clientID string) (entities.ClientBilling, error) {
	c, err := u.GetByID(ctx, clientID)
	if err != nil {
		return entities.ClientBilling{}, err
	}
	b, err := u.billing.GetByClientID(ctx, c.ID)
	if err != nil {
		return entities.ClientBilling{}, err
	}
	if b.ID == "" {
		return entities.ClientBilling{}, ErrClientBillingNotFound
	}
	return b, nil
}

// AddCharge opens an ad-hoc pending charge and raises the client's balance by
// its amount. A zero due date means today.
func (u *ClientUseCase) AddCharge(ctx context.Context, in ChargeInput) (entities.Charge, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return entities.Charge{}, errors.Wrap(ErrInvalidCharge, "description is required")
	}
	if !in.Amount.IsPositive() {
		return entities.Charge{}, errors.Wrap(ErrInvalidCharge, "amount must be positive")
	}
	c, err := u.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Charge{}, err
	}

	in.ClientID = c.ID
	charge, err := openCharge(ctx, u.charges, u.balances, in, u.now().UTC())
	if err != nil {
		return charge, err
	}
	logger.L.Infof("[client][usecase] charge added client_id=%s charge_id=%s amount=%s", c.ID, charge.ID, charge.Amount.StringFixed(2))
	return charge, nil
}

// openCharge stores a pending charge and raises the client's balance by its
// amount. A zero due date means today. The charge is returned even when the
// balance update fails.
func openCharge(ctx context.Context, charges interfaces.IChargeRepository, balances balanceAdjuster, in ChargeInput, now time.Time) (entities.Charge, error) {
	due := in.DueDate
	if due.IsZero() {
		due = proration.DateOf(now)
	}
	charge, err := charges.Create(ctx, entities.Charge{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		Description: in.Description,
		Amount:      in.Amount.Round(2),
		Status:      entities.ChargeStatusPending,
		DueDate:     due,
		CreatedAt:   now,
	})
	if err != nil {
		logger.L.Errorf("[charge][usecase] create failed client_id=%s err=%v", in.ClientID, err)
		return entities.Charge{}, err
	}
	if _, err := balances.adjust(ctx, in.ClientID, charge.Amount); err != nil {
		return charge, err
	}
	return charge, nil
}

func (u *ClientUseCase) ListCharges(ctx context.Context, clientID string) ([]entities.Charge, error) {
	c, err := u.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return u.charges.ListByClientID(ctx, c.ID)
}
