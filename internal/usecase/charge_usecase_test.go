package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	mock_interfaces "isp_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newChargeUseCase(t *testing.T) (*ChargeUseCase, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIClientBillingRepository, *mock_interfaces.MockIChargeRepository) {
	ctrl := gomock.NewController(t)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	billing := mock_interfaces.NewMockIClientBillingRepository(ctrl)
	charges := mock_interfaces.NewMockIChargeRepository(ctrl)
	uc := NewChargeUseCase(clients, billing, charges, 10, 4, 3)
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC) }
	return uc, clients, billing, charges
}

func TestChargeUseCase_GenerateMonthlyCharges(t *testing.T) {
	t.Run("no active clients", func(t *testing.T) {
		uc, clients, _, _ := newChargeUseCase(t)
		clients.EXPECT().List(gomock.Any(), entities.ClientStatusActive).Return(nil, nil)

		res, err := uc.GenerateMonthlyCharges(context.Background())
		if err != nil || res.Generated != 0 || res.Message != "No hay clientes activos" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("skips charged, zero-fee and unbilled clients", func(t *testing.T) {
		uc, clients, billing, charges := newChargeUseCase(t)
		clients.EXPECT().List(gomock.Any(), entities.ClientStatusActive).Return([]entities.Client{
			{ID: "c1"}, {ID: "c2"}, {ID: "c3"}, {ID: "c4"},
		}, nil)
		charges.EXPECT().ListByDescription(gomock.Any(), "Mensualidad Junio 2024").Return([]entities.Charge{{ClientID: "c1"}}, nil)

		billing.EXPECT().GetByClientID(gomock.Any(), "c2").Return(entities.ClientBilling{ID: "b2", ClientID: "c2", MonthlyFee: decimal.Zero}, nil)
		billing.EXPECT().GetByClientID(gomock.Any(), "c3").Return(entities.ClientBilling{}, nil)
		billing.EXPECT().GetByClientID(gomock.Any(), "c4").Return(entities.ClientBilling{
			ID: "b4", ClientID: "c4", MonthlyFee: decimal.NewFromInt(350), BillingDay: 0, Balance: decimal.NewFromInt(100),
		}, nil).Times(2)
		charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Charge) (entities.Charge, error) {
			if c.ClientID != "c4" || c.Description != "Mensualidad Junio 2024" || c.Status != entities.ChargeStatusPending {
				t.Errorf("unexpected charge: %+v", c)
			}
			if c.DueDate != proration.NewDate(2024, time.June, 10) {
				t.Errorf("expected default billing day due date, got %s", c.DueDate)
			}
			return c, nil
		})
		billing.EXPECT().CompareAndSetBalance(gomock.Any(), "b4", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, expected, next decimal.Decimal) (bool, error) {
				if !next.Equal(decimal.NewFromInt(450)) {
					t.Errorf("expected balance 450, got %s", next)
				}
				return true, nil
			})

		res, err := uc.GenerateMonthlyCharges(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Generated != 1 || res.BalanceUpdates != 1 || res.TotalClients != 4 || res.Month != "Junio" || res.Year != 2024 {
			t.Fatalf("unexpected summary: %+v", res)
		}
	})

	t.Run("already generated", func(t *testing.T) {
		uc, clients, _, charges := newChargeUseCase(t)
		clients.EXPECT().List(gomock.Any(), entities.ClientStatusActive).Return([]entities.Client{{ID: "c1"}}, nil)
		charges.EXPECT().ListByDescription(gomock.Any(), "Mensualidad Junio 2024").Return([]entities.Charge{{ClientID: "c1"}}, nil)

		res, err := uc.GenerateMonthlyCharges(context.Background())
		if err != nil || res.Generated != 0 || res.Message != "Todos los cargos de Junio 2024 ya están generados" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("per-client failures are counted", func(t *testing.T) {
		uc, clients, billing, charges := newChargeUseCase(t)
		clients.EXPECT().List(gomock.Any(), entities.ClientStatusActive).Return([]entities.Client{{ID: "c1"}, {ID: "c2"}}, nil)
		charges.EXPECT().ListByDescription(gomock.Any(), gomock.Any()).Return(nil, nil)
		billing.EXPECT().GetByClientID(gomock.Any(), "c1").Return(entities.ClientBilling{}, errors.New("db"))
		billing.EXPECT().GetByClientID(gomock.Any(), "c2").Return(entities.ClientBilling{ID: "b2", MonthlyFee: decimal.NewFromInt(300), BillingDay: 5}, nil)
		charges.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Charge{}, errors.New("db"))

		res, err := uc.GenerateMonthlyCharges(context.Background())
		if err != nil || res.Generated != 0 || res.Failed != 2 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("listing failure aborts", func(t *testing.T) {
		uc, clients, _, _ := newChargeUseCase(t)
		clients.EXPECT().List(gomock.Any(), entities.ClientStatusActive).Return(nil, errors.New("db"))
		if _, err := uc.GenerateMonthlyCharges(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBalanceAdjuster_RetriesOnConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	billing := mock_interfaces.NewMockIClientBillingRepository(ctrl)
	adj := newBalanceAdjuster(billing, 3)

	var mu sync.Mutex
	stored := decimal.NewFromInt(100)
	billing.EXPECT().GetByClientID(gomock.Any(), "c1").DoAndReturn(func(context.Context, string) (entities.ClientBilling, error) {
		mu.Lock()
		defer mu.Unlock()
		return entities.ClientBilling{ID: "b1", ClientID: "c1", Balance: stored}, nil
	}).Times(2)
	first := true
	billing.EXPECT().CompareAndSetBalance(gomock.Any(), "b1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, expected, next decimal.Decimal) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if first {
				// Another writer lands a payment in between.
				first = false
				stored = stored.Sub(decimal.NewFromInt(40))
				return false, nil
			}
			if !expected.Equal(stored) {
				return false, nil
			}
			stored = next
			return true, nil
		}).Times(2)

	b, err := adj.adjust(context.Background(), "c1", decimal.NewFromInt(300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Balance.Equal(decimal.NewFromInt(360)) || !stored.Equal(decimal.NewFromInt(360)) {
		t.Fatalf("expected 360, got returned=%s stored=%s", b.Balance, stored)
	}
}

func TestBalanceAdjuster_MissingBillingIsPermanent(t *testing.T) {
	ctrl := gomock.NewController(t)
	billing := mock_interfaces.NewMockIClientBillingRepository(ctrl)
	adj := newBalanceAdjuster(billing, 5)
	billing.EXPECT().GetByClientID(gomock.Any(), "c1").Return(entities.ClientBilling{}, nil).Times(1)

	_, err := adj.adjust(context.Background(), "c1", decimal.NewFromInt(1))
	if !errors.Is(err, ErrClientBillingNotFound) {
		t.Fatalf("expected ErrClientBillingNotFound, got %v", err)
	}
}
