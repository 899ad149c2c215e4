package usecase

import (
	"context"
	"fmt"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/infrastructure/metrics"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

const defaultChargeWorkers = 8

// MonthlyChargeSummary reports one run of monthly charge generation.
type MonthlyChargeSummary struct {
	Generated      int    `json:"generated"`
	BalanceUpdates int    `json:"balance_updates"`
	Failed         int    `json:"failed"`
	Month          string `json:"month"`
	Year           int    `json:"year"`
	TotalClients   int    `json:"total_clients"`
	Message        string `json:"message"`
}

type IChargeUseCase interface {
	GenerateMonthlyCharges(ctx context.Context) (MonthlyChargeSummary, error)
}

// ChargeUseCase opens the monthly fee charge of every active client. Runs are
// idempotent per month: clients that already have the month's charge are skipped.
type ChargeUseCase struct {
	clients           interfaces.IClientRepository
	billing           interfaces.IClientBillingRepository
	charges           interfaces.IChargeRepository
	balances          balanceAdjuster
	defaultBillingDay int
	workers           int
	now               func() time.Time
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(
	clients interfaces.IClientRepository,
	billing interfaces.IClientBillingRepository,
	charges interfaces.IChargeRepository,
	defaultBillingDay, workers int,
	balanceRetries uint64,
) *ChargeUseCase {
	if proration.ValidateBillingDay(defaultBillingDay) != nil {
		defaultBillingDay = 10
	}
	if workers <= 0 {
		workers = defaultChargeWorkers
	}
	return &ChargeUseCase{
		clients:           clients,
		billing:           billing,
		charges:           charges,
		balances:          newBalanceAdjuster(billing, balanceRetries),
		defaultBillingDay: defaultBillingDay,
		workers:           workers,
		now:               time.Now,
	}
}

type chargeOutcome struct {
	generated     bool
	balanceUpdate bool
	failed        bool
}

func (u *ChargeUseCase) GenerateMonthlyCharges(ctx context.Context) (MonthlyChargeSummary, error) {
	now := u.now().UTC()
	year, month := now.Year(), now.Month()
	description := entities.MonthlyChargeDescription(year, month)
	summary := MonthlyChargeSummary{Month: entities.MonthName(month), Year: year}
	logger.L.Infof("[charges][usecase] monthly generation start period=%q", description)

	clients, err := u.clients.List(ctx, entities.ClientStatusActive)
	if err != nil {
		return MonthlyChargeSummary{}, err
	}
	summary.TotalClients = len(clients)
	if len(clients) == 0 {
		summary.Message = "No hay clientes activos"
		return summary, nil
	}

	existing, err := u.charges.ListByDescription(ctx, description)
	if err != nil {
		return MonthlyChargeSummary{}, err
	}
	charged := lo.Associate(existing, func(c entities.Charge) (string, struct{}) { return c.ClientID, struct{}{} })
	pending := lo.Filter(clients, func(c entities.Client, _ int) bool {
		_, ok := charged[c.ID]
		return !ok
	})

	p := pool.NewWithResults[chargeOutcome]().WithMaxGoroutines(u.workers)
	for _, c := range pending {
		c := c
		p.Go(func() chargeOutcome {
			return u.chargeClient(ctx, c, description, year, month, now)
		})
	}
	outcomes := p.Wait()

	summary.Generated = lo.CountBy(outcomes, func(o chargeOutcome) bool { return o.generated })
	summary.BalanceUpdates = lo.CountBy(outcomes, func(o chargeOutcome) bool { return o.balanceUpdate })
	summary.Failed = lo.CountBy(outcomes, func(o chargeOutcome) bool { return o.failed })
	metrics.MonthlyChargesGenerated.Add(float64(summary.Generated))

	if summary.Generated == 0 && summary.Failed == 0 {
		summary.Message = fmt.Sprintf("Todos los cargos de %s %d ya están generados", summary.Month, year)
	} else {
		summary.Message = "Cargos generados exitosamente"
	}
	logger.L.Infof("[charges][usecase] monthly generation done period=%q generated=%d balance_updates=%d failed=%d total_clients=%d",
		description, summary.Generated, summary.BalanceUpdates, summary.Failed, summary.TotalClients)
	return summary, nil
}

func (u *ChargeUseCase) chargeClient(ctx context.Context, c entities.Client, description string, year int, month time.Month, now time.Time) chargeOutcome {
	b, err := u.billing.GetByClientID(ctx, c.ID)
	if err != nil {
		logger.L.Errorf("[charges][usecase] billing lookup failed client_id=%s err=%v", c.ID, err)
		return chargeOutcome{failed: true}
	}
	if b.ID == "" || !b.MonthlyFee.IsPositive() {
		return chargeOutcome{}
	}

	day := b.BillingDay
	if proration.ValidateBillingDay(day) != nil {
		day = u.defaultBillingDay
	}
	charge := entities.Charge{
		ID:          uuid.NewString(),
		ClientID:    c.ID,
		Description: description,
		Amount:      b.MonthlyFee,
		Status:      entities.ChargeStatusPending,
		DueDate:     proration.NewDate(year, month, day),
		CreatedAt:   now,
	}
	if _, err := u.charges.Create(ctx, charge); err != nil {
		logger.L.Errorf("[charges][usecase] charge create failed client_id=%s err=%v", c.ID, err)
		return chargeOutcome{failed: true}
	}
	if _, err := u.balances.adjust(ctx, c.ID, b.MonthlyFee); err != nil {
		return chargeOutcome{generated: true}
	}
	return chargeOutcome{generated: true, balanceUpdate: true}
}
