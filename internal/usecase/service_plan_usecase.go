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
	goCache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrServicePlanNotFound = errors.New("service plan not found")
	ErrInvalidServicePlan  = errors.New("invalid service plan")
)

type IServicePlanUseCase interface {
	Create(ctx context.Context, name string, monthlyFee decimal.Decimal) (entities.ServicePlan, error)
	GetByID(ctx context.Context, id string) (entities.ServicePlan, error)
	List(ctx context.Context, activeOnly bool) ([]entities.ServicePlan, error)
}

// ServicePlanUseCase serves the plan catalog. Plans are immutable once
// created, so GetByID results are kept in memory for the configured TTL.
type ServicePlanUseCase struct {
	repo  interfaces.IServicePlanRepository
	cache *goCache.Cache
	now   func() time.Time
}

var _ IServicePlanUseCase = (*ServicePlanUseCase)(nil)

// NewServicePlanUseCase builds the use case. A ttl <= 0 disables the cache.
func NewServicePlanUseCase(repo interfaces.IServicePlanRepository, ttl time.Duration) *ServicePlanUseCase {
	uc := &ServicePlanUseCase{repo: repo, now: time.Now}
	if ttl > 0 {
		uc.cache = goCache.New(ttl, 2*ttl)
	}
	return uc
}

func (u *ServicePlanUseCase) Create(ctx context.Context, name string, monthlyFee decimal.Decimal) (entities.ServicePlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ServicePlan{}, errors.Wrap(ErrInvalidServicePlan, "name is required")
	}
	if err := proration.ValidateMonthlyFee(monthlyFee); err != nil {
		return entities.ServicePlan{}, err
	}

	p := entities.ServicePlan{
		ID:         uuid.NewString(),
		Name:       name,
		MonthlyFee: monthlyFee.Round(2),
		IsActive:   true,
		CreatedAt:  u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.L.Errorf("[plan][usecase] create failed name=%q err=%v", name, err)
		return entities.ServicePlan{}, err
	}
	logger.L.Infof("[plan][usecase] created plan_id=%s fee=%s", created.ID, created.MonthlyFee.StringFixed(2))
	return created, nil
}

func (u *ServicePlanUseCase) GetByID(ctx context.Context, id string) (entities.ServicePlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServicePlan{}, ErrServicePlanNotFound
	}
	if u.cache != nil {
		if v, ok := u.cache.Get(id); ok {
			return v.(entities.ServicePlan), nil
		}
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServicePlan{}, err
	}
	if p.ID == "" {
		return entities.ServicePlan{}, ErrServicePlanNotFound
	}
	if u.cache != nil {
		u.cache.SetDefault(id, p)
	}
	return p, nil
}

func (u *ServicePlanUseCase) List(ctx context.Context, activeOnly bool) ([]entities.ServicePlan, error) {
	plans, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		plans = lo.Filter(plans, func(p entities.ServicePlan, _ int) bool { return p.IsActive })
	}
	return plans, nil
}
