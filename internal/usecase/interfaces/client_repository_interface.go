package interfaces

import (
	"context"
	"isp_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, status entities.ClientStatus) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
}

// IClientBillingRepository persists the billing ledger of each client.
//
// CompareAndSetBalance only writes when the stored balance still equals
// expected; it reports false (and no error) when another writer got there first.

type IClientBillingRepository interface {
	Create(ctx context.Context, b entities.ClientBilling) (entities.ClientBilling, error)
	GetByClientID(ctx context.Context, clientID string) (entities.ClientBilling, error)
	CompareAndSetBalance(ctx context.Context, id string, expected, next decimal.Decimal) (bool, error)
}

type IEquipmentRepository interface {
	Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	GetByClientID(ctx context.Context, clientID string) (entities.Equipment, error)
}

type IServicePlanRepository interface {
	Create(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error)
	GetByID(ctx context.Context, id string) (entities.ServicePlan, error)
	List(ctx context.Context) ([]entities.ServicePlan, error)
}
