package interfaces

import (
	"context"
	"time"

	"isp_backoffice/internal/domain/entities"
)

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Charge, error)
	ListByDescription(ctx context.Context, description string) ([]entities.Charge, error)
	// MarkPaid flips a pending charge to paid. It returns a zero Charge when
	// the charge does not exist or is no longer pending.
	MarkPaid(ctx context.Context, id, paymentID string, paidAt time.Time) (entities.Charge, error)
}

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Payment, error)
	List(ctx context.Context, limit int) ([]entities.Payment, error)
}
