package interfaces

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
)

// ScheduledServiceQuery narrows visit listings. Zero dates leave the range open
// and an empty AssignedTo matches every technician.
type ScheduledServiceQuery struct {
	From       proration.Date
	To         proration.Date
	AssignedTo string
}

// IScheduledServiceRepository abstracts DynamoDB persistence for field visits.
//
// Lookups return a zero ScheduledService (empty ID) when nothing matches.

type IScheduledServiceRepository interface {
	Create(ctx context.Context, s entities.ScheduledService) (entities.ScheduledService, error)
	GetByID(ctx context.Context, id string) (entities.ScheduledService, error)
	// Update overwrites the visit only while it still has status from. It
	// returns a zero ScheduledService when the visit moved on concurrently.
	Update(ctx context.Context, s entities.ScheduledService, from entities.ServiceStatus) (entities.ScheduledService, error)
	List(ctx context.Context, q ScheduledServiceQuery) ([]entities.ScheduledService, error)
}
