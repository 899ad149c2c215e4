package interfaces

import (
	"context"
	"isp_backoffice/internal/domain/entities"
)

// IProspectRepository abstracts DynamoDB persistence for Prospect.
//
// Lookups return a zero Prospect (empty ID) when nothing matches.

type IProspectRepository interface {
	Create(ctx context.Context, p entities.Prospect) (entities.Prospect, error)
	GetByID(ctx context.Context, id string) (entities.Prospect, error)
	List(ctx context.Context, status entities.ProspectStatus) ([]entities.Prospect, error)
	Update(ctx context.Context, p entities.Prospect) (entities.Prospect, error)
	Delete(ctx context.Context, id string) error
}

// IProspectChangeRepository stores the field-level edit history recorded at finalization.

type IProspectChangeRepository interface {
	CreateBatch(ctx context.Context, changes []entities.ProspectChange) error
	ListByProspectID(ctx context.Context, prospectID string) ([]entities.ProspectChange, error)
	DeleteByProspectID(ctx context.Context, prospectID string) error
}
