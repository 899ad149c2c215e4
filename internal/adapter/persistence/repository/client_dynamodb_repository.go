package repository

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const clientsStatusIndex = "status-index"

type clientItem struct {
	ID string `dynamodbav:"id"`
	contactItem

	ProspectID         string `dynamodbav:"prospect_id,omitempty"`
	Status             string `dynamodbav:"status"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`
	CancelledAt        string `dynamodbav:"cancelled_at,omitempty"`
	CreatedBy          string `dynamodbav:"created_by,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Client{}, err
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context, status entities.ClientStatus) ([]entities.Client, error) {
	var (
		raws []map[string]types.AttributeValue
		err  error
	)
	if status != "" {
		raws, err = queryIndex(ctx, r.ddb, r.tableName, clientsStatusIndex, "status", string(status))
	} else {
		raws, err = scanAll(ctx, r.ddb, r.tableName, 0)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Client, 0, len(raws))
	for _, raw := range raws {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:                 c.ID,
		contactItem:        toContactItem(c.Contact),
		ProspectID:         c.ProspectID,
		Status:             string(c.Status),
		CancellationReason: c.CancellationReason,
		CancelledAt:        formatTimePtr(c.CancelledAt),
		CreatedBy:          c.CreatedBy,
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:                 it.ID,
		Contact:            fromContactItem(it.contactItem),
		ProspectID:         it.ProspectID,
		Status:             entities.ClientStatus(it.Status),
		CancellationReason: it.CancellationReason,
		CancelledAt:        parseTimePtr(it.CancelledAt),
		CreatedBy:          it.CreatedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
