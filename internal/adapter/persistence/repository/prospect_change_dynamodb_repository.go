package repository

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

const prospectChangesProspectIDIndex = "prospect_id-index"

type prospectChangeItem struct {
	ID         string `dynamodbav:"id"`
	ProspectID string `dynamodbav:"prospect_id"`
	ClientID   string `dynamodbav:"client_id"`
	FieldName  string `dynamodbav:"field_name"`
	OldValue   string `dynamodbav:"old_value,omitempty"`
	NewValue   string `dynamodbav:"new_value,omitempty"`
	ChangedBy  string `dynamodbav:"changed_by,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ProspectChangeDynamoRepository persists the prospect change history.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: prospect_id-index (PK: prospect_id)

type ProspectChangeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProspectChangeRepository = (*ProspectChangeDynamoRepository)(nil)

func NewProspectChangeDynamoRepository(ddb DynamoAPI, tableName string) *ProspectChangeDynamoRepository {
	return &ProspectChangeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProspectChangeDynamoRepository) CreateBatch(ctx context.Context, changes []entities.ProspectChange) error {
	reqs := make([]types.WriteRequest, 0, len(changes))
	for _, c := range changes {
		av, err := attributevalue.MarshalMap(toProspectChangeItem(c))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWrite(ctx, r.ddb, r.tableName, reqs)
}

func (r *ProspectChangeDynamoRepository) ListByProspectID(ctx context.Context, prospectID string) ([]entities.ProspectChange, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, prospectChangesProspectIDIndex, "prospect_id", prospectID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ProspectChange, 0, len(raws))
	for _, raw := range raws {
		var it prospectChangeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProspectChangeItem(it))
	}
	return out, nil
}

func (r *ProspectChangeDynamoRepository) DeleteByProspectID(ctx context.Context, prospectID string) error {
	changes, err := r.ListByProspectID(ctx, prospectID)
	if err != nil {
		return err
	}
	reqs := lo.Map(changes, func(c entities.ProspectChange, _ int) types.WriteRequest {
		return types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: idKey(c.ID)}}
	})
	return batchWrite(ctx, r.ddb, r.tableName, reqs)
}

func toProspectChangeItem(c entities.ProspectChange) prospectChangeItem {
	return prospectChangeItem{
		ID:         c.ID,
		ProspectID: c.ProspectID,
		ClientID:   c.ClientID,
		FieldName:  c.FieldName,
		OldValue:   c.OldValue,
		NewValue:   c.NewValue,
		ChangedBy:  c.ChangedBy,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromProspectChangeItem(it prospectChangeItem) entities.ProspectChange {
	return entities.ProspectChange{
		ID:         it.ID,
		ProspectID: it.ProspectID,
		ClientID:   it.ClientID,
		FieldName:  it.FieldName,
		OldValue:   it.OldValue,
		NewValue:   it.NewValue,
		ChangedBy:  it.ChangedBy,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
