package repository

import (
	"context"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	chargesClientIDIndex    = "client_id-index"
	chargesDescriptionIndex = "description-index"
)

type chargeItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	DueDate     string `dynamodbav:"due_date,omitempty"`
	PaymentID   string `dynamodbav:"payment_id,omitempty"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ChargeDynamoRepository persists client charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: description-index (PK: description), used to dedup monthly charges

type ChargeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb DynamoAPI, tableName string) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	av, err := attributevalue.MarshalMap(toChargeItem(c))
	if err != nil {
		return entities.Charge{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Charge{}, err
	}
	var it chargeItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Charge, error) {
	return r.listByIndex(ctx, chargesClientIDIndex, "client_id", clientID)
}

func (r *ChargeDynamoRepository) ListByDescription(ctx context.Context, description string) ([]entities.Charge, error) {
	return r.listByIndex(ctx, chargesDescriptionIndex, "description", description)
}

func (r *ChargeDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Charge, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Charge, 0, len(raws))
	for _, raw := range raws {
		var it chargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromChargeItem(it))
	}
	return out, nil
}

func (r *ChargeDynamoRepository) MarkPaid(ctx context.Context, id, paymentID string, paidAt time.Time) (entities.Charge, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :paid, #payment_id = :payment_id, #paid_at = :paid_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#payment_id": "payment_id",
			"#paid_at":    "paid_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ChargeStatusPending)},
			":paid":       &types.AttributeValueMemberS{Value: string(entities.ChargeStatusPaid)},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":paid_at":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return entities.Charge{}, nil
	}
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Charge{}, nil
	}
	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:          c.ID,
		ClientID:    c.ClientID,
		Description: c.Description,
		Amount:      formatMoney(c.Amount),
		Status:      string(c.Status),
		DueDate:     c.DueDate.String(),
		PaymentID:   c.PaymentID,
		PaidAt:      formatTimePtr(c.PaidAt),
		CreatedAt:   formatTime(c.CreatedAt),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	return entities.Charge{
		ID:          it.ID,
		ClientID:    it.ClientID,
		Description: it.Description,
		Amount:      parseMoney(it.Amount),
		Status:      entities.ChargeStatus(it.Status),
		DueDate:     parseDate(it.DueDate),
		PaymentID:   it.PaymentID,
		PaidAt:      parseTimePtr(it.PaidAt),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
