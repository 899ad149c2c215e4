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
	"github.com/shopspring/decimal"
)

const billingClientIDIndex = "client_id-index"

type clientBillingItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	ServicePlanID     string `dynamodbav:"service_plan_id,omitempty"`
	MonthlyFee        string `dynamodbav:"monthly_fee"`
	InstallationCost  string `dynamodbav:"installation_cost"`
	InstallationDate  string `dynamodbav:"installation_date"`
	FirstBillingDate  string `dynamodbav:"first_billing_date"`
	BillingDay        int    `dynamodbav:"billing_day"`
	ProratedAmount    string `dynamodbav:"prorated_amount"`
	DaysCharged       int    `dynamodbav:"days_charged"`
	AdditionalCharges string `dynamodbav:"additional_charges"`
	Balance           string `dynamodbav:"balance"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ClientBillingDynamoRepository persists ClientBilling records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Money attributes are strings with two decimals; balance updates are
// conditional on the previous string value.

type ClientBillingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientBillingRepository = (*ClientBillingDynamoRepository)(nil)

func NewClientBillingDynamoRepository(ddb DynamoAPI, tableName string) *ClientBillingDynamoRepository {
	return &ClientBillingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientBillingDynamoRepository) Create(ctx context.Context, b entities.ClientBilling) (entities.ClientBilling, error) {
	av, err := attributevalue.MarshalMap(toClientBillingItem(b))
	if err != nil {
		return entities.ClientBilling{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ClientBilling{}, err
	}
	return b, nil
}

func (r *ClientBillingDynamoRepository) GetByClientID(ctx context.Context, clientID string) (entities.ClientBilling, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, billingClientIDIndex, "client_id", clientID)
	if err != nil || len(raws) == 0 {
		return entities.ClientBilling{}, err
	}

	// GSI reads are eventually consistent; re-read by PK so the balance is current.
	var it clientBillingItem
	if err := attributevalue.UnmarshalMap(raws[0], &it); err != nil {
		return entities.ClientBilling{}, err
	}
	raw, err := getByID(ctx, r.ddb, r.tableName, it.ID)
	if err != nil {
		return entities.ClientBilling{}, err
	}
	if len(raw) > 0 {
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.ClientBilling{}, err
		}
	}
	return fromClientBillingItem(it), nil
}

func (r *ClientBillingDynamoRepository) CompareAndSetBalance(ctx context.Context, id string, expected, next decimal.Decimal) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #balance = :expected"),
		UpdateExpression:    aws.String("SET #balance = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#balance": "balance", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: formatMoney(expected)},
			":next":       &types.AttributeValueMemberS{Value: formatMoney(next)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func toClientBillingItem(b entities.ClientBilling) clientBillingItem {
	return clientBillingItem{
		ID:                b.ID,
		ClientID:          b.ClientID,
		ServicePlanID:     b.ServicePlanID,
		MonthlyFee:        formatMoney(b.MonthlyFee),
		InstallationCost:  formatMoney(b.InstallationCost),
		InstallationDate:  b.InstallationDate.String(),
		FirstBillingDate:  b.FirstBillingDate.String(),
		BillingDay:        b.BillingDay,
		ProratedAmount:    formatMoney(b.ProratedAmount),
		DaysCharged:       b.DaysCharged,
		AdditionalCharges: formatMoney(b.AdditionalCharges),
		Balance:           formatMoney(b.Balance),
		CreatedAt:         formatTime(b.CreatedAt),
		UpdatedAt:         formatTime(b.UpdatedAt),
	}
}

func fromClientBillingItem(it clientBillingItem) entities.ClientBilling {
	return entities.ClientBilling{
		ID:                it.ID,
		ClientID:          it.ClientID,
		ServicePlanID:     it.ServicePlanID,
		MonthlyFee:        parseMoney(it.MonthlyFee),
		InstallationCost:  parseMoney(it.InstallationCost),
		InstallationDate:  parseDate(it.InstallationDate),
		FirstBillingDate:  parseDate(it.FirstBillingDate),
		BillingDay:        it.BillingDay,
		ProratedAmount:    parseMoney(it.ProratedAmount),
		DaysCharged:       it.DaysCharged,
		AdditionalCharges: parseMoney(it.AdditionalCharges),
		Balance:           parseMoney(it.Balance),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
