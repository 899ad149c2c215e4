package repository

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsClientIDIndex = "client_id-index"

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	ClientID      string `dynamodbav:"client_id"`
	ChargeID      string `dynamodbav:"charge_id,omitempty"`
	Amount        string `dynamodbav:"amount"`
	PaymentType   string `dynamodbav:"payment_type"`
	BankType      string `dynamodbav:"bank_type,omitempty"`
	ReceiptNumber string `dynamodbav:"receipt_number,omitempty"`
	PeriodMonth   int    `dynamodbav:"period_month,omitempty"`
	PeriodYear    int    `dynamodbav:"period_year,omitempty"`
	PayerName     string `dynamodbav:"payer_name,omitempty"`
	PayerPhone    string `dynamodbav:"payer_phone,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`
	PaymentDate   string `dynamodbav:"payment_date"`
	Status        string `dynamodbav:"status"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`

	ProviderPaymentID string                 `dynamodbav:"provider_payment_id,omitempty"`
	MPPayload         map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw      string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Payment{}, err
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Payment, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, paymentsClientIDIndex, "client_id", clientID)
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raws)
}

// List scans up to limit payments (limit <= 0 reads the whole table).
func (r *PaymentDynamoRepository) List(ctx context.Context, limit int) ([]entities.Payment, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName, limit)
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raws)
}

func unmarshalPayments(raws []map[string]types.AttributeValue) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0, len(raws))
	for _, raw := range raws {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		ClientID:          p.ClientID,
		ChargeID:          p.ChargeID,
		Amount:            formatMoney(p.Amount),
		PaymentType:       p.PaymentType,
		BankType:          p.BankType,
		ReceiptNumber:     p.ReceiptNumber,
		PeriodMonth:       p.PeriodMonth,
		PeriodYear:        p.PeriodYear,
		PayerName:         p.PayerName,
		PayerPhone:        p.PayerPhone,
		Notes:             p.Notes,
		PaymentDate:       p.PaymentDate.String(),
		Status:            string(p.Status),
		CreatedBy:         p.CreatedBy,
		CreatedAt:         formatTime(p.CreatedAt),
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayload:         p.MPPayload,
		MPPayloadRaw:      string(p.MPPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		ClientID:          it.ClientID,
		ChargeID:          it.ChargeID,
		Amount:            parseMoney(it.Amount),
		PaymentType:       it.PaymentType,
		BankType:          it.BankType,
		ReceiptNumber:     it.ReceiptNumber,
		PeriodMonth:       it.PeriodMonth,
		PeriodYear:        it.PeriodYear,
		PayerName:         it.PayerName,
		PayerPhone:        it.PayerPhone,
		Notes:             it.Notes,
		PaymentDate:       parseDate(it.PaymentDate),
		Status:            entities.PaymentStatus(it.Status),
		CreatedBy:         it.CreatedBy,
		CreatedAt:         parseTime(it.CreatedAt),
		ProviderPaymentID: it.ProviderPaymentID,
		MPPayload:         it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
