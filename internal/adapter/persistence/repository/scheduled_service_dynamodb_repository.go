package repository

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const scheduledServicesAssigneeIndex = "assigned_to-index"

type scheduledServiceItem struct {
	ID                 string   `dynamodbav:"id"`
	ClientID           string   `dynamodbav:"client_id,omitempty"`
	ProspectID         string   `dynamodbav:"prospect_id,omitempty"`
	AssignedTo         string   `dynamodbav:"assigned_to"`
	ServiceType        string   `dynamodbav:"service_type"`
	Status             string   `dynamodbav:"status"`
	Title              string   `dynamodbav:"title"`
	Description        string   `dynamodbav:"description,omitempty"`
	ScheduledDate      string   `dynamodbav:"scheduled_date"`
	ScheduledTime      string   `dynamodbav:"scheduled_time,omitempty"`
	EstimatedDuration  int      `dynamodbav:"estimated_duration,omitempty"`
	ChargeAmount       string   `dynamodbav:"charge_amount"`
	ChargeID           string   `dynamodbav:"charge_id,omitempty"`
	VisitStartedAt     string   `dynamodbav:"visit_started_at,omitempty"`
	VisitLatitude      *float64 `dynamodbav:"visit_latitude,omitempty"`
	VisitLongitude     *float64 `dynamodbav:"visit_longitude,omitempty"`
	CompletedAt        string   `dynamodbav:"completed_at,omitempty"`
	CompletedNotes     string   `dynamodbav:"completed_notes,omitempty"`
	CancellationReason string   `dynamodbav:"cancellation_reason,omitempty"`
	CancelledAt        string   `dynamodbav:"cancelled_at,omitempty"`
	CreatedBy          string   `dynamodbav:"created_by,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// ScheduledServiceDynamoRepository persists field visits in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assigned_to-index (PK: assigned_to, SK: scheduled_date)

type ScheduledServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IScheduledServiceRepository = (*ScheduledServiceDynamoRepository)(nil)

func NewScheduledServiceDynamoRepository(ddb DynamoAPI, tableName string) *ScheduledServiceDynamoRepository {
	return &ScheduledServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ScheduledServiceDynamoRepository) Create(ctx context.Context, s entities.ScheduledService) (entities.ScheduledService, error) {
	av, err := attributevalue.MarshalMap(toScheduledServiceItem(s))
	if err != nil {
		return entities.ScheduledService{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ScheduledService{}, err
	}
	return s, nil
}

func (r *ScheduledServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.ScheduledService, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.ScheduledService{}, err
	}
	var it scheduledServiceItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ScheduledService{}, err
	}
	return fromScheduledServiceItem(it), nil
}

func (r *ScheduledServiceDynamoRepository) Update(ctx context.Context, s entities.ScheduledService, from entities.ServiceStatus) (entities.ScheduledService, error) {
	av, err := attributevalue.MarshalMap(toScheduledServiceItem(s))
	if err != nil {
		return entities.ScheduledService{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
	})
	if isConditionFailed(err) {
		return entities.ScheduledService{}, nil
	}
	if err != nil {
		return entities.ScheduledService{}, err
	}
	return s, nil
}

// List queries the assignee index when the query names a technician and scans
// the table otherwise. Both narrow on scheduled_date inside DynamoDB.
func (r *ScheduledServiceDynamoRepository) List(ctx context.Context, q interfaces.ScheduledServiceQuery) ([]entities.ScheduledService, error) {
	dateCond, names, values := scheduledDateCondition(q)

	var (
		raws []map[string]types.AttributeValue
		err  error
	)
	if q.AssignedTo != "" {
		keyCond := "#assigned_to = :assigned_to"
		if dateCond != "" {
			keyCond += " AND " + dateCond
		}
		values[":assigned_to"] = &types.AttributeValueMemberS{Value: q.AssignedTo}
		raws, err = r.query(ctx, keyCond, mergeNames(names, map[string]string{"#assigned_to": "assigned_to"}), values)
	} else {
		raws, err = r.scan(ctx, dateCond, names, values)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.ScheduledService, 0, len(raws))
	for _, raw := range raws {
		var it scheduledServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromScheduledServiceItem(it))
	}
	return out, nil
}

func (r *ScheduledServiceDynamoRepository) query(ctx context.Context, keyCond string, names map[string]string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(scheduledServicesAssigneeIndex),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func (r *ScheduledServiceDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	if filter == "" {
		return scanAll(ctx, r.ddb, r.tableName, 0)
	}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// scheduledDateCondition builds the scheduled_date range of q. ISO dates sort
// lexically, so string comparisons match calendar order.
func scheduledDateCondition(q interfaces.ScheduledServiceQuery) (string, map[string]string, map[string]types.AttributeValue) {
	values := map[string]types.AttributeValue{}
	var cond string
	switch {
	case !q.From.IsZero() && !q.To.IsZero():
		cond = "#scheduled_date BETWEEN :from AND :to"
		values[":from"] = &types.AttributeValueMemberS{Value: q.From.String()}
		values[":to"] = &types.AttributeValueMemberS{Value: q.To.String()}
	case !q.From.IsZero():
		cond = "#scheduled_date >= :from"
		values[":from"] = &types.AttributeValueMemberS{Value: q.From.String()}
	case !q.To.IsZero():
		cond = "#scheduled_date <= :to"
		values[":to"] = &types.AttributeValueMemberS{Value: q.To.String()}
	default:
		return "", nil, values
	}
	return cond, map[string]string{"#scheduled_date": "scheduled_date"}, values
}

func toScheduledServiceItem(s entities.ScheduledService) scheduledServiceItem {
	return scheduledServiceItem{
		ID:                 s.ID,
		ClientID:           s.ClientID,
		ProspectID:         s.ProspectID,
		AssignedTo:         s.AssignedTo,
		ServiceType:        string(s.ServiceType),
		Status:             string(s.Status),
		Title:              s.Title,
		Description:        s.Description,
		ScheduledDate:      s.ScheduledDate.String(),
		ScheduledTime:      s.ScheduledTime,
		EstimatedDuration:  s.EstimatedDuration,
		ChargeAmount:       formatMoney(s.ChargeAmount),
		ChargeID:           s.ChargeID,
		VisitStartedAt:     formatTimePtr(s.VisitStartedAt),
		VisitLatitude:      s.VisitLatitude,
		VisitLongitude:     s.VisitLongitude,
		CompletedAt:        formatTimePtr(s.CompletedAt),
		CompletedNotes:     s.CompletedNotes,
		CancellationReason: s.CancellationReason,
		CancelledAt:        formatTimePtr(s.CancelledAt),
		CreatedBy:          s.CreatedBy,
		CreatedAt:          formatTime(s.CreatedAt),
		UpdatedAt:          formatTime(s.UpdatedAt),
	}
}

func fromScheduledServiceItem(it scheduledServiceItem) entities.ScheduledService {
	return entities.ScheduledService{
		ID:                 it.ID,
		ClientID:           it.ClientID,
		ProspectID:         it.ProspectID,
		AssignedTo:         it.AssignedTo,
		ServiceType:        entities.ServiceType(it.ServiceType),
		Status:             entities.ServiceStatus(it.Status),
		Title:              it.Title,
		Description:        it.Description,
		ScheduledDate:      parseDate(it.ScheduledDate),
		ScheduledTime:      it.ScheduledTime,
		EstimatedDuration:  it.EstimatedDuration,
		ChargeAmount:       parseMoney(it.ChargeAmount),
		ChargeID:           it.ChargeID,
		VisitStartedAt:     parseTimePtr(it.VisitStartedAt),
		VisitLatitude:      it.VisitLatitude,
		VisitLongitude:     it.VisitLongitude,
		CompletedAt:        parseTimePtr(it.CompletedAt),
		CompletedNotes:     it.CompletedNotes,
		CancellationReason: it.CancellationReason,
		CancelledAt:        parseTimePtr(it.CancelledAt),
		CreatedBy:          it.CreatedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
