package repository

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type servicePlanItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	MonthlyFee string `dynamodbav:"monthly_fee"`
	IsActive   bool   `dynamodbav:"is_active"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type ServicePlanDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServicePlanRepository = (*ServicePlanDynamoRepository)(nil)

func NewServicePlanDynamoRepository(ddb DynamoAPI, tableName string) *ServicePlanDynamoRepository {
	return &ServicePlanDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServicePlanDynamoRepository) Create(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error) {
	av, err := attributevalue.MarshalMap(servicePlanItem{
		ID:         p.ID,
		Name:       p.Name,
		MonthlyFee: formatMoney(p.MonthlyFee),
		IsActive:   p.IsActive,
		CreatedAt:  formatTime(p.CreatedAt),
	})
	if err != nil {
		return entities.ServicePlan{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.ServicePlan{}, err
	}
	return p, nil
}

func (r *ServicePlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServicePlan, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.ServicePlan{}, err
	}
	var it servicePlanItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ServicePlan{}, err
	}
	return fromServicePlanItem(it), nil
}

func (r *ServicePlanDynamoRepository) List(ctx context.Context) ([]entities.ServicePlan, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName, 0)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServicePlan, 0, len(raws))
	for _, raw := range raws {
		var it servicePlanItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServicePlanItem(it))
	}
	return out, nil
}

func fromServicePlanItem(it servicePlanItem) entities.ServicePlan {
	return entities.ServicePlan{
		ID:         it.ID,
		Name:       it.Name,
		MonthlyFee: parseMoney(it.MonthlyFee),
		IsActive:   it.IsActive,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
