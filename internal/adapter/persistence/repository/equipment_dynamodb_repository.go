package repository

import (
	"context"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const equipmentClientIDIndex = "client_id-index"

type equipmentItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	AntennaSSID string `dynamodbav:"antenna_ssid,omitempty"`
	AntennaIP   string `dynamodbav:"antenna_ip,omitempty"`
	AntennaMAC  string `dynamodbav:"antenna_mac,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// EquipmentDynamoRepository persists Equipment records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type EquipmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb DynamoAPI, tableName string) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EquipmentDynamoRepository) Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(equipmentItem{
		ID:          e.ID,
		ClientID:    e.ClientID,
		AntennaSSID: e.AntennaSSID,
		AntennaIP:   e.AntennaIP,
		AntennaMAC:  e.AntennaMAC,
		CreatedAt:   formatTime(e.CreatedAt),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentDynamoRepository) GetByClientID(ctx context.Context, clientID string) (entities.Equipment, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, equipmentClientIDIndex, "client_id", clientID)
	if err != nil || len(raws) == 0 {
		return entities.Equipment{}, err
	}
	var it equipmentItem
	if err := attributevalue.UnmarshalMap(raws[0], &it); err != nil {
		return entities.Equipment{}, err
	}
	return entities.Equipment{
		ID:          it.ID,
		ClientID:    it.ClientID,
		AntennaSSID: it.AntennaSSID,
		AntennaIP:   it.AntennaIP,
		AntennaMAC:  it.AntennaMAC,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}
