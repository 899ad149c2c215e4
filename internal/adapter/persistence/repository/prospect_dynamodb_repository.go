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

const prospectsStatusIndex = "status-index"

type contactItem struct {
	FirstName       string `dynamodbav:"first_name"`
	LastNamePaterno string `dynamodbav:"last_name_paterno"`
	LastNameMaterno string `dynamodbav:"last_name_materno,omitempty"`
	Phone1          string `dynamodbav:"phone1"`
	Phone1Country   string `dynamodbav:"phone1_country"`
	Phone2          string `dynamodbav:"phone2,omitempty"`
	Phone2Country   string `dynamodbav:"phone2_country"`
	Phone3          string `dynamodbav:"phone3,omitempty"`
	Phone3Country   string `dynamodbav:"phone3_country"`
	Street          string `dynamodbav:"street"`
	ExteriorNumber  string `dynamodbav:"exterior_number"`
	InteriorNumber  string `dynamodbav:"interior_number,omitempty"`
	Neighborhood    string `dynamodbav:"neighborhood"`
	City            string `dynamodbav:"city"`
	CityID          string `dynamodbav:"city_id,omitempty"`
	PostalCode      string `dynamodbav:"postal_code,omitempty"`
}

type prospectItem struct {
	ID string `dynamodbav:"id"`
	contactItem

	SSID               string `dynamodbav:"ssid,omitempty"`
	AntennaIP          string `dynamodbav:"antenna_ip,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	Status             string `dynamodbav:"status"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`
	CancelledAt        string `dynamodbav:"cancelled_at,omitempty"`
	FinalizedAt        string `dynamodbav:"finalized_at,omitempty"`
	CreatedBy          string `dynamodbav:"created_by,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ProspectDynamoRepository persists Prospect entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type ProspectDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProspectRepository = (*ProspectDynamoRepository)(nil)

func NewProspectDynamoRepository(ddb DynamoAPI, tableName string) *ProspectDynamoRepository {
	return &ProspectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProspectDynamoRepository) Create(ctx context.Context, p entities.Prospect) (entities.Prospect, error) {
	av, err := attributevalue.MarshalMap(toProspectItem(p))
	if err != nil {
		return entities.Prospect{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Prospect{}, err
	}
	return p, nil
}

func (r *ProspectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Prospect, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Prospect{}, err
	}
	var it prospectItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Prospect{}, err
	}
	return fromProspectItem(it), nil
}

// List returns prospects with the given status, or every prospect when status is empty.
func (r *ProspectDynamoRepository) List(ctx context.Context, status entities.ProspectStatus) ([]entities.Prospect, error) {
	var (
		raws []map[string]types.AttributeValue
		err  error
	)
	if status != "" {
		raws, err = queryIndex(ctx, r.ddb, r.tableName, prospectsStatusIndex, "status", string(status))
	} else {
		raws, err = scanAll(ctx, r.ddb, r.tableName, 0)
	}
	if err != nil {
		return nil, err
	}

	out := make([]entities.Prospect, 0, len(raws))
	for _, raw := range raws {
		var it prospectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProspectItem(it))
	}
	return out, nil
}

// Update overwrites a prospect. It returns a zero Prospect when the prospect does not exist.
func (r *ProspectDynamoRepository) Update(ctx context.Context, p entities.Prospect) (entities.Prospect, error) {
	av, err := attributevalue.MarshalMap(toProspectItem(p))
	if err != nil {
		return entities.Prospect{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Prospect{}, err
	}
	return p, nil
}

func (r *ProspectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		FirstName:       c.FirstName,
		LastNamePaterno: c.LastNamePaterno,
		LastNameMaterno: c.LastNameMaterno,
		Phone1:          c.Phone1,
		Phone1Country:   c.Phone1Country,
		Phone2:          c.Phone2,
		Phone2Country:   c.Phone2Country,
		Phone3:          c.Phone3,
		Phone3Country:   c.Phone3Country,
		Street:          c.Street,
		ExteriorNumber:  c.ExteriorNumber,
		InteriorNumber:  c.InteriorNumber,
		Neighborhood:    c.Neighborhood,
		City:            c.City,
		CityID:          c.CityID,
		PostalCode:      c.PostalCode,
	}
}

func fromContactItem(it contactItem) entities.Contact {
	return entities.Contact{
		FirstName:       it.FirstName,
		LastNamePaterno: it.LastNamePaterno,
		LastNameMaterno: it.LastNameMaterno,
		Phone1:          it.Phone1,
		Phone1Country:   it.Phone1Country,
		Phone2:          it.Phone2,
		Phone2Country:   it.Phone2Country,
		Phone3:          it.Phone3,
		Phone3Country:   it.Phone3Country,
		Street:          it.Street,
		ExteriorNumber:  it.ExteriorNumber,
		InteriorNumber:  it.InteriorNumber,
		Neighborhood:    it.Neighborhood,
		City:            it.City,
		CityID:          it.CityID,
		PostalCode:      it.PostalCode,
	}
}

func toProspectItem(p entities.Prospect) prospectItem {
	return prospectItem{
		ID:                 p.ID,
		contactItem:        toContactItem(p.Contact),
		SSID:               p.SSID,
		AntennaIP:          p.AntennaIP,
		Notes:              p.Notes,
		Status:             string(p.Status),
		CancellationReason: p.CancellationReason,
		CancelledAt:        formatTimePtr(p.CancelledAt),
		FinalizedAt:        formatTimePtr(p.FinalizedAt),
		CreatedBy:          p.CreatedBy,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
}

func fromProspectItem(it prospectItem) entities.Prospect {
	return entities.Prospect{
		ID:                 it.ID,
		Contact:            fromContactItem(it.contactItem),
		SSID:               it.SSID,
		AntennaIP:          it.AntennaIP,
		Notes:              it.Notes,
		Status:             entities.ProspectStatus(it.Status),
		CancellationReason: it.CancellationReason,
		CancelledAt:        parseTimePtr(it.CancelledAt),
		FinalizedAt:        parseTimePtr(it.FinalizedAt),
		CreatedBy:          it.CreatedBy,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
