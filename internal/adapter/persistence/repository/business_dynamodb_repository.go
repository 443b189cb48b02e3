package repository

import (
	"context"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const businessesOwnerIDIndex = "owner_id-index"

type businessItem struct {
	ID           string `dynamodbav:"id"`
	OwnerID      string `dynamodbav:"owner_id"`
	BusinessName string `dynamodbav:"business_name"`
	Industry     string `dynamodbav:"industry,omitempty"`
	Website      string `dynamodbav:"website,omitempty"`
	Description  string `dynamodbav:"description,omitempty"`
	CompanySize  string `dynamodbav:"company_size,omitempty"`
	BusinessType string `dynamodbav:"business_type,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// BusinessDynamoRepository reads businesses registered by portal users.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
type BusinessDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBusinessRepository = (*BusinessDynamoRepository)(nil)

func NewBusinessDynamoRepository(ddb *dynamodb.Client, tableName string) *BusinessDynamoRepository {
	return &BusinessDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BusinessDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Business, error) {
	return queryIndex(ctx, r.ddb, r.tableName, businessesOwnerIDIndex, "owner_id", ownerID, false, fromBusinessItem)
}

func (r *BusinessDynamoRepository) ListAll(ctx context.Context) ([]entities.Business, error) {
	return scanAll(ctx, r.ddb, r.tableName, fromBusinessItem)
}

func fromBusinessItem(it businessItem) entities.Business {
	return entities.Business{
		ID:           it.ID,
		OwnerID:      it.OwnerID,
		BusinessName: it.BusinessName,
		Industry:     it.Industry,
		Website:      it.Website,
		Description:  it.Description,
		CompanySize:  it.CompanySize,
		BusinessType: it.BusinessType,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
