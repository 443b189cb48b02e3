package repository

import (
	"context"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const activitiesQuoteIDIndex = "quote_id-index"

type quoteActivityItem struct {
	ID          string            `dynamodbav:"id"`
	QuoteID     string            `dynamodbav:"quote_id"`
	Type        string            `dynamodbav:"activity_type"`
	Description string            `dynamodbav:"description,omitempty"`
	CreatedBy   string            `dynamodbav:"created_by,omitempty"`
	Metadata    map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

// QuoteActivityDynamoRepository persists the quote audit trail in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id, SK: created_at)
type QuoteActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteActivityRepository = (*QuoteActivityDynamoRepository)(nil)

func NewQuoteActivityDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteActivityDynamoRepository {
	return &QuoteActivityDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteActivityDynamoRepository) Create(ctx context.Context, a entities.QuoteActivity) (entities.QuoteActivity, error) {
	av, err := attributevalue.MarshalMap(toQuoteActivityItem(a))
	if err != nil {
		return entities.QuoteActivity{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteActivity{}, err
	}
	return a, nil
}

func (r *QuoteActivityDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteActivity, error) {
	return queryIndex(ctx, r.ddb, r.tableName, activitiesQuoteIDIndex, "quote_id", quoteID, true, fromQuoteActivityItem)
}

func toQuoteActivityItem(a entities.QuoteActivity) quoteActivityItem {
	return quoteActivityItem{
		ID:          a.ID,
		QuoteID:     a.QuoteID,
		Type:        string(a.Type),
		Description: a.Description,
		CreatedBy:   a.CreatedBy,
		Metadata:    a.Metadata,
		CreatedAt:   formatTime(a.CreatedAt),
	}
}

func fromQuoteActivityItem(it quoteActivityItem) entities.QuoteActivity {
	return entities.QuoteActivity{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		Type:        entities.QuoteActivityType(it.Type),
		Description: it.Description,
		CreatedBy:   it.CreatedBy,
		Metadata:    it.Metadata,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
