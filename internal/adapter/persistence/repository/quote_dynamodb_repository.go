package repository

import (
	"context"
	"errors"
	"time"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quotesUserIDIndex = "user_id-index"

type quoteItem struct {
	ID                       string   `dynamodbav:"id"`
	UserID                   string   `dynamodbav:"user_id"`
	BusinessID               string   `dynamodbav:"business_id,omitempty"`
	Title                    string   `dynamodbav:"title"`
	WebsiteNeeds             string   `dynamodbav:"website_needs"`
	CollaborationPreferences string   `dynamodbav:"collaboration_preferences,omitempty"`
	BudgetRange              string   `dynamodbav:"budget_range,omitempty"`
	AIQuote                  string   `dynamodbav:"ai_quote,omitempty"`
	SuggestedCollaboration   string   `dynamodbav:"suggested_collaboration,omitempty"`
	AISuggestions            []string `dynamodbav:"ai_suggestions,omitempty"`
	EstimatedCost            string   `dynamodbav:"estimated_cost,omitempty"`
	Currency                 string   `dynamodbav:"currency"`
	Status                   string   `dynamodbav:"status"`
	AdminFeedback            *string  `dynamodbav:"admin_feedback,omitempty"`
	UserFeedback             *string  `dynamodbav:"user_feedback,omitempty"`
	CreatedAt                string   `dynamodbav:"created_at"`
	UpdatedAt                string   `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Absent feedback is stored as a missing attribute, never as an empty string.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Quote, error) {
	return queryIndex(ctx, r.ddb, r.tableName, quotesUserIDIndex, "user_id", ownerID, true, fromQuoteItem)
}

func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return scanAll(ctx, r.ddb, r.tableName, fromQuoteItem)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateAdminFeedback(ctx context.Context, id string, feedback *string) (entities.Quote, error) {
	return r.update(ctx, id, feedbackUpdate("admin_feedback", feedback))
}

func (r *QuoteDynamoRepository) UpdateUserFeedback(ctx context.Context, id string, feedback *string) (entities.Quote, error) {
	return r.update(ctx, id, feedbackUpdate("user_feedback", feedback))
}

type updateBuilder func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string)

// feedbackUpdate sets the attribute, or removes it when feedback is nil.
func feedbackUpdate(attr string, feedback *string) updateBuilder {
	return func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{
			"#fb":         attr,
			"#updated_at": "updated_at",
		}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		if feedback == nil {
			return "SET #updated_at = :updated_at REMOVE #fb", vals, names
		}
		vals[":fb"] = &types.AttributeValueMemberS{Value: *feedback}
		return "SET #fb = :fb, #updated_at = :updated_at", vals, names
	}
}

func (r *QuoteDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.Quote, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                       q.ID,
		UserID:                   q.OwnerID,
		BusinessID:               derefString(q.BusinessID),
		Title:                    q.Title,
		WebsiteNeeds:             q.WebsiteNeeds,
		CollaborationPreferences: q.CollaborationPreferences,
		BudgetRange:              q.BudgetRange,
		AIQuote:                  q.AIQuote,
		SuggestedCollaboration:   q.SuggestedCollaboration,
		AISuggestions:            q.AISuggestions,
		EstimatedCost:            floatPtrToString(q.EstimatedCost),
		Currency:                 q.Currency,
		Status:                   string(q.Status),
		AdminFeedback:            entities.NormalizeFeedback(q.AdminFeedback),
		UserFeedback:             entities.NormalizeFeedback(q.UserFeedback),
		CreatedAt:                formatTime(q.CreatedAt),
		UpdatedAt:                formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	suggestions := it.AISuggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	status := entities.QuoteStatus(it.Status)
	if status == "" {
		status = entities.QuoteStatusPending
	}
	return entities.Quote{
		ID:                       it.ID,
		OwnerID:                  it.UserID,
		BusinessID:               stringPtr(it.BusinessID),
		Title:                    it.Title,
		WebsiteNeeds:             it.WebsiteNeeds,
		CollaborationPreferences: it.CollaborationPreferences,
		BudgetRange:              it.BudgetRange,
		AIQuote:                  it.AIQuote,
		SuggestedCollaboration:   it.SuggestedCollaboration,
		AISuggestions:            suggestions,
		EstimatedCost:            stringToFloatPtr(it.EstimatedCost),
		Currency:                 it.Currency,
		Status:                   status,
		AdminFeedback:            it.AdminFeedback,
		UserFeedback:             it.UserFeedback,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}
