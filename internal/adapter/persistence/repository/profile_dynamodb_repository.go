package repository

import (
	"context"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	profilesUserIDIndex      = "user_id-index"
	profilesClerkUserIDIndex = "clerk_user_id-index"
)

type profileItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	ClerkUserID string `dynamodbav:"clerk_user_id,omitempty"`
	Email       string `dynamodbav:"email"`
	FirstName   string `dynamodbav:"first_name,omitempty"`
	LastName    string `dynamodbav:"last_name,omitempty"`
	FullName    string `dynamodbav:"full_name,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	AvatarURL   string `dynamodbav:"avatar_url,omitempty"`
	Role        string `dynamodbav:"role,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository reads user profiles synced from the identity provider.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: clerk_user_id-index (PK: clerk_user_id)
type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	return r.first(ctx, profilesUserIDIndex, "user_id", userID)
}

func (r *ProfileDynamoRepository) GetByClerkUserID(ctx context.Context, clerkUserID string) (entities.Profile, error) {
	return r.first(ctx, profilesClerkUserIDIndex, "clerk_user_id", clerkUserID)
}

func (r *ProfileDynamoRepository) ListAll(ctx context.Context) ([]entities.Profile, error) {
	return scanAll(ctx, r.ddb, r.tableName, fromProfileItem)
}

func (r *ProfileDynamoRepository) first(ctx context.Context, index, key, value string) (entities.Profile, error) {
	if value == "" {
		return entities.Profile{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Items) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func fromProfileItem(it profileItem) entities.Profile {
	return entities.Profile{
		ID:          it.ID,
		UserID:      it.UserID,
		ClerkUserID: it.ClerkUserID,
		Email:       it.Email,
		FirstName:   it.FirstName,
		LastName:    it.LastName,
		FullName:    it.FullName,
		Phone:       it.Phone,
		AvatarURL:   it.AvatarURL,
		Role:        entities.NormalizeRole(it.Role),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
