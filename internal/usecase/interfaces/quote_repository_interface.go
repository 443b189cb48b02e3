package interfaces

import (
	"context"
	"webara_portal/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Lookups and updates return a zero-value Quote (empty ID) when the id does not exist.
// Update methods refresh updated_at and return the full record after the write.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateAdminFeedback(ctx context.Context, id string, feedback *string) (entities.Quote, error)
	UpdateUserFeedback(ctx context.Context, id string, feedback *string) (entities.Quote, error)
}
