package interfaces

import (
	"context"
	"webara_portal/internal/domain/entities"
)

//go:generate mockgen -source=quote_activity_repository_interface.go -destination=mocks/mock_quote_activity_repository_interface.go -package=mock_interfaces

// IQuoteActivityRepository stores the audit trail of quote mutations.

type IQuoteActivityRepository interface {
	Create(ctx context.Context, a entities.QuoteActivity) (entities.QuoteActivity, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteActivity, error)
}
