package interfaces

import (
	"context"
	"webara_portal/internal/domain/entities"
)

//go:generate mockgen -source=business_repository_interface.go -destination=mocks/mock_business_repository_interface.go -package=mock_interfaces

type IBusinessRepository interface {
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Business, error)
	ListAll(ctx context.Context) ([]entities.Business, error)
}
