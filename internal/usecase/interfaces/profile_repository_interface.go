package interfaces

import (
	"context"
	"webara_portal/internal/domain/entities"
)

//go:generate mockgen -source=profile_repository_interface.go -destination=mocks/mock_profile_repository_interface.go -package=mock_interfaces

// IProfileRepository reads stored user profiles. A missing profile is a zero-value Profile.

type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
	GetByClerkUserID(ctx context.Context, clerkUserID string) (entities.Profile, error)
	ListAll(ctx context.Context) ([]entities.Profile, error)
}
