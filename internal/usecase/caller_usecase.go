package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"
)

//go:generate mockgen -source=caller_usecase.go -destination=../adapter/http/handlers/mocks/mock_caller_usecase.go -package=mocks

// ICallerResolver turns a bearer token into the Caller of a request.
//
// Role resolution order:
//   - role carried by the identity provider token metadata
//   - stored profile, looked up by clerk_user_id and then by user_id
//   - "user"
type ICallerResolver interface {
	Resolve(ctx context.Context, token string) (entities.Caller, error)
}

type CallerResolver struct {
	verifier interfaces.IIdentityVerifier
	profiles interfaces.IProfileRepository
}

var _ ICallerResolver = (*CallerResolver)(nil)

func NewCallerResolver(verifier interfaces.IIdentityVerifier, profiles interfaces.IProfileRepository) *CallerResolver {
	return &CallerResolver{verifier: verifier, profiles: profiles}
}

// Resolve returns an anonymous Caller for an empty token. An invalid token is
// ErrUnauthenticated; a failed profile lookup is ErrRoleResolution.
func (r *CallerResolver) Resolve(ctx context.Context, token string) (entities.Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Caller{}, nil
	}
	if r.verifier == nil {
		return entities.Caller{}, errors.New("identity verifier not configured")
	}

	id, err := r.verifier.Verify(ctx, token)
	if err != nil {
		log.Printf("[auth][usecase] token rejected err=%v", err)
		return entities.Caller{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if strings.TrimSpace(id.UserID) == "" {
		return entities.Caller{}, ErrUnauthenticated
	}

	caller := entities.Caller{ID: id.UserID}
	if role := entities.NormalizeRole(id.Role); role.IsKnown() {
		caller.Role = role
		caller.RoleSource = entities.RoleSourceIdentityProvider
		return caller, nil
	}

	profile, err := r.lookupProfile(ctx, id.UserID)
	if err != nil {
		log.Printf("[auth][usecase] role lookup failed user_id=%s err=%v", id.UserID, err)
		return entities.Caller{}, fmt.Errorf("%w: %v", ErrRoleResolution, err)
	}
	if role := entities.NormalizeRole(string(profile.Role)); role != "" {
		caller.Role = role
		caller.RoleSource = entities.RoleSourceProfile
		return caller, nil
	}

	caller.Role = entities.RoleUser
	return caller, nil
}

func (r *CallerResolver) lookupProfile(ctx context.Context, userID string) (entities.Profile, error) {
	if r.profiles == nil {
		return entities.Profile{}, nil
	}
	p, err := r.profiles.GetByClerkUserID(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID != "" {
		return p, nil
	}
	return r.profiles.GetByUserID(ctx, userID)
}
