package interfaces

import (
	"context"
	"errors"
)

//go:generate mockgen -source=identity_verifier_interface.go -destination=mocks/mock_identity_verifier_interface.go -package=mock_interfaces

// ErrInvalidIdentityToken is returned by verifiers for malformed, expired or
// badly signed tokens.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// Identity is what the hosted identity provider vouches for.
// Role is the raw metadata role and may be empty.
type Identity struct {
	UserID string
	Role   string
}

type IIdentityVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
