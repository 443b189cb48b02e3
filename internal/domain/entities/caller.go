package entities

// RoleSource records where a caller's role came from.
type RoleSource string

const (
	RoleSourceNone             RoleSource = ""
	RoleSourceIdentityProvider RoleSource = "identity_provider"
	RoleSourceProfile          RoleSource = "profile"
)

// Caller is the authorization context of one request. It is resolved once,
// before any lifecycle operation runs, and passed explicitly to each of them.
//
// The zero value is an anonymous caller.
type Caller struct {
	ID         string
	Role       Role
	RoleSource RoleSource
}

func (c Caller) IsAuthenticated() bool {
	return c.ID != ""
}

// IsAdmin is the only role distinction that grants privileges.
func (c Caller) IsAdmin() bool {
	return c.IsAuthenticated() && c.Role == RoleAdmin
}

// Owns reports whether the caller is the owner of q.
func (c Caller) Owns(q Quote) bool {
	return c.IsAuthenticated() && q.OwnerID == c.ID
}
