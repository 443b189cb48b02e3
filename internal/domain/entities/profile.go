package entities

import (
	"strings"
	"time"
)

// Role is the portal role of a signed-in user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	// RoleStaff exists in stored profiles but carries no extra privileges here.
	RoleStaff Role = "webara_staff"
)

// IsKnown reports whether r is one of the portal roles. Generic provider
// values such as "authenticated" are not.
func (r Role) IsKnown() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// NormalizeRole lower-cases and trims a raw role value. Blank input yields "".
func NormalizeRole(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

// Profile mirrors a user of the hosted identity provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (clerk_user_id-index): clerk_user_id
type Profile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ClerkUserID string    `json:"clerk_user_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
