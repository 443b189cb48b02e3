package response

import (
	"time"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase"
)

type ProfileResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ClerkUserID string    `json:"clerk_user_id,omitempty"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdminOverviewResponse struct {
	Quotes     []QuoteResponse     `json:"quotes"`
	Profiles   []ProfileResponse   `json:"profiles"`
	Businesses []entities.Business `json:"businesses"`
}

type ProfileDataResponse struct {
	UserID     string              `json:"user_id"`
	Role       string              `json:"role"`
	Profile    *ProfileResponse    `json:"profile"`
	Businesses []entities.Business `json:"businesses"`
}

type ActivityListResponse struct {
	Activities []entities.QuoteActivity `json:"activities"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	fullName := p.FullName
	if fullName == "" {
		fullName = firstNonBlank(joinName(p.FirstName, p.LastName), p.Email)
	}
	role := p.Role
	if role == "" {
		role = entities.RoleUser
	}
	return ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		ClerkUserID: p.ClerkUserID,
		Email:       p.Email,
		FullName:    fullName,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		AvatarURL:   p.AvatarURL,
		Role:        string(role),
		CreatedAt:   p.CreatedAt,
	}
}

func FromAdminOverview(o usecase.AdminOverview) AdminOverviewResponse {
	profiles := make([]ProfileResponse, 0, len(o.Profiles))
	for _, p := range o.Profiles {
		profiles = append(profiles, FromProfile(p))
	}
	return AdminOverviewResponse{
		Quotes:     FromQuotes(o.Quotes),
		Profiles:   profiles,
		Businesses: nonNilBusinesses(o.Businesses),
	}
}

func FromProfileData(caller entities.Caller, d usecase.ProfileData) ProfileDataResponse {
	out := ProfileDataResponse{
		UserID:     caller.ID,
		Role:       string(caller.Role),
		Businesses: nonNilBusinesses(d.Businesses),
	}
	if d.Profile != nil {
		p := FromProfile(*d.Profile)
		out.Profile = &p
	}
	return out
}

func FromActivities(items []entities.QuoteActivity) ActivityListResponse {
	if items == nil {
		items = []entities.QuoteActivity{}
	}
	return ActivityListResponse{Activities: items}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

func nonNilBusinesses(b []entities.Business) []entities.Business {
	if b == nil {
		return []entities.Business{}
	}
	return b
}
