package usecase

import (
	"context"
	"log"

	"webara_portal/internal/domain/entities"
	"webara_portal/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=profile_usecase.go -destination=../adapter/http/handlers/mocks/mock_profile_usecase.go -package=mocks

// ProfileData is what the owner dashboard shows next to the quote list.
// Profile is nil when the user has no stored profile yet.
type ProfileData struct {
	Profile    *entities.Profile
	Businesses []entities.Business
}

type IProfileUseCase interface {
	GetProfileData(ctx context.Context, caller entities.Caller) (ProfileData, error)
}

type ProfileUseCase struct {
	profiles   interfaces.IProfileRepository
	businesses interfaces.IBusinessRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(profiles interfaces.IProfileRepository, businesses interfaces.IBusinessRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, businesses: businesses}
}

// GetProfileData loads the profile and the businesses concurrently.
func (u *ProfileUseCase) GetProfileData(ctx context.Context, caller entities.Caller) (ProfileData, error) {
	if !caller.IsAuthenticated() {
		return ProfileData{}, ErrUnauthenticated
	}

	var (
		p          entities.Profile
		businesses []entities.Business
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if p, err = u.profiles.GetByClerkUserID(gctx, caller.ID); err != nil {
			log.Printf("[profile][usecase] load failed user_id=%s err=%v", caller.ID, err)
			return err
		}
		if p.ID != "" {
			return nil
		}
		if p, err = u.profiles.GetByUserID(gctx, caller.ID); err != nil {
			log.Printf("[profile][usecase] load failed user_id=%s err=%v", caller.ID, err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if businesses, err = u.businesses.ListByOwnerID(gctx, caller.ID); err != nil {
			log.Printf("[profile][usecase] businesses failed user_id=%s err=%v", caller.ID, err)
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProfileData{}, err
	}

	out := ProfileData{Businesses: businesses}
	if p.ID != "" {
		out.Profile = &p
	}
	return out, nil
}
