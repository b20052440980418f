package service

import (
	"context"
	"time"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/repository/specification"
	"startup-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// ProfileLoader is the read-through cache in front of business profile reads.
// Profiles are rendered into the prompt of every chat turn, so the profile,
// advisory and kit services all read through one shared instance and writers
// invalidate it.
type ProfileLoader struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewProfileLoader(uowFactory unitofwork.RepositoryFactory) *ProfileLoader {
	return &ProfileLoader{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func profileCacheKey(userId uuid.UUID) string {
	return "profile:" + userId.String()
}

// Load returns the user's profile, or nil when none exists. Missing profiles
// are not cached so a freshly onboarded user is picked up immediately.
func (l *ProfileLoader) Load(ctx context.Context, userId uuid.UUID) (*entity.BusinessProfile, error) {
	if cached, found := l.cache.Get(profileCacheKey(userId)); found {
		return cached.(*entity.BusinessProfile), nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.BusinessProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserId: userId})
	if err != nil {
		return nil, err
	}
	if profile != nil {
		l.cache.Set(profileCacheKey(userId), profile, gocache.DefaultExpiration)
	}
	return profile, nil
}

func (l *ProfileLoader) Invalidate(userId uuid.UUID) {
	l.cache.Delete(profileCacheKey(userId))
}
