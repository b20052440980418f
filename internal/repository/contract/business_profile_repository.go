package contract

import (
	"context"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BusinessProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.BusinessProfile) error
	Delete(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessProfile, error)
	UpdateProfilePicture(ctx context.Context, userId uuid.UUID, url string) error
}
