package contract

import (
	"context"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SavedDocumentRepository interface {
	Create(ctx context.Context, doc *entity.SavedDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
