package contract

import (
	"context"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BizDocumentRepository interface {
	Create(ctx context.Context, doc *entity.BizDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BizDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BizDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
