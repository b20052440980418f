package contract

import (
	"context"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AiResponseRepository interface {
	Create(ctx context.Context, response *entity.AiResponse) error
	Update(ctx context.Context, response *entity.AiResponse) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiResponse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiResponse, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SetSatisfaction(ctx context.Context, id uuid.UUID, satisfied bool) error
	MarkPdfGenerated(ctx context.Context, id uuid.UUID, pdfURL string) error
}
