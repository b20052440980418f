package implementation

import (
	"context"
	"errors"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/mapper"
	"startup-companion-be/internal/model"
	"startup-companion-be/internal/repository/contract"
	"startup-companion-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AiResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewAiResponseRepository(db *gorm.DB) contract.AiResponseRepository {
	return &AiResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *AiResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AiResponseRepositoryImpl) Create(ctx context.Context, response *entity.AiResponse) error {
	m := r.mapper.AiResponseToModel(response)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*response = *r.mapper.AiResponseToEntity(m)
	return nil
}

func (r *AiResponseRepositoryImpl) Update(ctx context.Context, response *entity.AiResponse) error {
	m := r.mapper.AiResponseToModel(response)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*response = *r.mapper.AiResponseToEntity(m)
	return nil
}

func (r *AiResponseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AiResponse{}, id).Error
}

func (r *AiResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiResponse, error) {
	var m model.AiResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AiResponseToEntity(&m), nil
}

func (r *AiResponseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiResponse, error) {
	var models []*model.AiResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AiResponse, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AiResponseToEntity(m)
	}
	return entities, nil
}

func (r *AiResponseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AiResponse{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AiResponseRepositoryImpl) SetSatisfaction(ctx context.Context, id uuid.UUID, satisfied bool) error {
	return r.db.WithContext(ctx).
		Model(&model.AiResponse{}).
		Where("id = ?", id).
		Update("is_satisfied", satisfied).Error
}

func (r *AiResponseRepositoryImpl) MarkPdfGenerated(ctx context.Context, id uuid.UUID, pdfURL string) error {
	return r.db.WithContext(ctx).
		Model(&model.AiResponse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"pdf_generated": true, "pdf_url": pdfURL}).Error
}
