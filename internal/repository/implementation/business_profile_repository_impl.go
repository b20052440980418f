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
	"gorm.io/gorm/clause"
)

type BusinessProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BusinessProfileMapper
}

func NewBusinessProfileRepository(db *gorm.DB) contract.BusinessProfileRepository {
	return &BusinessProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewBusinessProfileMapper(),
	}
}

func (r *BusinessProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert inserts the profile or overwrites all form fields for the user.
// The profile picture URL is managed separately and kept on conflict.
func (r *BusinessProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.BusinessProfile) error {
	m := r.mapper.ToModel(profile)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "business_name", "business_stage", "industry", "location",
			"registered", "entity_type", "team_size", "revenue_model", "funding_needed",
			"branding_status", "financial_status", "govt_scheme_interest", "legal_help_needed",
			"updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *BusinessProfileRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.BusinessProfile{}).Error
}

func (r *BusinessProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessProfile, error) {
	var m model.BusinessProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// UpdateProfilePicture sets the picture URL, creating a bare profile row when
// the user has not filled the onboarding form yet.
func (r *BusinessProfileRepositoryImpl) UpdateProfilePicture(ctx context.Context, userId uuid.UUID, url string) error {
	result := r.db.WithContext(ctx).
		Model(&model.BusinessProfile{}).
		Where("user_id = ?", userId).
		Update("profile_picture_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.BusinessProfile{
			UserId:            userId,
			ProfilePictureURL: url,
		}).Error
	}
	return nil
}
