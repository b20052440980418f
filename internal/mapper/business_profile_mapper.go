package mapper

import (
	"time"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/model"
)

type BusinessProfileMapper struct{}

func NewBusinessProfileMapper() *BusinessProfileMapper {
	return &BusinessProfileMapper{}
}

func (m *BusinessProfileMapper) ToEntity(p *model.BusinessProfile) *entity.BusinessProfile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.BusinessProfile{
		UserId:             p.UserId,
		FullName:           p.FullName,
		BusinessName:       p.BusinessName,
		BusinessStage:      p.BusinessStage,
		Industry:           p.Industry,
		Location:           p.Location,
		Registered:         p.Registered,
		EntityType:         p.EntityType,
		TeamSize:           p.TeamSize,
		RevenueModel:       p.RevenueModel,
		FundingNeeded:      p.FundingNeeded,
		BrandingStatus:     p.BrandingStatus,
		FinancialStatus:    p.FinancialStatus,
		GovtSchemeInterest: p.GovtSchemeInterest,
		LegalHelpNeeded:    p.LegalHelpNeeded,
		ProfilePictureURL:  p.ProfilePictureURL,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *BusinessProfileMapper) ToModel(p *entity.BusinessProfile) *model.BusinessProfile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.BusinessProfile{
		UserId:             p.UserId,
		FullName:           p.FullName,
		BusinessName:       p.BusinessName,
		BusinessStage:      p.BusinessStage,
		Industry:           p.Industry,
		Location:           p.Location,
		Registered:         p.Registered,
		EntityType:         p.EntityType,
		TeamSize:           p.TeamSize,
		RevenueModel:       p.RevenueModel,
		FundingNeeded:      p.FundingNeeded,
		BrandingStatus:     p.BrandingStatus,
		FinancialStatus:    p.FinancialStatus,
		GovtSchemeInterest: p.GovtSchemeInterest,
		LegalHelpNeeded:    p.LegalHelpNeeded,
		ProfilePictureURL:  p.ProfilePictureURL,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}
