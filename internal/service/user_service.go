package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/internal/repository/unitofwork"
	"startup-companion-be/pkg/docstore"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("business profile not found")

var allowedPictureExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.BusinessProfileResponse, error)
	UpsertProfile(ctx context.Context, userId uuid.UUID, req *dto.UpsertBusinessProfileRequest) (*dto.BusinessProfileResponse, error)
	UploadProfilePicture(ctx context.Context, userId uuid.UUID, fileName string, file io.Reader) (*dto.UploadProfilePictureResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	store      docstore.Store
	profiles   *ProfileLoader
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, store docstore.Store, profiles *ProfileLoader, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		store:      store,
		profiles:   profiles,
		logger:     log,
	}
}

func toProfileResponse(p *entity.BusinessProfile) *dto.BusinessProfileResponse {
	return &dto.BusinessProfileResponse{
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
		UpdatedAt:          p.UpdatedAt,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.BusinessProfileResponse, error) {
	profile, err := s.profiles.Load(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return toProfileResponse(profile), nil
}

func (s *userService) UpsertProfile(ctx context.Context, userId uuid.UUID, req *dto.UpsertBusinessProfileRequest) (*dto.BusinessProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile := &entity.BusinessProfile{
		UserId:             userId,
		FullName:           req.FullName,
		BusinessName:       req.BusinessName,
		BusinessStage:      req.BusinessStage,
		Industry:           req.Industry,
		Location:           req.Location,
		Registered:         req.Registered,
		EntityType:         req.EntityType,
		TeamSize:           req.TeamSize,
		RevenueModel:       req.RevenueModel,
		FundingNeeded:      req.FundingNeeded,
		BrandingStatus:     req.BrandingStatus,
		FinancialStatus:    req.FinancialStatus,
		GovtSchemeInterest: req.GovtSchemeInterest,
		LegalHelpNeeded:    req.LegalHelpNeeded,
		CreatedAt:          time.Now(),
	}

	if err := uow.BusinessProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.profiles.Invalidate(userId)
	s.logger.Info("profile", "business profile saved", map[string]interface{}{"user_id": userId.String()})

	return toProfileResponse(profile), nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, userId uuid.UUID, fileName string, file io.Reader) (*dto.UploadProfilePictureResponse, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedPictureExts[ext] {
		return nil, fmt.Errorf("unsupported image type: %s", ext)
	}

	path := fmt.Sprintf("%s/avatar%s", userId.String(), ext)
	if err := s.store.Upload(ctx, docstore.BucketProfilePictures, path, file); err != nil {
		return nil, err
	}

	url := s.store.PublicURL(docstore.BucketProfilePictures, path)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BusinessProfileRepository().UpdateProfilePicture(ctx, userId, url); err != nil {
		return nil, err
	}

	s.profiles.Invalidate(userId)

	return &dto.UploadProfilePictureResponse{ProfilePictureURL: url}, nil
}
