package dto

import (
	"time"

	"github.com/google/uuid"
)

type BusinessProfileResponse struct {
	UserId             uuid.UUID  `json:"user_id"`
	FullName           string     `json:"full_name"`
	BusinessName       string     `json:"business_name"`
	BusinessStage      string     `json:"business_stage"`
	Industry           string     `json:"industry"`
	Location           string     `json:"location"`
	Registered         bool       `json:"registered"`
	EntityType         string     `json:"entity_type"`
	TeamSize           int        `json:"team_size"`
	RevenueModel       string     `json:"revenue_model"`
	FundingNeeded      bool       `json:"funding_needed"`
	BrandingStatus     string     `json:"branding_status"`
	FinancialStatus    string     `json:"financial_status"`
	GovtSchemeInterest bool       `json:"govt_scheme_interest"`
	LegalHelpNeeded    bool       `json:"legal_help_needed"`
	ProfilePictureURL  string     `json:"profile_picture_url,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// UpsertBusinessProfileRequest carries the full profile form. Every field is
// optional so the frontend can save partial progress.
type UpsertBusinessProfileRequest struct {
	FullName           string `json:"full_name" validate:"omitempty,max=255"`
	BusinessName       string `json:"business_name" validate:"omitempty,max=255"`
	BusinessStage      string `json:"business_stage" validate:"omitempty,max=50"`
	Industry           string `json:"industry" validate:"omitempty,max=100"`
	Location           string `json:"location" validate:"omitempty,max=255"`
	Registered         bool   `json:"registered"`
	EntityType         string `json:"entity_type" validate:"omitempty,max=100"`
	TeamSize           int    `json:"team_size" validate:"omitempty,min=0"`
	RevenueModel       string `json:"revenue_model" validate:"omitempty,max=100"`
	FundingNeeded      bool   `json:"funding_needed"`
	BrandingStatus     string `json:"branding_status" validate:"omitempty,max=100"`
	FinancialStatus    string `json:"financial_status" validate:"omitempty,max=100"`
	GovtSchemeInterest bool   `json:"govt_scheme_interest"`
	LegalHelpNeeded    bool   `json:"legal_help_needed"`
}

type UploadProfilePictureResponse struct {
	ProfilePictureURL string `json:"profile_picture_url"`
}
