package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is keyed by the owning user's id. Empty strings mean the
// founder has not filled the field in yet.
type BusinessProfile struct {
	UserId             uuid.UUID
	FullName           string
	BusinessName       string
	BusinessStage      string
	Industry           string
	Location           string
	Registered         bool
	EntityType         string
	TeamSize           int
	RevenueModel       string
	FundingNeeded      bool
	BrandingStatus     string
	FinancialStatus    string
	GovtSchemeInterest bool
	LegalHelpNeeded    bool
	ProfilePictureURL  string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
