package model

import (
	"time"

	"github.com/google/uuid"
)

type BusinessProfile struct {
	UserId             uuid.UUID `gorm:"type:uuid;primaryKey"` // One profile per user
	FullName           string    `gorm:"type:varchar(255)"`
	BusinessName       string    `gorm:"type:varchar(255)"`
	BusinessStage      string    `gorm:"type:varchar(50)"`
	Industry           string    `gorm:"type:varchar(100)"`
	Location           string    `gorm:"type:varchar(255)"`
	Registered         bool      `gorm:"default:false"`
	EntityType         string    `gorm:"type:varchar(100)"`
	TeamSize           int       `gorm:"default:0"`
	RevenueModel       string    `gorm:"type:varchar(100)"`
	FundingNeeded      bool      `gorm:"default:false"`
	BrandingStatus     string    `gorm:"type:varchar(100)"`
	FinancialStatus    string    `gorm:"type:varchar(100)"`
	GovtSchemeInterest bool      `gorm:"default:false"`
	LegalHelpNeeded    bool      `gorm:"default:false"`
	ProfilePictureURL  string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}
