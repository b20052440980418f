package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SessionType string
	Title       string
	// PendingOffer holds the domain key of an open specialist handoff offer,
	// empty when none is pending.
	PendingOffer string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
