package unitofwork

import (
	"context"

	"startup-companion-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BusinessProfileRepository() contract.BusinessProfileRepository
	ChatSessionRepository() contract.ChatSessionRepository
	AiResponseRepository() contract.AiResponseRepository
	BizDocumentRepository() contract.BizDocumentRepository
	SavedDocumentRepository() contract.SavedDocumentRepository
}
