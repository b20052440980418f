package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/internal/repository/specification"
	"startup-companion-be/internal/repository/unitofwork"
	"startup-companion-be/pkg/docstore"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, fileName, mimeType string, fileSize int64, file io.Reader) (*dto.DocumentResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.DocumentResponse, error)
	Download(ctx context.Context, userId uuid.UUID, docId uuid.UUID) (*dto.DocumentResponse, io.ReadCloser, error)
	ListGenerated(ctx context.Context, userId uuid.UUID) ([]*dto.GeneratedDocumentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, docId uuid.UUID) error

	SaveConversation(ctx context.Context, userId uuid.UUID, req *dto.SaveConversationRequest) (*dto.SavedDocumentResponse, error)
	ListSaved(ctx context.Context, userId uuid.UUID) ([]*dto.SavedDocumentResponse, error)
	GetSaved(ctx context.Context, userId uuid.UUID, docId uuid.UUID) (*dto.SavedDocumentResponse, error)
	DeleteSaved(ctx context.Context, userId uuid.UUID, docId uuid.UUID) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
	store      docstore.Store
	logger     logger.ILogger
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory, store docstore.Store, log logger.ILogger) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
		store:      store,
		logger:     log,
	}
}

func (s *documentService) toResponse(d *entity.BizDocument) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:         d.Id,
		FileName:   d.FileName,
		FileSize:   d.FileSize,
		MimeType:   d.MimeType,
		URL:        s.store.PublicURL(docstore.BucketBizDocuments, d.FilePath),
		UploadedAt: d.UploadedAt,
	}
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, fileName, mimeType string, fileSize int64, file io.Reader) (*dto.DocumentResponse, error) {
	doc := &entity.BizDocument{
		Id:         uuid.New(),
		UserId:     userId,
		FileName:   fileName,
		FilePath:   fmt.Sprintf("%s/%d_%s", userId.String(), time.Now().Unix(), fileName),
		FileSize:   fileSize,
		MimeType:   mimeType,
		UploadedAt: time.Now(),
	}

	if err := s.store.Upload(ctx, docstore.BucketBizDocuments, doc.FilePath, file); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BizDocumentRepository().Create(ctx, doc); err != nil {
		// Blob without metadata is invisible to the user; clean it up.
		if cleanupErr := s.store.Delete(ctx, docstore.BucketBizDocuments, doc.FilePath); cleanupErr != nil {
			s.logger.Warn("documents", "orphan blob cleanup failed", map[string]interface{}{
				"path":  doc.FilePath,
				"error": cleanupErr.Error(),
			})
		}
		return nil, err
	}

	return s.toResponse(doc), nil
}

func (s *documentService) List(ctx context.Context, userId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.BizDocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserId: userId},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DocumentResponse, len(docs))
	for i, d := range docs {
		responses[i] = s.toResponse(d)
	}
	return responses, nil
}

// Download streams the stored file after an ownership check.
func (s *documentService) Download(ctx context.Context, userId uuid.UUID, docId uuid.UUID) (*dto.DocumentResponse, io.ReadCloser, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.BizDocumentRepository().FindOne(ctx, specification.ByID{ID: docId})
	if err != nil {
		return nil, nil, err
	}
	if doc == nil || doc.UserId != userId {
		return nil, nil, ErrDocumentNotFound
	}

	rc, err := s.store.Download(ctx, docstore.BucketBizDocuments, doc.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return s.toResponse(doc), rc, nil
}

// ListGenerated returns the advisory documents produced by the bots, newest
// first. These are ai_responses rows that carry a generated file.
func (s *documentService) ListGenerated(ctx context.Context, userId uuid.UUID) ([]*dto.GeneratedDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.AiResponseRepository().FindAll(ctx,
		specification.UserOwnedBy{UserId: userId},
		specification.Filter("pdf_generated", true),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	docs := make([]*dto.GeneratedDocumentResponse, len(records))
	for i, r := range records {
		docs[i] = &dto.GeneratedDocumentResponse{
			ResponseId: r.Id,
			SessionId:  r.SessionId,
			BotType:    r.BotType,
			URL:        r.PdfURL,
			CreatedAt:  r.CreatedAt,
		}
	}
	return docs, nil
}

func toSavedResponse(d *entity.SavedDocument) *dto.SavedDocumentResponse {
	return &dto.SavedDocumentResponse{
		Id:        d.Id,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// SaveConversation flattens a chat session into a free-text document. The
// transcript is a plain alternation of user and assistant turns.
func (s *documentService) SaveConversation(ctx context.Context, userId uuid.UUID, req *dto.SaveConversationRequest) (*dto.SavedDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserId != userId {
		return nil, ErrSessionNotFound
	}

	records, err := uow.AiResponseRepository().FindAll(ctx,
		specification.Filter("session_id", session.Id),
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	var transcript strings.Builder
	for _, r := range records {
		transcript.WriteString("User: " + r.UserMessage + "\n\n")
		transcript.WriteString("Assistant: " + r.AiReply + "\n\n")
	}

	title := req.Title
	if title == "" {
		title = session.Title
	}

	doc := &entity.SavedDocument{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		Content:   strings.TrimRight(transcript.String(), "\n"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.SavedDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("documents", "conversation saved", map[string]interface{}{
		"user_id":    userId.String(),
		"session_id": session.Id.String(),
	})
	return toSavedResponse(doc), nil
}

func (s *documentService) ListSaved(ctx context.Context, userId uuid.UUID) ([]*dto.SavedDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.SavedDocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserId: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SavedDocumentResponse, len(docs))
	for i, d := range docs {
		responses[i] = toSavedResponse(d)
	}
	return responses, nil
}

func (s *documentService) GetSaved(ctx context.Context, userId uuid.UUID, docId uuid.UUID) (*dto.SavedDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.SavedDocumentRepository().FindOne(ctx, specification.ByID{ID: docId})
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.UserId != userId {
		return nil, ErrDocumentNotFound
	}
	return toSavedResponse(doc), nil
}

func (s *documentService) DeleteSaved(ctx context.Context, userId uuid.UUID, docId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.SavedDocumentRepository().FindOne(ctx, specification.ByID{ID: docId})
	if err != nil {
		return err
	}
	if doc == nil || doc.UserId != userId {
		return ErrDocumentNotFound
	}
	return uow.SavedDocumentRepository().Delete(ctx, docId)
}

// Delete removes the stored file first. If the storage delete fails, the
// metadata row is kept so the document stays listed and the delete can be
// retried.
func (s *documentService) Delete(ctx context.Context, userId uuid.UUID, docId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.BizDocumentRepository().FindOne(ctx, specification.ByID{ID: docId})
	if err != nil {
		return err
	}
	if doc == nil || doc.UserId != userId {
		return ErrDocumentNotFound
	}

	if err := s.store.Delete(ctx, docstore.BucketBizDocuments, doc.FilePath); err != nil {
		s.logger.Error("documents", "storage delete failed", map[string]interface{}{
			"document_id": docId.String(),
			"error":       err.Error(),
		})
		return err
	}

	return uow.BizDocumentRepository().Delete(ctx, docId)
}
