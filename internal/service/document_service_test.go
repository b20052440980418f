package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentFixture() (IDocumentService, *memDB, *memBlobStore) {
	db := newMemDB()
	store := newMemBlobStore()
	svc := NewDocumentService(&memFactory{db: db}, store, nopLogger{})
	return svc, db, store
}

func TestDocumentUploadStoresBlobAndMetadata(t *testing.T) {
	svc, db, store := newDocumentFixture()
	userId := uuid.New()

	res, err := svc.Upload(context.Background(), userId, "pitch-deck.pdf", "application/pdf", 12, strings.NewReader("fake pdf data"))
	require.NoError(t, err)
	assert.Equal(t, "pitch-deck.pdf", res.FileName)
	assert.NotEmpty(t, res.URL)

	require.Len(t, db.docs, 1)
	assert.Len(t, store.files, 1)
}

func TestDocumentUploadStorageFailureLeavesNoMetadata(t *testing.T) {
	svc, db, store := newDocumentFixture()
	store.uploadErr = errors.New("bucket unavailable")

	_, err := svc.Upload(context.Background(), uuid.New(), "a.pdf", "application/pdf", 1, strings.NewReader("x"))
	require.Error(t, err)
	assert.Empty(t, db.docs)
}

func TestDocumentDeleteRemovesBlobThenMetadata(t *testing.T) {
	svc, db, store := newDocumentFixture()
	userId := uuid.New()

	res, err := svc.Upload(context.Background(), userId, "notes.txt", "text/plain", 5, strings.NewReader("hello"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), userId, res.Id))
	assert.Empty(t, db.docs)
	assert.Empty(t, store.files)
}

func TestDocumentDeleteKeepsMetadataWhenStorageFails(t *testing.T) {
	svc, db, store := newDocumentFixture()
	userId := uuid.New()

	res, err := svc.Upload(context.Background(), userId, "notes.txt", "text/plain", 5, strings.NewReader("hello"))
	require.NoError(t, err)

	store.deleteErr = errors.New("storage down")
	err = svc.Delete(context.Background(), userId, res.Id)
	require.Error(t, err)

	// Metadata row survives so the document stays visible and the delete can
	// be retried.
	assert.Len(t, db.docs, 1)
}

func TestDocumentDeleteRejectsForeignDocument(t *testing.T) {
	svc, db, _ := newDocumentFixture()
	owner := uuid.New()

	docId := uuid.New()
	db.docs[docId] = &entity.BizDocument{
		Id:         docId,
		UserId:     owner,
		FileName:   "private.pdf",
		FilePath:   owner.String() + "/private.pdf",
		UploadedAt: time.Now(),
	}

	err := svc.Delete(context.Background(), uuid.New(), docId)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Len(t, db.docs, 1)
}

func TestDocumentDownloadStreamsContent(t *testing.T) {
	svc, _, _ := newDocumentFixture()
	userId := uuid.New()

	res, err := svc.Upload(context.Background(), userId, "plan.txt", "text/plain", 5, strings.NewReader("hello"))
	require.NoError(t, err)

	doc, rc, err := svc.Download(context.Background(), userId, res.Id)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "plan.txt", doc.FileName)

	_, _, err = svc.Download(context.Background(), uuid.New(), res.Id)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestListGeneratedReturnsBotDocuments(t *testing.T) {
	svc, db, _ := newDocumentFixture()
	userId := uuid.New()

	withDoc := &entity.AiResponse{
		Id:           uuid.New(),
		UserId:       userId,
		SessionId:    uuid.New(),
		BotType:      "registration_guide_guru",
		PdfGenerated: true,
		PdfURL:       "http://localhost:3000/uploads/ai-response-docs/x.html",
		CreatedAt:    time.Now(),
	}
	plain := &entity.AiResponse{
		Id:        uuid.New(),
		UserId:    userId,
		SessionId: uuid.New(),
		BotType:   "main_dashboard",
		CreatedAt: time.Now(),
	}
	db.responses[withDoc.Id] = withDoc
	db.responses[plain.Id] = plain

	docs, err := svc.ListGenerated(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, withDoc.PdfURL, docs[0].URL)
}

func seedConversation(db *memDB, userId uuid.UUID) *entity.ChatSession {
	session := &entity.ChatSession{
		Id:          uuid.New(),
		UserId:      userId,
		SessionType: "legal",
		Title:       "Legal Advisory Session",
		CreatedAt:   time.Now(),
	}
	db.sessions[session.Id] = session

	first := &entity.AiResponse{
		Id:          uuid.New(),
		UserId:      userId,
		SessionId:   session.Id,
		BotType:     "legal_advisor",
		UserMessage: "Do I need a founders agreement?",
		AiReply:     "Yes, before you take on a co-founder.",
		CreatedAt:   time.Now().Add(-2 * time.Minute),
	}
	second := &entity.AiResponse{
		Id:          uuid.New(),
		UserId:      userId,
		SessionId:   session.Id,
		BotType:     "legal_advisor",
		UserMessage: "What should it cover?",
		AiReply:     "Equity split, vesting and exit terms.",
		CreatedAt:   time.Now().Add(-time.Minute),
	}
	db.responses[first.Id] = first
	db.responses[second.Id] = second
	return session
}

func TestSaveConversationFlattensTranscript(t *testing.T) {
	svc, db, _ := newDocumentFixture()
	userId := uuid.New()
	session := seedConversation(db, userId)

	res, err := svc.SaveConversation(context.Background(), userId, &dto.SaveConversationRequest{
		SessionId: session.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, "Legal Advisory Session", res.Title)
	assert.Contains(t, res.Content, "User: Do I need a founders agreement?")
	assert.Contains(t, res.Content, "Assistant: Equity split, vesting and exit terms.")
	// Turns appear in chronological order
	assert.Less(t,
		strings.Index(res.Content, "founders agreement"),
		strings.Index(res.Content, "What should it cover"))

	require.Len(t, db.saved, 1)
}

func TestSaveConversationUsesSuppliedTitle(t *testing.T) {
	svc, db, _ := newDocumentFixture()
	userId := uuid.New()
	session := seedConversation(db, userId)

	res, err := svc.SaveConversation(context.Background(), userId, &dto.SaveConversationRequest{
		SessionId: session.Id,
		Title:     "Founders agreement notes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Founders agreement notes", res.Title)
}

func TestSaveConversationRejectsForeignSession(t *testing.T) {
	svc, db, _ := newDocumentFixture()
	session := seedConversation(db, uuid.New())

	_, err := svc.SaveConversation(context.Background(), uuid.New(), &dto.SaveConversationRequest{
		SessionId: session.Id,
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, db.saved)
}

func TestSavedDocumentLifecycle(t *testing.T) {
	svc, db, _ := newDocumentFixture()
	userId := uuid.New()
	session := seedConversation(db, userId)

	saved, err := svc.SaveConversation(context.Background(), userId, &dto.SaveConversationRequest{SessionId: session.Id})
	require.NoError(t, err)

	list, err := svc.ListSaved(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.GetSaved(context.Background(), uuid.New(), saved.Id)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	got, err := svc.GetSaved(context.Background(), userId, saved.Id)
	require.NoError(t, err)
	assert.Equal(t, saved.Content, got.Content)

	require.NoError(t, svc.DeleteSaved(context.Background(), userId, saved.Id))
	assert.Empty(t, db.saved)
}

func TestDocumentListScopedToUser(t *testing.T) {
	svc, _, _ := newDocumentFixture()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Upload(context.Background(), alice, "a.pdf", "application/pdf", 1, strings.NewReader("a"))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), bob, "b.pdf", "application/pdf", 1, strings.NewReader("b"))
	require.NoError(t, err)

	docs, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.pdf", docs[0].FileName)
}
