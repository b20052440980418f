package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/repository/contract"
	"startup-companion-be/internal/repository/specification"
	"startup-companion-be/internal/repository/unitofwork"
	"startup-companion-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. Specifications are interpreted
// by type switch instead of SQL.

type criteria struct {
	id     *uuid.UUID
	email  *string
	userId *uuid.UUID
	filter map[string]interface{}
}

func parseSpecs(specs []specification.Specification) criteria {
	c := criteria{filter: map[string]interface{}{}}
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			id := sp.ID
			c.id = &id
		case specification.ByEmail:
			email := sp.Email
			c.email = &email
		case specification.UserOwnedBy:
			userId := sp.UserId
			c.userId = &userId
		case specification.FilterBy:
			c.filter[sp.Field] = sp.Value
		}
	}
	return c
}

type memDB struct {
	users     map[uuid.UUID]*entity.User
	profiles  map[uuid.UUID]*entity.BusinessProfile
	sessions  map[uuid.UUID]*entity.ChatSession
	responses map[uuid.UUID]*entity.AiResponse
	docs      map[uuid.UUID]*entity.BizDocument
	saved     map[uuid.UUID]*entity.SavedDocument

	pendingOfferErr error
}

func newMemDB() *memDB {
	return &memDB{
		users:     map[uuid.UUID]*entity.User{},
		profiles:  map[uuid.UUID]*entity.BusinessProfile{},
		sessions:  map[uuid.UUID]*entity.ChatSession{},
		responses: map[uuid.UUID]*entity.AiResponse{},
		docs:      map[uuid.UUID]*entity.BizDocument{},
		saved:     map[uuid.UUID]*entity.SavedDocument{},
	}
}

type memFactory struct{ db *memDB }

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{db: f.db}
}

type memUow struct{ db *memDB }

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) UserRepository() contract.UserRepository {
	return &memUserRepo{db: u.db}
}
func (u *memUow) BusinessProfileRepository() contract.BusinessProfileRepository {
	return &memProfileRepo{db: u.db}
}
func (u *memUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &memSessionRepo{db: u.db}
}
func (u *memUow) AiResponseRepository() contract.AiResponseRepository {
	return &memResponseRepo{db: u.db}
}
func (u *memUow) BizDocumentRepository() contract.BizDocumentRepository {
	return &memDocRepo{db: u.db}
}
func (u *memUow) SavedDocumentRepository() contract.SavedDocumentRepository {
	return &memSavedDocRepo{db: u.db}
}

// User repo

type memUserRepo struct{ db *memDB }

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.db.users[user.Id] = &cp
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.db.users[user.Id] = &cp
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.db.users, id)
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	c := parseSpecs(specs)
	for _, u := range r.db.users {
		if c.id != nil && u.Id != *c.id {
			continue
		}
		if c.email != nil && u.Email != *c.email {
			continue
		}
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.db.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.db.users)), nil
}

// Profile repo

type memProfileRepo struct{ db *memDB }

func (r *memProfileRepo) Upsert(ctx context.Context, profile *entity.BusinessProfile) error {
	if existing, ok := r.db.profiles[profile.UserId]; ok {
		profile.ProfilePictureURL = existing.ProfilePictureURL
	}
	cp := *profile
	r.db.profiles[profile.UserId] = &cp
	return nil
}

func (r *memProfileRepo) Delete(ctx context.Context, userId uuid.UUID) error {
	delete(r.db.profiles, userId)
	return nil
}

func (r *memProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessProfile, error) {
	c := parseSpecs(specs)
	for _, p := range r.db.profiles {
		if c.userId != nil && p.UserId != *c.userId {
			continue
		}
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProfileRepo) UpdateProfilePicture(ctx context.Context, userId uuid.UUID, url string) error {
	p, ok := r.db.profiles[userId]
	if !ok {
		p = &entity.BusinessProfile{UserId: userId}
		r.db.profiles[userId] = p
	}
	p.ProfilePictureURL = url
	return nil
}

// Session repo

type memSessionRepo struct{ db *memDB }

func (r *memSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	cp := *session
	r.db.sessions[session.Id] = &cp
	return nil
}

func (r *memSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	cp := *session
	r.db.sessions[session.Id] = &cp
	return nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.db.sessions, id)
	return nil
}

func (r *memSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	c := parseSpecs(specs)
	for _, s := range r.db.sessions {
		if c.id != nil && s.Id != *c.id {
			continue
		}
		if c.userId != nil && s.UserId != *c.userId {
			continue
		}
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	c := parseSpecs(specs)
	var out []*entity.ChatSession
	for _, s := range r.db.sessions {
		if c.userId != nil && s.UserId != *c.userId {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.db.sessions)), nil
}

func (r *memSessionRepo) SetPendingOffer(ctx context.Context, id uuid.UUID, domainKey string) error {
	if r.db.pendingOfferErr != nil {
		return r.db.pendingOfferErr
	}
	if s, ok := r.db.sessions[id]; ok {
		s.PendingOffer = domainKey
	}
	return nil
}

// Response repo

type memResponseRepo struct{ db *memDB }

func (r *memResponseRepo) Create(ctx context.Context, response *entity.AiResponse) error {
	cp := *response
	r.db.responses[response.Id] = &cp
	return nil
}

func (r *memResponseRepo) Update(ctx context.Context, response *entity.AiResponse) error {
	cp := *response
	r.db.responses[response.Id] = &cp
	return nil
}

func (r *memResponseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.db.responses, id)
	return nil
}

func (r *memResponseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiResponse, error) {
	c := parseSpecs(specs)
	for _, resp := range r.db.responses {
		if c.id != nil && resp.Id != *c.id {
			continue
		}
		cp := *resp
		return &cp, nil
	}
	return nil, nil
}

func (r *memResponseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiResponse, error) {
	c := parseSpecs(specs)
	var out []*entity.AiResponse
	for _, resp := range r.db.responses {
		if c.userId != nil && resp.UserId != *c.userId {
			continue
		}
		if v, ok := c.filter["session_id"]; ok && resp.SessionId != v.(uuid.UUID) {
			continue
		}
		if v, ok := c.filter["pdf_generated"]; ok && resp.PdfGenerated != v.(bool) {
			continue
		}
		cp := *resp
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memResponseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.db.responses)), nil
}

func (r *memResponseRepo) SetSatisfaction(ctx context.Context, id uuid.UUID, satisfied bool) error {
	if resp, ok := r.db.responses[id]; ok {
		resp.IsSatisfied = &satisfied
	}
	return nil
}

func (r *memResponseRepo) MarkPdfGenerated(ctx context.Context, id uuid.UUID, pdfURL string) error {
	if resp, ok := r.db.responses[id]; ok {
		resp.PdfGenerated = true
		resp.PdfURL = pdfURL
	}
	return nil
}

// Document repo

type memDocRepo struct{ db *memDB }

func (r *memDocRepo) Create(ctx context.Context, doc *entity.BizDocument) error {
	cp := *doc
	r.db.docs[doc.Id] = &cp
	return nil
}

func (r *memDocRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.db.docs, id)
	return nil
}

func (r *memDocRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BizDocument, error) {
	c := parseSpecs(specs)
	for _, d := range r.db.docs {
		if c.id != nil && d.Id != *c.id {
			continue
		}
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *memDocRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BizDocument, error) {
	c := parseSpecs(specs)
	var out []*entity.BizDocument
	for _, d := range r.db.docs {
		if c.userId != nil && d.UserId != *c.userId {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memDocRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.db.docs)), nil
}

// Saved document repo

type memSavedDocRepo struct{ db *memDB }

func (r *memSavedDocRepo) Create(ctx context.Context, doc *entity.SavedDocument) error {
	cp := *doc
	r.db.saved[doc.Id] = &cp
	return nil
}

func (r *memSavedDocRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.db.saved, id)
	return nil
}

func (r *memSavedDocRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedDocument, error) {
	c := parseSpecs(specs)
	for _, d := range r.db.saved {
		if c.id != nil && d.Id != *c.id {
			continue
		}
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *memSavedDocRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedDocument, error) {
	c := parseSpecs(specs)
	var out []*entity.SavedDocument
	for _, d := range r.db.saved {
		if c.userId != nil && d.UserId != *c.userId {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memSavedDocRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.db.saved)), nil
}

// LLM double

type llmCall struct {
	messages []llm.Message
	opts     llm.Options
}

type fakeLLM struct {
	reply string
	err   error
	calls []llmCall
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := llm.Options{}
	for _, o := range options {
		o(&opts)
	}
	f.calls = append(f.calls, llmCall{messages: history, opts: opts})
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

// Blob store double

type memBlobStore struct {
	files     map[string][]byte
	uploadErr error
	deleteErr error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{files: map[string][]byte{}}
}

func (s *memBlobStore) key(bucket, path string) string { return bucket + "/" + path }

func (s *memBlobStore) Upload(ctx context.Context, bucket, path string, r io.Reader) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.files[s.key(bucket, path)] = data
	return nil
}

func (s *memBlobStore) Download(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	data, ok := s.files[s.key(bucket, path)]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memBlobStore) Delete(ctx context.Context, bucket, path string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.files, s.key(bucket, path))
	return nil
}

func (s *memBlobStore) PublicURL(bucket, path string) string {
	return "http://localhost:3000/uploads/" + bucket + "/" + path
}

// Logger double

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
