// Package backendfake provides an in-memory implementation of the backend
// platform contract for tests: accounts with unique emails, bcrypt-checked
// sessions, and owner-scoped documents with the list modifiers applied.
//
// Per-operation error fields let tests inject platform failures, including
// error codes the adapters have no mapping for.
package backendfake

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/studybuddy/studybuddy/internal/backend"
)

type accountRecord struct {
	account backend.Account
	hash    []byte
}

type documentRecord struct {
	doc   backend.Document
	owner string
}

// Fake implements backend.AccountService and backend.DatabaseService in
// memory.
type Fake struct {
	mu sync.Mutex

	accounts  map[string]*accountRecord // keyed by account id
	emails    map[string]string         // email -> account id
	sessions  map[string]backend.Session
	documents map[string]map[string]*documentRecord // collection -> id -> record

	current string // current session token, "" when logged out
	clock   time.Time
	ticks   int

	// Error injection, one field per platform operation.
	CreateAccountErr error
	CreateSessionErr error
	GetAccountErr    error
	DeleteSessionErr error
	CreateDocErr     error
	ListDocsErr      error
	GetDocErr        error
	UpdateDocErr     error
	DeleteDocErr     error
}

var (
	_ backend.AccountService  = (*Fake)(nil)
	_ backend.DatabaseService = (*Fake)(nil)
)

// New creates an empty fake platform.
func New() *Fake {
	return &Fake{
		accounts:  make(map[string]*accountRecord),
		emails:    make(map[string]string),
		sessions:  make(map[string]backend.Session),
		documents: make(map[string]map[string]*documentRecord),
		clock:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// now returns a strictly increasing timestamp so creation order is always
// observable.
func (f *Fake) now() time.Time {
	f.ticks++
	return f.clock.Add(time.Duration(f.ticks) * time.Millisecond)
}

// Create registers an account.
func (f *Fake) Create(ctx context.Context, id, email, password, name string) (*backend.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateAccountErr != nil {
		return nil, f.CreateAccountErr
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, exists := f.emails[email]; exists {
		return nil, backend.NewError(backend.TypeUserAlreadyExists, "a user with the same email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	account := backend.Account{
		ID:        "account:" + id,
		Email:     email,
		Name:      name,
		CreatedAt: f.now(),
	}
	f.accounts[account.ID] = &accountRecord{account: account, hash: hash}
	f.emails[email] = account.ID

	out := account
	return &out, nil
}

// CreateEmailPasswordSession verifies credentials and establishes the
// current session.
func (f *Fake) CreateEmailPasswordSession(ctx context.Context, email, password string) (*backend.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateSessionErr != nil {
		return nil, f.CreateSessionErr
	}

	email = strings.ToLower(strings.TrimSpace(email))
	accountID, ok := f.emails[email]
	if !ok {
		return nil, backend.NewError(backend.TypeInvalidCredentials, "invalid credentials")
	}
	record := f.accounts[accountID]
	if bcrypt.CompareHashAndPassword(record.hash, []byte(password)) != nil {
		return nil, backend.NewError(backend.TypeInvalidCredentials, "invalid credentials")
	}

	created := f.now()
	session := backend.Session{
		ID:        "session:" + uuid.NewString(),
		UserID:    accountID,
		Token:     uuid.NewString(),
		CreatedAt: created,
		ExpiresAt: created.Add(30 * 24 * time.Hour),
	}
	f.sessions[session.Token] = session
	f.current = session.Token

	out := session
	return &out, nil
}

// Get returns the current session's account.
func (f *Fake) Get(ctx context.Context) (*backend.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetAccountErr != nil {
		return nil, f.GetAccountErr
	}

	accountID, err := f.sessionAccountLocked()
	if err != nil {
		return nil, err
	}
	out := f.accounts[accountID].account
	return &out, nil
}

// DeleteSession destroys the current session.
func (f *Fake) DeleteSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.DeleteSessionErr != nil {
		return f.DeleteSessionErr
	}

	if f.current == "" {
		return backend.NewError(backend.TypeGeneralUnauthorized, "no active session")
	}
	session := f.sessions[f.current]
	if sessionID != backend.CurrentSession && sessionID != session.ID {
		return backend.NewError(backend.TypeGeneralUnauthorized, "session not found")
	}

	delete(f.sessions, f.current)
	f.current = ""
	return nil
}

// ExpireSession invalidates the current session server-side while the client
// still holds its token, mimicking an expired login.
func (f *Fake) ExpireSession() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != "" {
		delete(f.sessions, f.current)
	}
}

func (f *Fake) sessionAccountLocked() (string, error) {
	if f.current == "" {
		return "", backend.NewError(backend.TypeGeneralUnauthorized, "no active session")
	}
	session, ok := f.sessions[f.current]
	if !ok {
		f.current = ""
		return "", backend.NewError(backend.TypeUserUnauthorized, "session expired or invalid")
	}
	return session.UserID, nil
}

// CreateDocument stores a document owned by the current account.
func (f *Fake) CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*backend.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CreateDocErr != nil {
		return nil, f.CreateDocErr
	}

	owner, err := f.sessionAccountLocked()
	if err != nil {
		return nil, err
	}

	created := f.now()
	doc := backend.Document{
		ID:        collection + ":" + id,
		CreatedAt: created,
		UpdatedAt: created,
		Data:      cloneData(data),
	}

	if f.documents[collection] == nil {
		f.documents[collection] = make(map[string]*documentRecord)
	}
	f.documents[collection][doc.ID] = &documentRecord{doc: doc, owner: owner}

	return copyDoc(&doc), nil
}

// ListDocuments returns the current account's documents with modifiers
// applied.
func (f *Fake) ListDocuments(ctx context.Context, collection string, queries ...backend.Query) (*backend.DocumentList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ListDocsErr != nil {
		return nil, f.ListDocsErr
	}

	owner, err := f.sessionAccountLocked()
	if err != nil {
		return nil, err
	}

	limit := 0
	offset := 0
	orderBy := ""
	searchField := ""
	searchText := ""
	for _, q := range queries {
		switch q.Kind {
		case backend.QueryLimit:
			limit = q.N
		case backend.QueryOffset:
			offset = q.N
		case backend.QueryOrderDesc:
			orderBy = q.Field
		case backend.QuerySearch:
			searchField = q.Field
			searchText = strings.ToLower(q.Text)
		}
	}

	var docs []*backend.Document
	for _, record := range f.documents[collection] {
		if record.owner != owner {
			continue
		}
		if searchField != "" {
			value, _ := record.doc.Data[searchField].(string)
			if !strings.Contains(strings.ToLower(value), searchText) {
				continue
			}
		}
		docs = append(docs, copyDoc(&record.doc))
	}

	if orderBy != "" {
		sort.Slice(docs, func(i, j int) bool {
			return docLess(docs[j], docs[i], orderBy) // descending
		})
	}

	if offset > 0 {
		if offset >= len(docs) {
			docs = nil
		} else {
			docs = docs[offset:]
		}
	}
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	return &backend.DocumentList{Total: len(docs), Documents: docs}, nil
}

// GetDocument fetches one document in the current account's scope.
func (f *Fake) GetDocument(ctx context.Context, collection, id string) (*backend.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetDocErr != nil {
		return nil, f.GetDocErr
	}

	record, err := f.scopedDocLocked(collection, id)
	if err != nil {
		return nil, err
	}
	return copyDoc(&record.doc), nil
}

// UpdateDocument merges fields into an existing document.
func (f *Fake) UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*backend.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.UpdateDocErr != nil {
		return nil, f.UpdateDocErr
	}

	record, err := f.scopedDocLocked(collection, id)
	if err != nil {
		return nil, err
	}
	for key, value := range data {
		record.doc.Data[key] = value
	}
	record.doc.UpdatedAt = f.now()
	return copyDoc(&record.doc), nil
}

// DeleteDocument removes a document in the current account's scope.
func (f *Fake) DeleteDocument(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.DeleteDocErr != nil {
		return f.DeleteDocErr
	}

	if _, err := f.scopedDocLocked(collection, id); err != nil {
		return err
	}
	delete(f.documents[collection], fullID(collection, id))
	return nil
}

func (f *Fake) scopedDocLocked(collection, id string) (*documentRecord, error) {
	owner, err := f.sessionAccountLocked()
	if err != nil {
		return nil, err
	}
	record, ok := f.documents[collection][fullID(collection, id)]
	if !ok {
		return nil, backend.NewError(backend.TypeDocumentNotFound, "document not found")
	}
	if record.owner != owner {
		return nil, backend.NewError(backend.TypeGeneralUnauthorizedScope, "not authorized for this document")
	}
	return record, nil
}

func fullID(collection, id string) string {
	if strings.HasPrefix(id, collection+":") {
		return id
	}
	return collection + ":" + id
}

func docLess(a, b *backend.Document, field string) bool {
	switch field {
	case "created_at":
		return a.CreatedAt.Before(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		av, _ := a.Data[field].(string)
		bv, _ := b.Data[field].(string)
		return av < bv
	}
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func copyDoc(doc *backend.Document) *backend.Document {
	out := *doc
	out.Data = cloneData(doc.Data)
	return &out
}
