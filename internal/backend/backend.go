package backend

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CurrentSession addresses the session established by the active login.
const CurrentSession = "current"

// Account is the platform's record of a user account.
type Account struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Session is the platform's proof of authentication. Token is opaque and
// referenced implicitly by subsequent calls on the same client.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Document is one record in a per-collection schemaless store. ID and
// timestamps are assigned by the platform on create.
type Document struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      map[string]any
}

// DocumentList is a fully materialized page of documents.
type DocumentList struct {
	Total     int
	Documents []*Document
}

// AccountService exposes the platform's account and session operations. The
// caller's identity for all other calls is inferred from the session
// established here.
type AccountService interface {
	// Create registers a new account. It does not establish a session.
	Create(ctx context.Context, id, email, password, name string) (*Account, error)

	// CreateEmailPasswordSession logs in and makes the returned session the
	// client's current session.
	CreateEmailPasswordSession(ctx context.Context, email, password string) (*Session, error)

	// Get returns the account of the current session.
	Get(ctx context.Context) (*Account, error)

	// DeleteSession destroys the given session. Pass CurrentSession for the
	// active one.
	DeleteSession(ctx context.Context, sessionID string) error
}

// DatabaseService exposes document CRUD within the caller's session scope.
// No explicit owner filter is ever passed; the platform scopes every call to
// the authenticated account.
type DatabaseService interface {
	CreateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	ListDocuments(ctx context.Context, collection string, queries ...Query) (*DocumentList, error)
	GetDocument(ctx context.Context, collection, id string) (*Document, error)
	UpdateDocument(ctx context.Context, collection, id string, data map[string]any) (*Document, error)
	DeleteDocument(ctx context.Context, collection, id string) error
}

// QueryKind discriminates list query modifiers.
type QueryKind int

const (
	QueryLimit QueryKind = iota
	QueryOffset
	QueryOrderDesc
	QuerySearch
)

// Query is one list modifier. Build values with Limit, Offset, OrderDesc,
// and Search rather than constructing the struct directly.
type Query struct {
	Kind  QueryKind
	Field string
	Text  string
	N     int
}

// Limit caps the number of returned documents.
func Limit(n int) Query { return Query{Kind: QueryLimit, N: n} }

// Offset skips the first n documents.
func Offset(n int) Query { return Query{Kind: QueryOffset, N: n} }

// OrderDesc orders results descending by the given field.
func OrderDesc(field string) Query { return Query{Kind: QueryOrderDesc, Field: field} }

// Search matches documents whose field contains the given text. Case
// semantics are platform-defined.
func Search(field, text string) Query { return Query{Kind: QuerySearch, Field: field, Text: text} }

// UniqueID returns a freshly generated unique identifier for client-created
// records.
func UniqueID() string {
	return uuid.NewString()
}
