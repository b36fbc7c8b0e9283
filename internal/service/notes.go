package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studybuddy/studybuddy/internal/backend"
	"github.com/studybuddy/studybuddy/internal/model"
)

const (
	defaultListLimit = 100
	searchLimit      = 50
)

// Notes adapts study-note CRUD and search onto one backend collection.
// Authorization is enforced entirely by the platform: no owner filter is
// ever passed, the platform infers the caller from the session.
type Notes struct {
	db         backend.DatabaseService
	collection string
	log        zerolog.Logger
}

// NewNotes creates the notes adapter for the given collection.
func NewNotes(db backend.DatabaseService, collection string, log zerolog.Logger) *Notes {
	return &Notes{db: db, collection: collection, log: log}
}

// CreateNoteInput carries the client-supplied fields for a new note.
//
// Tags is accepted but not currently persisted; the collection has no tags
// attribute yet. Kept for forward compatibility with the planned schema.
type CreateNoteInput struct {
	Title   string
	Content string
	Subject string
	Tags    []string
}

// UpdateNoteInput is a partial-field patch; nil fields are left unchanged.
type UpdateNoteInput struct {
	Title   *string
	Content *string
	Subject *string
}

// ListOptions control List pagination and ordering. Results are always
// descending by OrderBy.
type ListOptions struct {
	Limit   int    // default 100
	Offset  int    // default 0
	OrderBy string // default "created_at"
}

// Create submits a new note with a freshly generated unique id and returns
// the created record including the backend-assigned id and timestamp.
func (n *Notes) Create(ctx context.Context, in CreateNoteInput) (*model.Note, error) {
	data := map[string]any{
		"title":   in.Title,
		"content": in.Content,
		"subject": in.Subject,
	}

	doc, err := n.db.CreateDocument(ctx, n.collection, backend.UniqueID(), data)
	if err != nil {
		return nil, normalizeNotesErr(err)
	}

	n.log.Debug().Str("id", doc.ID).Msg("note created")
	return noteFromDocument(doc), nil
}

// List returns the caller's notes, fully materialized up to the limit.
func (n *Notes) List(ctx context.Context, opts ListOptions) ([]model.Note, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}
	if opts.OrderBy == "" {
		opts.OrderBy = "created_at"
	}

	list, err := n.db.ListDocuments(ctx, n.collection,
		backend.Limit(opts.Limit),
		backend.Offset(opts.Offset),
		backend.OrderDesc(opts.OrderBy),
	)
	if err != nil {
		return nil, normalizeNotesErr(err)
	}

	return notesFromList(list), nil
}

// Get fetches one note by id.
func (n *Notes) Get(ctx context.Context, id string) (*model.Note, error) {
	doc, err := n.db.GetDocument(ctx, n.collection, id)
	if err != nil {
		return nil, normalizeNotesErr(err)
	}
	return noteFromDocument(doc), nil
}

// Update merges the given fields into a note and returns the updated record.
func (n *Notes) Update(ctx context.Context, id string, in UpdateNoteInput) (*model.Note, error) {
	data := make(map[string]any)
	if in.Title != nil {
		data["title"] = *in.Title
	}
	if in.Content != nil {
		data["content"] = *in.Content
	}
	if in.Subject != nil {
		data["subject"] = *in.Subject
	}

	doc, err := n.db.UpdateDocument(ctx, n.collection, id, data)
	if err != nil {
		return nil, normalizeNotesErr(err)
	}
	return noteFromDocument(doc), nil
}

// Delete removes a note.
func (n *Notes) Delete(ctx context.Context, id string) error {
	if err := n.db.DeleteDocument(ctx, n.collection, id); err != nil {
		return normalizeNotesErr(err)
	}
	n.log.Debug().Str("id", id).Msg("note deleted")
	return nil
}

// Search matches notes whose title contains the query, capped at 50 results.
// Ordering relative to List is platform-defined.
func (n *Notes) Search(ctx context.Context, query string) ([]model.Note, error) {
	list, err := n.db.ListDocuments(ctx, n.collection,
		backend.Search("title", query),
		backend.Limit(searchLimit),
	)
	if err != nil {
		return nil, normalizeNotesErr(err)
	}
	return notesFromList(list), nil
}

func noteFromDocument(doc *backend.Document) *model.Note {
	title, _ := doc.Data["title"].(string)
	content, _ := doc.Data["content"].(string)
	subject, _ := doc.Data["subject"].(string)
	return &model.Note{
		ID:        doc.ID,
		Title:     title,
		Content:   content,
		Subject:   subject,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func notesFromList(list *backend.DocumentList) []model.Note {
	notes := make([]model.Note, 0, len(list.Documents))
	for _, doc := range list.Documents {
		notes = append(notes, *noteFromDocument(doc))
	}
	return notes
}
