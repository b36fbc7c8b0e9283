package state

import (
	"context"
	"sync"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/service"
)

// Notes caches the in-memory note list and exposes the note operations to
// the view layer. The cache mirrors backend order (newest first) and is
// updated optimistically on mutations.
type Notes struct {
	notes *service.Notes

	mu      sync.Mutex
	list    []model.Note
	busy    bool
	lastErr string
}

// NewNotes creates a notes store. Call Fetch to load the collection.
func NewNotes(notes *service.Notes) *Notes {
	return &Notes{notes: notes}
}

func (s *Notes) begin() {
	s.mu.Lock()
	s.busy = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Notes) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Notes) fail(err error) Result {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	return failure(err)
}

// Fetch replaces the cache wholesale with the backend's current list.
func (s *Notes) Fetch(ctx context.Context) Result {
	s.begin()
	defer s.end()

	list, err := s.notes.List(ctx, service.ListOptions{})
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
	return success()
}

// Create submits a new note and prepends it to the cache.
func (s *Notes) Create(ctx context.Context, in service.CreateNoteInput) (*model.Note, Result) {
	s.begin()
	defer s.end()

	note, err := s.notes.Create(ctx, in)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	s.list = append([]model.Note{*note}, s.list...)
	s.mu.Unlock()
	return note, success()
}

// Update patches a note and replaces it in the cache by id; no other
// element changes.
func (s *Notes) Update(ctx context.Context, id string, in service.UpdateNoteInput) (*model.Note, Result) {
	s.begin()
	defer s.end()

	note, err := s.notes.Update(ctx, id, in)
	if err != nil {
		return nil, s.fail(err)
	}

	s.mu.Lock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i] = *note
			break
		}
	}
	s.mu.Unlock()
	return note, success()
}

// Delete removes a note and drops it from the cache by id.
func (s *Notes) Delete(ctx context.Context, id string) Result {
	s.begin()
	defer s.end()

	if err := s.notes.Delete(ctx, id); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	kept := s.list[:0]
	for _, note := range s.list {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	s.list = kept
	s.mu.Unlock()
	return success()
}

// Search returns matching notes without touching the cache.
func (s *Notes) Search(ctx context.Context, query string) ([]model.Note, Result) {
	s.begin()
	defer s.end()

	results, err := s.notes.Search(ctx, query)
	if err != nil {
		return nil, s.fail(err)
	}
	return results, success()
}

// Notes returns a copy of the cached list.
func (s *Notes) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Note, len(s.list))
	copy(out, s.list)
	return out
}

// Busy reports whether an operation is in flight.
func (s *Notes) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Err returns the last operation's error message, or "".
func (s *Notes) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
