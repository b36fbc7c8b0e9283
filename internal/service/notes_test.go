package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/studybuddy/studybuddy/internal/backend"
	"github.com/studybuddy/studybuddy/internal/testing/backendfake"
)

const testCollection = "study_notes"

// loggedInNotes returns a notes adapter whose fake backend already has an
// active session.
func loggedInNotes(t *testing.T) (*Notes, *backendfake.Fake) {
	t.Helper()

	fake := backendfake.New()
	auth := NewAuth(fake, zerolog.Nop())
	if _, err := auth.Register(context.Background(), "student@x.com", "password1", "Ada"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return NewNotes(fake, testCollection, zerolog.Nop()), fake
}

func TestNotes_Create_RoundTrip(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, CreateNoteInput{
		Title:   "Calculus review",
		Content: "Chain rule, product rule",
		Subject: "Mathematics",
		Tags:    []string{"exam"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if note.Title != "Calculus review" || note.Content != "Chain rule, product rule" || note.Subject != "Mathematics" {
		t.Errorf("submitted fields must round-trip exactly, got %+v", note)
	}
	if note.ID == "" {
		t.Error("expected backend-assigned id")
	}
	if note.CreatedAt.IsZero() {
		t.Error("expected backend-assigned creation timestamp")
	}
}

func TestNotes_Create_TagsNotPersisted(t *testing.T) {
	t.Parallel()

	notes, fake := loggedInNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, CreateNoteInput{
		Title: "T", Content: "C", Subject: "S", Tags: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	doc, err := fake.GetDocument(ctx, testCollection, note.ID)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if _, ok := doc.Data["tags"]; ok {
		t.Error("tags must not be persisted")
	}
}

func TestNotes_List_NewestFirst(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		if _, err := notes.Create(ctx, CreateNoteInput{Title: title, Content: "c", Subject: "s"}); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}

	got, err := notes.List(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(got))
	}
	for i, want := range []string{"C", "B", "A"} {
		if got[i].Title != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestNotes_List_LimitOffset(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C", "D"} {
		if _, err := notes.Create(ctx, CreateNoteInput{Title: title, Content: "c", Subject: "s"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := notes.List(ctx, ListOptions{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Title != "C" || got[1].Title != "B" {
		t.Errorf("unexpected page: %+v", got)
	}
}

func TestNotes_Get_NotFound(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)

	_, err := notes.Get(context.Background(), "missing")
	ne, ok := AsNotesError(err)
	if !ok || ne.Code != NotesCodeNotFound {
		t.Fatalf("expected NotesCodeNotFound, got %v", err)
	}
	if ne.Message != "Note not found" {
		t.Errorf("unexpected message %q", ne.Message)
	}
}

func TestNotes_Update_PartialMerge(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, CreateNoteInput{Title: "Old", Content: "Body", Subject: "Physics"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "New"
	updated, err := notes.Update(ctx, note.ID, UpdateNoteInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("title not updated: %+v", updated)
	}
	if updated.Content != "Body" || updated.Subject != "Physics" {
		t.Errorf("untouched fields must survive a partial update: %+v", updated)
	}
	if updated.ID != note.ID {
		t.Errorf("id changed on update: %q -> %q", note.ID, updated.ID)
	}
}

func TestNotes_Delete(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, CreateNoteInput{Title: "T", Content: "C", Subject: "S"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := notes.Delete(ctx, note.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = notes.Get(ctx, note.ID)
	if ne, ok := AsNotesError(err); !ok || ne.Code != NotesCodeNotFound {
		t.Errorf("expected NotesCodeNotFound after delete, got %v", err)
	}
}

func TestNotes_Search_TitleOnly(t *testing.T) {
	t.Parallel()

	notes, _ := loggedInNotes(t)
	ctx := context.Background()

	seed := []CreateNoteInput{
		{Title: "Calculus basics", Content: "derivatives", Subject: "Mathematics"},
		{Title: "Thermodynamics", Content: "calculus appears here too", Subject: "Physics"},
		{Title: "Advanced calculus", Content: "integrals", Subject: "Mathematics"},
	}
	for _, in := range seed {
		if _, err := notes.Create(ctx, in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := notes.Search(ctx, "calculus")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search is title-scoped, expected 2 matches, got %d", len(got))
	}
	for _, note := range got {
		if note.Title != "Calculus basics" && note.Title != "Advanced calculus" {
			t.Errorf("unexpected match %q", note.Title)
		}
	}
}

func TestNotes_NoSession(t *testing.T) {
	t.Parallel()

	notes := NewNotes(backendfake.New(), testCollection, zerolog.Nop())

	_, err := notes.List(context.Background(), ListOptions{})
	ne, ok := AsNotesError(err)
	if !ok || ne.Code != NotesCodeUnknown {
		t.Fatalf("expected NotesCodeUnknown for unauthorized list, got %v", err)
	}
}

func TestNotes_UnmappedBackendCode(t *testing.T) {
	t.Parallel()

	notes, fake := loggedInNotes(t)
	fake.ListDocsErr = backend.NewError("general_service_disabled", "Service is disabled")

	_, err := notes.List(context.Background(), ListOptions{})
	ne, ok := AsNotesError(err)
	if !ok || ne.Code != NotesCodeUnknown {
		t.Fatalf("expected NotesCodeUnknown, got %v", err)
	}
	if ne.Message != "Service is disabled" {
		t.Errorf("unexpected message %q", ne.Message)
	}
}
