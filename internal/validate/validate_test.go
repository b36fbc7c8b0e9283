package validate

import (
	"strings"
	"testing"
)

func TestEmail_Valid(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"a@b.com", "user.name@example.co.uk", "x+tag@domain.io"} {
		if res := Email(email); !res.Valid {
			t.Errorf("Email(%q) = %v, want valid", email, res)
		}
	}
}

func TestEmail_Empty(t *testing.T) {
	t.Parallel()

	res := Email("")
	if res.Valid || res.Err != "Email is required" {
		t.Errorf("Email(\"\") = %+v, want invalid with 'Email is required'", res)
	}
}

func TestEmail_BadFormat(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@domain.com"} {
		res := Email(email)
		if res.Valid || res.Err != "Invalid email format" {
			t.Errorf("Email(%q) = %+v, want invalid with 'Invalid email format'", email, res)
		}
	}
}

func TestPassword_MinLength(t *testing.T) {
	t.Parallel()

	if res := Password("12345678"); !res.Valid {
		t.Errorf("8-char password should be valid, got %+v", res)
	}
	res := Password("1234567")
	if res.Valid {
		t.Fatal("7-char password should be invalid")
	}
	if !strings.Contains(res.Err, "8") {
		t.Errorf("expected message to contain the minimum length, got %q", res.Err)
	}
}

func TestPassword_Empty(t *testing.T) {
	t.Parallel()

	res := Password("")
	if res.Valid || res.Err != "Password is required" {
		t.Errorf("Password(\"\") = %+v, want 'Password is required'", res)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	if res := Name("Ada"); !res.Valid {
		t.Errorf("Name(\"Ada\") = %+v, want valid", res)
	}
	if res := Name(""); res.Valid || res.Err != "Name is required" {
		t.Errorf("Name(\"\") = %+v, want 'Name is required'", res)
	}
	if res := Name("A"); res.Valid || !strings.Contains(res.Err, "2") {
		t.Errorf("Name(\"A\") = %+v, want minimum-length message", res)
	}
}

func TestNote_Valid(t *testing.T) {
	t.Parallel()

	res := Note(NoteInput{Title: "Calculus", Content: "Chain rule", Subject: "Mathematics"})
	if !res.Valid {
		t.Errorf("expected valid note, got %+v", res)
	}
}

func TestNote_FirstFailingRuleWins(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 10001)

	cases := []struct {
		name string
		in   NoteInput
		want string
	}{
		{"whitespace title", NoteInput{Title: "   ", Content: "ok", Subject: "Math"}, "Title is required"},
		{"all missing", NoteInput{}, "Title is required"},
		{"title too long", NoteInput{Title: strings.Repeat("t", 101), Content: "ok", Subject: "Math"}, "Title must be less than 100 characters"},
		{"missing content", NoteInput{Title: "ok", Subject: "Math"}, "Content is required"},
		{"whitespace content", NoteInput{Title: "ok", Content: " \t ", Subject: "Math"}, "Content is required"},
		{"content too long", NoteInput{Title: "ok", Content: long, Subject: "Math"}, "Content must be less than 10000 characters"},
		{"missing subject", NoteInput{Title: "ok", Content: "ok"}, "Subject is required"},
		{"whitespace subject", NoteInput{Title: "ok", Content: "ok", Subject: "  "}, "Subject is required"},
		// Title failure masks every later failure.
		{"title masks content", NoteInput{Title: "  ", Content: long, Subject: ""}, "Title is required"},
		{"content masks subject", NoteInput{Title: "ok", Content: "", Subject: ""}, "Content is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Note(tc.in)
			if res.Valid {
				t.Fatalf("expected invalid, got valid")
			}
			if res.Err != tc.want {
				t.Errorf("got %q, want %q", res.Err, tc.want)
			}
		})
	}
}

func TestNote_BoundaryLengths(t *testing.T) {
	t.Parallel()

	res := Note(NoteInput{
		Title:   strings.Repeat("t", 100),
		Content: strings.Repeat("c", 10000),
		Subject: "Other",
	})
	if !res.Valid {
		t.Errorf("max-length title/content should be valid, got %+v", res)
	}
}
