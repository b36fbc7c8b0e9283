// Package validate holds the pure input validators used before any backend
// call. Each validator is synchronous, side-effect free, and returns a Result
// with a user-facing message for the first failing rule.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field constraints
const (
	PasswordMinLength = 8
	NameMinLength     = 2
	TitleMaxLength    = 100
	ContentMaxLength  = 10000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a single field validation.
type Result struct {
	Valid bool
	Err   string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Err: msg}
}

// Email checks that an email is present and local@domain.tld shaped.
func Email(email string) Result {
	if email == "" {
		return fail("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return fail("Invalid email format")
	}
	return ok()
}

// Password checks that a password is present and long enough.
func Password(password string) Result {
	if password == "" {
		return fail("Password is required")
	}
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return fail(fmt.Sprintf("Password must be at least %d characters", PasswordMinLength))
	}
	return ok()
}

// Name checks that a display name is present and long enough.
func Name(name string) Result {
	if name == "" {
		return fail("Name is required")
	}
	if utf8.RuneCountInString(name) < NameMinLength {
		return fail(fmt.Sprintf("Name must be at least %d characters", NameMinLength))
	}
	return ok()
}

// NoteInput carries the client-supplied note fields for validation.
type NoteInput struct {
	Title   string
	Content string
	Subject string
}

// Note checks a note's fields in order and short-circuits on the first
// failing rule. Callers that want a per-field error map (the auth forms do)
// aggregate the single-field validators themselves instead.
func Note(in NoteInput) Result {
	if strings.TrimSpace(in.Title) == "" {
		return fail("Title is required")
	}
	if utf8.RuneCountInString(in.Title) > TitleMaxLength {
		return fail(fmt.Sprintf("Title must be less than %d characters", TitleMaxLength))
	}
	if strings.TrimSpace(in.Content) == "" {
		return fail("Content is required")
	}
	if utf8.RuneCountInString(in.Content) > ContentMaxLength {
		return fail(fmt.Sprintf("Content must be less than %d characters", ContentMaxLength))
	}
	if strings.TrimSpace(in.Subject) == "" {
		return fail("Subject is required")
	}
	return ok()
}
