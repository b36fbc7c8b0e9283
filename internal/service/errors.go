package service

import (
	"errors"

	"github.com/studybuddy/studybuddy/internal/backend"
)

// Fallback when a failure carries no message of its own.
const genericErrMsg = "An unexpected error occurred"

// AuthCode enumerates the auth adapter's normalized error categories.
type AuthCode int

const (
	AuthCodeUnknown AuthCode = iota
	AuthCodeUserExists
	AuthCodeInvalidCredentials
	AuthCodeSessionExpired
)

// AuthError is a normalized auth failure. Message is user-facing.
type AuthError struct {
	Code    AuthCode
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// normalizeAuthErr maps platform error codes to the closed auth enumeration.
// Unmapped codes become AuthCodeUnknown carrying the platform's own message.
func normalizeAuthErr(err error) error {
	if be, ok := backend.AsError(err); ok {
		switch be.Type {
		case backend.TypeUserAlreadyExists:
			return &AuthError{Code: AuthCodeUserExists, Message: "An account with this email already exists"}
		case backend.TypeInvalidCredentials:
			return &AuthError{Code: AuthCodeInvalidCredentials, Message: "Invalid email or password"}
		case backend.TypeUserUnauthorized:
			return &AuthError{Code: AuthCodeSessionExpired, Message: "Session expired. Please login again"}
		}
		return &AuthError{Code: AuthCodeUnknown, Message: messageOr(be.Message)}
	}
	return &AuthError{Code: AuthCodeUnknown, Message: messageOr(err.Error())}
}

// NotesCode enumerates the notes adapter's normalized error categories.
type NotesCode int

const (
	NotesCodeUnknown NotesCode = iota
	NotesCodeNotFound
	NotesCodeInvalidStructure
	NotesCodeUnauthorized
)

// NotesError is a normalized notes failure. Message is user-facing.
type NotesError struct {
	Code    NotesCode
	Message string
}

func (e *NotesError) Error() string {
	return e.Message
}

// normalizeNotesErr mirrors normalizeAuthErr with the notes code table.
func normalizeNotesErr(err error) error {
	if be, ok := backend.AsError(err); ok {
		switch be.Type {
		case backend.TypeDocumentNotFound:
			return &NotesError{Code: NotesCodeNotFound, Message: "Note not found"}
		case backend.TypeDocumentInvalidStructure:
			return &NotesError{Code: NotesCodeInvalidStructure, Message: "Invalid note data"}
		case backend.TypeGeneralUnauthorizedScope:
			return &NotesError{Code: NotesCodeUnauthorized, Message: "You do not have permission to perform this action"}
		}
		return &NotesError{Code: NotesCodeUnknown, Message: messageOr(be.Message)}
	}
	return &NotesError{Code: NotesCodeUnknown, Message: messageOr(err.Error())}
}

func messageOr(msg string) string {
	if msg == "" {
		return genericErrMsg
	}
	return msg
}

// AsAuthError unwraps err to an AuthError, if it is one.
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// AsNotesError unwraps err to a NotesError, if it is one.
func AsNotesError(err error) (*NotesError, bool) {
	var ne *NotesError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}
