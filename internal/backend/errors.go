package backend

import (
	"errors"
	"fmt"
)

// Platform error types. These are the string codes the adapters' lookup
// tables key on; anything else reaches the user as the platform's own
// message.
const (
	TypeUserAlreadyExists        = "user_already_exists"
	TypeInvalidCredentials       = "invalid_credentials"
	TypeUserUnauthorized         = "user_unauthorized"
	TypeGeneralUnauthorized      = "general_unauthorized"
	TypeDocumentNotFound         = "document_not_found"
	TypeDocumentInvalidStructure = "document_invalid_structure"
	TypeGeneralUnauthorizedScope = "general_unauthorized_scope"
	TypeGeneralUnknown           = "general_unknown"
)

// Error is a platform-reported failure. Type carries the platform's error
// code; Message is the platform's own description.
type Error struct {
	Type    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewError builds a platform error with the given code and message.
func NewError(errType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// AsError unwraps err to a platform error, if it is one.
func AsError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsType reports whether err is a platform error with the given code.
func IsType(err error, errType string) bool {
	be, ok := AsError(err)
	return ok && be.Type == errType
}
