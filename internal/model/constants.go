package model

// Application identity
const (
	AppName        = "AI Study Buddy"
	AppVersion     = "1.0.0"
	AppDescription = "Your intelligent learning companion"
)

// User-facing success messages
const (
	MsgLoginSuccess    = "Successfully logged in!"
	MsgLogoutSuccess   = "Successfully logged out!"
	MsgRegisterSuccess = "Account created successfully!"
	MsgNoteCreated     = "Note created successfully!"
	MsgNoteUpdated     = "Note updated successfully!"
	MsgNoteDeleted     = "Note deleted successfully!"
)
