package model

import "time"

// User represents an account's public record. The backend assigns the ID and
// timestamps; the application never persists user data itself.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the backend-managed proof of authentication. The token is
// opaque; it is created on login, referenced implicitly by subsequent calls,
// and destroyed on logout.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"` // Never expose the session token
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
