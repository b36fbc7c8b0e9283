package state

import (
	"context"
	"sync"

	"github.com/studybuddy/studybuddy/internal/model"
	"github.com/studybuddy/studybuddy/internal/service"
)

// Auth caches the current user and exposes the auth operations to the view
// layer.
type Auth struct {
	auth *service.Auth

	mu      sync.Mutex
	user    *model.User
	busy    bool
	lastErr string
}

// NewAuth creates an auth store. Call Check to hydrate the user cache.
func NewAuth(auth *service.Auth) *Auth {
	return &Auth{auth: auth}
}

func (s *Auth) begin() {
	s.mu.Lock()
	s.busy = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Auth) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Auth) fail(err error) Result {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	return failure(err)
}

// Check refreshes the cached user from the backend. An absent session simply
// clears the cache.
func (s *Auth) Check(ctx context.Context) Result {
	s.begin()
	defer s.end()

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return success()
}

// Login establishes a session and refreshes the cached user.
func (s *Auth) Login(ctx context.Context, email, password string) Result {
	s.begin()
	defer s.end()

	if _, err := s.auth.Login(ctx, email, password); err != nil {
		return s.fail(err)
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return success()
}

// Register creates an account (with its implicit login) and refreshes the
// cached user.
func (s *Auth) Register(ctx context.Context, email, password, name string) Result {
	s.begin()
	defer s.end()

	if _, err := s.auth.Register(ctx, email, password, name); err != nil {
		return s.fail(err)
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return success()
}

// Logout destroys the session and clears the cached user.
func (s *Auth) Logout(ctx context.Context) Result {
	s.begin()
	defer s.end()

	if err := s.auth.Logout(ctx); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return success()
}

// User returns the cached user, or nil when logged out.
func (s *Auth) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is cached.
func (s *Auth) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Busy reports whether an operation is in flight.
func (s *Auth) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Err returns the last operation's error message, or "".
func (s *Auth) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
