package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/studybuddy/studybuddy/internal/backend"
	"github.com/studybuddy/studybuddy/internal/model"
)

// Auth adapts account and session operations onto the backend platform.
type Auth struct {
	account backend.AccountService
	log     zerolog.Logger
}

// NewAuth creates the auth adapter.
func NewAuth(account backend.AccountService, log zerolog.Logger) *Auth {
	return &Auth{account: account, log: log}
}

// Register creates an account with a freshly generated unique id and
// immediately logs in with the same credentials, so the new account has an
// active session. Returns the created user's public record.
func (a *Auth) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	account, err := a.account.Create(ctx, backend.UniqueID(), email, password, name)
	if err != nil {
		return nil, normalizeAuthErr(err)
	}

	if _, err := a.Login(ctx, email, password); err != nil {
		return nil, err
	}

	a.log.Info().Str("email", account.Email).Msg("account registered")
	return userFromAccount(account), nil
}

// Login establishes a session and returns its metadata.
func (a *Auth) Login(ctx context.Context, email, password string) (*model.Session, error) {
	session, err := a.account.CreateEmailPasswordSession(ctx, email, password)
	if err != nil {
		return nil, normalizeAuthErr(err)
	}

	return &model.Session{
		ID:        session.ID,
		UserID:    session.UserID,
		Token:     session.Token,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// CurrentUser returns the active user's public record, or nil when no
// session is active. "Not logged in" is an expected steady state, so the
// failure is swallowed rather than propagated.
func (a *Auth) CurrentUser(ctx context.Context) (*model.User, error) {
	account, err := a.account.Get(ctx)
	if err != nil {
		a.log.Debug().Err(err).Msg("no current user")
		return nil, nil
	}
	return userFromAccount(account), nil
}

// Logout destroys the current session.
func (a *Auth) Logout(ctx context.Context) error {
	if err := a.account.DeleteSession(ctx, backend.CurrentSession); err != nil {
		return normalizeAuthErr(err)
	}
	return nil
}

// IsAuthenticated reports whether a session is active; any failure counts as
// not authenticated.
func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	_, err := a.account.Get(ctx)
	return err == nil
}

func userFromAccount(account *backend.Account) *model.User {
	return &model.User{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		CreatedAt: account.CreatedAt,
	}
}
