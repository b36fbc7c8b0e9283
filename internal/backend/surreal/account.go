package surreal

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/studybuddy/studybuddy/internal/backend"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// How long an email/password session stays valid.
	sessionDuration = "30d"
)

// Create registers a new account with a bcrypt-hashed credential. It does
// not establish a session; callers log in separately.
func (c *Client) Create(ctx context.Context, id, email, password, name string) (*backend.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	existing, err := c.queryOne(ctx,
		`SELECT * FROM type::table($tb) WHERE email = $email LIMIT 1`,
		map[string]interface{}{"tb": accountTable, "email": email},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, backend.NewError(backend.TypeUserAlreadyExists, "a user with the same email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	query := `
		CREATE type::thing($tb, $id) CONTENT {
			email: $email,
			hash: $hash,
			name: $name,
			created_at: time::now()
		}
	`
	vars := map[string]interface{}{
		"tb":    accountTable,
		"id":    id,
		"email": email,
		"hash":  string(hash),
		"name":  name,
	}

	row, err := c.queryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, backend.NewError(backend.TypeUserAlreadyExists, "a user with the same email already exists")
		}
		return nil, err
	}

	account, ok := parseAccount(row)
	if !ok {
		return nil, backend.NewError(backend.TypeGeneralUnknown, "unexpected create result")
	}
	return account, nil
}

// CreateEmailPasswordSession verifies the credentials and establishes a new
// session as the client's current one.
func (c *Client) CreateEmailPasswordSession(ctx context.Context, email, password string) (*backend.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	row, err := c.queryOne(ctx,
		`SELECT * FROM type::table($tb) WHERE email = $email LIMIT 1`,
		map[string]interface{}{"tb": accountTable, "email": email},
	)
	if err != nil {
		return nil, err
	}
	record, ok := asRecord(row)
	if !ok {
		return nil, backend.NewError(backend.TypeInvalidCredentials, "invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(getString(record, "hash")), []byte(password)) != nil {
		return nil, backend.NewError(backend.TypeInvalidCredentials, "invalid credentials")
	}

	accountID := recordIDString(record["id"])
	token := uuid.NewString()

	query := `
		CREATE type::thing($tb, $id) CONTENT {
			account: $account,
			token: $token,
			created_at: time::now(),
			expires_at: time::now() + ` + sessionDuration + `
		}
	`
	vars := map[string]interface{}{
		"tb":      sessionTable,
		"id":      uuid.NewString(),
		"account": accountID,
		"token":   token,
	}

	created, err := c.queryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	sessionRecord, ok := asRecord(created)
	if !ok {
		return nil, backend.NewError(backend.TypeGeneralUnknown, "unexpected create result")
	}

	session := &backend.Session{
		ID:        recordIDString(sessionRecord["id"]),
		UserID:    accountID,
		Token:     token,
		CreatedAt: parseTime(sessionRecord["created_at"]),
		ExpiresAt: parseTime(sessionRecord["expires_at"]),
	}
	c.setSession(session)
	return session, nil
}

// Get returns the account of the current session.
func (c *Client) Get(ctx context.Context) (*backend.Account, error) {
	accountID, err := c.sessionAccount(ctx)
	if err != nil {
		return nil, err
	}

	row, err := c.queryOne(ctx,
		`SELECT * FROM type::record($id)`,
		map[string]interface{}{"id": accountID},
	)
	if err != nil {
		return nil, err
	}
	account, ok := parseAccount(row)
	if !ok {
		return nil, backend.NewError(backend.TypeUserUnauthorized, "account no longer exists")
	}
	return account, nil
}

// DeleteSession destroys the given session. Only the current session can be
// addressed.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	session := c.currentSession()
	if session == nil {
		return backend.NewError(backend.TypeGeneralUnauthorized, "no active session")
	}
	if sessionID != backend.CurrentSession && sessionID != session.ID {
		return backend.NewError(backend.TypeGeneralUnauthorized, "session not found")
	}

	_, err := c.query(ctx,
		`DELETE type::record($id)`,
		map[string]interface{}{"id": session.ID},
	)
	if err != nil {
		return err
	}

	c.setSession(nil)
	return nil
}

// sessionAccount validates the current session against the backend and
// returns the owning account's record id.
func (c *Client) sessionAccount(ctx context.Context) (string, error) {
	session := c.currentSession()
	if session == nil {
		return "", backend.NewError(backend.TypeGeneralUnauthorized, "no active session")
	}

	row, err := c.queryOne(ctx,
		`SELECT * FROM type::table($tb) WHERE token = $token AND expires_at > time::now() LIMIT 1`,
		map[string]interface{}{"tb": sessionTable, "token": session.Token},
	)
	if err != nil {
		return "", err
	}
	record, ok := asRecord(row)
	if !ok {
		// The token is stale; drop it so the client returns to logged-out.
		c.setSession(nil)
		return "", backend.NewError(backend.TypeUserUnauthorized, "session expired or invalid")
	}
	return getString(record, "account"), nil
}

func parseAccount(row interface{}) (*backend.Account, bool) {
	record, ok := asRecord(row)
	if !ok {
		return nil, false
	}
	return &backend.Account{
		ID:        recordIDString(record["id"]),
		Email:     getString(record, "email"),
		Name:      getString(record, "name"),
		CreatedAt: parseTime(record["created_at"]),
	}, true
}

// isUniqueConstraintError checks if an error is a unique index violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}
