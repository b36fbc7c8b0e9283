// Package surreal implements the backend platform contract on SurrealDB.
//
// Accounts, sessions, and note documents live in one namespace+database; the
// client connects over websocket, signs in with the platform credentials, and
// scopes every document operation to the account of the current session.
package surreal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/surrealdb/surrealdb.go"

	"github.com/studybuddy/studybuddy/internal/backend"
)

// Table names for the platform's own records.
const (
	accountTable = "account"
	sessionTable = "session"
)

// Standard connection-level errors. Platform-reported failures are returned
// as *backend.Error instead.
var (
	ErrConnection = errors.New("backend connection error")
	ErrQuery      = errors.New("backend query error")
)

// Config holds the SurrealDB connection settings.
type Config struct {
	Endpoint  string
	Namespace string
	Database  string
	User      string
	Password  string
}

// Client is the SurrealDB-backed platform client. It implements
// backend.AccountService and backend.DatabaseService.
//
// The client holds at most one active session. Session state is guarded by a
// mutex so a Client can be shared, matching the platform's one-session-per-
// client model.
type Client struct {
	db     *surrealdb.DB
	config Config
	log    zerolog.Logger

	mu      sync.Mutex
	session *backend.Session
}

var (
	_ backend.AccountService  = (*Client)(nil)
	_ backend.DatabaseService = (*Client)(nil)
)

// New creates a client. Call Connect before use.
func New(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		config: cfg,
		log:    log,
	}
}

// Connect establishes the websocket connection and selects the configured
// namespace and database.
func (c *Client) Connect(ctx context.Context) error {
	db, err := surrealdb.FromEndpointURLString(ctx, c.config.Endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: c.config.User,
		Password: c.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, c.config.Namespace, c.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	c.db = db
	c.log.Debug().
		Str("endpoint", c.config.Endpoint).
		Str("database", c.config.Database).
		Msg("connected to backend")
	return nil
}

// Close closes the connection.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close(context.Background())
	}
	return nil
}

// Ping verifies the connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	if c.db == nil {
		return ErrConnection
	}
	if _, err := c.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// query executes one statement and returns its rows flattened.
func (c *Client) query(ctx context.Context, q string, vars map[string]interface{}) ([]interface{}, error) {
	if c.db == nil {
		return nil, ErrConnection
	}

	c.log.Trace().Str("query", q).Msg("backend query")

	results, err := surrealdb.Query[interface{}](ctx, c.db, q, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	var rows []interface{}
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		if arr, ok := r.Result.([]interface{}); ok {
			rows = append(rows, arr...)
			continue
		}
		if r.Result != nil {
			rows = append(rows, r.Result)
		}
	}
	return rows, nil
}

// queryOne executes one statement and returns its first row, or nil.
func (c *Client) queryOne(ctx context.Context, q string, vars map[string]interface{}) (interface{}, error) {
	rows, err := c.query(ctx, q, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// currentSession returns a copy of the active session, or nil.
func (c *Client) currentSession() *backend.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Client) setSession(s *backend.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}
