// Package tests contains end-to-end acceptance tests for the study buddy
// adapter and store stack, run against the in-memory platform fake.
package tests

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/studybuddy/internal/service"
	"github.com/studybuddy/studybuddy/internal/state"
	"github.com/studybuddy/studybuddy/internal/testing/backendfake"
)

/*
FEATURE: Authentication
DOMAIN: Auth

ACCEPTANCE CRITERIA:
===================

AC-AUTH-001: Register with Email/Password
  GIVEN a valid email, password (8+ chars), and name
  WHEN the user registers
  THEN an account and a session are created
  AND the current user reflects the registered identity

AC-AUTH-002: Register Duplicate Email
  GIVEN an existing account with email X
  WHEN a new user registers with email X
  THEN the request fails with "An account with this email already exists"

AC-AUTH-003: Login with Valid Credentials
  GIVEN a registered account
  WHEN the user logs in with correct credentials
  THEN a session is established and the user cache is hydrated

AC-AUTH-004: Login with Invalid Credentials
  GIVEN a registered account
  WHEN the user logs in with the wrong password
  THEN the request fails with "Invalid email or password"

AC-AUTH-005: Logout
  GIVEN a logged-in user
  WHEN the user logs out
  THEN the session is destroyed and the user cache is cleared

AC-AUTH-006: Expired Session
  GIVEN a session past its expiry
  WHEN the current user is checked
  THEN no user is reported and no error surfaces
*/

func newAuthStack(fake *backendfake.Fake) *state.Auth {
	return state.NewAuth(service.NewAuth(fake, zerolog.Nop()))
}

func TestAuthFlow_RegisterAndCheck(t *testing.T) {
	// AC-AUTH-001
	ctx := context.Background()
	auth := newAuthStack(backendfake.New())

	res := auth.Register(ctx, "ada@example.com", "password123", "Ada")
	require.True(t, res.Success, res.Err)

	user := auth.User()
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEmpty(t, user.ID)
	assert.True(t, auth.IsAuthenticated())
}

func TestAuthFlow_DuplicateEmail(t *testing.T) {
	// AC-AUTH-002
	ctx := context.Background()
	fake := backendfake.New()

	first := newAuthStack(fake)
	require.True(t, first.Register(ctx, "ada@example.com", "password123", "Ada").Success)
	require.True(t, first.Logout(ctx).Success)

	second := newAuthStack(fake)
	res := second.Register(ctx, "ada@example.com", "different456", "Imposter")
	require.False(t, res.Success)
	assert.Equal(t, "An account with this email already exists", res.Err)
}

func TestAuthFlow_LoginLogout(t *testing.T) {
	// AC-AUTH-003, AC-AUTH-005
	ctx := context.Background()
	fake := backendfake.New()
	auth := newAuthStack(fake)

	require.True(t, auth.Register(ctx, "ada@example.com", "password123", "Ada").Success)
	require.True(t, auth.Logout(ctx).Success)
	assert.False(t, auth.IsAuthenticated())

	res := auth.Login(ctx, "ada@example.com", "password123")
	require.True(t, res.Success, res.Err)
	require.NotNil(t, auth.User())
	assert.Equal(t, "Ada", auth.User().Name)

	require.True(t, auth.Logout(ctx).Success)
	assert.Nil(t, auth.User())
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthFlow_InvalidCredentials(t *testing.T) {
	// AC-AUTH-004
	ctx := context.Background()
	fake := backendfake.New()
	auth := newAuthStack(fake)

	require.True(t, auth.Register(ctx, "ada@example.com", "password123", "Ada").Success)
	require.True(t, auth.Logout(ctx).Success)

	res := auth.Login(ctx, "ada@example.com", "wrong-password")
	require.False(t, res.Success)
	assert.Equal(t, "Invalid email or password", res.Err)
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthFlow_ExpiredSession(t *testing.T) {
	// AC-AUTH-006
	ctx := context.Background()
	fake := backendfake.New()
	auth := newAuthStack(fake)

	require.True(t, auth.Register(ctx, "ada@example.com", "password123", "Ada").Success)
	fake.ExpireSession()

	res := auth.Check(ctx)
	require.True(t, res.Success, res.Err)
	assert.Nil(t, auth.User())
	assert.False(t, auth.IsAuthenticated())
}
