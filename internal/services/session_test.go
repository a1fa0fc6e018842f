package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLoginAndResolve(t *testing.T) {
	svc := NewSessionService("s3cret", time.Hour)
	require.True(t, svc.PasswordConfigured())

	session, err := svc.Login("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.True(t, session.IsAuthenticated)

	resolved := svc.Resolve(session.Token)
	require.NotNil(t, resolved)
	assert.Equal(t, session.Token, resolved.Token)
}

func TestSessionLoginWrongPassword(t *testing.T) {
	svc := NewSessionService("s3cret", time.Hour)

	session, err := svc.Login("wrong")
	assert.Nil(t, session)
	assert.EqualError(t, err, "invalid password")
}

func TestSessionLoginWithoutConfiguredPassword(t *testing.T) {
	svc := NewSessionService("", time.Hour)
	assert.False(t, svc.PasswordConfigured())

	// An empty submitted password must not match an empty configured one.
	session, err := svc.Login("")
	assert.Nil(t, session)
	assert.EqualError(t, err, "editor password is not configured")
}

func TestSessionLogout(t *testing.T) {
	svc := NewSessionService("s3cret", time.Hour)
	session, err := svc.Login("s3cret")
	require.NoError(t, err)

	svc.Logout(session.Token)
	assert.Nil(t, svc.Resolve(session.Token))

	// Logging out an unknown token is a no-op.
	svc.Logout("missing")
}

func TestSessionExpiry(t *testing.T) {
	svc := NewSessionService("s3cret", time.Millisecond)
	session, err := svc.Login("s3cret")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.Nil(t, svc.Resolve(session.Token))
}

func TestSessionResolveEmptyToken(t *testing.T) {
	svc := NewSessionService("s3cret", time.Hour)
	assert.Nil(t, svc.Resolve(""))
}

func TestSessionTokensAreUnique(t *testing.T) {
	svc := NewSessionService("s3cret", time.Hour)

	a, err := svc.Login("s3cret")
	require.NoError(t, err)
	b, err := svc.Login("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}
