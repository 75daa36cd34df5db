package session

import (
	"context"
	"testing"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, now *time.Time) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Now:    func() time.Time { return *now },
	})
	require.NoError(t, err)
	return m
}

func TestManager_IssueThenVerify(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	m := newTestManager(t, &now)

	sess, err := m.Issue(context.Background(), "admin", auth.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	claims, err := m.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.True(t, claims.IsAdmin())
	assert.NotEmpty(t, claims.SessionID)
	assert.Equal(t, sess.ExpiresAt, claims.ExpiresAt)
}

func TestManager_VerifyExpired(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	m := newTestManager(t, &now)

	sess, err := m.Issue(context.Background(), "admin", auth.RoleAdmin)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = m.Verify(context.Background(), sess.Token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_VerifyRejectsOtherSecret(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, &now)

	other, err := NewManager(Config{Secret: []byte("another-secret"), Now: func() time.Time { return now }})
	require.NoError(t, err)

	sess, err := other.Issue(context.Background(), "admin", auth.RoleAdmin)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), sess.Token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_VerifyRejectsGarbage(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, &now)

	_, err := m.Verify(context.Background(), "")
	require.ErrorIs(t, err, ErrTokenEmpty)

	_, err = m.Verify(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	require.ErrorIs(t, err, ErrNotConfigured)
}
