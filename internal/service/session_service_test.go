package service

import (
	"context"
	"testing"
	"time"

	"swadesh-ai-be/internal/pkg/sessiontoken"
	"swadesh-ai-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIssueLookupRevoke(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions()

	token, expiresAt, err := sessions.Issue(ctx, "u1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	session, err := sessions.Lookup(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.UserId)

	require.NoError(t, sessions.Revoke(ctx, token))

	session, err = sessions.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionLookupRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionRepository(time.Hour)
	sessions := NewSessionService(store, sessiontoken.NewCodec("test-secret", "swadesh-ai"), time.Hour, nopLog)

	token, _, err := sessions.Issue(ctx, "u1")
	require.NoError(t, err)

	claims, err := sessiontoken.NewCodec("test-secret", "swadesh-ai").Parse(token)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		forged, err := sessiontoken.NewCodec("other", "swadesh-ai").Sign(claims.SessionID, "u1", time.Now().Add(time.Hour))
		require.NoError(t, err)
		session, err := sessions.Lookup(ctx, forged)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("session id reused for another user", func(t *testing.T) {
		forged, err := sessiontoken.NewCodec("test-secret", "swadesh-ai").Sign(claims.SessionID, "u2", time.Now().Add(time.Hour))
		require.NoError(t, err)
		session, err := sessions.Lookup(ctx, forged)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("garbage", func(t *testing.T) {
		session, err := sessions.Lookup(ctx, "garbage")
		require.NoError(t, err)
		assert.Nil(t, session)
		assert.NoError(t, sessions.Revoke(ctx, "garbage"))
	})
}
