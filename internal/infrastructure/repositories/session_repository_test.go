package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

func testSession(nonce string) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ClientID:  "user-1",
		SessionID: nonce,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := testSession("nonce-1")
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByID(ctx, "nonce-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "user-1", found.ClientID)
	require.Equal(t, "nonce-1", found.SessionID)
}

func TestSessionRepositoryImpl_FindAbsent(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	found, err := repo.FindByID(context.Background(), "unknown")
	require.NoError(t, err, "an absent session is not an error")
	require.Nil(t, found)
}

func TestSessionRepositoryImpl_Expiry(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("nonce-1")))

	mr.FastForward(time.Hour + time.Second)

	found, err := repo.FindByID(ctx, "nonce-1")
	require.NoError(t, err)
	require.Nil(t, found, "an expired session must not be returned")
}

func TestSessionRepositoryImpl_StaleRecordIsDropped(t *testing.T) {
	// The record is still in the store but its embedded deadline has passed.
	_, client := newTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	stale := testSession("nonce-1")
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Create(ctx, stale))

	found, err := repo.FindByID(ctx, "nonce-1")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("nonce-1")))
	require.NoError(t, repo.Delete(ctx, "nonce-1"))

	found, err := repo.FindByID(ctx, "nonce-1")
	require.NoError(t, err)
	require.Nil(t, found)

	require.NoError(t, repo.Delete(ctx, "nonce-1"), "deleting a missing session is a no-op")
}
