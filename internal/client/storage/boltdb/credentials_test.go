package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcchat/lcchat-cli/internal/client/storage"
)

func testCredentials() *storage.Credentials {
	return &storage.Credentials{
		Username:  "alice",
		Token:     "T1",
		TokenType: "Bearer",
		ExpiresAt: 1_800_000_000,
	}
}

func TestSaveAndGetCredentials(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCredentials(ctx, testCredentials()))

	got, err := s.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "T1", got.Token)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, int64(1_800_000_000), got.ExpiresAt)
}

func TestSaveCredentials_ReplacesPrevious(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCredentials(ctx, testCredentials()))

	second := testCredentials()
	second.Token = "T2"
	require.NoError(t, s.SaveCredentials(ctx, second))

	got, err := s.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Token, "the slot holds at most one entry")
}

func TestGetCredentials_EmptySlot(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetCredentials(context.Background())
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}

func TestDeleteCredentials(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCredentials(ctx, testCredentials()))
	require.NoError(t, s.DeleteCredentials(ctx))

	_, err := s.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}

func TestDeleteCredentials_EmptySlot(t *testing.T) {
	s := newTestStorage(t)

	err := s.DeleteCredentials(context.Background())
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)
}
