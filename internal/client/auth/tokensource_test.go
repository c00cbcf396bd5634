package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcchat/lcchat-cli/internal/client/storage"
)

func TestCredentialTokenSource_Token(t *testing.T) {
	store := newTestStorage(t)
	ts := NewCredentialTokenSource(store)
	ctx := context.Background()

	// Empty slot is not an error
	token, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SaveCredentials(ctx, &storage.Credentials{Token: "T1"}))

	token, err = ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
}

func TestCredentialTokenSource_Invalidate(t *testing.T) {
	store := newTestStorage(t)
	ts := NewCredentialTokenSource(store)
	ctx := context.Background()

	require.NoError(t, store.SaveCredentials(ctx, &storage.Credentials{Token: "T1"}))
	require.NoError(t, ts.Invalidate(ctx))

	token, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Invalidating an already-empty slot is fine
	require.NoError(t, ts.Invalidate(ctx))
}
