package auth

import (
	"context"
	"errors"

	"github.com/lcchat/lcchat-cli/internal/client/api"
	"github.com/lcchat/lcchat-cli/internal/client/storage"
)

// CredentialTokenSource adapts the persisted credential slot to the
// transport client's outbound hook. An empty slot yields an empty token,
// not an error, so unauthenticated requests are still sent.
type CredentialTokenSource struct {
	creds storage.CredentialStorage
}

// Compile-time check that CredentialTokenSource implements api.TokenSource
var _ api.TokenSource = (*CredentialTokenSource)(nil)

// NewCredentialTokenSource wraps a credential storage
func NewCredentialTokenSource(creds storage.CredentialStorage) *CredentialTokenSource {
	return &CredentialTokenSource{creds: creds}
}

// Token returns the stored bearer token, or "" when none is stored
func (ts *CredentialTokenSource) Token(ctx context.Context) (string, error) {
	creds, err := ts.creds.GetCredentials(ctx)
	if errors.Is(err, storage.ErrCredentialsNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return creds.Token, nil
}

// Invalidate empties the credential slot. An already-empty slot is fine.
func (ts *CredentialTokenSource) Invalidate(ctx context.Context) error {
	err := ts.creds.DeleteCredentials(ctx)
	if errors.Is(err, storage.ErrCredentialsNotFound) {
		return nil
	}
	return err
}
