// Package storage defines the persisted client-side state: the credential
// slot and user preferences. Implementations live in subpackages.
package storage

import "context"

// CredentialStorage defines the persisted credential slot. The token is an
// opaque bearer string: it is written on successful login, read on every
// outbound request and deleted on authorization failure or logout. The
// client never enforces expiry itself.
type CredentialStorage interface {
	// SaveCredentials stores the credentials, replacing any previous ones
	SaveCredentials(ctx context.Context, creds *Credentials) error

	// GetCredentials retrieves the stored credentials.
	// Returns ErrCredentialsNotFound when the slot is empty.
	GetCredentials(ctx context.Context) (*Credentials, error)

	// DeleteCredentials empties the slot (logout, 401 eviction).
	// Deleting an already-empty slot returns ErrCredentialsNotFound.
	DeleteCredentials(ctx context.Context) error
}

// Credentials represents the stored session credential. ExpiresAt is kept
// for display only; the server is the sole authority on token validity.
type Credentials struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresAt int64  `json:"expiresAt"` // unix seconds, informational
}
