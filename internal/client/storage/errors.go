package storage

import "errors"

// Common client storage errors
var (
	// ErrCredentialsNotFound indicates that the credential slot is empty
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrSettingNotFound indicates that a preference key has never been set
	ErrSettingNotFound = errors.New("setting not found")
)
