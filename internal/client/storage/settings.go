package storage

import "context"

// Well-known setting keys
const (
	// SettingTheme stores the UI theme preference
	SettingTheme = "theme"
)

// SettingsStorage persists small key/value user preferences
type SettingsStorage interface {
	// SaveSetting stores a preference value under key
	SaveSetting(ctx context.Context, key, value string) error

	// GetSetting retrieves a preference value.
	// Returns ErrSettingNotFound when the key has never been set.
	GetSetting(ctx context.Context, key string) (string, error)
}
