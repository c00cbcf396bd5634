package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/lcchat/lcchat-cli/internal/client/storage"
)

// Compile-time check that Storage implements SettingsStorage
var _ storage.SettingsStorage = (*Storage)(nil)

// SaveSetting stores a preference value under key
func (s *Storage) SaveSetting(ctx context.Context, key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save setting %q: %w", key, err)
		}

		return nil
	})
}

// GetSetting retrieves a preference value
func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrSettingNotFound
		}

		value = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return value, nil
}
