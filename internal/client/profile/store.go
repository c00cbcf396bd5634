// Package profile implements the client-side profile cache. All reads and
// writes of the signed-in user's profile go through the Store, which keeps
// one cached copy with a fixed freshness window.
package profile

import (
	"context"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lcchat/lcchat-cli/internal/client/api"
	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// DefaultTTL is the freshness window of the cached profile. A cached read
// is served without a network call only while the entry is younger than
// this.
const DefaultTTL = 60 * time.Second

// Store caches the signed-in user's profile.
//
// The mutex guards the cached state only, not the network calls: two Fetch
// calls racing on a stale cache both hit the server and the last one to
// resolve wins the cache write. There is no request coalescing.
type Store struct {
	mu         sync.Mutex
	profile    *pkgapi.Profile
	lastUpdate time.Time

	apiClient *api.Client
	ttl       time.Duration
	nowFunc   func() time.Time
	logger    *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithTTL overrides the freshness window
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock overrides the time source, so tests do not wait on real timers
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.nowFunc = now }
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates a profile cache over the given API client
func NewStore(apiClient *api.Client, opts ...Option) *Store {
	s := &Store{
		apiClient: apiClient,
		ttl:       DefaultTTL,
		nowFunc:   time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the profile, serving it from cache when the entry is
// present and fresh, unless forceRefresh is set. Wrapper failures are
// propagated unchanged; the cache is only written on application-level
// success.
func (s *Store) Fetch(ctx context.Context, forceRefresh bool) (*pkgapi.Profile, error) {
	if !forceRefresh {
		s.mu.Lock()
		if s.profile != nil {
			age := s.nowFunc().Sub(s.lastUpdate)
			if age < s.ttl {
				p := s.profile
				s.mu.Unlock()
				s.logger.Debug("serving profile from cache", zap.Duration("age", age))
				return p, nil
			}
		}
		s.mu.Unlock()
	}

	resp, err := s.apiClient.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	p := resp.Data

	s.mu.Lock()
	s.profile = &p
	s.lastUpdate = s.nowFunc()
	s.mu.Unlock()

	return &p, nil
}

// Update pushes the caller-supplied profile to the server. The cache is
// replaced only on application-level success; on any failure it is left
// untouched, so callers must not assume an optimistic update happened.
func (s *Store) Update(ctx context.Context, p pkgapi.Profile) error {
	req := pkgapi.UpdateProfileRequest{
		Nickname: p.Nickname,
		Gender:   p.Gender,
		Bio:      p.Bio,
	}

	resp, err := s.apiClient.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = &p
	s.lastUpdate = s.nowFunc()
	s.mu.Unlock()

	return nil
}

// UploadAvatar uploads a new avatar image and returns its URL. On
// application-level rejection it returns an empty string and no error,
// while transport failures are returned as errors. On success only the
// avatar field of a cached profile is patched.
func (s *Store) UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error) {
	resp, err := s.apiClient.UploadAvatar(ctx, filename, file)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		s.logger.Warn("avatar upload rejected",
			zap.Int("code", resp.Code),
			zap.String("msg", resp.Msg))
		return "", nil
	}

	s.mu.Lock()
	if s.profile != nil {
		s.profile.Avatar = resp.Data
		s.lastUpdate = s.nowFunc()
	}
	s.mu.Unlock()

	return resp.Data, nil
}

// Prime seeds the cache from an already-fetched profile, e.g. the one
// embedded in the login payload.
func (s *Store) Prime(p pkgapi.Profile) {
	s.mu.Lock()
	s.profile = &p
	s.lastUpdate = s.nowFunc()
	s.mu.Unlock()
}

// Clear drops the cached profile. Used at logout; idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.profile = nil
	s.lastUpdate = time.Time{}
	s.mu.Unlock()
}

// Loaded reports whether a profile is currently cached
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil
}

// Cached returns the cached profile without any freshness check, or nil
func (s *Store) Cached() *pkgapi.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}
