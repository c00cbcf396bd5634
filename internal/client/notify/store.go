// Package notify implements the unread-notification counter. The counter is
// not persisted: it is rebuilt from the server on the first refresh of a
// session and mutated locally afterwards.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lcchat/lcchat-cli/internal/client/api"
)

// Store holds the unread contact-request counter plus a reserved counter
// for a future notification category.
type Store struct {
	mu                sync.Mutex
	contactApplyCount int
	systemNotifyCount int // reserved, always zero for now

	apiClient *api.Client
	logger    *zap.Logger
}

// NewStore creates a notification counter over the given API client
func NewStore(apiClient *api.Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		apiClient: apiClient,
		logger:    logger,
	}
}

// RefreshUnreadCount reconciles the local counter with the server value,
// discarding any local increments made since the last refresh. This is a
// background operation: failures on either channel are swallowed and only
// logged.
func (s *Store) RefreshUnreadCount(ctx context.Context) {
	resp, err := s.apiClient.GetUnreadCount(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh unread count", zap.Error(err))
		return
	}
	if !resp.OK() {
		s.logger.Warn("unread count refresh rejected",
			zap.Int("code", resp.Code),
			zap.String("msg", resp.Msg))
		return
	}

	s.mu.Lock()
	s.contactApplyCount = resp.Data
	s.mu.Unlock()
}

// IncrementLocal bumps the counter by one without any network call. Called
// when a realtime channel signals a newly arrived contact request.
func (s *Store) IncrementLocal() {
	s.mu.Lock()
	s.contactApplyCount++
	s.mu.Unlock()
}

// ClearAndSync zeroes the counter optimistically and then acknowledges the
// reads on the server. A counter that is already zero is a no-op. The local
// zero is never rolled back, even when the acknowledgement fails.
func (s *Store) ClearAndSync(ctx context.Context) {
	s.mu.Lock()
	if s.contactApplyCount == 0 {
		s.mu.Unlock()
		return
	}
	s.contactApplyCount = 0
	s.mu.Unlock()

	s.reconcile(ctx)
}

// reconcile pushes the read-all acknowledgement to the server. Failures are
// swallowed and logged; the optimistic local state stands either way.
func (s *Store) reconcile(ctx context.Context) {
	resp, err := s.apiClient.MarkAllRead(ctx)
	if err != nil {
		s.logger.Warn("failed to mark contact applies read", zap.Error(err))
		return
	}
	if !resp.OK() {
		s.logger.Warn("mark all read rejected",
			zap.Int("code", resp.Code),
			zap.String("msg", resp.Msg))
	}
}

// ContactApplyCount returns the unread contact-request counter
func (s *Store) ContactApplyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contactApplyCount
}

// TotalUnread returns the total across every notification category
func (s *Store) TotalUnread() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contactApplyCount + s.systemNotifyCount
}

// Reset zeroes every counter without touching the server. Used at logout.
func (s *Store) Reset() {
	s.mu.Lock()
	s.contactApplyCount = 0
	s.systemNotifyCount = 0
	s.mu.Unlock()
}
