// Package auth implements the client session lifecycle: login, register,
// logout and the stored-credential check the command guard consumes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lcchat/lcchat-cli/internal/client/api"
	"github.com/lcchat/lcchat-cli/internal/client/notify"
	"github.com/lcchat/lcchat-cli/internal/client/profile"
	"github.com/lcchat/lcchat-cli/internal/client/storage"
	"github.com/lcchat/lcchat-cli/internal/validation"
	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// Service ties the auth endpoints to the persisted credential slot and the
// client-side caches. It is constructed once at startup and torn down on
// logout; there are no package-level singletons.
type Service struct {
	apiClient     *api.Client
	creds         storage.CredentialStorage
	profiles      *profile.Store
	notifications *notify.Store
	logger        *zap.Logger
}

// NewService creates a session service. profiles and notifications may be
// nil; they are only reset/primed when present.
func NewService(
	apiClient *api.Client,
	creds storage.CredentialStorage,
	profiles *profile.Store,
	notifications *notify.Store,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		apiClient:     apiClient,
		creds:         creds,
		profiles:      profiles,
		notifications: notifications,
		logger:        logger,
	}
}

// SendVerifyCode requests a verification code for the given identifier
func (s *Service) SendVerifyCode(ctx context.Context, req pkgapi.VerifyCodeRequest) error {
	if err := validation.ValidateIdentifier(req.IdentifyType, req.Identifier); err != nil {
		return fmt.Errorf("invalid identifier: %w", err)
	}

	resp, err := s.apiClient.SendVerifyCode(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err()
}

// Login authenticates the user, persists the returned token and primes the
// profile cache from the login payload.
func (s *Service) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginData, error) {
	if err := validation.ValidateIdentifier(req.IdentifyType, req.Identifier); err != nil {
		return nil, fmt.Errorf("invalid identifier: %w", err)
	}
	if err := validation.ValidateVerifyCode(req.VerifyCode); err != nil {
		return nil, fmt.Errorf("invalid verify code: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	creds := &storage.Credentials{
		Username:  resp.Data.Profile.Username,
		Token:     resp.Data.Token,
		TokenType: resp.Data.TokenType,
		ExpiresAt: time.Now().Unix() + resp.Data.ExpiresIn,
	}
	if err := s.creds.SaveCredentials(ctx, creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	if s.profiles != nil {
		s.profiles.Prime(resp.Data.Profile)
	}

	s.logger.Info("logged in", zap.String("username", creds.Username))
	return &resp.Data, nil
}

// Register creates a new account. It does not log the user in.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) error {
	if err := validation.ValidateIdentifier(req.IdentifyType, req.Identifier); err != nil {
		return fmt.Errorf("invalid identifier: %w", err)
	}
	if err := validation.ValidateVerifyCode(req.VerifyCode); err != nil {
		return fmt.Errorf("invalid verify code: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err()
}

// ResetPassword resets the account password using a verification code
func (s *Service) ResetPassword(ctx context.Context, req pkgapi.ResetPasswordRequest) error {
	if err := validation.ValidateIdentifier(req.IdentifyType, req.Identifier); err != nil {
		return fmt.Errorf("invalid identifier: %w", err)
	}
	if err := validation.ValidateVerifyCode(req.VerifyCode); err != nil {
		return fmt.Errorf("invalid verify code: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.ResetPassword(ctx, req)
	if err != nil {
		return err
	}
	return resp.Err()
}

// Logout deletes the stored credential and resets both caches. Idempotent:
// logging out without a stored credential is not an error.
func (s *Service) Logout(ctx context.Context) error {
	err := s.creds.DeleteCredentials(ctx)
	if err != nil && !errors.Is(err, storage.ErrCredentialsNotFound) {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	if s.profiles != nil {
		s.profiles.Clear()
	}
	if s.notifications != nil {
		s.notifications.Reset()
	}

	s.logger.Info("logged out")
	return nil
}

// IsAuthenticated reports whether a credential is stored. This is the only
// signal the command guard consumes; the server remains the authority on
// token validity.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.creds.GetCredentials(ctx)
	if errors.Is(err, storage.ErrCredentialsNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CurrentCredentials returns the stored credentials for display purposes
func (s *Service) CurrentCredentials(ctx context.Context) (*storage.Credentials, error) {
	return s.creds.GetCredentials(ctx)
}
