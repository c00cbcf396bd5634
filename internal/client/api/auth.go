package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// SendVerifyCode requests a verification code for the given identifier
func (c *Client) SendVerifyCode(ctx context.Context, req pkgapi.VerifyCodeRequest) (*pkgapi.SendVerifyCodeResponse, error) {
	var resp pkgapi.SendVerifyCodeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user/sendVerifyCode", req, &resp); err != nil {
		return nil, fmt.Errorf("send verify code request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates the user with a verification code
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error) {
	var resp pkgapi.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
	var resp pkgapi.RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// ResetPassword resets the account password using a verification code
func (c *Client) ResetPassword(ctx context.Context, req pkgapi.ResetPasswordRequest) (*pkgapi.ResetPasswordResponse, error) {
	var resp pkgapi.ResetPasswordResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user/reset-password", req, &resp); err != nil {
		return nil, fmt.Errorf("reset password request failed: %w", err)
	}
	return &resp, nil
}
