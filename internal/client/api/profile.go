package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// avatarFormField is the multipart field name the server expects
const avatarFormField = "avatar"

// GetProfile fetches the signed-in user's profile
func (c *Client) GetProfile(ctx context.Context) (*pkgapi.GetProfileResponse, error) {
	var resp pkgapi.GetProfileResponse
	if err := c.doJSON(ctx, http.MethodGet, "/profile", nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile updates the user-editable profile fields
func (c *Client) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UpdateProfileResponse, error) {
	var resp pkgapi.UpdateProfileResponse
	if err := c.doJSON(ctx, http.MethodPut, "/profile/update", req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// UploadAvatar uploads an avatar image as multipart/form-data. This is the
// only call that overrides the process-wide JSON content type.
func (c *Client) UploadAvatar(ctx context.Context, filename string, file io.Reader) (*pkgapi.UploadAvatarResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(avatarFormField, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read avatar file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var resp pkgapi.UploadAvatarResponse
	if err := c.do(ctx, http.MethodPost, "/profile/uploadAvatar", writer.FormDataContentType(), &buf, &resp); err != nil {
		return nil, fmt.Errorf("upload avatar request failed: %w", err)
	}
	return &resp, nil
}
