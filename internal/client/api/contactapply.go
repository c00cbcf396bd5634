package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// AddContactApply sends a contact request to another user
func (c *Client) AddContactApply(ctx context.Context, req pkgapi.AddContactApplyRequest) (*pkgapi.AddContactApplyResponse, error) {
	var resp pkgapi.AddContactApplyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/contactApply/add", req, &resp); err != nil {
		return nil, fmt.Errorf("add contact apply request failed: %w", err)
	}
	return &resp, nil
}

// ListApplies fetches the pending contact requests
func (c *Client) ListApplies(ctx context.Context) (*pkgapi.ListAppliesResponse, error) {
	var resp pkgapi.ListAppliesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/contactApply/apply/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("list applies request failed: %w", err)
	}
	return &resp, nil
}

// HandleApply approves or rejects a pending contact request
func (c *Client) HandleApply(ctx context.Context, req pkgapi.HandleApplyRequest) (*pkgapi.HandleApplyResponse, error) {
	var resp pkgapi.HandleApplyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/contactApply/apply/handle", req, &resp); err != nil {
		return nil, fmt.Errorf("handle apply request failed: %w", err)
	}
	return &resp, nil
}

// GetUnreadCount fetches the unread contact-request total
func (c *Client) GetUnreadCount(ctx context.Context) (*pkgapi.GetUnreadCountResponse, error) {
	var resp pkgapi.GetUnreadCountResponse
	if err := c.doJSON(ctx, http.MethodGet, "/contactApply/unread-count", nil, &resp); err != nil {
		return nil, fmt.Errorf("get unread count request failed: %w", err)
	}
	return &resp, nil
}

// MarkAllRead marks every contact request as read
func (c *Client) MarkAllRead(ctx context.Context) (*pkgapi.MarkAllReadResponse, error) {
	var resp pkgapi.MarkAllReadResponse
	if err := c.doJSON(ctx, http.MethodPut, "/contactApply/read-all", nil, &resp); err != nil {
		return nil, fmt.Errorf("mark all read request failed: %w", err)
	}
	return &resp, nil
}
