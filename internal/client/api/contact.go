package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// ListContacts fetches the contact list
func (c *Client) ListContacts(ctx context.Context) (*pkgapi.ListContactsResponse, error) {
	var resp pkgapi.ListContactsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/contact/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("list contacts request failed: %w", err)
	}
	return &resp, nil
}

// DeleteContact removes a contact by id
func (c *Client) DeleteContact(ctx context.Context, id int64) (*pkgapi.DeleteContactResponse, error) {
	var resp pkgapi.DeleteContactResponse
	path := fmt.Sprintf("/contact/%d", id)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete contact request failed: %w", err)
	}
	return &resp, nil
}

// UpdateContact changes a contact's remark
func (c *Client) UpdateContact(ctx context.Context, req pkgapi.UpdateContactRequest) (*pkgapi.UpdateContactResponse, error) {
	var resp pkgapi.UpdateContactResponse
	if err := c.doJSON(ctx, http.MethodPut, "/contact/update", req, &resp); err != nil {
		return nil, fmt.Errorf("update contact request failed: %w", err)
	}
	return &resp, nil
}
