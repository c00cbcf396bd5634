package api

import (
	"context"
	"fmt"
	"net/http"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

// SendSingleMessage sends a one-to-one chat message
func (c *Client) SendSingleMessage(ctx context.Context, req pkgapi.SingleChatRequest) (*pkgapi.SingleChatResponse, error) {
	var resp pkgapi.SingleChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat/single", req, &resp); err != nil {
		return nil, fmt.Errorf("send single message request failed: %w", err)
	}
	return &resp, nil
}
