package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send messages",
	}

	sendCmd := &cobra.Command{
		Use:   "send <receiver-id> <message>...",
		Short: "Send a one-to-one message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.runChatSend(cmd.Context(), id, strings.Join(args[1:], " "))
		},
	}

	cmd.AddCommand(sendCmd)
	return cmd
}

func (app *App) runChatSend(ctx context.Context, receiverID int64, content string) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.SendSingleMessage(ctx, pkgapi.SingleChatRequest{
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	app.io.Printf("✓ Message delivered (id %d, %s)\n", resp.Data.ID, resp.Data.Status)
	return nil
}
