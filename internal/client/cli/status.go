package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/lcchat/lcchat-cli/internal/client/storage"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and notification status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runStatus(cmd.Context())
		},
	}
}

func (app *App) runStatus(ctx context.Context) error {
	app.io.Printf("Server: %s\n", app.cfg.Server.BaseURL)

	creds, err := app.session.CurrentCredentials(ctx)
	if errors.Is(err, storage.ErrCredentialsNotFound) {
		app.io.Println("Status: not authenticated")
		return nil
	}
	if err != nil {
		return err
	}

	app.io.Println("Status: authenticated")
	app.io.Printf("User:   %s\n", creds.Username)
	if creds.ExpiresAt > 0 {
		app.io.Printf("Token expires: %s\n", time.Unix(creds.ExpiresAt, 0).Format(time.RFC1123))
	}

	// Best effort: a failure here leaves the counter at zero and is only
	// logged by the store.
	app.notifications.RefreshUnreadCount(ctx)
	app.io.Printf("Unread contact requests: %d\n", app.notifications.TotalUnread())

	theme, err := app.store.GetSetting(ctx, storage.SettingTheme)
	if err == nil {
		app.io.Printf("Theme:  %s\n", theme)
	}

	return nil
}
