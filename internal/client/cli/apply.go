package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

func newApplyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Manage contact requests",
	}

	sendCmd := &cobra.Command{
		Use:   "send <username>",
		Short: "Send a contact request to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApplySend(cmd.Context(), args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pending contact requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApplyList(cmd.Context())
		},
	}

	handleCmd := &cobra.Command{
		Use:   "handle <id>",
		Short: "Approve or reject a contact request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			reject, _ := cmd.Flags().GetBool("reject")
			return app.runApplyHandle(cmd.Context(), id, !reject)
		},
	}
	handleCmd.Flags().Bool("reject", false, "reject instead of approve")

	unreadCmd := &cobra.Command{
		Use:   "unread",
		Short: "Show the unread contact-request count",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApplyUnread(cmd.Context())
		},
	}

	readAllCmd := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every contact request as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApplyReadAll(cmd.Context())
		},
	}

	cmd.AddCommand(sendCmd, listCmd, handleCmd, unreadCmd, readAllCmd)
	return cmd
}

func (app *App) runApplySend(ctx context.Context, username string) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.AddContactApply(ctx, pkgapi.AddContactApplyRequest{UserName: username})
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	app.io.Printf("✓ Contact request sent to %s\n", username)
	return nil
}

func (app *App) runApplyList(ctx context.Context) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.ListApplies(ctx)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		app.io.Println("No pending contact requests.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Username", "Nickname", "Status", "Time"})
	for _, apply := range resp.Data {
		table.Append([]string{
			strconv.FormatInt(apply.ID, 10),
			apply.Username,
			apply.Nickname,
			apply.Status,
			apply.CreateTime,
		})
	}
	table.Render()
	return nil
}

func (app *App) runApplyHandle(ctx context.Context, id int64, agree bool) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.HandleApply(ctx, pkgapi.HandleApplyRequest{
		ContactID: id,
		Agree:     agree,
	})
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	if agree {
		app.io.Println("✓ Contact request approved.")
	} else {
		app.io.Println("✓ Contact request rejected.")
	}
	return nil
}

func (app *App) runApplyUnread(ctx context.Context) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	app.notifications.RefreshUnreadCount(ctx)
	app.io.Printf("Unread contact requests: %d\n", app.notifications.TotalUnread())
	return nil
}

func (app *App) runApplyReadAll(ctx context.Context) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	// Pull the authoritative count first; a fresh process starts at zero
	// and ClearAndSync would otherwise short-circuit.
	app.notifications.RefreshUnreadCount(ctx)
	app.notifications.ClearAndSync(ctx)

	app.io.Println("✓ All contact requests marked as read.")
	return nil
}
