package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

func newContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage your contact list",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runContactsList(cmd.Context())
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.runContactsRemove(cmd.Context(), id)
		},
	}

	remarkCmd := &cobra.Command{
		Use:   "remark <id> <remark>",
		Short: "Change the remark of a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.runContactsRemark(cmd.Context(), id, args[1])
		},
	}

	cmd.AddCommand(listCmd, removeCmd, remarkCmd)
	return cmd
}

func (app *App) runContactsList(ctx context.Context) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.ListContacts(ctx)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		app.io.Println("No contacts yet.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Username", "Nickname", "Remark"})
	for _, contact := range resp.Data {
		table.Append([]string{
			strconv.FormatInt(contact.ID, 10),
			contact.Username,
			contact.Nickname,
			contact.Remark,
		})
	}
	table.Render()
	return nil
}

func (app *App) runContactsRemove(ctx context.Context, id int64) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.DeleteContact(ctx, id)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	app.io.Printf("✓ %s\n", resp.Data)
	return nil
}

func (app *App) runContactsRemark(ctx context.Context, id int64, remark string) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := app.apiClient.UpdateContact(ctx, pkgapi.UpdateContactRequest{
		ContactID: id,
		Remark:    remark,
	})
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	app.io.Printf("✓ %s\n", resp.Data)
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id", arg)
	}
	return id, nil
}
