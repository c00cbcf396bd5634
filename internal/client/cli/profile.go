package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")
			return app.runProfileShow(cmd.Context(), refresh)
		},
	}
	showCmd.Flags().Bool("refresh", false, "bypass the local cache")

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update nickname, gender or bio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runProfileUpdate(cmd.Context(), cmd)
		},
	}
	updateCmd.Flags().String("nickname", "", "new nickname")
	updateCmd.Flags().Int("gender", -1, "new gender (0 unknown, 1 male, 2 female)")
	updateCmd.Flags().String("bio", "", "new bio")

	avatarCmd := &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a new avatar image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runProfileAvatar(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(showCmd, updateCmd, avatarCmd)
	return cmd
}

func (app *App) runProfileShow(ctx context.Context, refresh bool) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	p, err := app.profiles.Fetch(ctx, refresh)
	if err != nil {
		return err
	}

	app.io.Printf("Username:   %s\n", p.Username)
	app.io.Printf("Nickname:   %s\n", p.Nickname)
	app.io.Printf("Gender:     %s\n", genderLabel(p.Gender))
	app.io.Printf("Bio:        %s\n", p.Bio)
	app.io.Printf("Avatar:     %s\n", p.Avatar)
	app.io.Printf("Created:    %s\n", p.CreateTime)
	app.io.Printf("Last login: %s\n", p.LastLoginTime)
	return nil
}

func (app *App) runProfileUpdate(ctx context.Context, cmd *cobra.Command) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	// Start from the current profile so unset flags keep their value
	current, err := app.profiles.Fetch(ctx, false)
	if err != nil {
		return err
	}

	updated := *current
	if cmd.Flags().Changed("nickname") {
		updated.Nickname, _ = cmd.Flags().GetString("nickname")
	}
	if cmd.Flags().Changed("gender") {
		updated.Gender, _ = cmd.Flags().GetInt("gender")
	}
	if cmd.Flags().Changed("bio") {
		updated.Bio, _ = cmd.Flags().GetString("bio")
	}

	if err := app.profiles.Update(ctx, updated); err != nil {
		return err
	}

	app.io.Println("✓ Profile updated.")
	return nil
}

func (app *App) runProfileAvatar(ctx context.Context, path string) error {
	if err := app.requireAuth(ctx); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open avatar file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	url, err := app.profiles.UploadAvatar(ctx, filepath.Base(path), file)
	if err != nil {
		return err
	}
	if url == "" {
		app.io.Println("Avatar upload was rejected by the server.")
		return nil
	}

	app.io.Printf("✓ Avatar uploaded: %s\n", url)
	return nil
}

func genderLabel(gender int) string {
	switch gender {
	case 1:
		return "male"
	case 2:
		return "female"
	default:
		return "unspecified"
	}
}
