package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcchat/lcchat-cli/internal/validation"
	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

func newResetPasswordCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password",
		Short: "Reset the account password with an emailed verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runResetPassword(cmd.Context())
		},
	}
}

func (app *App) runResetPassword(ctx context.Context) error {
	app.io.Println("=== Reset password ===")
	app.io.Println()

	email, err := app.io.ReadInput("Email: ")
	if err != nil {
		return err
	}

	send, err := app.io.Confirm("Send a verification code to this address?")
	if err != nil {
		return err
	}
	if send {
		req := pkgapi.VerifyCodeRequest{
			Type:         pkgapi.VerifyCodeTypeReset,
			IdentifyType: validation.IdentifyTypeEmail,
			Identifier:   email,
		}
		if err := app.session.SendVerifyCode(ctx, req); err != nil {
			return err
		}
		app.io.Println("Verification code sent.")
	}

	code, err := app.io.ReadInput("Verification code: ")
	if err != nil {
		return err
	}

	password, err := app.io.ReadPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := app.io.ReadPassword("Repeat new password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	err = app.session.ResetPassword(ctx, pkgapi.ResetPasswordRequest{
		IdentifyType: validation.IdentifyTypeEmail,
		Identifier:   email,
		VerifyCode:   code,
		Password:     password,
	})
	if err != nil {
		return err
	}

	app.io.Println()
	app.io.Println("✓ Password has been reset.")
	return nil
}
