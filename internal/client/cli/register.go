package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lcchat/lcchat-cli/internal/validation"
	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

func newRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runRegister(cmd.Context())
		},
	}
}

func (app *App) runRegister(ctx context.Context) error {
	app.io.Println("=== Register ===")
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
			Type:         pkgapi.VerifyCodeTypeRegister,
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

	err = app.session.Register(ctx, pkgapi.RegisterRequest{
		IdentifyType: validation.IdentifyTypeEmail,
		Identifier:   email,
		VerifyCode:   code,
	})
	if err != nil {
		return err
	}

	app.io.Println()
	app.io.Println("✓ Account created!")
	app.io.Println("Run 'lcchat login' to sign in.")
	return nil
}
