package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lcchat/lcchat-cli/internal/validation"
	pkgapi "github.com/lcchat/lcchat-cli/pkg/api"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with an emailed verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runLogin(cmd.Context())
		},
	}
}

func (app *App) runLogin(ctx context.Context) error {
	app.io.Println("=== Login ===")
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
			Type:         pkgapi.VerifyCodeTypeLogin,
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

	data, err := app.session.Login(ctx, pkgapi.LoginRequest{
		IdentifyType: validation.IdentifyTypeEmail,
		Identifier:   email,
		VerifyCode:   code,
	})
	if err != nil {
		return err
	}

	app.io.Println()
	app.io.Println("✓ Login successful!")
	app.io.Printf("Welcome back, %s\n", data.Profile.Nickname)
	app.io.Printf("Token expires in: %d seconds\n", data.ExpiresIn)
	return nil
}
