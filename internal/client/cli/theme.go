package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcchat/lcchat-cli/internal/client/storage"
)

// Supported theme values
var themes = map[string]bool{
	"light": true,
	"dark":  true,
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the UI theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return app.runThemeShow(cmd.Context())
			}
			return app.runThemeSet(cmd.Context(), args[0])
		},
	}
}

func (app *App) runThemeShow(ctx context.Context) error {
	theme, err := app.store.GetSetting(ctx, storage.SettingTheme)
	if errors.Is(err, storage.ErrSettingNotFound) {
		app.io.Println("Theme: light (default)")
		return nil
	}
	if err != nil {
		return err
	}
	app.io.Printf("Theme: %s\n", theme)
	return nil
}

func (app *App) runThemeSet(ctx context.Context, theme string) error {
	if !themes[theme] {
		return fmt.Errorf("unknown theme %q, expected light or dark", theme)
	}
	if err := app.store.SaveSetting(ctx, storage.SettingTheme, theme); err != nil {
		return err
	}
	app.io.Printf("✓ Theme set to %s\n", theme)
	return nil
}
