// Package cli wires the command tree. Construction happens in the root
// command's PersistentPreRunE, so every command sees fully built, injected
// dependencies and no package-level state.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lcchat/lcchat-cli/internal/client/api"
	"github.com/lcchat/lcchat-cli/internal/client/auth"
	"github.com/lcchat/lcchat-cli/internal/client/config"
	"github.com/lcchat/lcchat-cli/internal/client/iocli"
	"github.com/lcchat/lcchat-cli/internal/client/notify"
	"github.com/lcchat/lcchat-cli/internal/client/profile"
	"github.com/lcchat/lcchat-cli/internal/client/storage/boltdb"
)

// BuildInfo is filled from ldflags in main
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// App holds the constructed dependencies shared by the commands
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	store         *boltdb.Storage
	apiClient     *api.Client
	session       *auth.Service
	profiles      *profile.Store
	notifications *notify.Store
	io            iocli.IO
}

// NewRootCmd builds the lcchat command tree
func NewRootCmd(build BuildInfo) *cobra.Command {
	app := &App{io: iocli.NewStdio()}

	rootCmd := &cobra.Command{
		Use:           "lcchat",
		Short:         "Command-line client for the LCchat server",
		Long:          "lcchat talks to an LCchat server: accounts, profile, contacts, contact requests and one-to-one messages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return app.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.shutdown()
		},
	}

	rootCmd.PersistentFlags().String("server", "", "server base URL (overrides config)")
	rootCmd.PersistentFlags().String("db", "", "path to the local database (overrides config)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(build),
		newLoginCmd(app),
		newRegisterCmd(app),
		newResetPasswordCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newProfileCmd(app),
		newContactsCmd(app),
		newApplyCmd(app),
		newChatCmd(app),
		newThemeCmd(app),
	)

	return rootCmd
}

// initialize loads config and builds the client stack
func (app *App) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("server"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Client.DBPath = v
	}
	app.cfg = cfg

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		app.logger = logger
	} else {
		app.logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Client.DBPath), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	store, err := boltdb.New(cmd.Context(), cfg.Client.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	app.store = store

	tokens := auth.NewCredentialTokenSource(store)
	app.apiClient = api.NewClient(cfg.Server.BaseURL,
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithTokenSource(tokens),
		api.WithLogger(app.logger),
		api.WithSessionExpiredFunc(func() {
			app.io.Println("Session expired. Please run 'lcchat login' again.")
		}),
	)

	app.profiles = profile.NewStore(app.apiClient,
		profile.WithTTL(cfg.ProfileTTL()),
		profile.WithLogger(app.logger),
	)
	app.notifications = notify.NewStore(app.apiClient, app.logger)
	app.session = auth.NewService(app.apiClient, store, app.profiles, app.notifications, app.logger)

	return nil
}

// shutdown releases resources acquired in initialize
func (app *App) shutdown() {
	if app.store != nil {
		if err := app.store.Close(); err != nil && app.logger != nil {
			app.logger.Warn("failed to close local database", zap.Error(err))
		}
	}
	if app.logger != nil {
		_ = app.logger.Sync()
	}
}

// requireAuth is the command guard: commands that need a session check the
// stored-credential boolean before doing anything.
func (app *App) requireAuth(ctx context.Context) error {
	ok, err := app.session.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !ok {
		return fmt.Errorf("not authenticated, run 'lcchat login' first")
	}
	return nil
}

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lcchat\n")
			fmt.Printf("Version:    %s\n", build.Version)
			fmt.Printf("Build Date: %s\n", build.BuildDate)
			fmt.Printf("Git Commit: %s\n", build.GitCommit)
		},
	}
}
