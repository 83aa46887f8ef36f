package cli

import (
	"context"
	"os"

	"github.com/andy/pizzabill/internal/app"
	"github.com/andy/pizzabill/internal/service"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var (
	sessionName string
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "pizzabill",
	Short: "Pizza ingredient prices and customer invoices",
	Long: `Pizzabill keeps a pizza-ingredient price list and turns it into customer invoices.

By default, running pizzabill without arguments launches the interactive TUI.
Use subcommands for CLI operations. Every command run with the same --session
sees the same price list.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
	RunE: launchTUI,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := closeApp(); err == nil {
		err = closeErr
	}
	return err
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// initApp builds the app once the session flag is known. An injected app wins.
func initApp(cmd *cobra.Command, args []string) error {
	if appInstance != nil {
		return nil
	}
	a, err := app.New(cmd.Context(), app.Options{
		ConfigPath: configPath,
		Session:    resolveSession(),
	})
	if err != nil {
		return err
	}
	appInstance = a
	return nil
}

func closeApp() error {
	if appInstance == nil {
		return nil
	}
	err := appInstance.Close()
	appInstance = nil
	return err
}

// resolveSession prefers --session, then PIZZABILL_SESSION, then the default session
func resolveSession() string {
	if sessionName != "" {
		return sessionName
	}
	if s := os.Getenv("PIZZABILL_SESSION"); s != "" {
		return s
	}
	return service.DefaultSessionID
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sessionName, "session", "", `Session name (env PIZZABILL_SESSION, default "default")`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/pizzabill/config.yaml)")

	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(tuiCmd)
}
