package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
	"time"

	"github.com/andy/pizzabill/internal/config"
	"github.com/andy/pizzabill/internal/crypto"
	"github.com/andy/pizzabill/internal/db"
	"github.com/andy/pizzabill/internal/export"
	"github.com/andy/pizzabill/internal/logger"
	"github.com/andy/pizzabill/internal/repository"
	"github.com/andy/pizzabill/internal/service"
	"golang.org/x/term"
)

// Options selects what New builds
type Options struct {
	// ConfigPath overrides the default config location
	ConfigPath string

	// Session names the storage scope; empty means the default session
	Session string
}

// App is the dependency injection container for all application components
type App struct {
	Config  *config.Config
	DB      *db.DB // nil with the pebble backend
	Session string

	Snapshots repository.SnapshotRepository
	Bridge    *service.Bridge

	// Services
	Catalog  service.CatalogService
	Invoices service.InvoiceService

	// Export
	Formatter *export.Formatter
	Sharer    *export.ShareChain
	Workbook  export.Printer
	Text      export.Printer

	logCloser io.Closer
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config and logging
// 2. Opening the snapshot store (sqlcipher or pebble)
// 3. Purging idle sessions
// 4. Creating the bridge, services and exporters
func New(ctx context.Context, opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	closer, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	a, err := NewWithConfig(ctx, cfg, opts.Session)
	if err != nil {
		closer.Close()
		return nil, err
	}
	a.logCloser = closer
	return a, nil
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config, session string) (*App, error) {
	if session == "" {
		session = service.DefaultSessionID
	}
	if err := service.ValidateSessionID(session); err != nil {
		return nil, err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	a := &App{Config: cfg, Session: session}

	switch cfg.Storage.Backend {
	case config.BackendPebble:
		repo, err := repository.NewPebbleSnapshotRepo(cfg.Storage.PebbleDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot store: %w", err)
		}
		a.Snapshots = repo
	case config.BackendSQLite, "":
		database, err := openDatabase(cfg)
		if err != nil {
			return nil, err
		}
		a.DB = database
		a.Snapshots = repository.NewSnapshotRepo(database)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if _, err := service.PurgeIdleSessions(ctx, a.Snapshots, cfg.Storage.SessionMaxAge, time.Now()); err != nil {
		log := logger.WithComponent("app")
		log.Warn().Err(err).Msg("session purge failed")
	}

	a.Bridge = service.NewBridge(a.Snapshots, session, cfg.Storage.SnapshotKey)
	a.Catalog = service.NewCatalogService(ctx, a.Bridge, nil)
	a.Invoices = service.NewInvoiceService(a.Bridge, service.NewIdentityGenerator(cfg.Invoice.NumberPrefix))

	a.Formatter = export.NewFormatter(cfg.Invoice)
	a.Sharer = export.NewShareChain(cfg.Share.Command)
	a.Workbook = export.NewWorkbookPrinter(a.Formatter)
	a.Text = &export.TextPrinter{Formatter: a.Formatter}

	return a, nil
}

// openDatabase unlocks the encrypted database, prompting for a key on first run
func openDatabase(cfg *config.Config) (*db.DB, error) {
	keyring := crypto.NewKeyring()

	password, err := keyring.GetKey()
	if err != nil {
		// No usable key, prompt user to set one
		fmt.Println("Setting up database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	var errs []error
	if a.Snapshots != nil {
		errs = append(errs, a.Snapshots.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your price lists will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
