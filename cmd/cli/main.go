package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/cmd/cli/commands"
	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/clients/gmailclient"
	"github.com/jakechorley/duty-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/duty-roster/pkg/postgres"
	"github.com/jakechorley/duty-roster/pkg/utils"
	"github.com/jakechorley/duty-roster/pkg/utils/logging"
)

var (
	env      string
	app      = &commands.AppContext{}
	database *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Duty roster CLI - Generate and publish monthly ward rosters",
		Long:  `A CLI tool for generating, viewing and publishing monthly duty rosters from staff, occupancy and leave data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateRosterCmd(app))
	rootCmd.AddCommand(commands.PublishRosterCmd(app))
	rootCmd.AddCommand(commands.ViewRosterCmd(app))
	rootCmd.AddCommand(commands.ListStaffCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database and the optional Google clients
func initApp() error {
	var err error
	app.Ctx = context.Background()

	if err := loadDotEnv(env); err != nil {
		return err
	}

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully", zap.String("ward", app.Cfg.WardName))

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running database migrations")
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Info("Database initialized successfully")

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		app.Logger.Info("GOOGLE_CREDENTIALS_FILE not set; publishing and email alerts disabled")
		return nil
	}

	return initGoogleClients(credentialsFile)
}

func initGoogleClients(credentialsFile string) error {
	creds, err := utils.ReadCredentialsFile(credentialsFile)
	if err != nil {
		return err
	}

	app.Logger.Info("Initializing sheets client")
	sheetsTS, err := utils.SheetsTokenSource(app.Ctx, creds)
	if err != nil {
		return err
	}
	app.SheetsClient, err = sheetsclient.NewClient(app.Ctx, sheetsTS)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.Logger.Debug("Sheets client initialized successfully")

	if app.Cfg.GmailUserID == "" {
		app.Logger.Info("gmailUserID not configured; email alerts disabled")
		return nil
	}

	app.Logger.Info("Initializing gmail client", zap.String("sender", app.Cfg.GmailUserID))
	gmailTS, err := utils.GmailTokenSource(app.Ctx, creds, app.Cfg.GmailUserID)
	if err != nil {
		return err
	}
	app.GmailClient, err = gmailclient.NewClient(app.Ctx, gmailTS, app.Cfg.GmailUserID)
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}
	app.Logger.Debug("Gmail client initialized successfully")

	return nil
}

// loadDotEnv loads .env.<env> then .env; missing files are ignored and real environment variables win
func loadDotEnv(env string) error {
	for _, name := range []string{".env." + env, ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}
