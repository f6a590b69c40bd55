package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/clients/gmailclient"
	"github.com/jakechorley/duty-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/duty-roster/pkg/core/services"
	"github.com/jakechorley/duty-roster/pkg/db"
)

// AppContext holds the application dependencies shared across all commands.
// SheetsClient and GmailClient are nil when Google credentials are not configured.
type AppContext struct {
	Cfg          *config.Config
	SheetsClient *sheetsclient.Client
	GmailClient  *gmailclient.Client
	Database     db.Database
	Logger       *zap.Logger
	Ctx          context.Context
}

// mailer returns the gmail client as a services.Mailer, or nil when unset
func (a *AppContext) mailer() services.Mailer {
	if a.GmailClient == nil {
		return nil
	}
	return a.GmailClient
}

// publisher returns the sheets client as a services.RosterPublisher, or nil when unset
func (a *AppContext) publisher() services.RosterPublisher {
	if a.SheetsClient == nil {
		return nil
	}
	return a.SheetsClient
}
