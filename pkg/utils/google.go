package utils

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes for Google APIs
const (
	ScopeSheets    = "https://www.googleapis.com/auth/spreadsheets"
	ScopeGmailSend = "https://www.googleapis.com/auth/gmail.send"
)

// ReadCredentialsFile loads a service account key file
func ReadCredentialsFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("credentials file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	return data, nil
}

// SheetsTokenSource returns a token source for the Sheets API from service account JSON.
// The spreadsheet must be shared with the service account's email.
func SheetsTokenSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, ScopeSheets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheets credentials: %w", err)
	}

	return creds.TokenSource, nil
}

// GmailTokenSource returns a token source that sends mail as sender.
// Requires domain-wide delegation for the service account.
func GmailTokenSource(ctx context.Context, credentialsJSON []byte, sender string) (oauth2.TokenSource, error) {
	if sender == "" {
		return nil, fmt.Errorf("gmail sender is empty")
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, ScopeGmailSend)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gmail credentials: %w", err)
	}
	jwtConfig.Subject = sender

	return jwtConfig.TokenSource(ctx), nil
}
