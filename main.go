package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"sheetboard/internal/app"
	"sheetboard/internal/fetch"
	"sheetboard/internal/sheets"
	"sheetboard/internal/ui"
)

func main() {
	app.SetupEnvironment()
	cfg := app.LoadConfig()

	ctx := context.Background()
	source := buildSource(ctx, cfg)

	model := ui.New(source, cfg.Sheets, cfg.InitialSheet)
	program := tea.NewProgram(model, tea.WithAltScreen())

	log.Info().
		Int("sheets", len(cfg.Sheets)).
		Str("spreadsheet_id", cfg.SpreadsheetID).
		Msg("Starting sheetboard")

	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("UI exited with error")
	}
}

// buildSource picks the sheet source: the authenticated Sheets API when a
// credentials file is configured, otherwise the public CSV export endpoints.
func buildSource(ctx context.Context, cfg app.Config) ui.Source {
	if cfg.CredentialsFile != "" {
		client, err := sheets.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		log.Debug().Str("credentials", cfg.CredentialsFile).Msg("Using Sheets API source")
		return client
	}

	log.Debug().Msg("Using public CSV export source")
	return fetch.NewFetcher(cfg.SpreadsheetID)
}
