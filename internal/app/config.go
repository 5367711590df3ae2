// Package app wires environment configuration and logging for the viewer.
package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sheetboard/internal/fetch"
)

// Config is everything the viewer needs at startup.
type Config struct {
	SpreadsheetID   string
	Sheets          []fetch.SheetRef
	InitialSheet    string
	CredentialsFile string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
// The TUI owns the terminal, so log output goes to the file named by
// SHEETBOARD_LOG (or nowhere when unset) rather than stderr.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	var out io.Writer = io.Discard
	if path := os.Getenv("SHEETBOARD_LOG"); path != "" {
		f, ferr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr == nil {
			out = f
		}
	}

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(out)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig reads the viewer configuration from the environment.
func LoadConfig() Config {
	cfg := Config{
		SpreadsheetID:   GetRequiredEnv("SPREADSHEET_ID"),
		Sheets:          ParseSheetList(GetRequiredEnv("SHEETS")),
		InitialSheet:    GetEnvWithDefault("SHEET", ""),
		CredentialsFile: GetEnvWithDefault("GOOGLE_CREDENTIALS", ""),
	}
	if len(cfg.Sheets) == 0 {
		log.Fatal().Msg("SHEETS must name at least one sheet")
	}
	return cfg
}

// ParseSheetList parses a comma-separated sheet list. Each entry is a sheet
// name, optionally followed by ":<gid>" when the numeric grid id is known,
// e.g. "Overview,Scores:123456". Blank entries are skipped.
func ParseSheetList(raw string) []fetch.SheetRef {
	var refs []fetch.SheetRef
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, gid, _ := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		refs = append(refs, fetch.SheetRef{Name: name, GID: strings.TrimSpace(gid)})
	}
	return refs
}

// GetRequiredEnv fetches a required environment variable or exits if not set.
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msgf("%s environment variable is required", key)
	}
	return value
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
