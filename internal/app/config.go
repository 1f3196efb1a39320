package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Supported roster storage backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSheets = "sheets"
)

// Config holds application configuration
type Config struct {
	Store           string
	RosterFile      string
	RedisURL        string
	RedisKey        string
	SpreadsheetID   string
	CredentialsFile string
	RosterRange     string
	HTTPAddr        string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	zerolog.SetGlobalLevel(parseLevel(os.Getenv("LOGLEVEL"), os.Getenv("ENV") == "production"))

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// parseLevel maps a LOGLEVEL value to a zerolog level
func parseLevel(raw string, production bool) zerolog.Level {
	levelStr := strings.ToLower(strings.TrimSpace(raw))
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	case "":
		// Default based on environment
		if production {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	default:
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
		return zerolog.InfoLevel
	}
}

// Overrides holds command line values that take precedence over the environment.
// Empty fields leave the environment value in place.
type Overrides struct {
	Store      string
	RosterFile string
	HTTPAddr   string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	return LoadConfigWith(Overrides{})
}

// LoadConfigWith loads configuration from environment variables, applies
// overrides and only then validates, so a flag can fix a bad environment.
func LoadConfigWith(overrides Overrides) (*Config, error) {
	config := &Config{
		Store:           strings.ToLower(envOrDefault("ROSTER_STORE", StoreFile)),
		RosterFile:      envOrDefault("ROSTER_FILE", "survivors.json"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisKey:        envOrDefault("REDIS_KEY", "survivorList"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: envOrDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		RosterRange:     envOrDefault("ROSTER_RANGE", "Survivors!A2:A"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
	}

	if overrides.Store != "" {
		config.Store = strings.ToLower(overrides.Store)
	}
	if overrides.RosterFile != "" {
		config.RosterFile = overrides.RosterFile
	}
	if overrides.HTTPAddr != "" {
		config.HTTPAddr = overrides.HTTPAddr
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the selected store has everything it needs
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.RosterFile == "" {
			return fmt.Errorf("ROSTER_FILE environment variable is required for the file store")
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL environment variable is required for the redis store")
		}
	case StoreSheets:
		if c.SpreadsheetID == "" {
			return fmt.Errorf("SPREADSHEET_ID environment variable is required for the sheets store")
		}
	default:
		return fmt.Errorf("unknown ROSTER_STORE %q (expected %s, %s or %s)", c.Store, StoreFile, StoreRedis, StoreSheets)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
