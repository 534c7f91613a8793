package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream market-data provider, indicator windows and
// the optional Postgres analysis log.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	ALPHAVANTAGE_API_KEY=demo
//	INDICATOR_MA_SHORT=20
//	INDICATOR_MA_LONG=50
//	INDICATOR_RSI=14
//	HISTORY_ENABLED=false
//	POSTGRES_HOST=localhost
type Config struct {
	Server       ServerConfig       // HTTP server configuration
	AlphaVantage AlphaVantageConfig // Upstream market-data provider
	Indicators   IndicatorConfig    // Indicator window sizes
	Batch        BatchConfig        // Multi-symbol analysis limits
	History      HistoryConfig      // Optional analysis log
	Postgres     PostgresConfig     // PostgreSQL connection settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string   // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int      // Requests allowed per client IP per minute
	CORSAllowOrigins   []string // Allowed CORS origins ("*" for any)
}

// AlphaVantageConfig defines how the upstream provider is reached.
//
// Fields:
//   - APIKey: key passed as the apikey query parameter (required).
//   - BaseURL: query endpoint, overridable for tests and proxies.
//   - OutputSize: "compact" (~100 most recent sessions) or "full".
//   - Timeout: per-request HTTP timeout.
type AlphaVantageConfig struct {
	APIKey     string
	BaseURL    string
	OutputSize string
	Timeout    time.Duration
}

// IndicatorConfig holds the window sizes, in bars, used by the indicator engine.
type IndicatorConfig struct {
	ShortWindow int
	LongWindow  int
	RSIWindow   int
}

// BatchConfig bounds the multi-symbol analysis endpoint.
type BatchConfig struct {
	MaxSymbols int // Symbols accepted per request
	Parallel   int // Symbols analyzed concurrently
}

// HistoryConfig toggles the append-only analysis log.
type HistoryConfig struct {
	Enabled     bool
	AutoMigrate bool // apply embedded migrations on startup
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("ALPHAVANTAGE_BASE_URL", "https://www.alphavantage.co/query")
	viper.SetDefault("ALPHAVANTAGE_OUTPUT_SIZE", "compact")
	viper.SetDefault("ALPHAVANTAGE_TIMEOUT", "10s")
	viper.SetDefault("INDICATOR_MA_SHORT", 20)
	viper.SetDefault("INDICATOR_MA_LONG", 50)
	viper.SetDefault("INDICATOR_RSI", 14)
	viper.SetDefault("BATCH_MAX_SYMBOLS", 10)
	viper.SetDefault("BATCH_PARALLEL", 4)
	viper.SetDefault("HISTORY_ENABLED", false)
	viper.SetDefault("HISTORY_AUTO_MIGRATE", true)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "stockpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			CORSAllowOrigins:   splitList(viper.GetString("CORS_ALLOW_ORIGINS")),
		},
		AlphaVantage: AlphaVantageConfig{
			APIKey:     viper.GetString("ALPHAVANTAGE_API_KEY"),
			BaseURL:    viper.GetString("ALPHAVANTAGE_BASE_URL"),
			OutputSize: viper.GetString("ALPHAVANTAGE_OUTPUT_SIZE"),
			Timeout:    viper.GetDuration("ALPHAVANTAGE_TIMEOUT"),
		},
		Indicators: IndicatorConfig{
			ShortWindow: viper.GetInt("INDICATOR_MA_SHORT"),
			LongWindow:  viper.GetInt("INDICATOR_MA_LONG"),
			RSIWindow:   viper.GetInt("INDICATOR_RSI"),
		},
		Batch: BatchConfig{
			MaxSymbols: viper.GetInt("BATCH_MAX_SYMBOLS"),
			Parallel:   viper.GetInt("BATCH_PARALLEL"),
		},
		History: HistoryConfig{
			Enabled:     viper.GetBool("HISTORY_ENABLED"),
			AutoMigrate: viper.GetBool("HISTORY_AUTO_MIGRATE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	// Validate critical fields
	validateConfig()
}

// DSN builds the PostgreSQL connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// splitList parses a comma-separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Postgres fields are only required when the analysis log is enabled.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}

func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.AlphaVantage.APIKey == "" {
		missing = append(missing, "ALPHAVANTAGE_API_KEY")
	}
	if cfg.AlphaVantage.BaseURL == "" {
		missing = append(missing, "ALPHAVANTAGE_BASE_URL")
	}
	if cfg.Indicators.ShortWindow <= 0 {
		missing = append(missing, "INDICATOR_MA_SHORT")
	}
	if cfg.Indicators.LongWindow <= 0 {
		missing = append(missing, "INDICATOR_MA_LONG")
	}
	if cfg.Indicators.RSIWindow <= 0 {
		missing = append(missing, "INDICATOR_RSI")
	}

	if !cfg.History.Enabled {
		return missing
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}
