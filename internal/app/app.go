package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/alphavantage"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/indicator"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/metrics"
	"github.com/guttosm/stockpulse/internal/service"
	"github.com/guttosm/stockpulse/internal/storage"
)

// Components bundles the long-lived dependencies shared by the HTTP server
// and the one-shot CLI mode.
type Components struct {
	Service service.AnalysisService
	Metrics *metrics.Metrics
	DB      *sql.DB // nil when the analysis log is disabled
}

// Close releases the database handle, if any.
func (c *Components) Close() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

// NewComponents wires metrics, the Alpha Vantage client, the analysis log
// repository and the analysis service from cfg.
//
// Postgres is only contacted when cfg.History.Enabled is set; otherwise
// analyses go to a no-op repository.
func NewComponents(cfg config.Config) (*Components, error) {
	m := metrics.New()

	client := alphavantage.NewClient(cfg.AlphaVantage, alphavantage.WithObserver(m))

	var (
		db   *sql.DB
		repo = storage.NewNoopRepository()
	)
	if cfg.History.Enabled {
		// indirection for unit testing
		conn, err := postgresOpener(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		if cfg.History.AutoMigrate {
			if err := migrator(conn); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		db = conn
		repo = storage.NewAnalysisRepository(conn)
		logger.L().Info().Str("host", cfg.Postgres.Host).Str("db", cfg.Postgres.DBName).Msg("analysis log enabled")
	}

	svc := service.NewAnalysisService(client, repo, service.Options{
		Windows: indicator.Windows{
			Short: cfg.Indicators.ShortWindow,
			Long:  cfg.Indicators.LongWindow,
			RSI:   cfg.Indicators.RSIWindow,
		},
		MaxBatch:      cfg.Batch.MaxSymbols,
		BatchParallel: cfg.Batch.Parallel,
		Observer:      m,
	})

	return &Components{Service: svc, Metrics: m, DB: db}, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the shared Components from config.AppConfig.
//   - Creates the HTTP handler layer and the router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	comps, err := NewComponents(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(comps.Service)
	router := api.NewRouter(handler, cfg.Server, comps.Metrics.Handler())

	var ping *api.HealthHandler
	if comps.DB != nil {
		ping = api.NewHealthHandler(comps.DB.PingContext)
	} else {
		ping = api.NewHealthHandler(nil)
	}
	ping.Register(router)

	return router, comps.Close, nil
}
