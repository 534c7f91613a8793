package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Daily stock analysis service: moving averages, RSI and a sentiment label per symbol.
//  @termsOfService  https://github.com/guttosm/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Raw quotes from the market data provider
//
//  @tag.name        analysis
//  @tag.description Indicator series, sentiment summaries and the analysis log
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/stockpulse/config"
	_ "github.com/guttosm/stockpulse/docs" // swagger docs
	"github.com/guttosm/stockpulse/internal/app"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/mcpserver"
	"github.com/guttosm/stockpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runAnalyze analyzes symbols once and writes the batch result as indented
// JSON to out. Per-symbol failures are reported inside the document; only a
// rejected batch returns an error.
func runAnalyze(ctx context.Context, svc service.AnalysisService, symbols string, out io.Writer) error {
	results, err := svc.AnalyzeBatch(ctx, strings.Split(symbols, ","))
	if err != nil {
		return err
	}

	resp := dto.BatchResponse{Results: make([]dto.BatchItem, 0, len(results))}
	for _, r := range results {
		item := dto.BatchItem{Symbol: r.Symbol}
		if r.Err != nil {
			e := dto.NewErrorResponse("analysis failed", r.Err)
			item.Error = &e
		} else {
			s := dto.FromSummary(r.Summary)
			item.Analysis = &s
		}
		resp.Results = append(resp.Results, item)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// runMCP serves the MCP tools and resources over stdio until SIGINT/SIGTERM
// or until the client closes stdin.
func runMCP(ctx context.Context, svc service.AnalysisService, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := mcpserver.ServeStdio(ctx, mcpserver.New(svc), in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// main is the entry point of the stockpulse application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API (default).
//   - analyze: Analyzes --symbols once and prints JSON to stdout.
//   - mcp:     Serves MCP tools and resources over stdio; logs go to stderr.
//
// Flags:
//   - --mode:    Execution mode ("api", "analyze" or "mcp"). Default: "api".
//   - --symbols: Comma-separated tickers for analyze mode (e.g. "AAPL,MSFT").
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	mode := flag.String("mode", "api", "Mode: api, analyze or mcp")
	symbols := flag.String("symbols", "", "Comma-separated symbols for analyze mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	// Initialize JSON logger; stdout belongs to the protocol in mcp mode
	if *mode == "mcp" {
		logger.InitWithWriter(os.Stderr)
	} else {
		logger.Init()
	}

	switch *mode {
	case "analyze":
		logger.L().Info().Str("symbols", *symbols).Msg("running one-shot analysis")

		comps, err := app.NewComponents(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer comps.Close()

		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := runAnalyze(runCtx, comps.Service, *symbols, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("analysis failed")
		}

	case "mcp":
		comps, err := app.NewComponents(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer comps.Close()

		if err := runMCP(ctx, comps.Service, os.Stdin, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("mcp server failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
