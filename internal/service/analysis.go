package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/indicator"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/storage"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ErrInvalidSymbol is returned when a symbol is empty after trimming.
var ErrInvalidSymbol = errors.New("symbol is required")

// MarketDataProvider supplies raw price data. *alphavantage.Client satisfies it.
type MarketDataProvider interface {
	DailySeries(ctx context.Context, symbol string) ([]models.PriceBar, error)
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}

// Observer receives pipeline metrics. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveAnalysis(outcome string, bars int, elapsed time.Duration)
	ObserveHistoryWrite(err error)
}

// AnalysisService defines the market analysis use cases exposed over HTTP
// and the CLI.
type AnalysisService interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	Analyze(ctx context.Context, symbol string) (*models.AnalysisSummary, error)
	Historical(ctx context.Context, symbol string) ([]models.IndicatorRow, error)
	AnalyzeBatch(ctx context.Context, symbols []string) ([]BatchResult, error)
	History(ctx context.Context, symbol string, limit int) ([]models.AnalysisRecord, error)
}

// Options tunes an analysisService. Zero values fall back to defaults.
type Options struct {
	Windows       indicator.Windows
	MaxBatch      int
	BatchParallel int
	Observer      Observer
}

type analysisService struct {
	provider MarketDataProvider
	repo     storage.AnalysisRepository
	windows  indicator.Windows
	maxBatch int
	parallel int
	observer Observer
}

func NewAnalysisService(provider MarketDataProvider, repo storage.AnalysisRepository, opts Options) AnalysisService {
	s := &analysisService{
		provider: provider,
		repo:     repo,
		windows:  opts.Windows,
		maxBatch: opts.MaxBatch,
		parallel: opts.BatchParallel,
		observer: opts.Observer,
	}
	if s.windows == (indicator.Windows{}) {
		s.windows = indicator.DefaultWindows()
	}
	if s.maxBatch <= 0 {
		s.maxBatch = DefaultMaxBatch
	}
	if s.parallel <= 0 {
		s.parallel = DefaultBatchParallel
	}
	if s.repo == nil {
		s.repo = storage.NewNoopRepository()
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s
}

// NormalizeSymbol trims and upper-cases a ticker.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", ErrInvalidSymbol
	}
	return s, nil
}

func (s *analysisService) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return s.provider.Quote(ctx, sym)
}

// Analyze fetches a fresh series and runs the full pipeline. The result is
// appended to the analysis log; a failed write is logged and otherwise ignored.
func (s *analysisService) Analyze(ctx context.Context, symbol string) (*models.AnalysisSummary, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	log := logger.Symbol(sym)
	start := time.Now()

	bars, err := s.series(ctx, sym)
	if err != nil {
		s.observer.ObserveAnalysis(outcome(err), len(bars), time.Since(start))
		log.Warn().Err(err).Int("bars", len(bars)).Msg("series rejected")
		return nil, err
	}

	summary, err := indicator.Analyze(sym, bars, s.windows)
	s.observer.ObserveAnalysis(outcome(err), len(bars), time.Since(start))
	if err != nil {
		log.Warn().Err(err).Int("bars", len(bars)).Msg("analysis failed")
		return nil, err
	}

	werr := s.repo.RecordAnalysis(ctx, summary)
	s.observer.ObserveHistoryWrite(werr)
	if werr != nil {
		log.Error().Err(werr).Msg("failed to record analysis")
	}

	log.Info().
		Int("bars", len(bars)).
		Str("sentiment", summary.Sentiment).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return summary, nil
}

// Historical returns the full indicator series, oldest bar first.
func (s *analysisService) Historical(ctx context.Context, symbol string) ([]models.IndicatorRow, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	bars, err := s.series(ctx, sym)
	if err != nil {
		return nil, err
	}
	return indicator.Compute(bars, s.windows)
}

func (s *analysisService) History(ctx context.Context, symbol string, limit int) ([]models.AnalysisRecord, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.RecentAnalyses(ctx, sym, limit)
}

func (s *analysisService) series(ctx context.Context, symbol string) ([]models.PriceBar, error) {
	bars, err := s.provider.DailySeries(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch daily series: %w", err)
	}
	if err := indicator.ValidateSeries(bars); err != nil {
		return bars, err
	}
	return bars, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, indicator.ErrInsufficientHistory):
		return "insufficient_history"
	case errors.Is(err, indicator.ErrMalformedSeries):
		return "malformed_series"
	default:
		return "error"
	}
}

type nopObserver struct{}

func (nopObserver) ObserveAnalysis(string, int, time.Duration) {}
func (nopObserver) ObserveHistoryWrite(error)                  {}
