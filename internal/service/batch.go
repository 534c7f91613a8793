package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
)

const (
	DefaultMaxBatch      = 10
	DefaultBatchParallel = 4
)

var (
	// ErrEmptyBatch is returned when no usable symbol was supplied.
	ErrEmptyBatch = errors.New("at least one symbol is required")

	// ErrBatchTooLarge is returned when more distinct symbols than allowed are requested.
	ErrBatchTooLarge = errors.New("too many symbols")
)

// BatchResult holds the outcome for one symbol of AnalyzeBatch. Exactly one
// of Summary and Err is set.
type BatchResult struct {
	Symbol  string
	Summary *models.AnalysisSummary
	Err     error
}

// AnalyzeBatch analyzes every distinct symbol independently and returns the
// results in request order. A failing symbol never aborts its siblings; only
// an invalid request or a cancelled context fails the whole batch.
func (s *analysisService) AnalyzeBatch(ctx context.Context, symbols []string) ([]BatchResult, error) {
	unique := dedupe(symbols)
	if len(unique) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(unique) > s.maxBatch {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrBatchTooLarge, len(unique), s.maxBatch)
	}

	results := make([]BatchResult, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)

	for i, sym := range unique {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := s.Analyze(gctx, sym)
			results[i] = BatchResult{Symbol: sym, Summary: summary, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.L().Info().Int("symbols", len(unique)).Int("failed", failed).Msg("batch analysis complete")
	return results, nil
}

// dedupe normalizes symbols and drops blanks and repeats, keeping first-seen order.
func dedupe(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, raw := range symbols {
		sym, err := NormalizeSymbol(raw)
		if err != nil {
			continue
		}
		if _, ok := seen[sym]; ok {
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
	}
	return out
}
