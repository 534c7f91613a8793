package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// AnalysisRepository defines contract for the append-only analysis log.
//
// The log is an audit trail: nothing read from it ever feeds back into the
// indicator pipeline.
type AnalysisRepository interface {
	RecordAnalysis(ctx context.Context, summary *models.AnalysisSummary) error
	RecentAnalyses(ctx context.Context, symbol string, limit int) ([]models.AnalysisRecord, error)
}

type analysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// RecordAnalysis inserts one summary into analysis_log.
func (r *analysisRepository) RecordAnalysis(ctx context.Context, s *models.AnalysisSummary) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analysis_log (symbol, latest_date, latest_price, daily_change_percent, sentiment, trend, momentum, rsi, ma_short, ma_long)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		s.Symbol,
		s.LatestDate,
		s.LatestPrice,
		s.DailyChangePercent,
		s.Sentiment,
		s.Trend,
		s.Momentum,
		s.CurrentRSI,
		s.MAShort,
		s.MALong,
	)
	if err != nil {
		return fmt.Errorf("insert analysis_log: %w", err)
	}
	return nil
}

// RecentAnalyses returns up to limit entries for symbol, newest first.
func (r *analysisRepository) RecentAnalyses(ctx context.Context, symbol string, limit int) ([]models.AnalysisRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, symbol, latest_date, latest_price, daily_change_percent, sentiment, trend, momentum, rsi, ma_short, ma_long, created_at
		FROM analysis_log
		WHERE symbol = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query analysis_log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.AnalysisRecord
	for rows.Next() {
		var rec models.AnalysisRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Symbol,
			&rec.LatestDate,
			&rec.LatestPrice,
			&rec.DailyChangePercent,
			&rec.Sentiment,
			&rec.Trend,
			&rec.Momentum,
			&rec.CurrentRSI,
			&rec.MAShort,
			&rec.MALong,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan analysis_log: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analysis_log: %w", err)
	}
	return out, nil
}

type noopRepository struct{}

// NewNoopRepository returns a repository that records nothing, used when the
// analysis log is disabled.
func NewNoopRepository() AnalysisRepository {
	return noopRepository{}
}

func (noopRepository) RecordAnalysis(context.Context, *models.AnalysisSummary) error { return nil }

func (noopRepository) RecentAnalyses(context.Context, string, int) ([]models.AnalysisRecord, error) {
	return nil, nil
}
