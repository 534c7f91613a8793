package dto

import (
	"time"

	"github.com/guregu/null/v6"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// AnalysisSummary is the wire form of models.AnalysisSummary.
//
// Undefined indicators are encoded as JSON null, never as NaN or zero.
type AnalysisSummary struct {
	LatestDate         string     `json:"latest_date" example:"2025-09-12"`
	LatestPrice        float64    `json:"latest_price" example:"250.12"`
	DailyChangePercent null.Float `json:"daily_change_percent" swaggertype:"number" example:"1.25"`
	Sentiment          string     `json:"sentiment" example:"Trend: Bullish, RSI: Neutral (54.32)"`
	CurrentRSI         null.Float `json:"current_rsi" swaggertype:"number" example:"54.32"`
	MAShort            null.Float `json:"ma_short" swaggertype:"number" example:"248.10"`
	MALong             null.Float `json:"ma_long" swaggertype:"number" example:"240.00"`
}

// AnalysisResponse is returned by GET /api/v1/analyze/{symbol}.
type AnalysisResponse struct {
	Symbol   string          `json:"symbol" example:"IBM"`
	Analysis AnalysisSummary `json:"analysis"`
}

// BatchItem is one entry of a multi-symbol analysis. Exactly one of
// Analysis and Error is set.
type BatchItem struct {
	Symbol   string           `json:"symbol" example:"IBM"`
	Analysis *AnalysisSummary `json:"analysis,omitempty"`
	Error    *ErrorResponse   `json:"error,omitempty"`
}

// BatchResponse is returned by GET /api/v1/analyze?symbols=.
type BatchResponse struct {
	Results []BatchItem `json:"results"`
}

// HistoryEntry is one row of the analysis log.
type HistoryEntry struct {
	ID         int64           `json:"id" example:"42"`
	RecordedAt time.Time       `json:"recorded_at" example:"2025-09-12T21:00:00Z"`
	Analysis   AnalysisSummary `json:"analysis"`
}

// HistoryResponse is returned by GET /api/v1/history/{symbol}.
type HistoryResponse struct {
	Symbol  string         `json:"symbol" example:"IBM"`
	Entries []HistoryEntry `json:"entries"`
}

// FromSummary maps a domain summary onto its wire form.
func FromSummary(s *models.AnalysisSummary) AnalysisSummary {
	return AnalysisSummary{
		LatestDate:         s.LatestDate.Format(models.DateLayout),
		LatestPrice:        s.LatestPrice,
		DailyChangePercent: s.DailyChangePercent,
		Sentiment:          s.Sentiment,
		CurrentRSI:         s.CurrentRSI,
		MAShort:            s.MAShort,
		MALong:             s.MALong,
	}
}

func NewAnalysisResponse(s *models.AnalysisSummary) AnalysisResponse {
	return AnalysisResponse{Symbol: s.Symbol, Analysis: FromSummary(s)}
}

func NewHistoryResponse(symbol string, records []models.AnalysisRecord) HistoryResponse {
	entries := make([]HistoryEntry, 0, len(records))
	for i := range records {
		entries = append(entries, HistoryEntry{
			ID:         records[i].ID,
			RecordedAt: records[i].CreatedAt,
			Analysis:   FromSummary(&records[i].AnalysisSummary),
		})
	}
	return HistoryResponse{Symbol: symbol, Entries: entries}
}
