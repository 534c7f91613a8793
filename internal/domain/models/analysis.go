package models

import (
	"time"

	"github.com/guregu/null/v6"
)

// AnalysisSummary is the terminal artifact of the indicator pipeline for a
// single symbol.
//
// Fields:
//   - Symbol: ticker the summary was computed for.
//   - LatestDate: date of the most recent bar.
//   - LatestPrice: close of the most recent bar, rounded to 2 decimals.
//   - DailyChangePercent: percent change between the two most recent closes,
//     undefined when the previous close is zero.
//   - Sentiment: composite label, e.g. "Trend: Bullish, RSI: Neutral (54.32)".
//   - Trend, Momentum: the individual labels embedded in Sentiment.
//   - CurrentRSI, MAShort, MALong: latest indicator values, possibly undefined.
//
// A summary is built fresh for every request and never mutated afterwards.
type AnalysisSummary struct {
	Symbol             string     `json:"symbol"`
	LatestDate         time.Time  `json:"latest_date"`
	LatestPrice        float64    `json:"latest_price"`
	DailyChangePercent null.Float `json:"daily_change_percent"`
	Sentiment          string     `json:"sentiment"`
	Trend              string     `json:"trend"`
	Momentum           string     `json:"momentum"`
	CurrentRSI         null.Float `json:"current_rsi"`
	MAShort            null.Float `json:"ma_short"`
	MALong             null.Float `json:"ma_long"`
}

// AnalysisRecord is an AnalysisSummary as stored in the analysis log.
type AnalysisRecord struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	AnalysisSummary
}
