package indicator

import (
	"fmt"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

const (
	TrendBullish       = "Bullish"
	TrendBearish       = "Bearish"
	MomentumOverbought = "Overbought"
	MomentumOversold   = "Oversold"
	Neutral            = "Neutral"

	// InsufficientData is the sentiment reported when the latest row lacks any
	// of the indicators needed for classification.
	InsufficientData = "Insufficient data for analysis"

	OverboughtThreshold = 70.0
	OversoldThreshold   = 30.0
)

// Sentiment is the trend and momentum classification of a single row.
type Sentiment struct {
	Trend      string
	Momentum   string
	RSI        float64
	Sufficient bool
}

// Classify labels the row's trend from the moving-average crossover and its
// momentum from the RSI thresholds. Both thresholds are exclusive: an RSI of
// exactly 70 or 30 is Neutral.
func Classify(row models.IndicatorRow) Sentiment {
	if !row.MAShort.Valid || !row.MALong.Valid || !row.RSI.Valid {
		return Sentiment{}
	}

	s := Sentiment{Trend: Neutral, Momentum: Neutral, RSI: row.RSI.Float64, Sufficient: true}

	switch short, long := row.MAShort.Float64, row.MALong.Float64; {
	case short > long:
		s.Trend = TrendBullish
	case short < long:
		s.Trend = TrendBearish
	}

	switch {
	case s.RSI > OverboughtThreshold:
		s.Momentum = MomentumOverbought
	case s.RSI < OversoldThreshold:
		s.Momentum = MomentumOversold
	}

	return s
}

// String renders the composite label, e.g. "Trend: Bullish, RSI: Neutral (54.32)".
func (s Sentiment) String() string {
	if !s.Sufficient {
		return InsufficientData
	}
	return fmt.Sprintf("Trend: %s, RSI: %s (%.2f)", s.Trend, s.Momentum, s.RSI)
}
