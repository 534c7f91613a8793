package indicator

import (
	"fmt"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// MinBars is the shortest series Analyze accepts for the given windows: the
// long window, and never fewer than two bars so a daily change exists.
func MinBars(w Windows) int {
	return max(w.Long, 2)
}

// Analyze runs the engine over bars and assembles the summary of the most
// recent session.
//
// Returns ErrInsufficientHistory when len(bars) < MinBars(w). Price, percent
// and indicator fields are rounded to 2 decimals here and nowhere else.
func Analyze(symbol string, bars []models.PriceBar, w Windows) (*models.AnalysisSummary, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if need := MinBars(w); len(bars) < need {
		return nil, fmt.Errorf("%w: got %d bars, need %d", ErrInsufficientHistory, len(bars), need)
	}

	rows, err := Compute(bars, w)
	if err != nil {
		return nil, err
	}

	desc := newestFirst(rows)
	latest, previous := desc[0], desc[1]
	sentiment := Classify(latest)

	summary := &models.AnalysisSummary{
		Symbol:      symbol,
		LatestDate:  latest.Date,
		LatestPrice: round2(latest.Close),
		Sentiment:   sentiment.String(),
		Trend:       sentiment.Trend,
		Momentum:    sentiment.Momentum,
		CurrentRSI:  roundNull(latest.RSI),
		MAShort:     roundNull(latest.MAShort),
		MALong:      roundNull(latest.MALong),
	}
	if change, err := PercentChange(previous.Close, latest.Close); err == nil {
		summary.DailyChangePercent = null.FloatFrom(round2(change))
	}

	return summary, nil
}

// PercentChange returns (current-previous)/previous*100, or ErrDivisionByZero
// when previous is zero.
func PercentChange(previous, current float64) (float64, error) {
	if previous == 0 {
		return 0, ErrDivisionByZero
	}
	return (current - previous) / previous * 100, nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func roundNull(v null.Float) null.Float {
	if !v.Valid {
		return v
	}
	return null.FloatFrom(round2(v.Float64))
}
