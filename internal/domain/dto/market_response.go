package dto

import (
	"github.com/guregu/null/v6"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// QuoteResponse is returned by GET /api/v1/quote/{symbol}.
type QuoteResponse struct {
	Symbol           string  `json:"symbol" example:"IBM"`
	Open             float64 `json:"open" example:"248.50"`
	High             float64 `json:"high" example:"251.00"`
	Low              float64 `json:"low" example:"247.90"`
	Price            float64 `json:"price" example:"250.12"`
	Volume           int64   `json:"volume" example:"3456789"`
	LatestTradingDay string  `json:"latest_trading_day" example:"2025-09-12"`
	PreviousClose    float64 `json:"previous_close" example:"247.02"`
	Change           float64 `json:"change" example:"3.10"`
	ChangePercent    string  `json:"change_percent" example:"1.2550%"`
}

// IndicatorPoint is one bar of GET /api/v1/historical/{symbol}. Values keep
// full precision for charting.
type IndicatorPoint struct {
	Date    string     `json:"date" example:"2025-09-12"`
	Open    float64    `json:"open" example:"248.50"`
	High    float64    `json:"high" example:"251.00"`
	Low     float64    `json:"low" example:"247.90"`
	Close   float64    `json:"close" example:"250.12"`
	Volume  int64      `json:"volume" example:"3456789"`
	MAShort null.Float `json:"ma_short" swaggertype:"number" example:"248.1035"`
	MALong  null.Float `json:"ma_long" swaggertype:"number" example:"240.0012"`
	RSI     null.Float `json:"rsi" swaggertype:"number" example:"54.3187"`
}

func NewQuoteResponse(q *models.Quote) QuoteResponse {
	return QuoteResponse(*q)
}

// NewIndicatorPoints converts the indicator table into the body of
// GET /api/v1/historical/{symbol}, oldest bar first. It never returns nil.
func NewIndicatorPoints(rows []models.IndicatorRow) []IndicatorPoint {
	points := make([]IndicatorPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, IndicatorPoint{
			Date:    r.Date.Format(models.DateLayout),
			Open:    r.Open,
			High:    r.High,
			Low:     r.Low,
			Close:   r.Close,
			Volume:  r.Volume,
			MAShort: r.MAShort,
			MALong:  r.MALong,
			RSI:     r.RSI,
		})
	}
	return points
}
