package models

import "time"

// DateLayout is the calendar-date format used by the upstream provider and the API.
const DateLayout = "2006-01-02"

// PriceBar represents one trading day of a single symbol as returned by the
// upstream daily time series.
//
// Fields:
//   - Date: calendar date of the session (time component is always midnight UTC).
//   - Open, High, Low, Close: session prices, never negative.
//   - Volume: number of shares traded during the session.
//
// PriceBar is a value type; the pipeline copies it and never mutates it.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Quote represents the latest real-time quote snapshot for a symbol.
//
// ChangePercent is kept exactly as sent upstream (e.g. "1.2345%").
type Quote struct {
	Symbol           string  `json:"symbol"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Price            float64 `json:"price"`
	Volume           int64   `json:"volume"`
	LatestTradingDay string  `json:"latest_trading_day"`
	PreviousClose    float64 `json:"previous_close"`
	Change           float64 `json:"change"`
	ChangePercent    string  `json:"change_percent"`
}
