package models

import "github.com/guregu/null/v6"

// IndicatorRow is a PriceBar augmented with the computed indicators.
//
// Each indicator is undefined (Valid == false) for the leading bars where its
// window does not yet hold enough history. An undefined value is never the
// same thing as a computed zero and serializes to JSON null.
type IndicatorRow struct {
	PriceBar
	MAShort null.Float `json:"ma_short"`
	MALong  null.Float `json:"ma_long"`
	RSI     null.Float `json:"rsi"`
}
