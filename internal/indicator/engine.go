// Package indicator computes moving averages, RSI and a sentiment label over a
// daily price series.
//
// Every function is pure: inputs are copied, never mutated, and repeated calls
// on the same input produce bit-identical output. There is no package-level
// mutable state, so the package is safe to call concurrently for unrelated
// symbols.
package indicator

import (
	"fmt"
	"sort"

	"github.com/guregu/null/v6"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

const (
	DefaultShortWindow = 20
	DefaultLongWindow  = 50
	DefaultRSIWindow   = 14

	neutralRSI   = 50.0
	saturatedRSI = 100.0
)

// Windows holds the number of bars used by each indicator.
type Windows struct {
	Short int // short moving average
	Long  int // long moving average
	RSI   int // RSI averaging window
}

// DefaultWindows returns the conventional 20/50/14 configuration.
func DefaultWindows() Windows {
	return Windows{Short: DefaultShortWindow, Long: DefaultLongWindow, RSI: DefaultRSIWindow}
}

// Validate reports ErrInvalidWindow when any window is not positive.
func (w Windows) Validate() error {
	if w.Short <= 0 || w.Long <= 0 || w.RSI <= 0 {
		return fmt.Errorf("%w: short=%d long=%d rsi=%d", ErrInvalidWindow, w.Short, w.Long, w.RSI)
	}
	return nil
}

// NewRows copies bars into indicator rows sorted ascending by date, with
// every indicator undefined.
func NewRows(bars []models.PriceBar) []models.IndicatorRow {
	rows := make([]models.IndicatorRow, len(bars))
	for i, b := range bars {
		rows[i] = models.IndicatorRow{PriceBar: b}
	}
	sortAscending(rows)
	return rows
}

// Compute runs the whole engine: ascending rows, both moving averages, RSI.
func Compute(bars []models.PriceBar, w Windows) ([]models.IndicatorRow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	rows := NewRows(bars)
	rows = MovingAverages(rows, w.Short, w.Long)
	rows = RSI(rows, w.RSI)
	return rows, nil
}

// MovingAverages returns a copy of rows (ascending) where MAShort and MALong
// hold the trailing mean of Close over the last short and long bars.
//
// A mean is defined at ascending index i only when i+1 >= window. Windows
// count bars present in the series, not calendar days.
func MovingAverages(rows []models.IndicatorRow, short, long int) []models.IndicatorRow {
	out := ascendingCopy(rows)
	prices := closes(out)
	for i := range out {
		out[i].MAShort = trailingMean(prices, i, short)
		out[i].MALong = trailingMean(prices, i, long)
	}
	return out
}

// RSI returns a copy of rows (ascending) with the relative strength index
// computed from simple trailing means of gains and losses.
//
// The first close has no delta, so RSI is undefined up to and including
// index window-1 and first defined at index window. When the average loss is
// zero the value saturates to 100, or is 50 when the average gain is zero too.
func RSI(rows []models.IndicatorRow, window int) []models.IndicatorRow {
	out := ascendingCopy(rows)
	gains := make([]float64, len(out))
	losses := make([]float64, len(out))
	for i := 1; i < len(out); i++ {
		delta := out[i].Close - out[i-1].Close
		switch {
		case delta > 0:
			gains[i] = delta
		case delta < 0:
			losses[i] = -delta
		}
	}

	for i := range out {
		if window <= 0 || i < window {
			out[i].RSI = null.Float{}
			continue
		}
		avgGain := mean(gains[i-window+1 : i+1])
		avgLoss := mean(losses[i-window+1 : i+1])
		out[i].RSI = null.FloatFrom(rsiValue(avgGain, avgLoss))
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return neutralRSI
		}
		return saturatedRSI
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

func trailingMean(values []float64, end, window int) null.Float {
	if window <= 0 || end+1 < window {
		return null.Float{}
	}
	return null.FloatFrom(mean(values[end-window+1 : end+1]))
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func closes(rows []models.IndicatorRow) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Close
	}
	return out
}

func ascendingCopy(rows []models.IndicatorRow) []models.IndicatorRow {
	out := make([]models.IndicatorRow, len(rows))
	copy(out, rows)
	sortAscending(out)
	return out
}

func sortAscending(rows []models.IndicatorRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
}

// newestFirst returns a copy of ascending rows in descending date order.
func newestFirst(rows []models.IndicatorRow) []models.IndicatorRow {
	out := make([]models.IndicatorRow, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}
