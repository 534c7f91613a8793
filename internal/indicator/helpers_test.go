package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

var day0 = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

// seriesOf builds an ascending daily series with the given closes.
func seriesOf(closes ...float64) []models.PriceBar {
	bars := make([]models.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = models.PriceBar{
			Date:   day0.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func ramp(from, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(from + i)
	}
	return out
}

func countdown(from, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(from - i)
	}
	return out
}

func flat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func reversed(bars []models.PriceBar) []models.PriceBar {
	out := make([]models.PriceBar, len(bars))
	for i, b := range bars {
		out[len(bars)-1-i] = b
	}
	return out
}

func assertFloat(t *testing.T, label string, got null.Float, want float64) {
	t.Helper()
	if !got.Valid {
		t.Fatalf("%s: undefined, want %v", label, want)
	}
	if math.Abs(got.Float64-want) > 1e-9 {
		t.Fatalf("%s: got %v, want %v", label, got.Float64, want)
	}
}
