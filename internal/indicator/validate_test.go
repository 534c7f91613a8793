package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func TestValidateSeries(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(b []models.PriceBar) []models.PriceBar
		wantErr bool
	}{
		{name: "ascending", mutate: func(b []models.PriceBar) []models.PriceBar { return b }},
		{name: "descending", mutate: reversed},
		{name: "empty", mutate: func([]models.PriceBar) []models.PriceBar { return nil }},
		{name: "duplicate date", wantErr: true, mutate: func(b []models.PriceBar) []models.PriceBar {
			b[2].Date = b[1].Date
			return b
		}},
		{name: "mixed order", wantErr: true, mutate: func(b []models.PriceBar) []models.PriceBar {
			b[1], b[2] = b[2], b[1]
			return b
		}},
		{name: "negative close", wantErr: true, mutate: func(b []models.PriceBar) []models.PriceBar {
			b[3].Close = -1
			return b
		}},
		{name: "nan high", wantErr: true, mutate: func(b []models.PriceBar) []models.PriceBar {
			b[0].High = math.NaN()
			return b
		}},
		{name: "negative volume", wantErr: true, mutate: func(b []models.PriceBar) []models.PriceBar {
			b[4].Volume = -5
			return b
		}},
		{name: "zero close allowed", mutate: func(b []models.PriceBar) []models.PriceBar {
			b[4].Close = 0
			return b
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSeries(tc.mutate(seriesOf(1, 2, 3, 4, 5)))
			if tc.wantErr != (err != nil) {
				t.Fatalf("ValidateSeries()=%v, wantErr=%v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformedSeries) {
				t.Fatalf("expected ErrMalformedSeries, got %v", err)
			}
		})
	}
}
