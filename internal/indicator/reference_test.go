package indicator

import (
	"math"
	"testing"

	talib "github.com/markcheno/go-talib"
)

// wave is a deterministic non-monotonic series around 100.
func wave(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 10*math.Sin(float64(i)/3) + float64(i%7)
	}
	return out
}

func TestMovingAverages_MatchTALibSMA(t *testing.T) {
	closes := wave(120)
	rows := MovingAverages(NewRows(seriesOf(closes...)), DefaultShortWindow, DefaultLongWindow)

	cases := []struct {
		name   string
		window int
		get    func(i int) (float64, bool)
	}{
		{name: "short", window: DefaultShortWindow, get: func(i int) (float64, bool) { return rows[i].MAShort.Float64, rows[i].MAShort.Valid }},
		{name: "long", window: DefaultLongWindow, get: func(i int) (float64, bool) { return rows[i].MALong.Float64, rows[i].MALong.Valid }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref := talib.Sma(closes, tc.window)
			for i := tc.window - 1; i < len(closes); i++ {
				got, ok := tc.get(i)
				if !ok {
					t.Fatalf("index %d: undefined", i)
				}
				if math.Abs(got-ref[i]) > 1e-9 {
					t.Fatalf("index %d: got %v, talib %v", i, got, ref[i])
				}
			}
		})
	}
}
