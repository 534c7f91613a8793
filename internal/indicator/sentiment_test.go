package indicator

import (
	"testing"

	"github.com/guregu/null/v6"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

func row(short, long, rsi float64) models.IndicatorRow {
	return models.IndicatorRow{
		MAShort: null.FloatFrom(short),
		MALong:  null.FloatFrom(long),
		RSI:     null.FloatFrom(rsi),
	}
}

func TestClassify_Thresholds(t *testing.T) {
	cases := []struct {
		name         string
		row          models.IndicatorRow
		wantTrend    string
		wantMomentum string
		wantString   string
	}{
		{name: "bullish neutral", row: row(11, 10, 54.321), wantTrend: TrendBullish, wantMomentum: Neutral, wantString: "Trend: Bullish, RSI: Neutral (54.32)"},
		{name: "bearish", row: row(9, 10, 50), wantTrend: TrendBearish, wantMomentum: Neutral, wantString: "Trend: Bearish, RSI: Neutral (50.00)"},
		{name: "equal averages", row: row(10, 10, 50), wantTrend: Neutral, wantMomentum: Neutral, wantString: "Trend: Neutral, RSI: Neutral (50.00)"},
		{name: "rsi 70.00 is neutral", row: row(11, 10, 70.00), wantTrend: TrendBullish, wantMomentum: Neutral},
		{name: "rsi 70.01 is overbought", row: row(11, 10, 70.01), wantTrend: TrendBullish, wantMomentum: MomentumOverbought, wantString: "Trend: Bullish, RSI: Overbought (70.01)"},
		{name: "rsi 30.00 is neutral", row: row(9, 10, 30.00), wantTrend: TrendBearish, wantMomentum: Neutral},
		{name: "rsi 29.99 is oversold", row: row(9, 10, 29.99), wantTrend: TrendBearish, wantMomentum: MomentumOversold, wantString: "Trend: Bearish, RSI: Oversold (29.99)"},
		{name: "rsi 0", row: row(9, 10, 0), wantTrend: TrendBearish, wantMomentum: MomentumOversold},
		{name: "rsi 100", row: row(11, 10, 100), wantTrend: TrendBullish, wantMomentum: MomentumOverbought},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Classify(tc.row)
			if !s.Sufficient {
				t.Fatalf("expected sufficient data")
			}
			if s.Trend != tc.wantTrend || s.Momentum != tc.wantMomentum {
				t.Fatalf("got trend=%s momentum=%s, want %s/%s", s.Trend, s.Momentum, tc.wantTrend, tc.wantMomentum)
			}
			if tc.wantString != "" && s.String() != tc.wantString {
				t.Fatalf("String()=%q, want %q", s.String(), tc.wantString)
			}
		})
	}
}

func TestClassify_InsufficientData(t *testing.T) {
	full := row(11, 10, 50)
	cases := map[string]func(r *models.IndicatorRow){
		"no short": func(r *models.IndicatorRow) { r.MAShort = null.Float{} },
		"no long":  func(r *models.IndicatorRow) { r.MALong = null.Float{} },
		"no rsi":   func(r *models.IndicatorRow) { r.RSI = null.Float{} },
	}
	for name, drop := range cases {
		t.Run(name, func(t *testing.T) {
			r := full
			drop(&r)
			s := Classify(r)
			if s.Sufficient {
				t.Fatalf("expected insufficient data, got %+v", s)
			}
			if s.String() != InsufficientData {
				t.Fatalf("String()=%q, want %q", s.String(), InsufficientData)
			}
		})
	}
}

func TestClassify_ZeroIsNotUndefined(t *testing.T) {
	s := Classify(row(0, 0, 0))
	if !s.Sufficient {
		t.Fatalf("computed zeros must classify")
	}
	if s.Trend != Neutral || s.Momentum != MomentumOversold {
		t.Fatalf("unexpected %+v", s)
	}
}
