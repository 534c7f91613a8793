package app

import (
	"fmt"
	"strings"
	"time"
)

// dailySeriesJSON renders an Alpha Vantage TIME_SERIES_DAILY payload of n
// consecutive days with closes 10, 11, 12, ...
func dailySeriesJSON(n int) string {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	entries := make([]string, 0, n)
	for i := 0; i < n; i++ {
		c := float64(10 + i)
		entries = append(entries, fmt.Sprintf(
			`"%s": {"1. open": "%.4f", "2. high": "%.4f", "3. low": "%.4f", "4. close": "%.4f", "5. volume": "%d"}`,
			start.AddDate(0, 0, i).Format("2006-01-02"), c, c, c, c, 1000+i,
		))
	}
	return `{"Meta Data": {"2. Symbol": "IBM"}, "Time Series (Daily)": {` + strings.Join(entries, ",") + `}}`
}
