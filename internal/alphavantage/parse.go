package alphavantage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// fieldParser converts Alpha Vantage's string-encoded numbers, keeping the
// first failure so callers check once.
type fieldParser struct {
	err error
}

func (p *fieldParser) float(name, raw string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return v
}

func (p *fieldParser) int(name, raw string) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return v
}

func (b dailyBar) toModel(day string) (models.PriceBar, error) {
	date, err := time.Parse(models.DateLayout, day)
	if err != nil {
		return models.PriceBar{}, fmt.Errorf("invalid date: %w", err)
	}

	var p fieldParser
	bar := models.PriceBar{
		Date:   date,
		Open:   p.float("open", b.Open),
		High:   p.float("high", b.High),
		Low:    p.float("low", b.Low),
		Close:  p.float("close", b.Close),
		Volume: p.int("volume", b.Volume),
	}
	return bar, p.err
}

func (q globalQuote) toModel() (*models.Quote, error) {
	var p fieldParser
	out := &models.Quote{
		Symbol:           q.Symbol,
		Open:             p.float("open", q.Open),
		High:             p.float("high", q.High),
		Low:              p.float("low", q.Low),
		Price:            p.float("price", q.Price),
		Volume:           p.int("volume", q.Volume),
		LatestTradingDay: q.LatestTradingDay,
		PreviousClose:    p.float("previous close", q.PreviousClose),
		Change:           p.float("change", q.Change),
		ChangePercent:    q.ChangePercent,
	}
	if p.err != nil {
		return nil, p.err
	}
	return out, nil
}
