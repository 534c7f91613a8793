package indicator

import (
	"fmt"
	"math"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// ValidateSeries rejects series the engine must never see: duplicate dates,
// dates that are not monotonic in a single direction, negative or non-finite
// prices, and negative volume. Either chronological direction is accepted.
func ValidateSeries(bars []models.PriceBar) error {
	direction := 0
	for i, b := range bars {
		day := b.Date.Format(models.DateLayout)
		for _, p := range [...]float64{b.Open, b.High, b.Low, b.Close} {
			if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
				return fmt.Errorf("%w: invalid price %v on %s", ErrMalformedSeries, p, day)
			}
		}
		if b.Volume < 0 {
			return fmt.Errorf("%w: negative volume on %s", ErrMalformedSeries, day)
		}
		if i == 0 {
			continue
		}

		step := b.Date.Compare(bars[i-1].Date)
		if step == 0 {
			return fmt.Errorf("%w: duplicate date %s", ErrMalformedSeries, day)
		}
		if direction == 0 {
			direction = step
		} else if step != direction {
			return fmt.Errorf("%w: dates out of order at %s", ErrMalformedSeries, day)
		}
	}
	return nil
}
