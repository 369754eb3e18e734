package present

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultJitterScale is the largest relative nudge applied to a charted rate.
const DefaultJitterScale = 0.002

var ErrInvalidJitterScale = errors.New("jitter scale must be in [0, 1)")

// Jitter returns a copy of the payload with every predicted value nudged by up to scale of
// its size, for chart animation only. The input payload is left untouched and a nil rng
// returns the plain copy.
func Jitter(p *ForecastPayload, rng *rand.Rand, scale float64) (*ForecastPayload, error) {
	if scale < 0 || scale >= 1 {
		return nil, fmt.Errorf("got %v, %w", scale, ErrInvalidJitterScale)
	}
	cp := p.Copy()
	if cp == nil || rng == nil || scale == 0 {
		return cp, nil
	}
	for i := range cp.Forecasts {
		nudge := (2*rng.Float64() - 1) * scale
		cp.Forecasts[i].PredictedValue = Round(cp.Forecasts[i].PredictedValue*(1+nudge), RatePlaces)
	}
	return cp, nil
}
