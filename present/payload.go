// Package present converts forecasts and analytics snapshots into what a client renders:
// a JSON wire format with rates rounded for display, optional chart jitter and HTML charts.
// Nothing in this package feeds back into forecasting.
package present

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/lrdrates/go-rateforecaster/analytics"
	"github.com/lrdrates/go-rateforecaster/ensemble"
	"github.com/shopspring/decimal"
)

const (
	// Pair is the currency pair every payload describes.
	Pair = "USD/LRD"

	// RatePlaces is the number of decimals shown for a rate.
	RatePlaces = 2

	// ConfidencePlaces is the number of decimals shown for a confidence.
	ConfidencePlaces = 2

	DateLayout = time.DateOnly
)

// ForecastPoint is one forecast day on the wire.
type ForecastPoint struct {
	Date           string  `json:"date"`
	Horizon        int     `json:"horizon"`
	PredictedValue float64 `json:"predicted_value"`
	Confidence     float64 `json:"confidence"`
}

type ForecastPayload struct {
	Pair      string          `json:"pair"`
	Forecasts []ForecastPoint `json:"forecasts"`
}

type AnalyticsPayload struct {
	Pair       string  `json:"pair"`
	Volatility float64 `json:"volatility"`
	Momentum   float64 `json:"momentum"`
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
	Trend      string  `json:"trend"`
	Last       float64 `json:"last"`
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// NewForecastPayload converts a forecast series into its wire form.
func NewForecastPayload(series ensemble.Series) *ForecastPayload {
	p := &ForecastPayload{
		Pair:      Pair,
		Forecasts: make([]ForecastPoint, 0, len(series)),
	}
	for _, fc := range series {
		p.Forecasts = append(p.Forecasts, ForecastPoint{
			Date:           fc.T.Format(DateLayout),
			Horizon:        fc.Horizon,
			PredictedValue: Round(fc.Value, RatePlaces),
			Confidence:     Round(fc.Confidence, ConfidencePlaces),
		})
	}
	return p
}

// Copy returns a deep copy of the payload.
func (p *ForecastPayload) Copy() *ForecastPayload {
	if p == nil {
		return nil
	}
	cp := &ForecastPayload{
		Pair:      p.Pair,
		Forecasts: make([]ForecastPoint, len(p.Forecasts)),
	}
	copy(cp.Forecasts, p.Forecasts)
	return cp
}

// NewAnalyticsPayload converts an analytics snapshot into its wire form. Volatility and
// momentum are percentages.
func NewAnalyticsPayload(snap *analytics.Snapshot) *AnalyticsPayload {
	if snap == nil {
		return &AnalyticsPayload{Pair: Pair, Trend: string(analytics.TrendNeutral)}
	}
	return &AnalyticsPayload{
		Pair:       Pair,
		Volatility: Round(snap.Volatility, RatePlaces),
		Momentum:   Round(snap.Momentum, RatePlaces),
		Support:    Round(snap.Support, RatePlaces),
		Resistance: Round(snap.Resistance, RatePlaces),
		Trend:      string(snap.Trend),
		Last:       Round(snap.Last, RatePlaces),
	}
}

// Encode marshals a payload to JSON.
func Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unable to encode payload, %w", err)
	}
	return b, nil
}
