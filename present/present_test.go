package present

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/lrdrates/go-rateforecaster/analytics"
	"github.com/lrdrates/go-rateforecaster/ensemble"
	"github.com/lrdrates/go-rateforecaster/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() ensemble.Series {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return ensemble.Series{
		{Horizon: 1, T: start, Value: 178.8412, Confidence: 0.8123},
		{Horizon: 2, T: start.Add(24 * time.Hour), Value: 179.1351, Confidence: 0.7877},
		{Horizon: 3, T: start.Add(48 * time.Hour), Value: 179.4249, Confidence: 0.7641},
	}
}

func TestRound(t *testing.T) {
	testData := map[string]struct {
		v        float64
		places   int32
		expected float64
	}{
		"down":    {178.844, 2, 178.84},
		"half up": {178.845, 2, 178.85},
		"integer": {180, 2, 180},
		"one":     {81.234, 1, 81.2},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Round(td.v, td.places))
		})
	}
}

func TestNewForecastPayload(t *testing.T) {
	p := NewForecastPayload(testSeries())
	require.Len(t, p.Forecasts, 3)
	assert.Equal(t, Pair, p.Pair)
	assert.Equal(t, ForecastPoint{Date: "2025-03-10", Horizon: 1, PredictedValue: 178.84, Confidence: 0.81}, p.Forecasts[0])
	assert.Equal(t, "2025-03-12", p.Forecasts[2].Date)
	assert.Equal(t, 179.42, p.Forecasts[2].PredictedValue)

	empty := NewForecastPayload(nil)
	assert.NotNil(t, empty.Forecasts)
	assert.Empty(t, empty.Forecasts)
}

func TestEncode(t *testing.T) {
	b, err := Encode(NewForecastPayload(testSeries()[:1]))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"pair":"USD/LRD","forecasts":[{"date":"2025-03-10","horizon":1,"predicted_value":178.84,"confidence":0.81}]}`,
		string(b),
	)

	snap := &analytics.Snapshot{
		Volatility: 0.6251,
		Momentum:   3.8329,
		Support:    173.2,
		Resistance: 181.5,
		Trend:      analytics.TrendBullish,
		Last:       181.5,
	}
	b, err = Encode(NewAnalyticsPayload(snap))
	require.NoError(t, err)

	var decoded AnalyticsPayload
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, AnalyticsPayload{
		Pair:       Pair,
		Volatility: 0.63,
		Momentum:   3.83,
		Support:    173.2,
		Resistance: 181.5,
		Trend:      "bullish",
		Last:       181.5,
	}, decoded)

	assert.Equal(t, "neutral", NewAnalyticsPayload(nil).Trend)
}

func TestJitter(t *testing.T) {
	p := NewForecastPayload(testSeries())
	orig := p.Copy()

	jittered, err := Jitter(p, rand.New(rand.NewPCG(1, 2)), 0.01)
	require.NoError(t, err)
	assert.Equal(t, orig, p, "input payload must not change")
	require.Len(t, jittered.Forecasts, len(p.Forecasts))
	for i, fc := range jittered.Forecasts {
		assert.InDelta(t, p.Forecasts[i].PredictedValue, fc.PredictedValue, p.Forecasts[i].PredictedValue*0.01+0.01)
		assert.Equal(t, p.Forecasts[i].Confidence, fc.Confidence)
		assert.Equal(t, p.Forecasts[i].Date, fc.Date)
	}

	again, err := Jitter(p, rand.New(rand.NewPCG(1, 2)), 0.01)
	require.NoError(t, err)
	assert.Equal(t, jittered, again, "same seed yields the same jitter")

	plain, err := Jitter(p, nil, 0.01)
	require.NoError(t, err)
	assert.Equal(t, p, plain)

	_, err = Jitter(p, nil, 1.5)
	assert.ErrorIs(t, err, ErrInvalidJitterScale)
}

func TestRenderForecast(t *testing.T) {
	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	history, err := timedataset.NewUnivariateDataset(
		timedataset.GenerateT(5, 24*time.Hour, func() time.Time { return start }),
		[]float64{177.1, 177.9, 178.2, 178.0, 178.5},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderForecast(&buf, history, testSeries()))
	out := buf.String()
	assert.Contains(t, out, "Actual")
	assert.Contains(t, out, "Confidence")
	assert.Contains(t, out, "2025-03-12")

	path := filepath.Join(t.TempDir(), "forecast.html")
	require.NoError(t, PlotForecast(path, history, testSeries()))
	assert.FileExists(t, path)
}
