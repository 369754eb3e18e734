// Package analytics derives a market snapshot (volatility, momentum, support, resistance
// and a trend label) straight from the rate history, independent of the forecast models.
package analytics

import (
	"errors"
	"fmt"

	"github.com/lrdrates/go-rateforecaster/stats"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

var (
	ErrInvalidWindow    = errors.New("analysis window must be at least 1")
	ErrInvalidMomentum  = errors.New("momentum period must be at least 1")
	ErrInvalidThreshold = errors.New("trend threshold must not be negative")
)

const (
	DefaultWindow         = 30
	DefaultMomentumPeriod = 5
	DefaultTrendThreshold = 0.5

	// minimum day over day changes before spike detection is attempted
	minSpikeSamples = 4
)

// Trend is a coarse classification of momentum.
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
)

// Snapshot summarizes recent market behaviour. Volatility and Momentum are in percent.
type Snapshot struct {
	Volatility   float64 `json:"volatility"`
	Momentum     float64 `json:"momentum"`
	Support      float64 `json:"support"`
	Resistance   float64 `json:"resistance"`
	Trend        Trend   `json:"trend"`
	Last         float64 `json:"last"`
	Mean         float64 `json:"mean"`
	Window       int     `json:"window"`
	Observations int     `json:"observations"`
	Spikes       int     `json:"spikes"`
}

type Options struct {
	Window         int
	MomentumPeriod int
	// TrendThreshold is the momentum, in percent, beyond which the trend is not neutral.
	TrendThreshold float64
}

func NewDefaultOptions() *Options {
	return &Options{
		Window:         DefaultWindow,
		MomentumPeriod: DefaultMomentumPeriod,
		TrendThreshold: DefaultTrendThreshold,
	}
}

// Validate returns a copy of the options, substituting the defaults for nil options.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Window < 1 {
		return nil, fmt.Errorf("got %d, %w", o.Window, ErrInvalidWindow)
	}
	if o.MomentumPeriod < 1 {
		return nil, fmt.Errorf("got %d, %w", o.MomentumPeriod, ErrInvalidMomentum)
	}
	if o.TrendThreshold < 0 {
		return nil, fmt.Errorf("got %v, %w", o.TrendThreshold, ErrInvalidThreshold)
	}
	opt := *o
	return &opt, nil
}

type Calculator struct {
	opt *Options
}

func NewCalculator(opt *Options) (*Calculator, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Calculator{opt: opt}, nil
}

// Calculate builds the snapshot. An empty dataset yields a zero snapshot with a neutral
// trend.
func (c *Calculator) Calculate(td *timedataset.TimeDataset) Snapshot {
	n := td.Len()
	snap := Snapshot{
		Trend:        TrendNeutral,
		Observations: n,
	}
	if n == 0 {
		return snap
	}

	window := td.Tail(c.opt.Window)
	changes := stats.PctChanges(td.Y)

	snap.Window = len(window)
	snap.Last = td.Last()
	snap.Mean = stats.Mean(window)
	snap.Support, snap.Resistance = stats.MinMax(window)
	snap.Volatility = Volatility(td.Y)
	snap.Momentum = Momentum(td.Y, c.opt.MomentumPeriod)
	snap.Trend = Classify(snap.Momentum, c.opt.TrendThreshold)
	if len(changes) >= minSpikeSamples {
		snap.Spikes = len(stats.DetectOutliers(changes, 0.25, 0.75, 1.5))
	}
	return snap
}

// Volatility is the sample standard deviation of day over day percent changes. Fewer than
// two changes, or a constant series, have no volatility.
func Volatility(y []float64) float64 {
	return stats.StdDev(stats.PctChanges(y))
}

// Momentum is the percent change from the value k periods back to the latest value. When
// the series is shorter than k+1 the first value is used.
func Momentum(y []float64, k int) float64 {
	n := len(y)
	if n < 2 {
		return 0
	}
	if k > n-1 {
		k = n - 1
	}
	return stats.PctChange(y[n-1-k], y[n-1])
}

// Classify labels momentum beyond +threshold bullish and below -threshold bearish.
func Classify(momentum, threshold float64) Trend {
	switch {
	case momentum > threshold:
		return TrendBullish
	case momentum < -threshold:
		return TrendBearish
	default:
		return TrendNeutral
	}
}
