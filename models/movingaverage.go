package models

import (
	"fmt"

	"github.com/lrdrates/go-rateforecaster/stats"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

const DefaultWindowSize = 5

type MovingAverageOptions struct {
	WindowSize int
}

func NewDefaultMovingAverageOptions() *MovingAverageOptions {
	return &MovingAverageOptions{
		WindowSize: DefaultWindowSize,
	}
}

// Validate returns a copy of the options, substituting the defaults for nil options.
func (o *MovingAverageOptions) Validate() (*MovingAverageOptions, error) {
	if o == nil {
		return NewDefaultMovingAverageOptions(), nil
	}
	if o.WindowSize < 1 {
		return nil, fmt.Errorf("got %d, %w", o.WindowSize, ErrInvalidWindow)
	}
	opt := *o
	return &opt, nil
}

// MovingAverage predicts the mean of the trailing window for every horizon. Its confidence
// falls as the window's coefficient of variation rises.
type MovingAverage struct {
	opt *MovingAverageOptions

	mean       float64
	confidence float64
	fitted     bool
}

func NewMovingAverage(opt *MovingAverageOptions) (*MovingAverage, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &MovingAverage{opt: opt}, nil
}

func (m *MovingAverage) Name() string {
	return NameMovingAverage
}

// Fit averages the last min(k, n) values. A single observation is its own mean with the
// degenerate confidence since its variance is undefined.
func (m *MovingAverage) Fit(td *timedataset.TimeDataset) error {
	if td.Len() == 0 {
		return ErrNoTrainingData
	}

	window := td.Tail(m.opt.WindowSize)
	m.mean = stats.Mean(window)
	if len(window) == 1 {
		m.confidence = DegenerateConfidence
	} else {
		m.confidence = clampConfidence(1.0 - stats.CoefficientOfVariation(window))
	}
	m.fitted = true
	return nil
}

func (m *MovingAverage) Predict(h int) (Prediction, error) {
	if !m.fitted {
		return Prediction{}, ErrNotFitted
	}
	if h < 1 {
		return Prediction{}, fmt.Errorf("got %d, %w", h, ErrInvalidHorizon)
	}
	return Prediction{
		Model:      m.Name(),
		Value:      m.mean,
		Confidence: m.confidence,
	}, nil
}
