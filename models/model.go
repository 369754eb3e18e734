// Package models is a collection of single series rate models used by the forecaster. Each
// model is fitted once on a rate history and then answers analytic predictions for any
// horizon offset without refitting.
package models

import (
	"math"

	"github.com/lrdrates/go-rateforecaster/stats"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

const (
	MinConfidence = 0.3
	MaxConfidence = 0.95

	// DegenerateConfidence is reported when a model has a single observation and no
	// variance to judge itself by.
	DegenerateConfidence = 0.5

	// ShortSeriesConfidenceCap limits the regression confidence below three observations.
	ShortSeriesConfidenceCap = 0.4

	// MinValueRatio floors every prediction at this fraction of the smallest observed rate.
	MinValueRatio = 0.01
)

const (
	NameMovingAverage        = "moving_average"
	NameExponentialSmoothing = "exponential_smoothing"
	NameLinearRegression     = "linear_regression"
)

// Names lists the models in the order the forecaster evaluates them.
var Names = []string{NameMovingAverage, NameExponentialSmoothing, NameLinearRegression}

// Prediction is a single model's estimate for one horizon step.
type Prediction struct {
	Model      string  `json:"model"`
	Value      float64 `json:"predicted_value"`
	Confidence float64 `json:"confidence"`
}

type Model interface {
	Name() string
	Fit(td *timedataset.TimeDataset) error
	// Predict returns the estimate h steps past the last fitted observation. h starts at 1.
	Predict(h int) (Prediction, error)
}

func clampConfidence(c float64) float64 {
	if math.IsNaN(c) {
		return MinConfidence
	}
	return stats.Clamp(c, MinConfidence, MaxConfidence)
}

// valueFloor is the smallest prediction a model may emit for the fitted series.
func valueFloor(y []float64) float64 {
	lo, _ := stats.MinMax(y)
	return lo * MinValueRatio
}

// floorValue bounds v to [floor, math.MaxFloat64] so extrapolation never leaves the range
// of finite positive rates.
func floorValue(v, floor float64) float64 {
	if math.IsNaN(v) || v < floor {
		return floor
	}
	return math.Min(v, math.MaxFloat64)
}
