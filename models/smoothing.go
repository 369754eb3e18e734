package models

import (
	"fmt"

	"github.com/lrdrates/go-rateforecaster/stats"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

const DefaultAlpha = 0.35

type ExponentialSmoothingOptions struct {
	Alpha float64
}

func NewDefaultExponentialSmoothingOptions() *ExponentialSmoothingOptions {
	return &ExponentialSmoothingOptions{
		Alpha: DefaultAlpha,
	}
}

// Validate returns a copy of the options, substituting the defaults for nil options.
func (o *ExponentialSmoothingOptions) Validate() (*ExponentialSmoothingOptions, error) {
	if o == nil {
		return NewDefaultExponentialSmoothingOptions(), nil
	}
	if !(o.Alpha > 0 && o.Alpha <= 1) {
		return nil, fmt.Errorf("got %v, %w", o.Alpha, ErrInvalidAlpha)
	}
	opt := *o
	return &opt, nil
}

// ExponentialSmoothing runs the simple exponential smoothing recurrence over the history.
// Beyond one step it extends the line through the last two smoothed levels.
type ExponentialSmoothing struct {
	opt *ExponentialSmoothingOptions

	// smoothed and trend are kept in units of scale
	smoothed   []float64
	scale      float64
	trend      float64
	floor      float64
	confidence float64
	fitted     bool
}

func NewExponentialSmoothing(opt *ExponentialSmoothingOptions) (*ExponentialSmoothing, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &ExponentialSmoothing{opt: opt}, nil
}

func (e *ExponentialSmoothing) Name() string {
	return NameExponentialSmoothing
}

// Smooth returns S where S[0] = y[0] and S[t] = alpha*y[t] + (1-alpha)*S[t-1].
func Smooth(y []float64, alpha float64) []float64 {
	if len(y) == 0 {
		return nil
	}
	s := make([]float64, len(y))
	s[0] = y[0]
	for t := 1; t < len(y); t++ {
		s[t] = alpha*y[t] + (1-alpha)*s[t-1]
	}
	return s
}

func (e *ExponentialSmoothing) Fit(td *timedataset.TimeDataset) error {
	n := td.Len()
	if n == 0 {
		return ErrNoTrainingData
	}

	y, scale := stats.Rescale(td.Y)
	e.smoothed = Smooth(y, e.opt.Alpha)
	e.scale = scale
	e.floor = valueFloor(td.Y)
	e.trend = 0
	e.confidence = DegenerateConfidence
	if n >= 2 {
		e.trend = e.smoothed[n-1] - e.smoothed[n-2]

		// one step ahead errors: the level after t-1 observations predicts x[t]
		rmse, err := stats.RMSE(e.smoothed[:n-1], y[1:])
		if err != nil {
			return fmt.Errorf("unable to score smoothing residuals, %w", err)
		}
		mean := stats.Mean(y)
		e.confidence = clampConfidence(1.0 / (1.0 + rmse/mean))
	}
	e.fitted = true
	return nil
}

// Level returns the last smoothed value, the one step prediction.
func (e *ExponentialSmoothing) Level() float64 {
	if len(e.smoothed) == 0 {
		return 0
	}
	return e.smoothed[len(e.smoothed)-1] * e.scale
}

func (e *ExponentialSmoothing) Predict(h int) (Prediction, error) {
	if !e.fitted {
		return Prediction{}, ErrNotFitted
	}
	if h < 1 {
		return Prediction{}, fmt.Errorf("got %d, %w", h, ErrInvalidHorizon)
	}
	value := (e.smoothed[len(e.smoothed)-1] + float64(h-1)*e.trend) * e.scale
	return Prediction{
		Model:      e.Name(),
		Value:      floorValue(value, e.floor),
		Confidence: e.confidence,
	}, nil
}
