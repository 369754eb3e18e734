package models

import (
	"fmt"
	"math"

	"github.com/lrdrates/go-rateforecaster/stats"
	"github.com/lrdrates/go-rateforecaster/timedataset"
	"gonum.org/v1/gonum/mat"
)

// LinearRegression fits value = a + b*index over the observation indices 0..n-1 and
// extrapolates the line. R-squared of the fit is its confidence.
type LinearRegression struct {
	n          int
	scale      float64
	intercept  float64 // in units of scale
	slope      float64 // in units of scale
	r2         float64
	floor      float64
	confidence float64
	fitted     bool
}

func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

func (l *LinearRegression) Name() string {
	return NameLinearRegression
}

func (l *LinearRegression) Fit(td *timedataset.TimeDataset) error {
	n := td.Len()
	if n == 0 {
		return ErrNoTrainingData
	}
	l.n = n
	l.floor = valueFloor(td.Y)
	ys, scale := stats.Rescale(td.Y)
	l.scale = scale

	// a single point has no slope to fit
	if n == 1 {
		l.intercept = ys[0]
		l.slope = 0
		l.r2 = 0
		l.confidence = ShortSeriesConfidenceCap
		l.fitted = true
		return nil
	}

	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	x := mat.NewDense(n, 1, idx)
	y := mat.NewDense(n, 1, append([]float64(nil), ys...))

	ols, err := NewOLSRegression(nil)
	if err != nil {
		return err
	}
	if err := ols.Fit(x, y); err != nil {
		return fmt.Errorf("unable to fit rate trend, %w", err)
	}
	l.intercept = ols.Intercept()
	l.slope = ols.Coef()[0]

	fit, err := ols.Predict(x)
	if err != nil {
		return fmt.Errorf("unable to evaluate rate trend, %w", err)
	}
	r2, err := stats.RSquared(fit, ys)
	if err != nil {
		return fmt.Errorf("unable to score rate trend, %w", err)
	}
	l.r2 = r2

	l.confidence = clampConfidence(r2)
	if n < 3 {
		l.confidence = math.Min(l.confidence, ShortSeriesConfidenceCap)
	}
	l.fitted = true
	return nil
}

// Intercept returns a in value = a + b*index.
func (l *LinearRegression) Intercept() float64 {
	return l.intercept * l.scale
}

// Slope returns b in value = a + b*index.
func (l *LinearRegression) Slope() float64 {
	return l.slope * l.scale
}

// RSquared returns the coefficient of determination of the last fit.
func (l *LinearRegression) RSquared() float64 {
	return l.r2
}

func (l *LinearRegression) Predict(h int) (Prediction, error) {
	if !l.fitted {
		return Prediction{}, ErrNotFitted
	}
	if h < 1 {
		return Prediction{}, fmt.Errorf("got %d, %w", h, ErrInvalidHorizon)
	}
	value := (l.intercept + l.slope*(float64(l.n-1)+float64(h))) * l.scale
	return Prediction{
		Model:      l.Name(),
		Value:      floorValue(value, l.floor),
		Confidence: l.confidence,
	}, nil
}
