// Package timedataset holds the validated rate history the forecaster works on.
package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNonMontonic        = errors.New("time feature is not monotonic")
	ErrNonPositiveValue   = errors.New("rate value must be finite and greater than zero")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrCannotInferFreq    = errors.New("cannot infer frequency from time data")
)

// Observation is a single rate quote at a point in time.
type Observation struct {
	T     time.Time `json:"time"`
	Value float64   `json:"value"`
}

// NewObservation returns an observation for the given time and rate.
func NewObservation(t time.Time, value float64) Observation {
	return Observation{T: t, Value: value}
}

// ObservationError reports the position of the first observation that failed validation.
type ObservationError struct {
	Index int
	Err   error
}

func (e *ObservationError) Error() string {
	return fmt.Sprintf("observation %d, %s", e.Index, e.Err.Error())
}

func (e *ObservationError) Unwrap() error {
	return e.Err
}

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length.
type TimeDataset struct {
	T []time.Time
	Y []float64
}

// NewRateDataset validates and copies a slice of observations. Every value must be
// finite and positive and timestamps must be strictly increasing. An empty slice is
// valid and produces an empty dataset.
func NewRateDataset(obs []Observation) (*TimeDataset, error) {
	t := make([]time.Time, 0, len(obs))
	y := make([]float64, 0, len(obs))
	for _, o := range obs {
		t = append(t, o.T)
		y = append(y, o.Value)
	}
	return NewUnivariateDataset(t, y)
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) || y[i] <= 0 {
			return nil, &ObservationError{
				Index: i,
				Err:   fmt.Errorf("got %v, %w", y[i], ErrNonPositiveValue),
			}
		}
		if i > 0 && !t[i].After(t[i-1]) {
			return nil, &ObservationError{
				Index: i,
				Err:   fmt.Errorf("%s does not follow %s, %w", t[i], t[i-1], ErrNonMontonic),
			}
		}
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	td := &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}

	return td, nil
}

// Len returns the number of observations.
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.Y)
}

// Last returns the most recent value or 0 for an empty dataset.
func (td *TimeDataset) Last() float64 {
	if td.Len() == 0 {
		return 0
	}
	return td.Y[len(td.Y)-1]
}

// Tail returns the last n values. If fewer than n values exist all of them are returned.
// The returned slice shares memory with the dataset and must not be modified.
func (td *TimeDataset) Tail(n int) []float64 {
	size := td.Len()
	if n > size {
		n = size
	}
	if n <= 0 {
		return nil
	}
	return td.Y[size-n:]
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// Observations converts the dataset back to a slice of observations.
func (td *TimeDataset) Observations() []Observation {
	obs := make([]Observation, 0, td.Len())
	for i := 0; i < td.Len(); i++ {
		obs = append(obs, Observation{T: td.T[i], Value: td.Y[i]})
	}
	return obs
}
