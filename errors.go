package rateforecaster

import (
	"errors"
	"fmt"

	"github.com/lrdrates/go-rateforecaster/timedataset"
)

var (
	// ErrInvalidInput matches every InvalidInputError with errors.Is.
	ErrInvalidInput    = errors.New("invalid input")
	ErrNegativeHorizon = errors.New("horizon must not be negative")
	ErrHorizonTooLong  = errors.New("horizon exceeds the maximum number of days")
	ErrInvalidOptions  = errors.New("invalid forecaster options")
	ErrNoSource        = errors.New("no observation source")
)

// InvalidInputError is the only error a forecast or analytics request returns for bad
// caller data: a non-positive rate, timestamps that do not strictly increase, or a
// horizon outside [0, MaxHorizon]. Index is the offending observation or -1 when the horizon is at fault.
type InvalidInputError struct {
	Reason string
	Index  int
	Err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// checkHorizon accepts horizons in [0, MaxHorizon].
func checkHorizon(horizon int) error {
	var err error
	switch {
	case horizon < 0:
		err = ErrNegativeHorizon
	case horizon > MaxHorizon:
		err = ErrHorizonTooLong
	default:
		return nil
	}
	return &InvalidInputError{
		Reason: fmt.Sprintf("horizon of %d days", horizon),
		Index:  -1,
		Err:    err,
	}
}

// newDataset validates the observations and converts any failure into an
// InvalidInputError.
func newDataset(obs []timedataset.Observation) (*timedataset.TimeDataset, error) {
	td, err := timedataset.NewRateDataset(obs)
	if err == nil {
		return td, nil
	}

	invalid := &InvalidInputError{
		Reason: err.Error(),
		Index:  -1,
		Err:    err,
	}
	var obsErr *timedataset.ObservationError
	if errors.As(err, &obsErr) {
		invalid.Index = obsErr.Index
	}
	return nil, invalid
}
