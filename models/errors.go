package models

import (
	"errors"
)

var (
	ErrNoOptions          = errors.New("no initialized model options")
	ErrNoTrainingData     = errors.New("no training data")
	ErrNotFitted          = errors.New("model has not been fit")
	ErrInvalidHorizon     = errors.New("horizon offset must be at least 1")
	ErrInvalidWindow      = errors.New("window size must be at least 1")
	ErrInvalidAlpha       = errors.New("smoothing factor must be in (0, 1]")
	ErrTargetLenMismatch  = errors.New("target length does not match target rows")
	ErrNoTrainingMatrix   = errors.New("no training matrix")
	ErrNoTargetMatrix     = errors.New("no target matrix")
	ErrNoDesignMatrix     = errors.New("no design matrix for inference")
	ErrFeatureLenMismatch = errors.New("number of features does not match number of model coefficients")
	ErrSingularMatrix     = errors.New("design matrix is rank deficient")
)
