package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialSmoothingOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *ExponentialSmoothingOptions
		err      error
		expected *ExponentialSmoothingOptions
	}{
		"nil":        {nil, nil, NewDefaultExponentialSmoothingOptions()},
		"zero alpha": {&ExponentialSmoothingOptions{Alpha: 0}, ErrInvalidAlpha, nil},
		"over one":   {&ExponentialSmoothingOptions{Alpha: 1.1}, ErrInvalidAlpha, nil},
		"one":        {&ExponentialSmoothingOptions{Alpha: 1}, nil, &ExponentialSmoothingOptions{Alpha: 1}},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}
}

func TestSmoothRecurrence(t *testing.T) {
	alpha := 0.35
	expected := scenarioRates[0]
	for _, x := range scenarioRates[1:] {
		expected = alpha*x + (1-alpha)*expected
	}

	for i := 0; i < 3; i++ {
		s := Smooth(scenarioRates, alpha)
		require.Len(t, s, len(scenarioRates))
		assert.Equal(t, scenarioRates[0], s[0])
		assert.Equal(t, expected, s[len(s)-1])
	}
	assert.Nil(t, Smooth(nil, alpha))
}

func TestExponentialSmoothing(t *testing.T) {
	model, err := NewExponentialSmoothing(&ExponentialSmoothingOptions{Alpha: 0.35})
	require.Nil(t, err)
	require.Nil(t, model.Fit(newDataset(t, scenarioRates)))

	s := Smooth(scenarioRates, 0.35)
	n := len(s)
	level := s[n-1]
	trend := s[n-1] - s[n-2]

	one, err := model.Predict(1)
	require.Nil(t, err)
	assert.Equal(t, level, one.Value)
	assert.Equal(t, level, model.Level())

	three, err := model.Predict(3)
	require.Nil(t, err)
	assert.Equal(t, level+2*trend, three.Value)
	assert.Equal(t, one.Confidence, three.Confidence)
	assert.GreaterOrEqual(t, one.Confidence, MinConfidence)
	assert.LessOrEqual(t, one.Confidence, MaxConfidence)
}

func TestExponentialSmoothingAlphaOne(t *testing.T) {
	// with alpha 1 the level is the last observation and every one step error is the
	// day over day change
	model, err := NewExponentialSmoothing(&ExponentialSmoothingOptions{Alpha: 1})
	require.Nil(t, err)
	require.Nil(t, model.Fit(newDataset(t, []float64{100, 110, 100, 110})))

	pred, err := model.Predict(1)
	require.Nil(t, err)
	assert.Equal(t, 110.0, pred.Value)
	assert.InDelta(t, 1.0/(1.0+10.0/105.0), pred.Confidence, 1e-9)
}
