package models

import (
	"testing"
	"time"

	"github.com/lrdrates/go-rateforecaster/timedataset"
	"github.com/stretchr/testify/require"
)

var scenarioRates = []float64{173.2, 174.8, 176.1, 177.5, 178.9, 180.2, 181.5}

func newDataset(t *testing.T, y []float64) *timedataset.TimeDataset {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tSeries := make([]time.Time, len(y))
	for i := range tSeries {
		tSeries[i] = start.Add(time.Duration(i) * 24 * time.Hour)
	}
	td, err := timedataset.NewUnivariateDataset(tSeries, y)
	require.Nil(t, err)
	return td
}

func allModels(t *testing.T) []Model {
	t.Helper()
	ma, err := NewMovingAverage(nil)
	require.Nil(t, err)
	es, err := NewExponentialSmoothing(nil)
	require.Nil(t, err)
	return []Model{ma, es, NewLinearRegression()}
}
