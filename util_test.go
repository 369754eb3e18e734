package rateforecaster

import (
	"testing"
	"time"

	"github.com/lrdrates/go-rateforecaster/timedataset"
)

var scenarioRates = []float64{173.2, 174.8, 176.1, 177.5, 178.9, 180.2, 181.5}

// scenarioStart is a Monday.
var scenarioStart = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func dailyObservations(t *testing.T, y []float64) []timedataset.Observation {
	t.Helper()
	obs := make([]timedataset.Observation, 0, len(y))
	for i, v := range y {
		obs = append(obs, timedataset.NewObservation(scenarioStart.AddDate(0, 0, i), v))
	}
	return obs
}
