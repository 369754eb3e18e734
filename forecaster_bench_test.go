package rateforecaster

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lrdrates/go-rateforecaster/timedataset"
	"github.com/pkg/profile"
)

func benchObservations(b *testing.B, n int) []timedataset.Observation {
	b.Helper()
	t := timedataset.GenerateT(n, 24*time.Hour, time.Now)
	y := make(timedataset.Series, n)
	y = y.Add(timedataset.GenerateLinearY(n, 175, 0.05)).
		Add(timedataset.GenerateNoise(n, 0.8, rand.New(rand.NewPCG(7, 11))))
	return y.Observations(t)
}

func BenchmarkForecast(b *testing.B) {
	obs := benchObservations(b, 365)
	f, err := New(nil)
	if err != nil {
		b.Fatal(err)
	}

	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		if _, err := f.Forecast(obs, 30); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalytics(b *testing.B) {
	obs := benchObservations(b, 365)
	f, err := New(nil)
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		if _, err := f.Analytics(obs); err != nil {
			b.Fatal(err)
		}
	}
}
