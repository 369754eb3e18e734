package timedataset

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateT returns n evenly spaced times ending one interval before the minute-truncated
// result of nowFunc.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLinearY returns start, start+step, start+2*step, ...
func GenerateLinearY(n int, start, step float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, start+step*float64(i))
	}
	return Series(y)
}

// GenerateNoise returns normally distributed noise with the given scale drawn from r.
func GenerateNoise(n int, scale float64, r *rand.Rand) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, r.NormFloat64()*scale)
	}
	return Series(y)
}

// Observations pairs the series with the input times.
func (s Series) Observations(t []time.Time) []Observation {
	obs := make([]Observation, 0, len(s))
	for i := 0; i < len(s) && i < len(t); i++ {
		obs = append(obs, Observation{T: t[i], Value: s[i]})
	}
	return obs
}
