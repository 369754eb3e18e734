package rateforecaster

import (
	"context"
	"fmt"

	"github.com/lrdrates/go-rateforecaster/analytics"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

// Source supplies rate history, for example from a live rate API, verified changer
// reports or stored history. Caching and retries belong to the implementation.
type Source interface {
	Observations(ctx context.Context) ([]timedataset.Observation, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) ([]timedataset.Observation, error)

func (fn SourceFunc) Observations(ctx context.Context) ([]timedataset.Observation, error) {
	return fn(ctx)
}

// StaticSource serves a fixed history, such as the last rates cached by a client.
type StaticSource []timedataset.Observation

func (s StaticSource) Observations(ctx context.Context) ([]timedataset.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	obs := make([]timedataset.Observation, len(s))
	copy(obs, s)
	return obs, nil
}

func fetch(ctx context.Context, src Source) ([]timedataset.Observation, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	obs, err := src.Observations(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch observations, %w", err)
	}
	return obs, nil
}

// ForecastFromSource fetches the history from src and forecasts horizon days.
func (f *Forecaster) ForecastFromSource(ctx context.Context, src Source, horizon int) (ForecastSeries, error) {
	obs, err := fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	return f.Forecast(obs, horizon)
}

// AnalyticsFromSource fetches the history from src and summarizes it.
func (f *Forecaster) AnalyticsFromSource(ctx context.Context, src Source) (*analytics.Snapshot, error) {
	obs, err := fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	return f.Analytics(obs)
}
