// Package rateforecaster forecasts USD/LRD exchange rates from a short rate history. It
// fits a moving average, an exponential smoothing and a linear regression model, combines
// their predictions per horizon day into one forecast with a confidence that decays the
// further out it looks, and separately summarizes the history into a market analytics
// snapshot.
//
// Every call is deterministic: the same observations and options always produce the same
// forecast. Presentation concerns such as chart jitter live in the present package.
package rateforecaster

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lrdrates/go-rateforecaster/analytics"
	"github.com/lrdrates/go-rateforecaster/ensemble"
	"github.com/lrdrates/go-rateforecaster/event"
	"github.com/lrdrates/go-rateforecaster/models"
	"github.com/lrdrates/go-rateforecaster/timedataset"
)

const (
	// DefaultInterval spaces forecast timestamps when the history is too short to infer it.
	DefaultInterval = 24 * time.Hour

	// MaxHorizon is the longest forecast accepted, ten years of daily rates.
	MaxHorizon = 3650
)

// ForecastSeries is the forecast for horizon days 1..N.
type ForecastSeries = ensemble.Series

// Forecaster holds validated options. It keeps no state between calls and is safe for
// concurrent use.
type Forecaster struct {
	opt      *Options
	combiner *ensemble.Combiner
	calc     *analytics.Calculator
	calendar *event.Calendar
}

// New creates a new instance of a Forecaster using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*Forecaster, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	combiner, err := ensemble.NewCombiner(opt.Weights, opt.decay())
	if err != nil {
		return nil, fmt.Errorf("%w, unable to initialize ensemble, %w", ErrInvalidOptions, err)
	}
	calc, err := analytics.NewCalculator(opt.analyticsOptions())
	if err != nil {
		return nil, fmt.Errorf("%w, unable to initialize analytics, %w", ErrInvalidOptions, err)
	}

	f := &Forecaster{
		opt:      opt,
		combiner: combiner,
		calc:     calc,
	}
	if opt.SkipClosures {
		f.calendar = event.NewCalendar()
		for _, ev := range opt.Closures {
			if err := f.calendar.AddClosure(ev); err != nil {
				return nil, fmt.Errorf("%w, %w", ErrInvalidOptions, err)
			}
		}
	}
	return f, nil
}

// Options returns a copy of the options in use.
func (f *Forecaster) Options() Options {
	opt, _ := f.opt.Validate()
	return *opt
}

// Policy reports how the ensemble weighs the models.
func (f *Forecaster) Policy() ensemble.Policy {
	return f.combiner.Policy()
}

func (f *Forecaster) newModels() ([]models.Model, error) {
	ma, err := models.NewMovingAverage(f.opt.movingAverageOptions())
	if err != nil {
		return nil, err
	}
	es, err := models.NewExponentialSmoothing(f.opt.exponentialSmoothingOptions())
	if err != nil {
		return nil, err
	}
	return []models.Model{ma, es, models.NewLinearRegression()}, nil
}

// fitModels fits every model concurrently. Each goroutine owns its model and error slot.
func (f *Forecaster) fitModels(td *timedataset.TimeDataset) ([]models.Model, error) {
	ms, err := f.newModels()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize models, %w", err)
	}

	errs := make([]error, len(ms))
	var wg sync.WaitGroup
	for i, m := range ms {
		wg.Add(1)
		go func(i int, m models.Model) {
			defer wg.Done()
			if err := m.Fit(td); err != nil {
				errs[i] = fmt.Errorf("unable to fit %s, %w", m.Name(), err)
			}
		}(i, m)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return ms, nil
}

// Forecast predicts the next horizon days after the last observation. Each model predicts
// every horizon offset analytically from a single fit, so the output depends only on the
// inputs. An empty history or a zero horizon returns an empty series and a horizon above
// MaxHorizon is an InvalidInputError.
func (f *Forecaster) Forecast(obs []timedataset.Observation, horizon int) (ForecastSeries, error) {
	if err := checkHorizon(horizon); err != nil {
		return nil, err
	}
	td, err := newDataset(obs)
	if err != nil {
		return nil, err
	}
	series := make(ForecastSeries, 0, horizon)
	if td.Len() == 0 || horizon == 0 {
		return series, nil
	}

	ms, err := f.fitModels(td)
	if err != nil {
		return nil, err
	}

	times := f.horizonTimes(td, horizon)
	preds := make([]models.Prediction, len(ms))
	prevConfidence := 1.0
	for h := 1; h <= horizon; h++ {
		for i, m := range ms {
			preds[i], err = m.Predict(h)
			if err != nil {
				return nil, fmt.Errorf("unable to predict horizon %d with %s, %w", h, m.Name(), err)
			}
		}
		fc, err := f.combiner.Combine(h, preds)
		if err != nil {
			return nil, fmt.Errorf("unable to combine horizon %d, %w", h, err)
		}

		// confidence never recovers further out
		if fc.Confidence > prevConfidence {
			fc.Confidence = prevConfidence
		}
		prevConfidence = fc.Confidence

		fc.T = times[h-1]
		series = append(series, fc)
	}
	return series, nil
}

// horizonTimes spaces the forecast days by the most common spacing of the history.
func (f *Forecaster) horizonTimes(td *timedataset.TimeDataset, horizon int) []time.Time {
	tSlice := timedataset.TimeSlice(td.T)
	interval, err := tSlice.EstimateFreq()
	if err != nil || interval <= 0 {
		interval = DefaultInterval
	}

	// step one interval at a time, h*interval can overflow a Duration for wide spacings
	times := make([]time.Time, 0, horizon)
	last := tSlice.EndTime()
	for h := 1; h <= horizon; h++ {
		if f.calendar != nil {
			last = f.calendar.Next(last, interval)
			if !f.calendar.IsOpen(last) {
				slog.Warn("no open day found within closure limit", "time", last)
			}
		} else {
			last = last.Add(interval)
		}
		times = append(times, last)
	}
	return times
}

// Analytics summarizes the history into volatility, momentum, support, resistance and a
// trend label. It applies the same validation as Forecast.
func (f *Forecaster) Analytics(obs []timedataset.Observation) (*analytics.Snapshot, error) {
	td, err := newDataset(obs)
	if err != nil {
		return nil, err
	}
	snap := f.calc.Calculate(td)
	return &snap, nil
}

// GenerateForecast is a one shot Forecast. Nil options use the defaults.
func GenerateForecast(obs []timedataset.Observation, horizonDays int, opt *Options) (ForecastSeries, error) {
	f, err := New(opt)
	if err != nil {
		return nil, err
	}
	return f.Forecast(obs, horizonDays)
}

// GenerateAnalytics is a one shot Analytics with the default options.
func GenerateAnalytics(obs []timedataset.Observation) (*analytics.Snapshot, error) {
	f, err := New(nil)
	if err != nil {
		return nil, err
	}
	return f.Analytics(obs)
}
