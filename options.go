package rateforecaster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/lrdrates/go-rateforecaster/analytics"
	"github.com/lrdrates/go-rateforecaster/ensemble"
	"github.com/lrdrates/go-rateforecaster/event"
	"github.com/lrdrates/go-rateforecaster/models"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Options configures the models, the ensemble and the analytics snapshot. Weights selects
// static per model weighting, keyed by model name; leaving it empty weighs every model by
// its own confidence.
type Options struct {
	WindowSize      int                `json:"window_size" yaml:"window_size" default:"5" validate:"gte=1"`
	Alpha           float64            `json:"alpha" yaml:"alpha" default:"0.35" validate:"gt=0,lte=1"`
	DecayRate       float64            `json:"decay_rate" yaml:"decay_rate" default:"0.97" validate:"gt=0,lt=1"`
	ConfidenceFloor float64            `json:"confidence_floor" yaml:"confidence_floor" default:"0.15" validate:"gt=0,lt=1"`
	Weights         map[string]float64 `json:"weights,omitempty" yaml:"weights,omitempty" validate:"omitempty,dive,keys,oneof=moving_average exponential_smoothing linear_regression,endkeys,gte=0"`

	AnalysisWindow int     `json:"analysis_window" yaml:"analysis_window" default:"30" validate:"gte=1"`
	MomentumPeriod int     `json:"momentum_period" yaml:"momentum_period" default:"5" validate:"gte=1"`
	TrendThreshold float64 `json:"trend_threshold" yaml:"trend_threshold" default:"0.5" validate:"gte=0"`

	// SkipClosures moves forecast timestamps past weekends, public holidays and Closures.
	SkipClosures bool          `json:"skip_closures" yaml:"skip_closures"`
	Closures     []event.Event `json:"closures,omitempty" yaml:"closures,omitempty"`
}

// NewDefaultOptions returns a set of default forecaster options
func NewDefaultOptions() *Options {
	opt := &Options{}
	if err := defaults.Set(opt); err != nil {
		// defaults are static struct tags so this only fails on a programming error
		panic(err)
	}
	return opt
}

// Validate fills unset fields with their defaults, checks every field and returns a copy of
// the options. Nil options return the defaults. Zero is the unset value, so a zero alpha,
// window or floor means the default rather than an error.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	opt := *o
	if o.Weights != nil {
		opt.Weights = make(map[string]float64, len(o.Weights))
		for name, w := range o.Weights {
			opt.Weights[name] = w
		}
	}
	if o.Closures != nil {
		opt.Closures = make([]event.Event, len(o.Closures))
		copy(opt.Closures, o.Closures)
	}
	for i := range opt.Closures {
		if err := opt.Closures[i].Valid(); err != nil {
			return nil, fmt.Errorf("%w, closure %d, %w", ErrInvalidOptions, i, err)
		}
	}
	if err := defaults.Set(&opt); err != nil {
		return nil, fmt.Errorf("%w, unable to apply defaults, %w", ErrInvalidOptions, err)
	}
	if err := validate.Struct(&opt); err != nil {
		return nil, fmt.Errorf("%w, %w", ErrInvalidOptions, err)
	}
	return &opt, nil
}

// LoadOptions reads options from a .yaml, .yml or .json file. Fields missing from the file
// keep their defaults.
func LoadOptions(path string) (*Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read options, %w", err)
	}

	opt := NewDefaultOptions()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, opt)
	case ".json":
		err = json.Unmarshal(b, opt)
	default:
		return nil, fmt.Errorf("unsupported options file %q, %w", path, ErrInvalidOptions)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse options, %w", err)
	}
	return opt.Validate()
}

func (o *Options) movingAverageOptions() *models.MovingAverageOptions {
	return &models.MovingAverageOptions{WindowSize: o.WindowSize}
}

func (o *Options) exponentialSmoothingOptions() *models.ExponentialSmoothingOptions {
	return &models.ExponentialSmoothingOptions{Alpha: o.Alpha}
}

func (o *Options) decay() *ensemble.Decay {
	return &ensemble.Decay{Rate: o.DecayRate, Floor: o.ConfidenceFloor}
}

func (o *Options) analyticsOptions() *analytics.Options {
	return &analytics.Options{
		Window:         o.AnalysisWindow,
		MomentumPeriod: o.MomentumPeriod,
		TrendThreshold: o.TrendThreshold,
	}
}
