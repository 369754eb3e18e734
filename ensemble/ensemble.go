// Package ensemble merges the per model predictions for a horizon step into one forecast.
package ensemble

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lrdrates/go-rateforecaster/models"
	"github.com/lrdrates/go-rateforecaster/stats"
)

var (
	ErrNoPredictions    = errors.New("no model predictions to combine")
	ErrNegativeWeight   = errors.New("model weight must not be negative")
	ErrUnknownModel     = errors.New("unknown model name")
	ErrInvalidDecayRate = errors.New("decay rate must be in (0, 1)")
	ErrInvalidFloor     = errors.New("confidence floor must be in (0, 1)")
)

// Policy names how the combiner weighs the models.
type Policy string

const (
	// PolicyConfidence weighs each model by its confidence over the sum of confidences.
	PolicyConfidence Policy = "confidence"
	// PolicyStatic uses fixed per model weights normalized to sum to one.
	PolicyStatic Policy = "static"
)

// Forecast is the combined prediction for one horizon step.
type Forecast struct {
	Horizon       int                 `json:"horizon"`
	T             time.Time           `json:"time"`
	Value         float64             `json:"predicted_value"`
	Confidence    float64             `json:"confidence"`
	Contributions []models.Prediction `json:"contributions"`
}

// Series is an ordered run of forecasts with horizons 1..N.
type Series []Forecast

func (s Series) Values() []float64 {
	v := make([]float64, 0, len(s))
	for _, f := range s {
		v = append(v, f.Value)
	}
	return v
}

func (s Series) Confidences() []float64 {
	c := make([]float64, 0, len(s))
	for _, f := range s {
		c = append(c, f.Confidence)
	}
	return c
}

func (s Series) Times() []time.Time {
	t := make([]time.Time, 0, len(s))
	for _, f := range s {
		t = append(t, f.T)
	}
	return t
}

// Combiner applies one weighting policy and a confidence decay to every horizon step.
type Combiner struct {
	policy  Policy
	weights map[string]float64
	decay   *Decay
}

// NewCombiner creates a combiner. Nil or empty weights select PolicyConfidence, otherwise
// the weights are normalized and PolicyStatic is used. A nil decay uses the defaults.
func NewCombiner(weights map[string]float64, decay *Decay) (*Combiner, error) {
	decay, err := decay.Validate()
	if err != nil {
		return nil, err
	}
	c := &Combiner{
		policy: PolicyConfidence,
		decay:  decay,
	}
	if len(weights) == 0 {
		return c, nil
	}

	known := make(map[string]struct{}, len(models.Names))
	for _, name := range models.Names {
		known[name] = struct{}{}
	}
	total := 0.0
	for name, w := range weights {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("weight for %q, %w", name, ErrUnknownModel)
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight %v for %s, %w", w, name, ErrNegativeWeight)
		}
		total += w
	}
	if total == 0 {
		slog.Warn("static model weights sum to zero, using confidence weighting")
		return c, nil
	}

	c.policy = PolicyStatic
	c.weights = make(map[string]float64, len(weights))
	for name, w := range weights {
		c.weights[name] = w / total
	}
	return c, nil
}

func (c *Combiner) Policy() Policy {
	return c.policy
}

func (c *Combiner) Decay() Decay {
	return *c.decay
}

// Weights returns the normalized weight given to each prediction.
func (c *Combiner) Weights(preds []models.Prediction) []float64 {
	w := make([]float64, len(preds))
	total := 0.0
	if c.policy == PolicyStatic {
		for i, p := range preds {
			w[i] = c.weights[p.Model]
			total += w[i]
		}
	}
	if total == 0 {
		for i, p := range preds {
			w[i] = p.Confidence
			total += w[i]
		}
	}
	// no model has any say so fall back to a plain average
	if total == 0 {
		for i := range w {
			w[i] = 1.0 / float64(len(w))
		}
		return w
	}
	for i := range w {
		w[i] /= total
	}
	return w
}

// Combine merges the predictions for horizon step h into a single forecast. The value is
// the weighted mean of the predictions and the confidence is the weighted mean of the
// model confidences after decay.
func (c *Combiner) Combine(h int, preds []models.Prediction) (Forecast, error) {
	if len(preds) == 0 {
		return Forecast{}, ErrNoPredictions
	}

	w := c.Weights(preds)
	lo, hi := preds[0].Value, preds[0].Value
	for _, p := range preds {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}

	// weigh values relative to the largest so the sum cannot overflow
	norm := hi
	if norm <= 0 || math.IsInf(norm, 0) {
		norm = 1
	}
	var value, base float64
	for i, p := range preds {
		value += w[i] * (p.Value / norm)
		base += w[i] * p.Confidence
	}
	value = stats.Clamp(value*norm, lo, hi)

	contributions := make([]models.Prediction, len(preds))
	copy(contributions, preds)
	return Forecast{
		Horizon:       h,
		Value:         value,
		Confidence:    c.decay.Apply(base, h),
		Contributions: contributions,
	}, nil
}
