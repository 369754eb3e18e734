package ensemble

import (
	"fmt"
	"math"
)

const (
	DefaultDecayRate       = 0.97
	DefaultConfidenceFloor = 0.15
)

// Decay attenuates confidence the further a forecast looks ahead: base * rate^h, never
// dropping below the floor.
type Decay struct {
	Rate  float64 `json:"rate"`
	Floor float64 `json:"floor"`
}

func NewDefaultDecay() *Decay {
	return &Decay{
		Rate:  DefaultDecayRate,
		Floor: DefaultConfidenceFloor,
	}
}

// Validate returns a copy of the decay, substituting the defaults for nil.
func (d *Decay) Validate() (*Decay, error) {
	if d == nil {
		return NewDefaultDecay(), nil
	}
	if !(d.Rate > 0 && d.Rate < 1) {
		return nil, fmt.Errorf("got %v, %w", d.Rate, ErrInvalidDecayRate)
	}
	if !(d.Floor > 0 && d.Floor < 1) {
		return nil, fmt.Errorf("got %v, %w", d.Floor, ErrInvalidFloor)
	}
	decay := *d
	return &decay, nil
}

// Apply returns the decayed confidence for horizon step h.
func (d *Decay) Apply(base float64, h int) float64 {
	if h < 0 {
		h = 0
	}
	c := base * math.Pow(d.Rate, float64(h))
	if math.IsNaN(c) || c < d.Floor {
		return d.Floor
	}
	return math.Min(c, 1.0)
}
