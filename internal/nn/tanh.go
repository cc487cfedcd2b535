package nn

import (
	"math"

	"github.com/pkg/errors"
)

// Tanh implements the hyperbolic tangent activation: y = tanh(x).
//
// The layer has no learnable parameters; Backward accepts lr for interface
// uniformity but never uses it. The derivative is expressed in terms of the
// output, so Forward caches y rather than x:
//
//	d(tanh(x))/dx = 1 - tanh²(x)
type Tanh struct {
	lastOutput float64
	hasOutput  bool
}

// NewTanh creates a new Tanh layer.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward computes y = tanh(x) and caches y for the backward pass.
func (t *Tanh) Forward(x float64) float64 {
	y := math.Tanh(x)
	t.lastOutput = y
	t.hasOutput = true
	return y
}

// Backward computes gradIn = gradOut * (1 - y²) from the cached output.
//
// Saturation (y near ±1, gradient near zero) is expected numerical
// behavior, not a fault.
func (t *Tanh) Backward(gradOut, _ float64) (float64, error) {
	if !t.hasOutput {
		return 0, errors.Wrap(ErrNoForwardState, "tanh")
	}

	y := t.lastOutput
	t.hasOutput = false

	return gradOut * (1.0 - y*y), nil
}
