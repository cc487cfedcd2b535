package nn

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Linear implements a learnable scalar affine transform.
//
// Performs the transformation: y = weight*x + bias
//
// Both weight and bias are learnable; Backward fuses the plain
// gradient-descent update into the gradient computation.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(rng)
//
//	y := layer.Forward(0.5)
//	gradIn, err := layer.Backward(1.0, 0.01)
type Linear struct {
	weight float64
	bias   float64

	// Cached input from the last Forward call, valid until the matching
	// Backward consumes it.
	lastInput float64
	hasInput  bool
}

// NewLinear creates a Linear layer with weight and bias drawn uniformly
// from [-1, 1).
//
// Parameters:
//   - rng: Random source used for initialization
//
// Returns a new Linear layer.
func NewLinear(rng *rand.Rand) *Linear {
	return &Linear{
		weight: UniformInit(rng),
		bias:   UniformInit(rng),
	}
}

// NewLinearFrom creates a Linear layer with explicitly supplied parameter
// values, for aligning with an independently constructed network.
func NewLinearFrom(weight, bias float64) *Linear {
	return &Linear{
		weight: weight,
		bias:   bias,
	}
}

// Forward computes y = weight*x + bias and caches x for the backward pass.
//
// Callable repeatedly; each call overwrites the cached input.
func (l *Linear) Forward(x float64) float64 {
	l.lastInput = x
	l.hasInput = true
	return l.weight*x + l.bias
}

// Backward computes the gradients of the loss with respect to the layer's
// parameters and input, then updates the parameters in place.
//
// Given gradOut = dLoss/dy:
//
//	gradWeight = gradOut * x      (x = cached input)
//	gradBias   = gradOut
//	gradIn     = gradOut * weight (pre-update weight)
//
// gradIn must use the weight value as it existed during the forward pass,
// so it is computed before the update is applied.
//
// Returns gradIn, or ErrNoForwardState if no cached input is available.
func (l *Linear) Backward(gradOut, lr float64) (float64, error) {
	if !l.hasInput {
		return 0, errors.Wrap(ErrNoForwardState, "linear")
	}

	gradWeight := gradOut * l.lastInput
	gradBias := gradOut
	gradIn := gradOut * l.weight

	l.weight -= lr * gradWeight
	l.bias -= lr * gradBias
	l.hasInput = false

	return gradIn, nil
}

// Weight returns the current weight value.
func (l *Linear) Weight() float64 {
	return l.weight
}

// Bias returns the current bias value.
func (l *Linear) Bias() float64 {
	return l.bias
}

// SetParameters overwrites the layer's weight and bias.
//
// Used only for the one-time parameter alignment between two independently
// constructed networks, before any training activity.
func (l *Linear) SetParameters(weight, bias float64) {
	l.weight = weight
	l.bias = bias
}
