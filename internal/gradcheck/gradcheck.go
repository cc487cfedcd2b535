// Package gradcheck verifies the engine's analytic input gradients against
// centered finite differences of the same network's forward function.
package gradcheck

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/sprout-ml/sprout/internal/nn"
)

// Result holds one gradient comparison.
type Result struct {
	Analytic float64
	Numeric  float64
	AbsDiff  float64
}

// Within reports whether the analytic and numeric gradients agree to the
// given absolute tolerance.
func (r Result) Within(tol float64) bool {
	return r.AbsDiff <= tol
}

// InputGradient compares the network's backpropagated gradient with respect
// to its input at x against a centered finite-difference estimate of the
// forward function.
//
// The analytic side runs backward with lr = 0 so the parameters stay
// untouched; both sides therefore differentiate the same function. The
// finite-difference probes overwrite the layer caches, so the matching
// forward pass at x runs after them, immediately before backward.
func InputGradient(net *nn.Sequential, x float64) (Result, error) {
	numeric := fd.Derivative(net.Forward, x, &fd.Settings{
		Formula: fd.Central,
	})

	net.Forward(x)
	analytic, err := net.Backward(1.0, 0)
	if err != nil {
		return Result{}, errors.Wrap(err, "gradcheck")
	}

	return Result{
		Analytic: analytic,
		Numeric:  numeric,
		AbsDiff:  math.Abs(analytic - numeric),
	}, nil
}
