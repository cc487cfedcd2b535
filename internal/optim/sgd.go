package optim

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
)

// SGD implements plain stochastic gradient descent, without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Momentum is deliberately absent: the manual engine's fused update is
// plain gradient descent, and parity between the two requires the exact
// same rule on the reference side.
//
// Example:
//
//	sgd := optim.NewSGD(chain.Parameters(), 0.01)
//	grads, err := tape.Backward(loss)
//	sgd.Step(grads)
type SGD struct {
	params []*autodiff.Value
	lr     float64
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*autodiff.Value, lr float64) *SGD {
	return &SGD{
		params: params,
		lr:     lr,
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient (not in the computational graph) are skipped.
func (s *SGD) Step(grads map[*autodiff.Value]float64) {
	for _, param := range s.params {
		grad, ok := grads[param]
		if !ok {
			continue
		}
		param.Set(param.Data() - s.lr*grad)
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
