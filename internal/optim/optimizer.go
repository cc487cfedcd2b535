package optim

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
)

// Optimizer is the common interface for parameter-update strategies driven
// by tape gradients.
//
// The manual engine fuses its update into each layer's backward call; the
// tape-based reference keeps the update separate, so its parameters are
// stepped through an Optimizer after Backward.
type Optimizer interface {
	// Step applies one update to every managed parameter that has a
	// gradient in the map. Parameters that did not participate in the
	// forward pass are skipped.
	Step(grads map[*autodiff.Value]float64)

	// LR returns the current learning rate.
	LR() float64
}
