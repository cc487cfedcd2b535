package nn

import (
	"github.com/pkg/errors"
)

// ErrNoForwardState is returned when Backward is called on a layer or loss
// with no valid cached forward state — either no Forward has run yet, or the
// cache was already consumed by a previous Backward.
//
// A broken forward/backward pairing would otherwise silently corrupt
// gradients, so it is always surfaced to the caller.
var ErrNoForwardState = errors.New("backward called without a matching forward")

// Layer is the contract shared by every layer variant.
//
// Forward is a pure computation of the layer's output from its input; as a
// side effect it caches whatever intermediate value the layer's own Backward
// will need. Forward may be called repeatedly; each call overwrites the
// cache.
//
// Backward consumes the upstream gradient (the derivative of the final loss
// with respect to this layer's output) and returns the derivative of the
// loss with respect to this layer's input, for use by the preceding layer.
// Layers with learnable parameters fuse the gradient-descent update
// (param = param - lr*grad) into the same call; there is no separate
// optimizer step. Layers without parameters accept lr for interface
// uniformity and ignore it.
//
// Backward fails with ErrNoForwardState when called without a matching
// Forward.
type Layer interface {
	Forward(x float64) float64
	Backward(gradOut, lr float64) (float64, error)
}
