package nn

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Sequential is a container that chains layers into a single scalar
// function.
//
// Each layer's output becomes the next layer's input. The order is fixed at
// construction and defines both the forward traversal and the reverse
// traversal used during backpropagation. The container owns its layers
// exclusively.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewSequential(
//	    nn.NewLinear(rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(rng),
//	    nn.NewTanh(),
//	)
//
//	y := model.Forward(x)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a Sequential container from the given layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// NewTanhStack creates a Sequential of n (Linear, Tanh) pairs with
// parameters drawn uniformly from [-1, 1).
//
// Parameters:
//   - n: Number of layer pairs (n >= 0)
//   - rng: Random source used for initialization
//
// Returns an error if n is negative.
func NewTanhStack(n int, rng *rand.Rand) (*Sequential, error) {
	if n < 0 {
		return nil, errors.Errorf("tanh stack: pair count must be >= 0, got %d", n)
	}

	layers := make([]Layer, 0, 2*n)
	for i := 0; i < n; i++ {
		layers = append(layers, NewLinear(rng), NewTanh())
	}
	return NewSequential(layers...), nil
}

// Forward applies all layers in construction order.
//
// The output of each layer becomes the input to the next; returns the final
// layer's output.
func (s *Sequential) Forward(x float64) float64 {
	for _, layer := range s.layers {
		x = layer.Forward(x)
	}
	return x
}

// Backward applies all layers' Backward in the reverse of construction
// order: the last layer to run forward is the first to run backward. The
// gradient returned by each layer is threaded as the upstream gradient of
// the preceding one.
//
// The chain rule requires gradients to flow through each layer relative to
// the activations of the matching forward pass, so the traversal order is
// never anything but the exact reverse of Forward's.
//
// Returns the gradient of the loss with respect to the network's external
// input. Layer errors are wrapped with the layer's position and surfaced.
func (s *Sequential) Backward(gradOut, lr float64) (float64, error) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		grad, err := s.layers[i].Backward(gradOut, lr)
		if err != nil {
			return 0, errors.Wrapf(err, "layer %d", i)
		}
		gradOut = grad
	}
	return gradOut, nil
}

// NumLayers returns the number of layers in the container.
func (s *Sequential) NumLayers() int {
	return len(s.layers)
}

// Snapshot materializes a read-only view of the learnable parameters: one
// (weight, bias) pair per Linear layer, in network order.
func (s *Sequential) Snapshot() Snapshot {
	var snap Snapshot
	for _, layer := range s.layers {
		if lin, ok := layer.(*Linear); ok {
			snap.Weights = append(snap.Weights, lin.Weight())
			snap.Biases = append(snap.Biases, lin.Bias())
		}
	}
	return snap
}

// LoadSnapshot overwrites the parameters of every Linear layer from the
// snapshot, matching by position.
//
// This is the one-time copy used to align two independently constructed
// networks to the same starting values; it must precede any
// forward/backward activity.
//
// Returns an error if the snapshot's pair count does not match the number
// of Linear layers.
func (s *Sequential) LoadSnapshot(snap Snapshot) error {
	if len(snap.Weights) != len(snap.Biases) {
		return errors.Errorf("load snapshot: %d weights vs %d biases",
			len(snap.Weights), len(snap.Biases))
	}

	var linears []*Linear
	for _, layer := range s.layers {
		if lin, ok := layer.(*Linear); ok {
			linears = append(linears, lin)
		}
	}
	if len(linears) != len(snap.Weights) {
		return errors.Errorf("load snapshot: network has %d linear layers, snapshot has %d pairs",
			len(linears), len(snap.Weights))
	}

	for i, lin := range linears {
		lin.SetParameters(snap.Weights[i], snap.Biases[i])
	}
	return nil
}
