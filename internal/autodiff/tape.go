package autodiff

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sprout-ml/sprout/internal/autodiff/ops"
)

// Value is a node in the scalar computation graph.
type Value = ops.Value

// ErrEmptyTape is returned when Backward runs on a tape with no recorded
// operations, or on an output no recorded operation produced.
var ErrEmptyTape = errors.New("backward on a tape with no recorded operations")

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic
// differentiation.
//
// Usage:
//
//	tape := autodiff.NewGradientTape()
//	tape.StartRecording()
//	y := tape.Mul(w, x)
//	grads, err := tape.Backward(y)
type GradientTape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64), // Pre-allocate for common case
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Leaf creates a graph node for a parameter or input. Leaves are never
// recorded; they only receive gradients.
func (t *GradientTape) Leaf(data float64) *Value {
	return ops.NewValue(data)
}

// Add computes a + b and records the operation.
func (t *GradientTape) Add(a, b *Value) *Value {
	out := ops.NewValue(a.Data() + b.Data())
	t.record(ops.NewAddOp(a, b, out))
	return out
}

// Sub computes a - b and records the operation.
func (t *GradientTape) Sub(a, b *Value) *Value {
	out := ops.NewValue(a.Data() - b.Data())
	t.record(ops.NewSubOp(a, b, out))
	return out
}

// Mul computes a * b and records the operation.
func (t *GradientTape) Mul(a, b *Value) *Value {
	out := ops.NewValue(a.Data() * b.Data())
	t.record(ops.NewMulOp(a, b, out))
	return out
}

// Square computes x² and records the operation.
func (t *GradientTape) Square(x *Value) *Value {
	out := ops.NewValue(x.Data() * x.Data())
	t.record(ops.NewSquareOp(x, out))
	return out
}

// Tanh computes tanh(x) and records the operation.
func (t *GradientTape) Tanh(x *Value) *Value {
	out := ops.NewValue(math.Tanh(x.Data()))
	t.record(ops.NewTanhOp(x, out))
	return out
}

func (t *GradientTape) record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Backward computes gradients of output with respect to every node that
// participated in producing it, by walking the tape in reverse.
//
// Algorithm:
//  1. Seed the output gradient with 1
//  2. Walk operations in reverse order
//  3. For each operation, compute input gradients using the chain rule
//  4. Accumulate gradients when the same node feeds multiple operations
//
// Returns a map from node to its accumulated gradient, or ErrEmptyTape if
// no recorded operation produced output.
func (t *GradientTape) Backward(output *Value) (map[*Value]float64, error) {
	if len(t.operations) == 0 {
		return nil, errors.Wrap(ErrEmptyTape, "autodiff")
	}

	grads := make(map[*Value]float64)
	grads[output] = 1.0

	seeded := false
	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]

		outputGrad, hasGrad := grads[op.Output()]
		if !hasGrad {
			// No gradient flows to this operation.
			continue
		}
		if op.Output() == output {
			seeded = true
		}

		inputGrads := op.Backward(outputGrad)
		for j, input := range op.Inputs() {
			grads[input] += inputGrads[j]
		}
	}

	if !seeded {
		return nil, errors.Wrap(ErrEmptyTape, "output was not produced by a recorded operation")
	}
	return grads, nil
}
