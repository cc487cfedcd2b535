// Package ops defines operation interfaces and implementations for scalar
// automatic differentiation.
//
// Each operation records its input and output nodes during the forward pass
// and computes input gradients during the backward pass:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction (d(a-b)/da = 1, d(a-b)/db = -1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - SquareOp: squaring (d(x²)/dx = 2x)
//   - TanhOp: hyperbolic tangent (d(tanh(x))/dx = 1 - tanh²(x))
package ops

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for the inputs given the output gradient.
	// Returns one gradient per input, in Inputs() order.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad float64) []float64

	// Inputs returns the input nodes for this operation.
	Inputs() []*Value

	// Output returns the output node produced by this operation.
	Output() *Value
}
