package ops

// TanhOp represents the hyperbolic tangent: out = tanh(x).
type TanhOp struct {
	input  *Value
	output *Value
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp(input, output *Value) *TanhOp {
	return &TanhOp{input: input, output: output}
}

// Inputs returns the input nodes.
func (op *TanhOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Output returns the output node.
func (op *TanhOp) Output() *Value {
	return op.output
}

// Backward computes the gradient for tanh.
//
// Since the output tanh(x) is already computed:
//
//	grad_input = grad_output * (1 - output²)
func (op *TanhOp) Backward(outputGrad float64) []float64 {
	y := op.output.Data()
	return []float64{outputGrad * (1.0 - y*y)}
}
