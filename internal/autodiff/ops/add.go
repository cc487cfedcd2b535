package ops

// AddOp represents addition: out = a + b.
type AddOp struct {
	a, b   *Value
	output *Value
}

// NewAddOp creates a new addition operation.
func NewAddOp(a, b, output *Value) *AddOp {
	return &AddOp{a: a, b: b, output: output}
}

// Inputs returns the input nodes.
func (op *AddOp) Inputs() []*Value {
	return []*Value{op.a, op.b}
}

// Output returns the output node.
func (op *AddOp) Output() *Value {
	return op.output
}

// Backward passes the output gradient through unchanged to both inputs.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
