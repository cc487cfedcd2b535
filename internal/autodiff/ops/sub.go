package ops

// SubOp represents subtraction: out = a - b.
type SubOp struct {
	a, b   *Value
	output *Value
}

// NewSubOp creates a new subtraction operation.
func NewSubOp(a, b, output *Value) *SubOp {
	return &SubOp{a: a, b: b, output: output}
}

// Inputs returns the input nodes.
func (op *SubOp) Inputs() []*Value {
	return []*Value{op.a, op.b}
}

// Output returns the output node.
func (op *SubOp) Output() *Value {
	return op.output
}

// Backward negates the output gradient for the subtrahend.
func (op *SubOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}
