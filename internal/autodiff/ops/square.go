package ops

// SquareOp represents squaring: out = x².
type SquareOp struct {
	input  *Value
	inData float64
	output *Value
}

// NewSquareOp creates a new squaring operation.
func NewSquareOp(input, output *Value) *SquareOp {
	return &SquareOp{input: input, inData: input.Data(), output: output}
}

// Inputs returns the input nodes.
func (op *SquareOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Output returns the output node.
func (op *SquareOp) Output() *Value {
	return op.output
}

// Backward computes d(x²)/dx = 2x.
func (op *SquareOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * 2.0 * op.inData}
}
