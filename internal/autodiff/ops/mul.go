package ops

// MulOp represents multiplication: out = a * b.
//
// The operand values seen at recording time are captured, so later in-place
// updates to the leaf nodes cannot skew the backward pass.
type MulOp struct {
	a, b   *Value
	aData  float64
	bData  float64
	output *Value
}

// NewMulOp creates a new multiplication operation.
func NewMulOp(a, b, output *Value) *MulOp {
	return &MulOp{a: a, b: b, aData: a.Data(), bData: b.Data(), output: output}
}

// Inputs returns the input nodes.
func (op *MulOp) Inputs() []*Value {
	return []*Value{op.a, op.b}
}

// Output returns the output node.
func (op *MulOp) Output() *Value {
	return op.output
}

// Backward computes d(a*b)/da = b and d(a*b)/db = a.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.bData, outputGrad * op.aData}
}
