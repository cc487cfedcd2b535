package ops

// Value is a node in the scalar computation graph: a leaf parameter or an
// intermediate result.
//
// Operations identify their inputs and output by node identity, so the tape
// can accumulate gradients per node even when the same Value feeds several
// operations.
type Value struct {
	data float64
}

// NewValue creates a graph node holding the given scalar.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// Data returns the scalar held by the node.
func (v *Value) Data() float64 {
	return v.data
}

// Set overwrites the scalar held by the node.
//
// Used by optimizers to update leaf parameters between steps; the tape must
// be cleared before the next forward pass records against the new values.
func (v *Value) Set(data float64) {
	v.data = data
}
