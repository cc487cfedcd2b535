package nn

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only view of a network's learnable parameters: one
// (weight, bias) pair per Linear layer, in network order.
//
// Snapshots are materialized on demand for inspection, progress logging,
// and the one-time parameter copy between independently constructed
// networks. They never alias live parameters.
type Snapshot struct {
	Weights []float64
	Biases  []float64
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Weights: make([]float64, len(s.Weights)),
		Biases:  make([]float64, len(s.Biases)),
	}
	copy(out.Weights, s.Weights)
	copy(out.Biases, s.Biases)
	return out
}

// String formats the snapshot for human-readable progress logs.
//
// Output looks like:
//
//	w=[0.4000 -0.1200] b=[-0.5000 0.3300]
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.WriteString("w=[")
	for i, w := range s.Weights {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.4f", w)
	}
	sb.WriteString("] b=[")
	for i, b := range s.Biases {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.4f", b)
	}
	sb.WriteString("]")
	return sb.String()
}
