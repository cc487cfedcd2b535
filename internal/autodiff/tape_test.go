package autodiff

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTapeRecording(t *testing.T) {
	tape := NewGradientTape()
	a, b := tape.Leaf(2.0), tape.Leaf(3.0)

	// Not recording yet: nothing lands on the tape.
	tape.Mul(a, b)
	assert.Equal(t, 0, tape.NumOps())

	tape.StartRecording()
	require.True(t, tape.IsRecording())
	tape.Mul(a, b)
	assert.Equal(t, 1, tape.NumOps())

	tape.StopRecording()
	tape.Mul(a, b)
	assert.Equal(t, 1, tape.NumOps())

	tape.Clear()
	assert.Equal(t, 0, tape.NumOps())
}

func TestTapeBackwardSimple(t *testing.T) {
	tape := NewGradientTape()
	tape.StartRecording()

	// y = w*x + b with w=0.5, x=1.0, b=-0.4
	w, x, b := tape.Leaf(0.5), tape.Leaf(1.0), tape.Leaf(-0.4)
	y := tape.Add(tape.Mul(w, x), b)
	require.InDelta(t, 0.1, y.Data(), 1e-12)

	grads, err := tape.Backward(y)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, grads[w], 1e-12) // dy/dw = x
	assert.InDelta(t, 0.5, grads[x], 1e-12) // dy/dx = w
	assert.InDelta(t, 1.0, grads[b], 1e-12) // dy/db = 1
}

func TestTapeBackwardChainRule(t *testing.T) {
	tape := NewGradientTape()
	tape.StartRecording()

	// y = tanh(w*x + b)
	w, x, b := tape.Leaf(0.5), tape.Leaf(1.0), tape.Leaf(-0.4)
	y := tape.Tanh(tape.Add(tape.Mul(w, x), b))

	grads, err := tape.Backward(y)
	require.NoError(t, err)

	local := 1.0 - y.Data()*y.Data()
	assert.InDelta(t, local*1.0, grads[w], 1e-12)
	assert.InDelta(t, local*0.5, grads[x], 1e-12)
}

// A node feeding two operations accumulates gradient from both paths.
func TestTapeBackwardAccumulates(t *testing.T) {
	tape := NewGradientTape()
	tape.StartRecording()

	// y = x*x + x  ->  dy/dx = 2x + 1
	x := tape.Leaf(3.0)
	y := tape.Add(tape.Mul(x, x), x)

	grads, err := tape.Backward(y)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, grads[x], 1e-12)
}

func TestTapeBackwardSquaredLoss(t *testing.T) {
	tape := NewGradientTape()
	tape.StartRecording()

	// loss = (target - pred)², target=0, pred=tanh(0.1)
	pred := tape.Tanh(tape.Leaf(0.1))
	loss := tape.Square(tape.Sub(tape.Leaf(0.0), pred))

	grads, err := tape.Backward(loss)
	require.NoError(t, err)

	// dLoss/dPred = -2*(target - pred)
	assert.InDelta(t, 2.0*math.Tanh(0.1), grads[pred], 1e-12)
}

func TestTapeBackwardEmpty(t *testing.T) {
	tape := NewGradientTape()

	_, err := tape.Backward(tape.Leaf(1.0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyTape))
}

func TestTapeBackwardUnrecordedOutput(t *testing.T) {
	tape := NewGradientTape()
	tape.StartRecording()
	tape.Mul(tape.Leaf(1.0), tape.Leaf(2.0))

	// A leaf nothing produced cannot seed the backward walk.
	_, err := tape.Backward(tape.Leaf(5.0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyTape))
}
