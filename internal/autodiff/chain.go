package autodiff

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sprout-ml/sprout/internal/nn"
)

// Optimizer updates leaf parameters from a gradient map. Implemented by
// optim.SGD.
type Optimizer interface {
	Step(grads map[*Value]float64)
}

// Chain is the tape-based reference network: n (weight, bias) parameter
// pairs, each applying a linear transform followed by tanh.
//
// It computes the same function as an equally sized manual nn.Sequential
// stack, but derives all gradients through the gradient tape instead of
// hand-written layer-local backward rules. That independence is what makes
// it usable as a parity oracle.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	chain, _ := autodiff.NewChain(2, rng)
//	sgd := optim.NewSGD(chain.Parameters(), 0.01)
//
//	pred, loss, err := chain.TrainStep(x, target, sgd)
type Chain struct {
	weights []*Value
	biases  []*Value
	tape    *GradientTape
}

// NewChain creates a reference chain of n linear+tanh pairs with parameters
// drawn uniformly from [-1, 1).
//
// Returns an error if n is negative.
func NewChain(n int, rng *rand.Rand) (*Chain, error) {
	if n < 0 {
		return nil, errors.Errorf("chain: pair count must be >= 0, got %d", n)
	}

	c := &Chain{
		weights: make([]*Value, n),
		biases:  make([]*Value, n),
		tape:    NewGradientTape(),
	}
	for i := 0; i < n; i++ {
		c.weights[i] = c.tape.Leaf(nn.UniformInit(rng))
		c.biases[i] = c.tape.Leaf(nn.UniformInit(rng))
	}
	return c, nil
}

// Tape returns the chain's gradient tape.
func (c *Chain) Tape() *GradientTape {
	return c.tape
}

// Parameters returns all leaf parameter nodes: weights then biases, in
// chain order.
func (c *Chain) Parameters() []*Value {
	params := make([]*Value, 0, 2*len(c.weights))
	params = append(params, c.weights...)
	params = append(params, c.biases...)
	return params
}

// Forward runs x through every linear+tanh pair on the tape and returns the
// output node.
//
// The caller controls recording; TrainStep handles the clear/record
// lifecycle for a full training step.
func (c *Chain) Forward(x float64) *Value {
	out := c.tape.Leaf(x)
	for i := range c.weights {
		out = c.tape.Tanh(c.tape.Add(c.tape.Mul(c.weights[i], out), c.biases[i]))
	}
	return out
}

// Loss computes the squared-error loss (target - prediction)² on the tape.
func (c *Chain) Loss(prediction *Value, target float64) *Value {
	return c.tape.Square(c.tape.Sub(c.tape.Leaf(target), prediction))
}

// TrainStep runs one online gradient-descent step: clear the tape, record
// the forward pass and loss, backpropagate, and let the optimizer update
// the parameters.
//
// Returns the prediction and loss values for the step.
func (c *Chain) TrainStep(x, target float64, opt Optimizer) (prediction, loss float64, err error) {
	c.tape.Clear()
	c.tape.StartRecording()
	pred := c.Forward(x)
	out := c.Loss(pred, target)
	c.tape.StopRecording()

	grads, err := c.tape.Backward(out)
	if err != nil {
		return 0, 0, errors.Wrap(err, "chain train step")
	}
	opt.Step(grads)

	return pred.Data(), out.Data(), nil
}

// Snapshot materializes the chain's parameters in the same shape the manual
// engine exposes: ordered weights and ordered biases, one pair per linear
// transform.
func (c *Chain) Snapshot() nn.Snapshot {
	snap := nn.Snapshot{
		Weights: make([]float64, len(c.weights)),
		Biases:  make([]float64, len(c.biases)),
	}
	for i := range c.weights {
		snap.Weights[i] = c.weights[i].Data()
		snap.Biases[i] = c.biases[i].Data()
	}
	return snap
}

// LoadSnapshot overwrites the chain's parameters from a snapshot, matching
// by position. Used for the one-time alignment with the manual engine
// before a parity run.
//
// Returns an error if the snapshot's pair count does not match.
func (c *Chain) LoadSnapshot(snap nn.Snapshot) error {
	if len(snap.Weights) != len(snap.Biases) {
		return errors.Errorf("load snapshot: %d weights vs %d biases",
			len(snap.Weights), len(snap.Biases))
	}
	if len(snap.Weights) != len(c.weights) {
		return errors.Errorf("load snapshot: chain has %d pairs, snapshot has %d",
			len(c.weights), len(snap.Weights))
	}

	for i := range c.weights {
		c.weights[i].Set(snap.Weights[i])
		c.biases[i].Set(snap.Biases[i])
	}
	return nil
}
