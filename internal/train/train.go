// Package train drives online stochastic-gradient-descent training of a
// layer stack against a squared-error objective.
package train

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/sprout-ml/sprout/internal/dataset"
	"github.com/sprout-ml/sprout/internal/nn"
)

// Result captures the observable output of a single training step.
type Result struct {
	Prediction float64
	Loss       float64
	Params     nn.Snapshot
}

// Trainer runs batch-size-1 gradient-descent steps on a network.
//
// Each step is the strict sequence: network forward, loss forward, loss
// backward, network backward. The network's backward fuses the parameter
// update, so a completed step leaves the network already updated. The
// learning rate is constant for the trainer's lifetime.
//
// Example:
//
//	trainer := train.New(model, 0.01)
//	for _, s := range samples {
//	    res, err := trainer.Step(s.Input, s.Target)
//	    ...
//	}
type Trainer struct {
	net  *nn.Sequential
	loss *nn.MSELoss
	lr   float64
}

// New creates a Trainer over the given network with a constant learning
// rate.
func New(net *nn.Sequential, lr float64) *Trainer {
	return &Trainer{
		net:  net,
		loss: nn.NewMSELoss(),
		lr:   lr,
	}
}

// LR returns the trainer's learning rate.
func (t *Trainer) LR() float64 {
	return t.lr
}

// Step runs one sample through the network and updates the parameters.
//
// Returns the prediction, the loss, and a snapshot of the parameters after
// the update.
func (t *Trainer) Step(input, target float64) (Result, error) {
	prediction := t.net.Forward(input)
	loss := t.loss.Forward(prediction, target)

	grad, err := t.loss.Backward()
	if err != nil {
		return Result{}, errors.Wrap(err, "train step")
	}
	if _, err := t.net.Backward(grad, t.lr); err != nil {
		return Result{}, errors.Wrap(err, "train step")
	}

	return Result{
		Prediction: prediction,
		Loss:       loss,
		Params:     t.net.Snapshot(),
	}, nil
}

// Run steps through an ordered sample sequence and returns the per-step
// trajectory.
func (t *Trainer) Run(samples []dataset.Sample) ([]Result, error) {
	results := make([]Result, 0, len(samples))
	for i, s := range samples {
		res, err := t.Step(s.Input, s.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		results = append(results, res)
	}
	return results, nil
}

// Losses extracts the per-step loss values from a trajectory.
func Losses(results []Result) []float64 {
	losses := make([]float64, len(results))
	for i, r := range results {
		losses[i] = r.Loss
	}
	return losses
}

// Summary returns the mean and standard deviation of a trajectory's losses
// for progress reporting.
func Summary(results []Result) (mean, stddev float64) {
	return stat.MeanStdDev(Losses(results), nil)
}
