// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/sprout-ml/sprout/internal/train"
	"github.com/sprout-ml/sprout/nn"
)

// Result captures the observable output of a single training step.
type Result = train.Result

// Trainer runs batch-size-1 gradient-descent steps on a network.
type Trainer = train.Trainer

// New creates a Trainer over the given network with a constant learning
// rate.
//
// Example:
//
//	trainer := train.New(model, 0.01)
//	res, err := trainer.Step(0.5, 0.0)
func New(net *nn.Sequential, lr float64) *Trainer {
	return train.New(net, lr)
}

// Losses extracts the per-step loss values from a trajectory.
func Losses(results []Result) []float64 {
	return train.Losses(results)
}

// Summary returns the mean and standard deviation of a trajectory's losses.
func Summary(results []Result) (mean, stddev float64) {
	return train.Summary(results)
}
