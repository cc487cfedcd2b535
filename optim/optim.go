// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/sprout-ml/sprout/autodiff"
	"github.com/sprout-ml/sprout/internal/optim"
)

// Optimizer is the common interface for parameter-update strategies.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD is plain stochastic gradient descent, without momentum.
type SGD = optim.SGD

// NewSGD creates a new SGD optimizer over the given parameters.
//
// Example:
//
//	sgd := optim.NewSGD(chain.Parameters(), 0.01)
func NewSGD(params []*autodiff.Value, lr float64) *SGD {
	return optim.NewSGD(params, lr)
}
