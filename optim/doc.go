// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter-update strategies for the tape-based
// reference network.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent, without momentum
//   - Optimizer interface for custom update rules
//
// The manual engine never needs an optimizer: its layers fuse the update
// into their backward calls. SGD here applies the exact same plain rule to
// the reference chain's parameters, which is what keeps the two engines
// comparable step for step.
//
// # Basic Usage
//
//	import (
//	    "github.com/sprout-ml/sprout/autodiff"
//	    "github.com/sprout-ml/sprout/optim"
//	)
//
//	func main() {
//	    chain, _ := autodiff.NewChain(2, rng)
//	    sgd := optim.NewSGD(chain.Parameters(), 0.01)
//
//	    for _, s := range samples {
//	        _, _, err := chain.TrainStep(s.Input, s.Target, sgd)
//	    }
//	}
package optim
