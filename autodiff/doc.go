// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the tape-based reverse-mode differentiation
// reference the manual engine is validated against.
//
// # Overview
//
// This package contains:
//   - GradientTape: records scalar operations, backpropagates in reverse
//   - Value: a node in the scalar computation graph
//   - Chain: the reference linear+tanh network built on the tape
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/sprout-ml/sprout/autodiff"
//	    "github.com/sprout-ml/sprout/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    chain, _ := autodiff.NewChain(2, rng)
//	    sgd := optim.NewSGD(chain.Parameters(), 0.01)
//
//	    pred, loss, err := chain.TrainStep(0.5, 0.0, sgd)
//	}
//
// The chain computes the same function as an equally sized manual stack but
// derives every gradient through the tape, which is what makes it usable as
// an independent oracle for parity checks.
package autodiff
