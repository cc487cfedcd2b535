// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the scalar layers and building blocks of the manual
// backpropagation engine.
//
// # Overview
//
// This package contains:
//   - Layers: Linear (learnable affine transform), Tanh
//   - Loss functions: MSELoss
//   - Utilities: Sequential, Layer interface, Snapshot
//   - Initialization: uniform over [-1, 1) from an injected random source
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/sprout-ml/sprout/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    // Build a two-pair chain
//	    model := nn.NewSequential(
//	        nn.NewLinear(rng),
//	        nn.NewTanh(),
//	        nn.NewLinear(rng),
//	        nn.NewTanh(),
//	    )
//
//	    // Forward pass
//	    y := model.Forward(0.5)
//
//	    // Backward pass: gradients flow right-to-left and every Linear
//	    // takes its gradient-descent update in the same call
//	    gradIn, err := model.Backward(1.0, 0.01)
//	}
//
// # Gradients
//
// Every layer derives its own backward rule by hand and caches the forward
// state it needs; calling Backward without a matching Forward surfaces
// ErrNoForwardState rather than corrupting gradients silently.
package nn
