// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/autodiff"
)

// Value is a node in the scalar computation graph.
type Value = autodiff.Value

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// ErrEmptyTape reports a backward pass with nothing recorded to walk.
var ErrEmptyTape = autodiff.ErrEmptyTape

// Chain is the tape-based reference network of linear+tanh pairs.
type Chain = autodiff.Chain

// NewChain creates a reference chain of n linear+tanh pairs with parameters
// drawn uniformly from [-1, 1).
func NewChain(n int, rng *rand.Rand) (*Chain, error) {
	return autodiff.NewChain(n, rng)
}

// Optimizer updates leaf parameters from a gradient map.
type Optimizer = autodiff.Optimizer
