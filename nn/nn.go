// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/nn"
)

// Layer is the contract shared by every layer variant.
type Layer = nn.Layer

// ErrNoForwardState reports a Backward call with no matching Forward.
var ErrNoForwardState = nn.ErrNoForwardState

// Layers

// Linear is a learnable scalar affine transform: y = weight*x + bias.
type Linear = nn.Linear

// NewLinear creates a linear layer with parameters drawn uniformly from
// [-1, 1).
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(rng)
func NewLinear(rng *rand.Rand) *Linear {
	return nn.NewLinear(rng)
}

// NewLinearFrom creates a linear layer with explicit parameter values.
func NewLinearFrom(weight, bias float64) *Linear {
	return nn.NewLinearFrom(weight, bias)
}

// Tanh is the hyperbolic tangent activation layer.
type Tanh = nn.Tanh

// NewTanh creates a new tanh layer.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// Loss functions

// MSELoss is the squared-error loss on a single scalar prediction.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new squared-error loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Composition

// Sequential chains layers into a single scalar function.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container from the given layers.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// NewTanhStack creates n (Linear, Tanh) pairs with parameters drawn
// uniformly from [-1, 1).
func NewTanhStack(n int, rng *rand.Rand) (*Sequential, error) {
	return nn.NewTanhStack(n, rng)
}

// Snapshot is a read-only view of a network's learnable parameters.
type Snapshot = nn.Snapshot
