// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/dataset"
)

// Sample is one scalar training example.
type Sample = dataset.Sample

// TargetFunc evaluates the function being learned at a given input.
type TargetFunc = dataset.TargetFunc

// Uniform draws n inputs uniformly from [lo, hi) and evaluates target at
// each.
func Uniform(n int, lo, hi float64, target TargetFunc, rng *rand.Rand) ([]Sample, error) {
	return dataset.Uniform(n, lo, hi, target, rng)
}

// Linspace evaluates target at n evenly spaced inputs across [lo, hi].
func Linspace(n int, lo, hi float64, target TargetFunc) ([]Sample, error) {
	return dataset.Linspace(n, lo, hi, target)
}

// Shuffle permutes the samples in place through the injected random source.
func Shuffle(samples []Sample, rng *rand.Rand) {
	dataset.Shuffle(samples, rng)
}
