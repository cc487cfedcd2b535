// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset generates the scalar (input, target) sample sequences
// consumed by the training driver.
//
// # Overview
//
// This package contains:
//   - Sample: one scalar training example
//   - Uniform: random inputs through an injected random source
//   - Linspace: deterministic evenly spaced inputs
//   - Shuffle: in-place reordering (ordering policy lives here, not in the
//     engine)
//
// # Basic Usage
//
//	import (
//	    "math"
//	    "math/rand"
//
//	    "github.com/sprout-ml/sprout/dataset"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    samples, err := dataset.Uniform(500, -2, 2, math.Sin, rng)
//	}
package dataset
