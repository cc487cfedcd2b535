// Package dataset generates and orders the (input, target) sample
// sequences consumed by the training driver.
//
// Ordering policy lives here: the engine itself processes samples in
// whatever order it is handed them.
package dataset

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Sample is one scalar training example.
type Sample struct {
	Input  float64
	Target float64
}

// TargetFunc evaluates the function being learned at a given input.
type TargetFunc func(x float64) float64

// Uniform draws n inputs uniformly from [lo, hi) through the injected
// random source and evaluates target at each.
//
// Returns an error if n is negative or the range is inverted.
func Uniform(n int, lo, hi float64, target TargetFunc, rng *rand.Rand) ([]Sample, error) {
	if n < 0 {
		return nil, errors.Errorf("dataset: sample count must be >= 0, got %d", n)
	}
	if hi < lo {
		return nil, errors.Errorf("dataset: inverted range [%v, %v)", lo, hi)
	}

	samples := make([]Sample, n)
	for i := range samples {
		x := lo + rng.Float64()*(hi-lo)
		samples[i] = Sample{Input: x, Target: target(x)}
	}
	return samples, nil
}

// Linspace evaluates target at n evenly spaced inputs across [lo, hi],
// endpoints included. Deterministic; useful for evaluation sweeps.
//
// Returns an error if n is negative or the range is inverted. A single
// sample lands on lo.
func Linspace(n int, lo, hi float64, target TargetFunc) ([]Sample, error) {
	if n < 0 {
		return nil, errors.Errorf("dataset: sample count must be >= 0, got %d", n)
	}
	if hi < lo {
		return nil, errors.Errorf("dataset: inverted range [%v, %v]", lo, hi)
	}

	samples := make([]Sample, n)
	for i := range samples {
		x := lo
		if n > 1 {
			x = lo + float64(i)*(hi-lo)/float64(n-1)
		}
		samples[i] = Sample{Input: x, Target: target(x)}
	}
	return samples, nil
}

// Shuffle permutes the samples in place through the injected random source.
func Shuffle(samples []Sample, rng *rand.Rand) {
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
}
