package nn

import (
	"math/rand"
)

// UniformInit draws a parameter value from the uniform distribution over
// [-1, 1).
//
// The random source is injected rather than taken from the global generator
// so that initialization is reproducible under a caller-chosen seed.
func UniformInit(rng *rand.Rand) float64 {
	return rng.Float64()*2.0 - 1.0
}
