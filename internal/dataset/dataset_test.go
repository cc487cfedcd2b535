package dataset

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples, err := Uniform(200, -2.0, 2.0, math.Sin, rng)
	require.NoError(t, err)
	require.Len(t, samples, 200)

	for _, s := range samples {
		assert.GreaterOrEqual(t, s.Input, -2.0)
		assert.Less(t, s.Input, 2.0)
		assert.InDelta(t, math.Sin(s.Input), s.Target, 1e-12)
	}
}

func TestUniformSeedDeterminism(t *testing.T) {
	a, err := Uniform(50, 0, 1, math.Sin, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Uniform(50, 0, 1, math.Sin, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestUniformBadConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Uniform(-1, 0, 1, math.Sin, rng)
	require.Error(t, err)

	_, err = Uniform(10, 1, 0, math.Sin, rng)
	require.Error(t, err)
}

func TestLinspace(t *testing.T) {
	samples, err := Linspace(5, 0, 1, func(x float64) float64 { return 2 * x })
	require.NoError(t, err)
	require.Len(t, samples, 5)

	assert.InDelta(t, 0.0, samples[0].Input, 1e-12)
	assert.InDelta(t, 0.25, samples[1].Input, 1e-12)
	assert.InDelta(t, 1.0, samples[4].Input, 1e-12)
	assert.InDelta(t, 0.5, samples[1].Target, 1e-12)
}

func TestLinspaceSingle(t *testing.T) {
	samples, err := Linspace(1, -3, 3, math.Sin)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.InDelta(t, -3.0, samples[0].Input, 1e-12)
}

func TestShuffleIsPermutation(t *testing.T) {
	samples, err := Linspace(20, 0, 1, math.Sin)
	require.NoError(t, err)

	shuffled := make([]Sample, len(samples))
	copy(shuffled, samples)
	Shuffle(shuffled, rand.New(rand.NewSource(11)))

	sort.Slice(shuffled, func(i, j int) bool { return shuffled[i].Input < shuffled[j].Input })
	assert.Equal(t, samples, shuffled)
}
