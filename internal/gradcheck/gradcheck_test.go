package gradcheck

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/nn"
)

// TestInputGradientMatchesFiniteDifference sweeps stack depths and inputs;
// every analytic input gradient must agree with the centered
// finite-difference estimate within 1e-4.
func TestInputGradientMatchesFiniteDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	inputs := []float64{-2.0, -0.5, 0.0, 0.1, 1.0, 3.0}

	for pairs := 1; pairs <= 4; pairs++ {
		t.Run(fmt.Sprintf("pairs=%d", pairs), func(t *testing.T) {
			net, err := nn.NewTanhStack(pairs, rng)
			require.NoError(t, err)

			for _, x := range inputs {
				res, err := InputGradient(net, x)
				require.NoError(t, err)
				assert.True(t, res.Within(1e-4),
					"x=%v: analytic %v vs numeric %v", x, res.Analytic, res.Numeric)
			}
		})
	}
}

// Checking with lr = 0 must leave the parameters exactly as they were.
func TestInputGradientLeavesParametersUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	net, err := nn.NewTanhStack(2, rng)
	require.NoError(t, err)

	before := net.Snapshot()
	_, err = InputGradient(net, 0.7)
	require.NoError(t, err)
	assert.Equal(t, before, net.Snapshot())
}

func TestInputGradientEmptyStack(t *testing.T) {
	net := nn.NewSequential()

	// The identity network has derivative 1 everywhere.
	res, err := InputGradient(net, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Analytic, 1e-12)
	assert.True(t, res.Within(1e-4))
}
