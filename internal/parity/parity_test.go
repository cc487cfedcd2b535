package parity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/dataset"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/train"
)

// referenceRun trains the tape-based chain on the same ordered samples and
// collects a trajectory in the manual engine's Result shape.
func referenceRun(t *testing.T, chain *autodiff.Chain, samples []dataset.Sample, lr float64) []train.Result {
	t.Helper()
	sgd := optim.NewSGD(chain.Parameters(), lr)

	results := make([]train.Result, 0, len(samples))
	for _, s := range samples {
		pred, loss, err := chain.TrainStep(s.Input, s.Target, sgd)
		require.NoError(t, err)
		results = append(results, train.Result{
			Prediction: pred,
			Loss:       loss,
			Params:     chain.Snapshot(),
		})
	}
	return results
}

// TestCrossImplementationParity trains the manual engine and the autodiff
// reference from identical initial parameters on an identical ordered
// sample sequence with the same constant learning rate. Per-step losses and
// parameter trajectories must match to floating-point tolerance.
func TestCrossImplementationParity(t *testing.T) {
	const (
		pairs = 3
		steps = 200
		lr    = 0.05
		tol   = 1e-9
	)

	rng := rand.New(rand.NewSource(2024))

	model, err := nn.NewTanhStack(pairs, rng)
	require.NoError(t, err)
	chain, err := autodiff.NewChain(pairs, rng)
	require.NoError(t, err)

	// One-time alignment before any forward/backward activity.
	require.NoError(t, chain.LoadSnapshot(model.Snapshot()))

	samples, err := dataset.Uniform(steps, -2, 2, math.Sin, rng)
	require.NoError(t, err)

	manual, err := train.New(model, lr).Run(samples)
	require.NoError(t, err)
	reference := referenceRun(t, chain, samples, lr)

	report, err := Compare(manual, reference, tol)
	require.NoError(t, err)
	assert.True(t, report.OK(), report.String())
	assert.Equal(t, steps, report.Steps)
}

func TestCompareDetectsDivergence(t *testing.T) {
	manual := []train.Result{
		{Loss: 1.0, Params: nn.Snapshot{Weights: []float64{0.5}, Biases: []float64{0.1}}},
	}
	reference := []train.Result{
		{Loss: 1.5, Params: nn.Snapshot{Weights: []float64{0.5}, Biases: []float64{0.1}}},
	}

	report, err := Compare(manual, reference, 1e-9)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.InDelta(t, 0.5, report.MaxLossDiff, 1e-12)
}

func TestCompareLengthMismatch(t *testing.T) {
	_, err := Compare(make([]train.Result, 2), make([]train.Result, 3), 1e-9)
	require.Error(t, err)
}

func TestCompareShapeMismatch(t *testing.T) {
	manual := []train.Result{
		{Params: nn.Snapshot{Weights: []float64{1, 2}, Biases: []float64{1, 2}}},
	}
	reference := []train.Result{
		{Params: nn.Snapshot{Weights: []float64{1}, Biases: []float64{1}}},
	}

	_, err := Compare(manual, reference, 1e-9)
	require.Error(t, err)
}

func TestCompareEmptyTrajectories(t *testing.T) {
	report, err := Compare(nil, nil, 1e-9)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, report.Steps)
}
