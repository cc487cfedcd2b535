// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/nn"
)

// The public surface mirrors the internal engine one-to-one; this exercises
// a full forward/backward round trip through the facade only.
func TestFacadeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	model, err := nn.NewTanhStack(2, rng)
	require.NoError(t, err)

	y := model.Forward(0.5)
	require.False(t, math.IsNaN(y))

	loss := nn.NewMSELoss()
	loss.Forward(y, 0.0)
	grad, err := loss.Backward()
	require.NoError(t, err)

	_, err = model.Backward(grad, 0.01)
	require.NoError(t, err)

	snap := model.Snapshot()
	assert.Len(t, snap.Weights, 2)
	assert.Len(t, snap.Biases, 2)
}

func TestFacadeStateError(t *testing.T) {
	model := nn.NewSequential(nn.NewLinearFrom(0.5, -0.4), nn.NewTanh())

	_, err := model.Backward(1.0, 0.1)
	require.ErrorIs(t, err, nn.ErrNoForwardState)
}
