package nn

import (
	"github.com/pkg/errors"
)

// MSELoss computes squared-error loss on a single scalar prediction.
//
// Loss = (target - prediction)²
//
// Forward caches the residual target - prediction; Backward produces the
// gradient of the loss with respect to the prediction, which is the
// top-level gradient fed into the network's backward pass.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(prediction, target)
//	grad, err := mse.Backward()
type MSELoss struct {
	residual    float64
	hasResidual bool
}

// NewMSELoss creates a new squared-error loss.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes (target - prediction)² and caches the residual.
func (m *MSELoss) Forward(prediction, target float64) float64 {
	m.residual = target - prediction
	m.hasResidual = true
	return m.residual * m.residual
}

// Backward returns dLoss/dPrediction = -2 * residual from the cached
// residual, consuming it.
//
// Returns ErrNoForwardState if no residual is cached.
func (m *MSELoss) Backward() (float64, error) {
	if !m.hasResidual {
		return 0, errors.Wrap(ErrNoForwardState, "mse loss")
	}

	m.hasResidual = false
	return -2.0 * m.residual, nil
}
