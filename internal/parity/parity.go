// Package parity compares per-step training trajectories from the manual
// engine and the tape-based reference, step by step.
package parity

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sprout-ml/sprout/internal/train"
)

// Report summarizes the divergence between two trajectories.
type Report struct {
	Steps int
	Tol   float64

	// Maximum absolute per-step divergences.
	MaxLossDiff   float64
	MaxWeightDiff float64
	MaxBiasDiff   float64

	// Loss summary of the first trajectory, for progress reporting.
	LossMean   float64
	LossStdDev float64
}

// OK reports whether every divergence is within tolerance.
func (r Report) OK() bool {
	return r.MaxLossDiff <= r.Tol &&
		r.MaxWeightDiff <= r.Tol &&
		r.MaxBiasDiff <= r.Tol
}

// String formats the report for progress logs.
func (r Report) String() string {
	verdict := "FAIL"
	if r.OK() {
		verdict = "PASS"
	}
	return fmt.Sprintf(
		"parity %s over %d steps (tol %.1e): max diff loss=%.3e weight=%.3e bias=%.3e; loss mean=%.6f stddev=%.6f",
		verdict, r.Steps, r.Tol,
		r.MaxLossDiff, r.MaxWeightDiff, r.MaxBiasDiff,
		r.LossMean, r.LossStdDev,
	)
}

// Compare checks two trajectories step by step: per-step losses and per-step
// parameter snapshots must line up within tolerance for the run to pass.
//
// Returns an error if the trajectories have different lengths or a step's
// snapshots have different shapes; those are configuration mistakes, not
// divergences.
func Compare(manual, reference []train.Result, tol float64) (Report, error) {
	if len(manual) != len(reference) {
		return Report{}, errors.Errorf("parity: trajectory lengths differ: %d vs %d",
			len(manual), len(reference))
	}

	report := Report{Steps: len(manual), Tol: tol}
	for i := range manual {
		m, ref := manual[i], reference[i]

		if len(m.Params.Weights) != len(ref.Params.Weights) ||
			len(m.Params.Biases) != len(ref.Params.Biases) {
			return Report{}, errors.Errorf("parity: step %d snapshot shapes differ", i)
		}

		report.MaxLossDiff = math.Max(report.MaxLossDiff, math.Abs(m.Loss-ref.Loss))
		report.MaxWeightDiff = math.Max(report.MaxWeightDiff, maxAbsDiff(m.Params.Weights, ref.Params.Weights))
		report.MaxBiasDiff = math.Max(report.MaxBiasDiff, maxAbsDiff(m.Params.Biases, ref.Params.Biases))
	}

	if report.Steps > 0 {
		report.LossMean, report.LossStdDev = stat.MeanStdDev(train.Losses(manual), nil)
	}
	return report, nil
}

func maxAbsDiff(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	d := make([]float64, len(a))
	copy(d, a)
	floats.Sub(d, b)
	return floats.Norm(d, math.Inf(1))
}
