// Copyright 2025 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives online stochastic-gradient-descent training of the
// manual engine.
//
// # Overview
//
// This package contains:
//   - Trainer: batch-size-1 step driver over an nn.Sequential
//   - Result: per-step prediction, loss, and parameter snapshot
//   - Losses, Summary: trajectory helpers for progress reporting
//
// # Basic Usage
//
//	import (
//	    "github.com/sprout-ml/sprout/dataset"
//	    "github.com/sprout-ml/sprout/nn"
//	    "github.com/sprout-ml/sprout/train"
//	)
//
//	func main() {
//	    model, _ := nn.NewTanhStack(2, rng)
//	    trainer := train.New(model, 0.01)
//
//	    results, err := trainer.Run(samples)
//	    mean, stddev := train.Summary(results)
//	}
//
// Each step is the strict sequence network forward, loss forward, loss
// backward, network backward; the parameter update is fused into the
// network's backward pass, so a completed step leaves the model updated.
package train
