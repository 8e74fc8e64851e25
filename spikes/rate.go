// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"fmt"
	"math"

	"github.com/Allen-Z-4230/Theoretical-Neuroscience-Exercises/signal"
)

// BinnedRate estimates the firing rate by counting spikes in consecutive
// bins of width binW seconds and dividing by the bin width.  The result
// signal has sample rate 1/binW.
func BinnedRate(tr *Train, binW float64) (*signal.Signal, error) {
	if binW <= 0 {
		return nil, fmt.Errorf("spikes.BinnedRate: binW must be > 0, got %g", binW)
	}
	cnt := tr.Counts(binW)
	if cnt == nil {
		return nil, fmt.Errorf("spikes.BinnedRate: train has zero duration")
	}
	r := make([]float64, len(cnt))
	for i, c := range cnt {
		r[i] = float64(c) / binW
	}
	return &signal.Signal{SampleRate: 1 / binW, Samples: r}, nil
}

// GaussianRate estimates the instantaneous firing rate by smoothing the
// spike train with a Gaussian kernel of width sigma seconds, sampled at
// sampleRate Hz.  The kernel integrates to 1, so the rate estimate
// integrates to approximately the spike count.
func GaussianRate(tr *Train, sigma, sampleRate float64) (*signal.Signal, error) {
	if sigma <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("spikes.GaussianRate: sigma and sampleRate must be > 0, got %g, %g", sigma, sampleRate)
	}
	if tr.Dur <= 0 {
		return nil, fmt.Errorf("spikes.GaussianRate: train has zero duration")
	}
	n := int(math.Ceil(tr.Dur * sampleRate))
	norm := 1 / (math.Sqrt(2*math.Pi) * sigma)
	r := make([]float64, n)
	for i := range r {
		t := float64(i) / sampleRate
		sum := 0.0
		for _, ts := range tr.Times {
			d := (t - ts) / sigma
			sum += math.Exp(-0.5 * d * d)
		}
		r[i] = norm * sum
	}
	return &signal.Signal{SampleRate: sampleRate, Samples: r}, nil
}

// AlphaRate estimates the instantaneous firing rate by smoothing the
// spike train with a causal alpha-function kernel
// w(tau) = alpha^2 * tau * exp(-alpha*tau) for tau >= 0, sampled at
// sampleRate Hz.  Only spikes before each time point contribute, making
// this usable as an online estimate.  The kernel integrates to 1.
func AlphaRate(tr *Train, alpha, sampleRate float64) (*signal.Signal, error) {
	if alpha <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("spikes.AlphaRate: alpha and sampleRate must be > 0, got %g, %g", alpha, sampleRate)
	}
	if tr.Dur <= 0 {
		return nil, fmt.Errorf("spikes.AlphaRate: train has zero duration")
	}
	n := int(math.Ceil(tr.Dur * sampleRate))
	r := make([]float64, n)
	for i := range r {
		t := float64(i) / sampleRate
		sum := 0.0
		for _, ts := range tr.Times {
			tau := t - ts
			if tau < 0 {
				break // times sorted -- no later spike contributes
			}
			sum += alpha * alpha * tau * math.Exp(-alpha*tau)
		}
		r[i] = sum
	}
	return &signal.Signal{SampleRate: sampleRate, Samples: r}, nil
}
