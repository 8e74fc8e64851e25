// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

import (
	"fmt"

	"github.com/emer/emergent/v2/erand"
)

// NoiseParams specifies the random distribution and sampling rate for
// synthesizing noise signals.  The defaults produce standard normal
// white noise (Gaussian, mean 0, variance 1).
type NoiseParams struct {
	erand.RndParams

	// sampling rate of generated signals, in Hz
	SampleRate float64 `def:"1000"`
}

func (np *NoiseParams) Update() {
}

func (np *NoiseParams) Defaults() {
	np.Dist = erand.Gaussian
	np.Mean = 0
	np.Var = 1
	np.SampleRate = 1000
	np.Update()
}

// Gen returns one sample from the configured distribution.  A nil rnd
// uses the ambient global random source.
func (np *NoiseParams) Gen(rnd erand.Rand) float64 {
	if rnd == nil {
		return np.RndParams.Gen(-1)
	}
	return np.RndParams.Gen(-1, rnd)
}

// Signal generates a signal of n independent samples from the configured
// distribution.  A nil rnd uses the ambient global random source, so runs
// are not reproducible -- pass erand.NewSysRand(seed) for reproducible
// output.  Returns an error for n < 1.
func (np *NoiseParams) Signal(n int, rnd erand.Rand) (*Signal, error) {
	if n < 1 {
		return nil, fmt.Errorf("signal.NoiseParams.Signal: n must be >= 1, got %d", n)
	}
	samp := make([]float64, n)
	for i := range samp {
		samp[i] = np.Gen(rnd)
	}
	return &Signal{
		SampleRate: np.SampleRate,
		Samples:    samp,
	}, nil
}
