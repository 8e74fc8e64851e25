// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"fmt"

	"github.com/Allen-Z-4230/Theoretical-Neuroscience-Exercises/signal"
)

// STAParams are parameters for computing the spike-triggered average
// stimulus.
type STAParams struct {

	// length of the stimulus window preceding each spike, in seconds
	Window float64 `def:"0.3" min:"0"`
}

func (sp *STAParams) Update() {
}

func (sp *STAParams) Defaults() {
	sp.Window = 0.3
	sp.Update()
}

// STA computes the spike-triggered average of the stimulus over the
// Window seconds preceding each spike: the average stimulus segment
// ending at the spike time.  Spikes closer than Window to the stimulus
// onset, or past its end, are skipped.  Returns the average as a signal
// at the stimulus sample rate (last sample = spike time) and the number
// of spikes used.  Returns an error if no spike has a complete window.
func (sp *STAParams) STA(stim *signal.Signal, tr *Train) (*signal.Signal, int, error) {
	wn := int(sp.Window * stim.SampleRate)
	if wn < 1 {
		return nil, 0, fmt.Errorf("spikes.STAParams.STA: Window %g shorter than one sample at %gHz", sp.Window, stim.SampleRate)
	}
	sum := make([]float64, wn)
	used := 0
	for _, ts := range tr.Times {
		si := int(ts * stim.SampleRate)
		if si-wn+1 < 0 || si >= stim.Num() {
			continue
		}
		for j := 0; j < wn; j++ {
			sum[j] += stim.Samples[si-wn+1+j]
		}
		used++
	}
	if used == 0 {
		return nil, 0, fmt.Errorf("spikes.STAParams.STA: no spikes with a complete %gs window", sp.Window)
	}
	for j := range sum {
		sum[j] /= float64(used)
	}
	return &signal.Signal{SampleRate: stim.SampleRate, Samples: sum}, used, nil
}
