// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"fmt"

	"github.com/Allen-Z-4230/Theoretical-Neuroscience-Exercises/signal"
	"github.com/emer/emergent/v2/erand"
)

// PoissonParams are parameters for Poisson spike train generation.
type PoissonParams struct {

	// mean firing rate in Hz for homogeneous generation
	Rate float64 `def:"20" min:"0"`

	// absolute refractory period in seconds added to every interspike interval -- 0 disables
	Refrac float64 `def:"0" min:"0"`
}

func (pp *PoissonParams) Update() {
}

func (pp *PoissonParams) Defaults() {
	pp.Rate = 20
	pp.Refrac = 0
	pp.Update()
}

// Gen generates a homogeneous Poisson spike train of duration dur
// seconds by drawing exponential interspike intervals at the configured
// Rate, with the refractory period added to each interval.  A nil rnd
// uses the ambient global random source.
func (pp *PoissonParams) Gen(dur float64, rnd erand.Rand) (*Train, error) {
	if pp.Rate <= 0 {
		return nil, fmt.Errorf("spikes.PoissonParams.Gen: Rate must be > 0, got %g", pp.Rate)
	}
	if dur <= 0 {
		return nil, fmt.Errorf("spikes.PoissonParams.Gen: dur must be > 0, got %g", dur)
	}
	if rnd == nil {
		rnd = erand.NewGlobalRand()
	}
	tr := &Train{Dur: dur}
	t := rnd.ExpFloat64(-1) / pp.Rate
	for t < dur {
		tr.Times = append(tr.Times, t)
		t += pp.Refrac + rnd.ExpFloat64(-1)/pp.Rate
	}
	return tr, nil
}

// GenRate generates an inhomogeneous Poisson spike train whose
// instantaneous rate follows the given rate signal (in Hz), over the
// signal's duration, by thinning: candidate spikes are generated at the
// maximum rate and accepted with probability rate(t)/maxRate.  Negative
// rate values are treated as zero.  Refrac is not applied.  A nil rnd
// uses the ambient global random source.
func (pp *PoissonParams) GenRate(rate *signal.Signal, rnd erand.Rand) (*Train, error) {
	if rate.Num() == 0 || rate.SampleRate <= 0 {
		return nil, fmt.Errorf("spikes.PoissonParams.GenRate: empty rate signal")
	}
	rmax := rate.Max()
	if rmax <= 0 {
		return nil, fmt.Errorf("spikes.PoissonParams.GenRate: maximum rate must be > 0, got %g", rmax)
	}
	if rnd == nil {
		rnd = erand.NewGlobalRand()
	}
	dur := rate.Duration()
	tr := &Train{Dur: dur}
	t := rnd.ExpFloat64(-1) / rmax
	for t < dur {
		ri := int(t * rate.SampleRate)
		if ri >= rate.Num() {
			ri = rate.Num() - 1
		}
		r := rate.Samples[ri]
		if r > 0 && rnd.Float64(-1) < r/rmax {
			tr.Times = append(tr.Times, t)
		}
		t += rnd.ExpFloat64(-1) / rmax
	}
	return tr, nil
}
