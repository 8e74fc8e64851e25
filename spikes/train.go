// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikes provides spike trains and their statistics, homogeneous
and inhomogeneous Poisson spike generation, firing rate estimation by
binning and kernel smoothing, and the spike-triggered average.
*/
package spikes

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Train is a spike train: an ordered sequence of spike times in seconds,
// over a recording of duration Dur seconds.
type Train struct {

	// spike times in seconds, sorted ascending
	Times []float64

	// total recording duration in seconds
	Dur float64
}

// N returns the number of spikes in the train.
func (tr *Train) N() int {
	return len(tr.Times)
}

// MeanRate returns the mean firing rate in Hz: spike count over duration.
func (tr *Train) MeanRate() float64 {
	if tr.Dur <= 0 {
		return 0
	}
	return float64(len(tr.Times)) / tr.Dur
}

// ISIs returns the interspike intervals, length N-1.
func (tr *Train) ISIs() []float64 {
	if len(tr.Times) < 2 {
		return nil
	}
	isi := make([]float64, len(tr.Times)-1)
	for i := 1; i < len(tr.Times); i++ {
		isi[i-1] = tr.Times[i] - tr.Times[i-1]
	}
	return isi
}

// CV returns the coefficient of variation of the interspike intervals:
// sd / mean.  1 for a Poisson process, 0 for a regular train.  Returns 0
// with fewer than 3 spikes.
func (tr *Train) CV() float64 {
	isi := tr.ISIs()
	if len(isi) < 2 {
		return 0
	}
	m, _ := stats.Mean(isi)
	if m == 0 {
		return 0
	}
	sd, _ := stats.StdDevP(isi)
	return sd / m
}

// Counts returns spike counts in consecutive bins of width binW seconds
// spanning the full duration.  Returns nil for binW <= 0 or zero duration.
func (tr *Train) Counts(binW float64) []int {
	if binW <= 0 || tr.Dur <= 0 {
		return nil
	}
	nb := int(math.Ceil(tr.Dur / binW))
	cnt := make([]int, nb)
	for _, t := range tr.Times {
		bi := int(t / binW)
		if bi >= nb { // t == Dur edge
			bi = nb - 1
		}
		cnt[bi]++
	}
	return cnt
}

// FanoFactor returns the variance over mean of spike counts in bins of
// width binW seconds.  1 for a Poisson process.  Returns 0 when counts
// cannot be computed or all bins are empty.
func (tr *Train) FanoFactor(binW float64) float64 {
	cnt := tr.Counts(binW)
	if len(cnt) == 0 {
		return 0
	}
	cf := make([]float64, len(cnt))
	for i, c := range cnt {
		cf[i] = float64(c)
	}
	m, _ := stats.Mean(cf)
	if m == 0 {
		return 0
	}
	v, _ := stats.VarP(cf)
	return v / m
}

func (tr *Train) String() string {
	return fmt.Sprintf("Spikes: %d, Duration: %.3gs, MeanRate: %.4gHz", len(tr.Times), tr.Dur, tr.MeanRate())
}
