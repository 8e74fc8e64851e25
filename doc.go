// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuro is the overall repository for introductory computational
neuroscience exercises implemented in the Go language (golang), covering
the core chapter 1 material from Dayan & Abbott: white-noise stimuli,
autocorrelation, spike trains, firing rate estimation, tuning curves,
and spike-triggered averages.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* signal: discrete sampled signals and noise synthesis -- the Signal type
with basic statistics, plotting and table export, and NoiseParams for
generating white-noise signals from configurable random distributions.

* correlate: sliding-window cross- and auto-correlation in the standard
Full / Same / Valid modes with optional normalization, plus the
positive-lag statistical ACF with confidence bounds and FFT-based
equivalents for long signals.

* spikes: spike trains and their statistics (ISIs, CV, Fano factor),
homogeneous and inhomogeneous Poisson spike generation, firing rate
estimation by binning and kernel smoothing, and the spike-triggered
average.

* tuning: parametric neural response tuning functions (Gaussian, cosine,
sigmoid) as used for orientation and direction tuning curves.

* examples: these compile into runnable programs demonstrating the above.
examples/noise_acf is the place to start: it generates Gaussian white
noise and plots its full autocorrelation function.
*/
package neuro
