// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tuning provides parametric neural response tuning functions:
the average firing rate of a neuron as a function of a stimulus
parameter such as orientation, direction, or disparity.

Three standard forms are provided: Gaussian tuning (V1 orientation),
cosine tuning (M1 movement direction), and sigmoidal tuning (V1 retinal
disparity).  Default parameter values are fits to the classic
electrophysiology datasets these functions were introduced with.
*/
package tuning

import "github.com/chewxy/math32"

// degToRad converts degrees to radians
const degToRad = math32.Pi / 180

// GaussParams are parameters for Gaussian stimulus tuning:
// r(s) = RMax * exp(-1/2 ((s-SPref)/SigTune)^2), as for orientation
// tuning in primary visual cortex.
type GaussParams struct {

	// maximum firing rate in Hz, at the preferred stimulus
	RMax float32 `def:"52.14" min:"0"`

	// preferred stimulus value (e.g. orientation in degrees)
	SPref float32 `def:"0"`

	// tuning curve width in the same units as the stimulus
	SigTune float32 `def:"14.73" min:"0"`
}

func (gp *GaussParams) Update() {
}

func (gp *GaussParams) Defaults() {
	gp.RMax = 52.14
	gp.SPref = 0
	gp.SigTune = 14.73
	gp.Update()
}

// Rate returns the firing rate for stimulus value s.
func (gp *GaussParams) Rate(s float32) float32 {
	d := (s - gp.SPref) / gp.SigTune
	return gp.RMax * math32.Exp(-0.5*d*d)
}

// CosParams are parameters for cosine stimulus tuning:
// r(s) = R0 + (RMax-R0) * cos(s-SPref) with s in degrees, as for
// movement direction tuning in primary motor cortex.
type CosParams struct {

	// baseline (mean) firing rate in Hz
	R0 float32 `def:"32.5" min:"0"`

	// maximum firing rate in Hz, at the preferred direction
	RMax float32 `def:"54.5" min:"0"`

	// preferred direction in degrees
	SPref float32 `def:"0"`

	// half-wave rectify: clamp negative rates to zero
	Rectify bool
}

func (cp *CosParams) Update() {
}

func (cp *CosParams) Defaults() {
	cp.R0 = 32.5
	cp.RMax = 54.5
	cp.SPref = 0
	cp.Rectify = false
	cp.Update()
}

// Rate returns the firing rate for direction s in degrees.
func (cp *CosParams) Rate(s float32) float32 {
	r := cp.R0 + (cp.RMax-cp.R0)*math32.Cos(degToRad*(s-cp.SPref))
	if cp.Rectify && r < 0 {
		r = 0
	}
	return r
}

// SigmoidParams are parameters for sigmoidal stimulus tuning:
// r(s) = RMax / (1 + exp((S12-s)/DeltaS)), as for retinal disparity
// tuning in visual cortex.
type SigmoidParams struct {

	// maximum (saturating) firing rate in Hz
	RMax float32 `def:"36.03" min:"0"`

	// stimulus value at half-maximal response
	S12 float32 `def:"0.036"`

	// width of the transition: smaller is steeper
	DeltaS float32 `def:"0.029" min:"0"`
}

func (sp *SigmoidParams) Update() {
}

func (sp *SigmoidParams) Defaults() {
	sp.RMax = 36.03
	sp.S12 = 0.036
	sp.DeltaS = 0.029
	sp.Update()
}

// Rate returns the firing rate for stimulus value s.
func (sp *SigmoidParams) Rate(s float32) float32 {
	return sp.RMax / (1 + math32.Exp((sp.S12-s)/sp.DeltaS))
}
