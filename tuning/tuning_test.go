// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-4)

func TestGauss(t *testing.T) {
	gp := GaussParams{}
	gp.Defaults()
	if gp.Rate(gp.SPref) != gp.RMax {
		t.Errorf("peak err: got %v, want %v", gp.Rate(gp.SPref), gp.RMax)
	}
	cor := gp.RMax * math32.Exp(-0.5)
	if dif := math32.Abs(gp.Rate(gp.SPref+gp.SigTune) - cor); dif > difTol {
		t.Errorf("width err: got %v, want %v", gp.Rate(gp.SPref+gp.SigTune), cor)
	}
	for _, s := range []float32{5, 20, 90} {
		if dif := math32.Abs(gp.Rate(gp.SPref+s) - gp.Rate(gp.SPref-s)); dif > difTol {
			t.Errorf("symmetry err: s: %v, dif: %v", s, dif)
		}
	}
}

func TestCos(t *testing.T) {
	cp := CosParams{}
	cp.Defaults()
	if dif := math32.Abs(cp.Rate(cp.SPref) - cp.RMax); dif > difTol {
		t.Errorf("peak err: got %v, want %v", cp.Rate(cp.SPref), cp.RMax)
	}
	cor := 2*cp.R0 - cp.RMax // antipreferred
	if dif := math32.Abs(cp.Rate(cp.SPref+180) - cor); dif > 1e-3 {
		t.Errorf("antipreferred err: got %v, want %v", cp.Rate(cp.SPref+180), cor)
	}
	cp.R0 = 0
	cp.RMax = 10
	cp.Rectify = true
	if r := cp.Rate(180); r != 0 {
		t.Errorf("rectify err: got %v, want 0", r)
	}
}

func TestSigmoid(t *testing.T) {
	sp := SigmoidParams{}
	sp.Defaults()
	cor := sp.RMax / 2
	if dif := math32.Abs(sp.Rate(sp.S12) - cor); dif > difTol {
		t.Errorf("half-max err: got %v, want %v", sp.Rate(sp.S12), cor)
	}
	prv := float32(-1)
	for s := sp.S12 - 10*sp.DeltaS; s <= sp.S12+10*sp.DeltaS; s += sp.DeltaS {
		r := sp.Rate(s)
		if r <= prv {
			t.Errorf("monotonic err: s: %v, rate %v <= previous %v", s, r, prv)
		}
		prv = r
	}
	sat := sp.Rate(sp.S12 + 20*sp.DeltaS)
	if dif := math32.Abs(sat - sp.RMax); dif > 0.01*sp.RMax {
		t.Errorf("saturation err: got %v, want ~%v", sat, sp.RMax)
	}
}
