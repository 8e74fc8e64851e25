// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-9

// regTrain is a perfectly regular 9-spike train over 1 second
var regTrain = &Train{
	Times: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
	Dur:   1,
}

func TestTrainBasic(t *testing.T) {
	if regTrain.N() != 9 {
		t.Errorf("N err: got %d, want 9", regTrain.N())
	}
	if dif := math.Abs(regTrain.MeanRate() - 9); dif > difTol {
		t.Errorf("MeanRate err: got %v, want 9", regTrain.MeanRate())
	}
	isi := regTrain.ISIs()
	if len(isi) != 8 {
		t.Fatalf("ISIs len err: got %d, want 8", len(isi))
	}
	for i, v := range isi {
		if dif := math.Abs(v - 0.1); dif > difTol {
			t.Errorf("ISI err: idx: %d, got %v, want 0.1", i, v)
		}
	}
	if cv := regTrain.CV(); cv > 1e-6 { // regular train
		t.Errorf("CV err: got %v, want ~0", cv)
	}
}

func TestTrainCounts(t *testing.T) {
	cnt := regTrain.Counts(0.25)
	cor := []int{2, 2, 3, 2}
	if len(cnt) != len(cor) {
		t.Fatalf("Counts len err: got %d, want %d", len(cnt), len(cor))
	}
	for i := range cor {
		if cnt[i] != cor[i] {
			t.Errorf("Counts err: bin: %d, got %d, want %d", i, cnt[i], cor[i])
		}
	}
	ff := regTrain.FanoFactor(0.25)
	cor2 := 0.1875 / 2.25 // varP / mean of [2 2 3 2]
	if dif := math.Abs(ff - cor2); dif > difTol {
		t.Errorf("FanoFactor err: got %v, want %v", ff, cor2)
	}
}

func TestTrainEmpty(t *testing.T) {
	tr := &Train{Dur: 1}
	if tr.N() != 0 || tr.MeanRate() != 0 {
		t.Errorf("empty train err: N %d, MeanRate %v", tr.N(), tr.MeanRate())
	}
	if tr.ISIs() != nil {
		t.Errorf("empty ISIs err: got %v", tr.ISIs())
	}
	if tr.CV() != 0 || tr.FanoFactor(0.1) != 0 {
		t.Errorf("empty stats err: CV %v, Fano %v", tr.CV(), tr.FanoFactor(0.1))
	}
	if regTrain.Counts(0) != nil {
		t.Errorf("expected nil counts for binW <= 0")
	}
}
