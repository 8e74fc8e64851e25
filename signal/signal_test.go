// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signal

import (
	"math"
	"strings"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

var testSig = &Signal{SampleRate: 10, Samples: []float64{1, 2, 3, 4}}

func TestSignalStats(t *testing.T) {
	if testSig.Num() != 4 {
		t.Errorf("Num err: got %d, want 4", testSig.Num())
	}
	if dif := math.Abs(testSig.Duration() - 0.4); dif > difTol {
		t.Errorf("Duration err: got %v, want 0.4", testSig.Duration())
	}
	if testSig.Min() != 1 || testSig.Max() != 4 {
		t.Errorf("Min/Max err: got %v, %v, want 1, 4", testSig.Min(), testSig.Max())
	}
	if dif := math.Abs(testSig.Mean() - 2.5); dif > difTol {
		t.Errorf("Mean err: got %v, want 2.5", testSig.Mean())
	}
	if dif := math.Abs(testSig.Var() - 1.25); dif > difTol {
		t.Errorf("Var err: got %v, want 1.25", testSig.Var())
	}
	if dif := math.Abs(testSig.SD() - math.Sqrt(1.25)); dif > difTol {
		t.Errorf("SD err: got %v, want %v", testSig.SD(), math.Sqrt(1.25))
	}
	rng := testSig.Range()
	if rng.Min != 1 || rng.Max != 4 {
		t.Errorf("Range err: got %v", rng)
	}
}

func TestSignalSegment(t *testing.T) {
	seg, err := testSig.Segment(0.1, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if seg.Num() != 2 || seg.Samples[0] != 2 || seg.Samples[1] != 3 {
		t.Errorf("Segment err: got %v", seg.Samples)
	}
	if _, err := testSig.Segment(0.3, 0.3); err == nil {
		t.Errorf("expected error for segment past end")
	}
	if _, err := testSig.Segment(-0.1, 0.2); err == nil {
		t.Errorf("expected error for negative start")
	}
}

func TestSignalTruncate(t *testing.T) {
	tc, m := testSig.Truncate(0.3)
	if m != 1 || tc.Num() != 3 || tc.Samples[0] != 2 {
		t.Errorf("Truncate err: got m=%d, %v", m, tc)
	}
	tc, m = testSig.Truncate(0.5)
	if tc != nil || m != 0 {
		t.Errorf("Truncate err: expected nil for dur > signal duration, got m=%d, %v", m, tc)
	}
}

func TestSignalTable(t *testing.T) {
	dt := testSig.Table("TestSig")
	if dt.Rows != 4 {
		t.Fatalf("rows err: got %d, want 4", dt.Rows)
	}
	if dif := math.Abs(dt.CellFloat("Time", 3) - 0.3); dif > difTol {
		t.Errorf("Time err: got %v, want 0.3", dt.CellFloat("Time", 3))
	}
	if dt.CellFloat("Value", 2) != 3 {
		t.Errorf("Value err: got %v, want 3", dt.CellFloat("Value", 2))
	}
}

func TestSignalReports(t *testing.T) {
	if !strings.Contains(testSig.String(), "Samples: 4") {
		t.Errorf("String err: %v", testSig.String())
	}
	if !strings.Contains(testSig.SizeReport(), "32") {
		t.Errorf("SizeReport err: %v", testSig.SizeReport())
	}
}
