// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlate

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/montanaflynn/stats"
)

// AutoFFT computes the circular autocorrelation of the standardized
// signal via the Wiener-Khinchin relation: the inverse FFT of the power
// spectrum.  The result has length n with the lag-0 element equal to 1,
// and values in [-1, 1].  Note this is circular: large lags wrap around,
// so only lags well below n are meaningful.  Returns an error for an
// empty or zero-variance signal.
func AutoFFT(s []float64) ([]float64, error) {
	n := len(s)
	if n == 0 {
		return nil, fmt.Errorf("correlate.AutoFFT: empty signal")
	}
	mean, err := stats.Mean(s)
	if err != nil {
		return nil, err
	}
	sd, err := stats.StdDevP(s)
	if err != nil {
		return nil, err
	}
	if sd == 0 {
		return nil, fmt.Errorf("correlate.AutoFFT: signal has zero variance")
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = (s[i] - mean) / sd
	}
	f := fft.FFTReal(x)
	p := make([]float64, len(f))
	for i := range f {
		a := cmplx.Abs(f[i])
		p[i] = a * a
	}
	pi := fft.IFFTReal(p)
	ac := make([]float64, n)
	for i := range pi {
		ac[i] = real(pi[i]) / float64(n)
	}
	return ac, nil
}

// CrossFFT computes the same full-mode linear cross-correlation as
// Cross(a, b, Full), using zero-padded FFTs: inverse transform of
// conj(FFT(a)) * FFT(b).  Results agree with the direct computation
// within floating-point tolerance, at O(n log n) cost.
func CrossFFT(a, b []float64) ([]float64, error) {
	n := len(a)
	m := len(b)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("correlate.CrossFFT: empty input: len(a) = %d, len(b) = %d", n, m)
	}
	l := n + m - 1
	ap := make([]float64, l)
	copy(ap, a)
	bp := make([]float64, l)
	copy(bp, b)
	fa := fft.FFTReal(ap)
	fb := fft.FFTReal(bp)
	fc := make([]complex128, l)
	for i := range fc {
		fc[i] = cmplx.Conj(fa[i]) * fb[i]
	}
	ci := fft.IFFT(fc)
	// circular index k holds lag k for k >= 0, and wraps negative lags
	// to the top end -- unwrap into full-mode order, lag -(n-1) first
	out := make([]float64, l)
	for j := range out {
		k := j - (n - 1)
		if k < 0 {
			k += l
		}
		out[j] = real(ci[k])
	}
	return out, nil
}
