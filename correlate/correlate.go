// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package correlate provides sliding-window cross- and auto-correlation of
discrete signals, in the standard Full / Same / Valid output modes, with
optional normalization of the autocorrelation.

The raw (unnormalized) full-mode autocorrelation is the quantity computed
in the white-noise exercises: c[n-1+k] = sum_i s[i]*s[i+k] over all valid
index pairs, for lags k in [-(n-1), n-1].  Callers wanting a true ACF with
unit peak must request normalization explicitly.

The ACF functions compute the statistical (mean-subtracted,
variance-normalized) positive-lag autocorrelation used for time-series
analysis, with 95 percent confidence bounds.  FFT-based equivalents for
long signals are in fft.go.
*/
package correlate

//go:generate goki generate

import (
	"fmt"
)

// Mode selects which lags are included in the correlation output.
type Mode int32 //enums:enum

// The correlation output modes
const (
	// Full includes every lag at which the sequences have any overlap,
	// producing output of length n+m-1 -- longer than either input
	Full Mode = iota

	// Same returns the centered max(n,m) elements of the Full output,
	// same length as the longer input
	Same

	// Valid includes only lags at which the sequences overlap completely,
	// producing output of length max(n,m)-min(n,m)+1
	Valid
)

// Norm selects the normalization applied to an autocorrelation.
type Norm int32 //enums:enum

// The autocorrelation normalizations
const (
	// NoNorm leaves the raw lagged sums -- the zero-lag element is the
	// total signal energy, not 1
	NoNorm Norm = iota

	// Biased divides every lag by n
	Biased

	// Unbiased divides the lag-k element by the number of terms that
	// contribute to it, n-|k|
	Unbiased

	// Coeff divides by the zero-lag energy so the peak is 1
	Coeff
)

// Cross computes the discrete cross-correlation of a with b in the given
// output mode.  The full-mode element at output index n-1+k is
// sum_i a[i]*b[i+k], for all i where both indexes are valid, with lag k
// running from -(n-1) to m-1 (n = len(a), m = len(b)).  Equivalent to
// convolution of b with the time-reversed a.  Returns an error if either
// input is empty.
func Cross(a, b []float64, mode Mode) ([]float64, error) {
	n := len(a)
	m := len(b)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("correlate.Cross: empty input: len(a) = %d, len(b) = %d", n, m)
	}
	full := make([]float64, n+m-1)
	for j := range full {
		k := j - (n - 1)
		sum := 0.0
		for i := 0; i < n; i++ {
			ib := i + k
			if ib < 0 || ib >= m {
				continue
			}
			sum += a[i] * b[ib]
		}
		full[j] = sum
	}
	mx := n
	mn := m
	if m > n {
		mx = m
		mn = n
	}
	switch mode {
	case Full:
		return full, nil
	case Same:
		st := (mn - 1) / 2
		return full[st : st+mx], nil
	case Valid:
		return full[mn-1 : mn-1+mx-mn+1], nil
	}
	return nil, fmt.Errorf("correlate.Cross: unknown mode: %d", mode)
}

// Auto computes the full-mode autocorrelation of s with the given
// normalization.  The result has length 2n-1 and is symmetric about the
// zero-lag element at index n-1, which is the maximum-magnitude element
// for any signal with nonzero variance.  NoNorm preserves the raw lagged
// sums exactly.  Coeff returns an error for an all-zero signal.
func Auto(s []float64, norm Norm) ([]float64, error) {
	c, err := Cross(s, s, Full)
	if err != nil {
		return nil, err
	}
	n := len(s)
	switch norm {
	case NoNorm:
	case Biased:
		for j := range c {
			c[j] /= float64(n)
		}
	case Unbiased:
		for j := range c {
			k := j - (n - 1)
			if k < 0 {
				k = -k
			}
			c[j] /= float64(n - k)
		}
	case Coeff:
		e := c[n-1]
		if e == 0 {
			return nil, fmt.Errorf("correlate.Auto: cannot normalize all-zero signal to unit peak")
		}
		for j := range c {
			c[j] /= e
		}
	default:
		return nil, fmt.Errorf("correlate.Auto: unknown normalization: %d", norm)
	}
	return c, nil
}
