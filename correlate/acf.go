// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package correlate

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ACF computes the statistical autocorrelation function of s for lags
// 0..maxLag: mean-subtracted and normalized by the total variance, so the
// lag-0 element is always 1.  maxLag is clipped to n-1.  Returns an error
// for an empty or zero-variance signal, or maxLag < 0.
func ACF(s []float64, maxLag int) ([]float64, error) {
	n := len(s)
	if n == 0 {
		return nil, fmt.Errorf("correlate.ACF: empty signal")
	}
	if maxLag < 0 {
		return nil, fmt.Errorf("correlate.ACF: maxLag must be >= 0, got %d", maxLag)
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	mean, err := stats.Mean(s)
	if err != nil {
		return nil, err
	}
	vr := 0.0
	for _, v := range s {
		d := v - mean
		vr += d * d
	}
	if vr == 0 {
		return nil, fmt.Errorf("correlate.ACF: signal has zero variance")
	}
	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (s[i] - mean) * (s[i-k] - mean)
		}
		acf[k] = sum / vr
	}
	return acf, nil
}

// PACF computes the partial autocorrelation function of s for lags
// 0..maxLag using the Durbin-Levinson recursion.  The lag-0 element is
// always 1 and the lag-1 element equals the lag-1 ACF.
func PACF(s []float64, maxLag int) ([]float64, error) {
	n := len(s)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil, fmt.Errorf("correlate.PACF: need maxLag >= 1 and at least 2 samples")
	}
	acf, err := ACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	pacf := make([]float64, maxLag+1)
	pacf[0] = 1

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}
	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}
		if den == 0 {
			pacf[k] = 0
			continue
		}
		phi[k][k] = num / den
		pacf[k] = phi[k][k]
		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}
	return pacf, nil
}

// ACFResult is an autocorrelation function with its confidence bounds.
type ACFResult struct {
	Lags       []int     `desc:"lag of each element, 0..maxLag"`
	Values     []float64 `desc:"autocorrelation at each lag"`
	ConfBounds float64   `desc:"95 percent confidence bounds: +/- 1.96/sqrt(n)"`
}

// ACFWithConfidence computes the ACF together with the 95 percent
// confidence bounds for testing lags against the white-noise null.
func ACFWithConfidence(s []float64, maxLag int) (*ACFResult, error) {
	acf, err := ACF(s, maxLag)
	if err != nil {
		return nil, err
	}
	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}
	return &ACFResult{
		Lags:       lags,
		Values:     acf,
		ConfBounds: 1.96 / math.Sqrt(float64(len(s))),
	}, nil
}

// SignificantLags returns the nonzero lags at which the correlation
// magnitude exceeds the confidence bound.
func SignificantLags(values []float64, confBound float64) []int {
	var sig []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			sig = append(sig, i)
		}
	}
	return sig
}
