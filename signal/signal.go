// Copyright (c) 2024, The Theoretical Neuroscience Exercises Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package signal provides the Signal type for discrete real-valued sampled
signals, with basic statistics, table export and plotting, and
NoiseParams for synthesizing white-noise signals from configurable
random distributions.
*/
package signal

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/montanaflynn/stats"
	"goki.dev/etable/v2/etable"
	"goki.dev/etable/v2/etensor"
	"goki.dev/etable/v2/minmax"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// LogPrec is precision for saving float values in tables
const LogPrec = 4

// Signal is a discrete real-valued signal sampled at a fixed rate.
// Signals are immutable by convention once generated -- methods that
// modify return a new instance.
type Signal struct {

	// sampling rate in Hz
	SampleRate float64

	// the sample values
	Samples []float64
}

// Num returns the number of samples in the signal.
func (s *Signal) Num() int {
	return len(s.Samples)
}

// Duration returns the signal duration in seconds.
func (s *Signal) Duration() float64 {
	return float64(len(s.Samples)) / s.SampleRate
}

// Min returns the minimum sample value.
func (s *Signal) Min() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	min := s.Samples[0]
	for i := 1; i < len(s.Samples); i++ {
		if s.Samples[i] < min {
			min = s.Samples[i]
		}
	}
	return min
}

// Max returns the maximum sample value.
func (s *Signal) Max() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	max := s.Samples[0]
	for i := 1; i < len(s.Samples); i++ {
		if s.Samples[i] > max {
			max = s.Samples[i]
		}
	}
	return max
}

// Range returns the min / max range of the sample values.
func (s *Signal) Range() minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	for _, v := range s.Samples {
		rng.FitValInRange(v)
	}
	return rng
}

// Mean returns the mean sample value (0 for an empty signal).
func (s *Signal) Mean() float64 {
	m, _ := stats.Mean(s.Samples)
	return m
}

// Var returns the population variance of the sample values.
func (s *Signal) Var() float64 {
	v, _ := stats.VarP(s.Samples)
	return v
}

// SD returns the population standard deviation of the sample values.
func (s *Signal) SD() float64 {
	sd, _ := stats.StdDevP(s.Samples)
	return sd
}

// Segment returns the sub-signal of duration dur starting at time start
// (both in seconds), sharing the underlying samples.
func (s *Signal) Segment(start, dur float64) (*Signal, error) {
	st := int(start * s.SampleRate)
	n := int(dur * s.SampleRate)
	if st < 0 || n < 1 || st+n > len(s.Samples) {
		return nil, fmt.Errorf("signal.Segment: [%g, %g+%g] outside signal duration %g", start, start, dur, s.Duration())
	}
	return &Signal{
		SampleRate: s.SampleRate,
		Samples:    s.Samples[st : st+n],
	}, nil
}

// Truncate truncates the signal to a length of a whole multiple of
// duration dur (seconds), keeping the trailing samples, and returns the
// truncated signal and the multiple.  Returns nil, 0 if the signal is
// shorter than dur.
func (s *Signal) Truncate(dur float64) (*Signal, int) {
	if s.Duration() < dur {
		return nil, 0
	}
	n := int(dur * s.SampleRate)
	m := 0
	i := len(s.Samples)
	for i-n >= 0 {
		i -= n
		m++
	}
	return &Signal{
		SampleRate: s.SampleRate,
		Samples:    s.Samples[i:],
	}, m
}

func (s *Signal) String() string {
	return fmt.Sprintf("SampleRate: %.5gHz, Samples: %d, Duration: %.3gs", s.SampleRate, len(s.Samples), s.Duration())
}

// SizeReport returns a string reporting the memory footprint of the signal.
func (s *Signal) SizeReport() string {
	mem := len(s.Samples) * int(unsafe.Sizeof(float64(0)))
	return fmt.Sprintf("Samples: %d\t Mem: %v", len(s.Samples), (datasize.ByteSize)(mem).HumanReadable())
}

// Table returns the signal as an etable.Table with Time and Value
// columns, for logging and eplot plotting.
func (s *Signal) Table(name string) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", name)
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64},
		{Name: "Value", Type: etensor.FLOAT64},
	}
	dt.SetFromSchema(sch, s.Num())
	for i, v := range s.Samples {
		dt.SetCellFloat("Time", i, float64(i)/s.SampleRate)
		dt.SetCellFloat("Value", i, v)
	}
	return dt
}

// Plot renders the signal as a go-echarts line chart for headless HTML
// output.  color optionally sets the line and area color.
func (s *Signal) Plot(title, color string, o ...charts.GlobalOpts) *charts.Line {
	x := make([]string, 0, s.Num())
	y := make([]opts.LineData, 0, s.Num())
	for i := 0; i < s.Num(); i++ {
		x = append(x, fmt.Sprintf("%.3f", float64(i)/s.SampleRate))
		y = append(y, opts.LineData{Value: s.Samples[i], Symbol: "none"})
	}
	if title == "" {
		title = s.String()
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "3000px", Theme: types.ThemeRoma}),
		charts.WithTitleOpts(opts.Title{Title: title}))
	if o != nil {
		line.SetGlobalOptions(o...)
	}
	if color != "" {
		line.SetXAxis(x).AddSeries("sample value", y,
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: color, Opacity: 0.1}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}))
	} else {
		line.SetXAxis(x).AddSeries("sample value", y)
	}
	return line
}
