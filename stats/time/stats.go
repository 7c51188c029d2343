// Package time computes time-domain statistics of audio signals: level,
// extremes, zero crossings and the first four central moments.
package time

import (
	"math"

	"github.com/cwbudde/algo-audiofeatures/dsp/core"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	Range          float64 // max - min
	Range_dB       float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Power          float64 // energy / length
	ZeroCrossings  int
	Variance       float64
	Skewness       float64
	Kurtosis       float64
}

// dB is the level of an amplitude in decibels, -Inf for silence.
func dB(v float64) float64 {
	return core.LinearToDB(math.Abs(v))
}

// emptyStats is the result for a zero-length signal: all dB fields at -Inf.
func emptyStats() Stats {
	return Stats{
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		Range_dB:       math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// welford accumulates the first four central moments incrementally.
// The update order matters: m4 builds on m3 and m2 from the previous
// sample, m3 on m2, so they are applied highest first.
type welford struct {
	n    int
	mean float64
	m2   float64
	m3   float64
	m4   float64
}

func (w *welford) add(x float64) {
	w.n++
	ni := float64(w.n)
	delta := x - w.mean
	dn := delta / ni
	dn2 := dn * dn
	t1 := delta * dn * float64(w.n-1)

	w.m4 += t1*dn2*(ni*ni-3*ni+3) + 6*dn2*w.m2 - 4*dn*w.m3
	w.m3 += t1*dn*float64(w.n-2) - 3*dn*w.m2
	w.m2 += t1
	w.mean += dn
}

// central returns the population variance, skewness and excess kurtosis.
func (w *welford) central() (variance, skewness, kurtosis float64) {
	if w.n == 0 {
		return 0, 0, 0
	}

	nf := float64(w.n)

	variance = w.m2 / nf
	if variance > 0 {
		skewness = (w.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (w.m4/nf)/(variance*variance) - 3
	}

	return variance, skewness, kurtosis
}

// Calculate computes every statistic in a single pass over the signal.
// Higher-order moments use Welford's online updates, which stay accurate
// on long signals with a large DC offset.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return emptyStats()
	}

	var (
		w         welford
		sumSq     float64
		maxVal    = signal[0]
		minVal    = signal[0]
		maxPos    int
		minPos    int
		crossings int
	)

	for i, x := range signal {
		w.add(x)
		sumSq += x * x

		if x > maxVal {
			maxVal, maxPos = x, i
		}

		if x < minVal {
			minVal, minPos = x, i
		}

		if i > 0 && signal[i-1]*x < 0 {
			crossings++
		}
	}

	nf := float64(len(signal))
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))
	variance, skewness, kurtosis := w.central()

	s := Stats{
		Length:        len(signal),
		DC:            w.mean,
		DC_dB:         dB(w.mean),
		RMS:           rms,
		RMS_dB:        dB(rms),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		Peak_dB:       dB(peak),
		Range:         maxVal - minVal,
		Range_dB:      dB(maxVal - minVal),
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: crossings,
		Variance:      variance,
		Skewness:      skewness,
		Kurtosis:      kurtosis,
	}
	if rms > 0 {
		s.CrestFactor = peak / rms
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	}

	return s
}

// RMS returns the root-mean-square level of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var energy float64
	for _, x := range signal {
		energy += x * x
	}

	return math.Sqrt(energy / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal. Kahan summation keeps
// the result accurate when positive and negative halves nearly cancel.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, comp float64
	for _, x := range signal {
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Peak returns the largest absolute amplitude in the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// CrestFactor returns peak divided by RMS, or 0 for a silent signal.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}

// ZeroCrossings counts sign changes between consecutive samples.
// A sample exactly at zero does not produce a crossing.
func ZeroCrossings(signal []float64) int {
	var count int
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of the signal.
func Moments(signal []float64) (mean, variance, skewness, kurtosis float64) {
	var w welford
	for _, x := range signal {
		w.add(x)
	}

	variance, skewness, kurtosis = w.central()

	return w.mean, variance, skewness, kurtosis
}

// MeanAbsDeviation returns the mean absolute deviation of the signal from
// its mean. A constant signal has zero deviation.
func MeanAbsDeviation(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	mean := DC(signal)

	var sum float64
	for _, x := range signal {
		sum += math.Abs(x - mean)
	}

	return sum / float64(len(signal))
}
