// Package frequency computes descriptors of magnitude spectra: level
// statistics per bin plus the spectral shape family (centroid, spread,
// flatness, entropy, rolloff, bandwidth).
package frequency

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-audiofeatures/dsp/core"
	"github.com/cwbudde/algo-audiofeatures/stats/shape"
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount   int
	DC         float64 // bin 0 magnitude
	DC_dB      float64
	Sum        float64 // sum of magnitudes
	Sum_dB     float64
	Max        float64
	MaxBin     int
	Min        float64
	MinBin     int
	Average    float64
	Average_dB float64
	Range      float64
	Range_dB   float64
	Energy     float64 // sum of squared magnitudes
	Power      float64
	// Spectral shape descriptors
	Centroid  float64 // spectral centroid (Hz)
	Spread    float64 // spectral spread (variance about the centroid, Hz^2)
	Skewness  float64
	Kurtosis  float64 // excess kurtosis
	Flatness  float64 // geometric/arithmetic mean ratio, 0..1
	Entropy   float64 // Shannon entropy of the normalized spectrum (bits)
	Rolloff   float64 // frequency below which 85% energy (Hz)
	Bandwidth float64 // 3 dB bandwidth around peak (Hz)
}

// toDB is the level of a magnitude in decibels, -Inf for zero.
func toDB(v float64) float64 {
	return core.LinearToDB(v)
}

// binFreq returns the frequency in Hz of a given bin index.
// fftSize = 2 * (len(magnitude) - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all frequency-domain statistics from a one-sided
// magnitude spectrum (linear scale, NOT dB).
//
// The slice covers bins 0 (DC) through Nyquist, so its length is
// FFTSize/2 + 1 and bin i sits at
//
//	f_i = i * sampleRate / (2 * (len(magnitude) - 1))
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{
			DC_dB:      math.Inf(-1),
			Sum_dB:     math.Inf(-1),
			Average_dB: math.Inf(-1),
			Range_dB:   math.Inf(-1),
		}
	}

	minVal, maxVal := magnitude[0], magnitude[0]

	var (
		minBin, maxBin int
		sum, energy    float64
	)

	for i, v := range magnitude {
		sum += v
		energy += v * v

		if v > maxVal {
			maxVal, maxBin = v, i
		}

		if v < minVal {
			minVal, minBin = v, i
		}
	}

	nf := float64(n)
	s := Stats{
		BinCount:   n,
		DC:         magnitude[0],
		DC_dB:      toDB(magnitude[0]),
		Sum:        sum,
		Sum_dB:     toDB(sum),
		Max:        maxVal,
		MaxBin:     maxBin,
		Min:        minVal,
		MinBin:     minBin,
		Average:    sum / nf,
		Average_dB: toDB(sum / nf),
		Range:      maxVal - minVal,
		Range_dB:   toDB(maxVal - minVal),
		Energy:     energy,
		Power:      energy / nf,
	}

	if n == 1 {
		// A lone DC bin has no frequency axis; of the shape descriptors
		// only the degenerate kurtosis is defined.
		s.Kurtosis = -3
		return s
	}

	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread, s.Skewness, s.Kurtosis = shape.DistributionShape(CentralMoments(magnitude, sampleRate))
	s.Flatness = shape.Flatness(magnitude)
	s.Entropy = shape.Entropy(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, 0.85, energy)
	s.Bandwidth = bandwidth(magnitude, sampleRate)

	return s
}

// CalculateFromComplex takes the magnitude of each bin and delegates to
// [Calculate].
func CalculateFromComplex(spectrum []complex128, sampleRate float64) Stats {
	mag := make([]float64, len(spectrum))
	for i, c := range spectrum {
		mag[i] = cmplx.Abs(c)
	}

	return Calculate(mag, sampleRate)
}

// Centroid returns the spectral centroid in Hz, the magnitude-weighted
// mean frequency.
func Centroid(magnitude []float64, sampleRate float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	var mass float64
	for _, v := range magnitude {
		mass += v
	}

	return centroid(magnitude, sampleRate, mass)
}

func centroid(magnitude []float64, sampleRate float64, mass float64) float64 {
	n := len(magnitude)
	if n < 2 || mass == 0 {
		return 0
	}

	var weighted float64
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, n) * v
	}

	return weighted / mass
}

// CentralMoments returns central moments of orders 0 through 4 of the
// magnitude spectrum over the frequency axis [0, sampleRate/2]. Feed the
// result to [shape.DistributionShape] for spread, skewness and kurtosis.
func CentralMoments(magnitude []float64, sampleRate float64) [5]float64 {
	return shape.CentralMoments(magnitude, sampleRate/2)
}

// Spread returns the spectral spread: the variance of the spectrum about
// its centroid along the frequency axis, in Hz^2.
func Spread(magnitude []float64, sampleRate float64) float64 {
	return CentralMoments(magnitude, sampleRate)[2]
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// All bins participate. A spectrum containing a zero bin has flatness 0; an
// all-zero spectrum yields NaN (0/0).
func Flatness(magnitude []float64) float64 {
	return shape.Flatness(magnitude)
}

// Entropy returns the Shannon entropy in bits of the sum-normalized
// magnitude spectrum.
func Entropy(magnitude []float64) float64 {
	return shape.Entropy(magnitude)
}

// EnergyBandRatio returns the fraction of total spectral energy that falls
// into the frequency band [lowHz, highHz). Energy is the sum of squared
// magnitudes. Returns 0 for a spectrum without energy.
func EnergyBandRatio(magnitude []float64, sampleRate, lowHz, highHz float64) float64 {
	n := len(magnitude)
	if n < 2 || sampleRate <= 0 || highHz <= lowHz {
		return 0
	}

	var total float64
	for _, v := range magnitude {
		total += v * v
	}
	if total == 0 {
		return 0
	}

	nyquist := sampleRate / 2
	start := int(math.Round(lowHz / nyquist * float64(n-1)))
	stop := int(math.Round(highHz / nyquist * float64(n-1)))
	start = max(start, 0)
	stop = min(stop, n)

	var band float64
	for i := start; i < stop; i++ {
		band += magnitude[i] * magnitude[i]
	}

	return band / total
}

// Rolloff returns the frequency below which the specified fraction (0..1)
// of spectral energy lies. A typical value for percent is 0.85.
func Rolloff(magnitude []float64, sampleRate float64, percent float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	var energy float64
	for _, v := range magnitude {
		energy += v * v
	}

	return rolloff(magnitude, sampleRate, percent, energy)
}

func rolloff(magnitude []float64, sampleRate float64, percent float64, totalEnergy float64) float64 {
	n := len(magnitude)
	if n < 2 || totalEnergy == 0 {
		return 0
	}

	threshold := percent * totalEnergy

	var cum float64
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}

	return binFreq(n-1, sampleRate, n)
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz.
//
// The -3 dB points, where the magnitude falls to peak/sqrt(2), are located
// on both sides of the peak bin with linear interpolation between bins.
func Bandwidth(magnitude []float64, sampleRate float64) float64 {
	return bandwidth(magnitude, sampleRate)
}

func bandwidth(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	peakBin := 0
	peakVal := magnitude[0]
	for i, v := range magnitude {
		if v > peakVal {
			peakVal, peakBin = v, i
		}
	}
	if peakVal == 0 {
		return 0
	}

	halfPower := peakVal / math.Sqrt2

	// Walk outward from the peak until the response dips under the
	// half-power line; the edges of the spectrum are the fallback.
	lower := binFreq(0, sampleRate, n)
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= halfPower && magnitude[i] > halfPower {
			lower = crossingFreq(i-1, i, magnitude[i-1], magnitude[i], halfPower, sampleRate, n)
			break
		}
	}

	upper := binFreq(n-1, sampleRate, n)
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= halfPower && magnitude[i] > halfPower {
			upper = crossingFreq(i, i+1, magnitude[i], magnitude[i+1], halfPower, sampleRate, n)
			break
		}
	}

	if upper < lower {
		return 0
	}

	return upper - lower
}

// crossingFreq interpolates the frequency where the magnitude crosses the
// target level between two adjacent bins.
func crossingFreq(lo, hi int, magLo, magHi, target, sampleRate float64, binCount int) float64 {
	fLo := binFreq(lo, sampleRate, binCount)
	fHi := binFreq(hi, sampleRate, binCount)

	denom := magHi - magLo
	if denom == 0 {
		return (fLo + fHi) / 2
	}

	return fLo + (target-magLo)/denom*(fHi-fLo)
}
